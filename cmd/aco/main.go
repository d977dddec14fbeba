// Command aco solves travelling-salesman instances with the Ant System.
//
//	aco solve --preset ref7 --start 3 --seed 42
//	aco solve --instance cities.yaml --iterations 500 --workers 4 --format json
//	aco instances
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
