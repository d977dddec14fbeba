package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptStart asks for a start node in [0, n) until a valid one is entered.
func promptStart(in io.Reader, out io.Writer, n int) (int, error) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Enter the starting point (0 to %d): ", n-1)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("read start node: %w", err)
			}
			return 0, errors.New("read start node: no input")
		}
		v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err == nil && v >= 0 && v < n {
			return v, nil
		}
		fmt.Fprintf(out, "Please enter a whole number between 0 and %d.\n", n-1)
	}
}
