package aco_test

import (
	"testing"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/aco"
	"github.com/stretchr/testify/require"
)

func TestValidateTour(t *testing.T) {
	const n, start = 4, 1

	require.NoError(t, aco.ValidateTour([]int{1, 0, 3, 2, 1}, n, start))

	cases := map[string]struct {
		tour  []int
		start int
		want  error
	}{
		"too short":     {[]int{1, 0, 3, 1}, start, aco.ErrDimensionMismatch},
		"not closed":    {[]int{1, 0, 3, 2, 0}, start, aco.ErrDimensionMismatch},
		"wrong start":   {[]int{0, 1, 3, 2, 0}, start, aco.ErrDimensionMismatch},
		"duplicate":     {[]int{1, 0, 0, 2, 1}, start, aco.ErrDimensionMismatch},
		"out of range":  {[]int{1, 0, 7, 2, 1}, start, aco.ErrDimensionMismatch},
		"start outside": {[]int{1, 0, 3, 2, 1}, 9, aco.ErrStartOutOfRange},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, aco.ValidateTour(tc.tour, n, tc.start), tc.want)
		})
	}
}

func TestCopyTour(t *testing.T) {
	require.Nil(t, aco.CopyTour(nil))

	src := []int{0, 1, 2, 0}
	cp := aco.CopyTour(src)
	src[1] = 9
	require.Equal(t, []int{0, 1, 2, 0}, cp)
}

func TestFormatTour(t *testing.T) {
	require.Equal(t, "0 → 2 → 3 → 4 → 1 → 0", aco.FormatTour([]int{0, 2, 3, 4, 1, 0}))
	require.Equal(t, "", aco.FormatTour(nil))
}
