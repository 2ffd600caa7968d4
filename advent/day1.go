package main

import (
	"fmt"
	"io"
	"strconv"
)

func init() {
	register("1", day1)
}

func day1(r io.Reader, _ *options) (answers, error) {
	lines, err := readLines(r)
	if err != nil {
		return answers{}, err
	}
	depths := make([]int64, len(lines))
	for i, line := range lines {
		n, err := strconv.ParseInt(line.text, 10, 64)
		if err != nil {
			return answers{}, fmt.Errorf("line %d: %s", line.num, err)
		}
		depths[i] = n
	}
	return answers{
		part1: countIncreases(depths, 1),
		part2: countIncreases(depths, 3),
	}, nil
}

// countIncreases counts how often the sum of a window of the given width
// is larger than the sum of the window one step earlier. Adjacent windows
// share all but their end elements, so only those are compared.
func countIncreases(depths []int64, window int) int64 {
	var n int64
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}
