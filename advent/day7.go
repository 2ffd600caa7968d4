package main

import (
	"fmt"
	"io"
	"sort"
)

func init() {
	register("7", day7)
}

func day7(r io.Reader, _ *options) (answers, error) {
	line, err := readSingleLine(r)
	if err != nil {
		return answers{}, err
	}
	positions, err := parseIntList(line)
	if err != nil {
		return answers{}, fmt.Errorf("bad position list: %s", err)
	}
	for _, p := range positions {
		if p < 0 {
			return answers{}, fmt.Errorf("negative position %d", p)
		}
	}
	return answers{
		part1: alignLinear(positions),
		part2: alignTriangular(positions),
	}, nil
}

// alignLinear returns the least total fuel to align every crab when each
// step costs 1. The median minimizes the sum of distances.
func alignLinear(positions []int) int64 {
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	x := int64(sorted[len(sorted)/2])
	var fuel int64
	for _, p := range sorted {
		fuel += abs(int64(p) - x)
	}
	return fuel
}

// alignTriangular returns the least total fuel when moving n steps costs
// 1+2+...+n. The continuous optimum lies within 1/2 of the mean, so only
// integers next to the mean need to be tried.
func alignTriangular(positions []int) int64 {
	var sum int64
	for _, p := range positions {
		sum += int64(p)
	}
	mean := sum / int64(len(positions))
	best := int64(-1)
	for x := mean - 1; x <= mean+2; x++ {
		var fuel int64
		for _, p := range positions {
			d := abs(int64(p) - x)
			fuel += d * (d + 1) / 2
		}
		if best < 0 || fuel < best {
			best = fuel
		}
	}
	return best
}
