package main

import (
	"fmt"
	"io"
)

func init() {
	register("5", day5)
}

func day5(r io.Reader, _ *options) (answers, error) {
	lines, err := readLines(r)
	if err != nil {
		return answers{}, err
	}
	if len(lines) == 0 {
		return answers{}, errEmptyInput
	}
	vents := make([]ventLine, len(lines))
	for i, line := range lines {
		v, err := parseVentLine(line.text)
		if err != nil {
			return answers{}, fmt.Errorf("line %d: %s", line.num, err)
		}
		vents[i] = v
	}
	return answers{
		part1: countOverlaps(vents, false),
		part2: countOverlaps(vents, true),
	}, nil
}

type ventLine struct {
	start, end vec2
}

func parseVentLine(s string) (ventLine, error) {
	var v ventLine
	if _, err := fmt.Sscanf(s, "%d,%d -> %d,%d", &v.start.x, &v.start.y, &v.end.x, &v.end.y); err != nil {
		return v, fmt.Errorf("bad vent line %q: %s", s, err)
	}
	d := v.end.add(v.start.scalarMul(-1))
	if d.x != 0 && d.y != 0 && abs(d.x) != abs(d.y) {
		return v, fmt.Errorf("vent line %q is neither straight nor diagonal", s)
	}
	return v, nil
}

func (v ventLine) diagonal() bool {
	return v.start.x != v.end.x && v.start.y != v.end.y
}

// points calls fn for every point on v, both ends included.
func (v ventLine) points(fn func(vec2)) {
	d := v.end.add(v.start.scalarMul(-1))
	step := vec2{sign(d.x), sign(d.y)}
	n := abs(d.x)
	if abs(d.y) > n {
		n = abs(d.y)
	}
	for i := int64(0); i <= n; i++ {
		fn(v.start.add(step.scalarMul(i)))
	}
}

// countOverlaps counts the points covered by at least two vent lines.
func countOverlaps(vents []ventLine, includeDiagonals bool) int64 {
	covered := make(map[vec2]int)
	for _, v := range vents {
		if v.diagonal() && !includeDiagonals {
			continue
		}
		v.points(func(p vec2) { covered[p]++ })
	}
	var n int64
	for _, c := range covered {
		if c >= 2 {
			n++
		}
	}
	return n
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int64) int64 {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
