package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func init() {
	register("2", day2)
}

func day2(r io.Reader, _ *options) (answers, error) {
	lines, err := readLines(r)
	if err != nil {
		return answers{}, err
	}
	var course []move
	for _, line := range lines {
		m, err := parseMove(line.text)
		if err != nil {
			return answers{}, fmt.Errorf("line %d: %s", line.num, err)
		}
		course = append(course, m)
	}

	var sub1, sub2 submarine
	for _, m := range course {
		sub1.moveSimple(m)
		sub2.moveAimed(m)
	}
	return answers{
		part1: sub1.pos.x * sub1.pos.y,
		part2: sub2.pos.x * sub2.pos.y,
	}, nil
}

// A move is a change in horizontal position (x) or in depth (y).
type move vec2

func parseMove(s string) (move, error) {
	var m move
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return m, fmt.Errorf("bad command %q", s)
	}
	n, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return m, err
	}
	switch fields[0] {
	case "forward":
		m.x = n
	case "down":
		m.y = n
	case "up":
		m.y = -n
	default:
		return m, fmt.Errorf("unknown direction %q", fields[0])
	}
	return m, nil
}

type submarine struct {
	pos vec2
	aim int64
}

func (s *submarine) moveSimple(m move) {
	s.pos = s.pos.add(vec2(m))
}

func (s *submarine) moveAimed(m move) {
	s.aim += m.y
	s.pos = s.pos.add(vec2{m.x, m.x * s.aim})
}

type vec2 struct {
	x, y int64
}

func (v vec2) add(v1 vec2) vec2 {
	return vec2{v.x + v1.x, v.y + v1.y}
}

func (v vec2) scalarMul(n int64) vec2 {
	return vec2{v.x * n, v.y * n}
}
