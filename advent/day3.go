package main

import (
	"fmt"
	"io"
	"strconv"
)

func init() {
	register("3", day3)
}

func day3(r io.Reader, _ *options) (answers, error) {
	lines, err := readLines(r)
	if err != nil {
		return answers{}, err
	}
	if len(lines) == 0 {
		return answers{}, errEmptyInput
	}
	width := len(lines[0].text)
	if width > 63 {
		return answers{}, fmt.Errorf("line %d: %d bits is too wide", lines[0].num, width)
	}
	report := make([]uint64, len(lines))
	for i, line := range lines {
		if len(line.text) != width {
			return answers{}, fmt.Errorf("line %d: got %d bits; want %d", line.num, len(line.text), width)
		}
		n, err := strconv.ParseUint(line.text, 2, 64)
		if err != nil {
			return answers{}, fmt.Errorf("line %d: %s", line.num, err)
		}
		report[i] = n
	}

	gamma, epsilon := powerRates(report, width)
	oxygen, err := rating(report, width, true)
	if err != nil {
		return answers{}, fmt.Errorf("oxygen generator rating: %s", err)
	}
	co2, err := rating(report, width, false)
	if err != nil {
		return answers{}, fmt.Errorf("CO2 scrubber rating: %s", err)
	}
	return answers{
		part1: int64(gamma * epsilon),
		part2: int64(oxygen * co2),
	}, nil
}

func countOnes(report []uint64, bit int) int {
	var n int
	for _, v := range report {
		n += int(v >> bit & 1)
	}
	return n
}

// powerRates returns the numbers made of the most and least common bits
// at each position.
func powerRates(report []uint64, width int) (gamma, epsilon uint64) {
	for bit := 0; bit < width; bit++ {
		if countOnes(report, bit)*2 > len(report) {
			gamma |= 1 << bit
		} else {
			epsilon |= 1 << bit
		}
	}
	return gamma, epsilon
}

// rating filters the report from the high bit down, keeping the values
// with the most common bit (ties keep 1) or the least common bit (ties
// keep 0), until one remains.
func rating(report []uint64, width int, mostCommon bool) (uint64, error) {
	candidates := append([]uint64(nil), report...)
	for bit := width - 1; bit >= 0 && len(candidates) > 1; bit-- {
		keepOnes := countOnes(candidates, bit)*2 >= len(candidates)
		if !mostCommon {
			keepOnes = !keepOnes
		}
		var want uint64
		if keepOnes {
			want = 1
		}
		kept := candidates[:0]
		for _, v := range candidates {
			if v>>bit&1 == want {
				kept = append(kept, v)
			}
		}
		candidates = kept
	}
	if len(candidates) != 1 {
		return 0, fmt.Errorf("%d candidates remain", len(candidates))
	}
	return candidates[0], nil
}
