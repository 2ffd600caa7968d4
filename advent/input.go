package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errEmptyInput = errors.New("empty input")

type inputLine struct {
	num  int // 1-based
	text string
}

// readLines returns the non-blank lines of r with surrounding whitespace
// trimmed.
func readLines(r io.Reader) ([]inputLine, error) {
	var lines []inputLine
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, inputLine{num: n, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// readSingleLine reads an input consisting of exactly one non-blank line.
func readSingleLine(r io.Reader) (string, error) {
	lines, err := readLines(r)
	if err != nil {
		return "", err
	}
	switch len(lines) {
	case 0:
		return "", errEmptyInput
	case 1:
		return lines[0].text, nil
	default:
		return "", fmt.Errorf("line %d: expected a single line of input", lines[1].num)
	}
}

func parseIntList(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	ns := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}
