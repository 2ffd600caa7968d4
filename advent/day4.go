package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func init() {
	register("4", day4)
}

func day4(r io.Reader, _ *options) (answers, error) {
	game, err := parseBingo(r)
	if err != nil {
		return answers{}, err
	}
	scores := game.play()
	if len(scores) == 0 {
		return answers{}, errors.New("no board wins")
	}
	return answers{
		part1: scores[0],
		part2: scores[len(scores)-1],
	}, nil
}

const boardSize = 5

type bingoGame struct {
	draws  []int
	boards []*bingoBoard
}

type bingoBoard struct {
	nums [boardSize][boardSize]int
	// Bit c of rows[r] (and bit r of cols[c]) is set once (r, c) is marked.
	rows [boardSize]uint8
	cols [boardSize]uint8
	won  bool
}

func parseBingo(r io.Reader) (*bingoGame, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errEmptyInput
	}
	var game bingoGame
	game.draws, err = parseIntList(lines[0].text)
	if err != nil {
		return nil, fmt.Errorf("line %d: %s", lines[0].num, err)
	}
	rows := lines[1:]
	if len(rows) == 0 || len(rows)%boardSize != 0 {
		return nil, fmt.Errorf("got %d board rows; want a positive multiple of %d", len(rows), boardSize)
	}
	for i := 0; i < len(rows); i += boardSize {
		b := new(bingoBoard)
		for j, line := range rows[i : i+boardSize] {
			fields := strings.Fields(line.text)
			if len(fields) != boardSize {
				return nil, fmt.Errorf("line %d: got %d numbers; want %d", line.num, len(fields), boardSize)
			}
			for k, field := range fields {
				n, err := strconv.Atoi(field)
				if err != nil {
					return nil, fmt.Errorf("line %d: %s", line.num, err)
				}
				b.nums[j][k] = n
			}
		}
		game.boards = append(game.boards, b)
	}
	return &game, nil
}

// play draws every number and returns the score of each board in the order
// the boards win.
func (g *bingoGame) play() []int64 {
	var scores []int64
	for _, n := range g.draws {
		for _, b := range g.boards {
			if b.won {
				continue
			}
			if b.mark(n) {
				b.won = true
				scores = append(scores, b.unmarkedSum()*int64(n))
			}
		}
	}
	return scores
}

const fullLine = 1<<boardSize - 1

// mark marks every cell holding n and reports whether the board has now won.
func (b *bingoBoard) mark(n int) bool {
	won := false
	for r := range b.nums {
		for c, v := range b.nums[r] {
			if v != n {
				continue
			}
			b.rows[r] |= 1 << c
			b.cols[c] |= 1 << r
			if b.rows[r] == fullLine || b.cols[c] == fullLine {
				won = true
			}
		}
	}
	return won
}

func (b *bingoBoard) unmarkedSum() int64 {
	var sum int64
	for r := range b.nums {
		for c, v := range b.nums[r] {
			if b.rows[r]&(1<<c) == 0 {
				sum += int64(v)
			}
		}
	}
	return sum
}
