package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"

	"github.com/dustin/go-humanize"
)

func init() {
	register("6", day6)
}

func day6(r io.Reader, opts *options) (answers, error) {
	line, err := readSingleLine(r)
	if err != nil {
		return answers{}, err
	}
	timers, err := parseIntList(line)
	if err != nil {
		return answers{}, fmt.Errorf("bad timer list: %s", err)
	}
	var ans answers
	for _, part := range []struct {
		key  string
		def  int
		dest *int64
	}{
		{"part1_days", 80, &ans.part1},
		{"part2_days", 256, &ans.part2},
	} {
		days, err := opts.getInt(part.key, part.def)
		if err != nil {
			return answers{}, err
		}
		n, err := grow(timers, days)
		if err != nil {
			return answers{}, fmt.Errorf("after %d days: %w", days, err)
		}
		if n > math.MaxInt64 {
			return answers{}, fmt.Errorf("after %d days: %w", days, errOverflow)
		}
		opts.logf("After %d days: %s fish", days, humanize.Comma(int64(n)))
		*part.dest = int64(n)
	}
	return ans, nil
}

const (
	spawnTimer   = 8
	restartTimer = 6
)

var errOverflow = errors.New("population overflows 64 bits")

// A school counts lanternfish by internal timer value.
type school [spawnTimer + 1]uint64

func newSchool(timers []int) (school, error) {
	var s school
	for _, t := range timers {
		if t < 0 || t > spawnTimer {
			return s, fmt.Errorf("timer %d out of range [0, %d]", t, spawnTimer)
		}
		s[t]++
	}
	return s, nil
}

// tick advances s by one day. Fish at 0 restart at 6 and each spawns a new
// fish at 8.
func (s *school) tick() error {
	spawning := s[0]
	copy(s[:], s[1:])
	n, carry := bits.Add64(s[restartTimer], spawning, 0)
	if carry != 0 {
		return errOverflow
	}
	s[restartTimer] = n
	s[spawnTimer] = spawning
	return nil
}

func (s *school) population() (uint64, error) {
	var n, carry uint64
	for _, c := range s {
		n, carry = bits.Add64(n, c, 0)
		if carry != 0 {
			return 0, errOverflow
		}
	}
	return n, nil
}

func grow(timers []int, days int) (uint64, error) {
	if days < 0 {
		return 0, fmt.Errorf("negative day count %d", days)
	}
	s, err := newSchool(timers)
	if err != nil {
		return 0, err
	}
	for i := 0; i < days; i++ {
		if err := s.tick(); err != nil {
			return 0, fmt.Errorf("day %d: %w", i+1, err)
		}
	}
	return s.population()
}
