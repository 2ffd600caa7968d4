package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/vaughan0/go-ini"
)

var day6Example = []int{3, 4, 3, 1, 2}

func TestGrow(t *testing.T) {
	for _, tt := range []struct {
		days int
		want uint64
	}{
		{0, 5},
		{1, 5},
		{2, 6},
		{18, 26},
		{80, 5934},
		{256, 26984457539},
	} {
		got, err := grow(day6Example, tt.days)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("grow(%v, %d): got %d; want %d", day6Example, tt.days, got, tt.want)
		}
	}
}

func TestSchoolTick(t *testing.T) {
	s := school{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if err := s.tick(); err != nil {
		t.Fatal(err)
	}
	want := school{2, 3, 4, 5, 6, 7, 8 + 1, 9, 1}
	if s != want {
		t.Errorf("got %v; want %v", s, want)
	}
}

func TestGrowMonotonic(t *testing.T) {
	prev := uint64(0)
	for d := 0; d <= 256; d++ {
		n, err := grow(day6Example, d)
		if err != nil {
			t.Fatal(err)
		}
		if n < prev {
			t.Fatalf("grow(%d) = %d < grow(%d) = %d", d, n, d-1, prev)
		}
		prev = n
	}
}

func TestGrowLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randomTimers := func() []int {
		timers := make([]int, rng.Intn(20))
		for i := range timers {
			timers[i] = rng.Intn(spawnTimer + 1)
		}
		return timers
	}
	for i := 0; i < 100; i++ {
		x, y := randomTimers(), randomTimers()
		xy := append(append([]int(nil), x...), y...)
		d := rng.Intn(200)
		gx, _ := grow(x, d)
		gy, _ := grow(y, d)
		gxy, err := grow(xy, d)
		if err != nil {
			t.Fatal(err)
		}
		if gxy != gx+gy {
			t.Errorf("grow(%v ⊎ %v, %d) = %d; want %d + %d", x, y, d, gxy, gx, gy)
		}
	}
}

func TestGrowErrors(t *testing.T) {
	for _, tt := range []struct {
		timers []int
		days   int
	}{
		{[]int{9}, 1},
		{[]int{-1}, 1},
		{[]int{3}, -1},
		{day6Example, 600},
		{day6Example, 10000},
	} {
		if _, err := grow(tt.timers, tt.days); err == nil {
			t.Errorf("grow(%v, %d): got nil error", tt.timers, tt.days)
		}
	}
}

func TestDay6ConfiguredDays(t *testing.T) {
	file, err := ini.Load(strings.NewReader("part1_days = 99\n[6]\npart1_days = 18\n"))
	if err != nil {
		t.Fatal(err)
	}
	opts := (&config{file: file}).options("6", false)
	got, err := day6(strings.NewReader("3,4,3,1,2\n"), opts)
	if err != nil {
		t.Fatal(err)
	}
	if want := (answers{26, 26984457539}); got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestDay6Errors(t *testing.T) {
	for _, input := range []string{
		"",
		"3,4,x",
		"3,4,9",
		"3,4\n1,2",
	} {
		if _, err := day6(strings.NewReader(input), &options{}); err == nil {
			t.Errorf("day6(%q): got nil error", input)
		}
	}
}

func TestSchoolOverflow(t *testing.T) {
	s := school{0: math.MaxUint64, 7: 1}
	if err := s.tick(); !errors.Is(err, errOverflow) {
		t.Errorf("tick: got err=%v; want overflow", err)
	}
	s = school{0: math.MaxUint64, 1: 1}
	if _, err := s.population(); !errors.Is(err, errOverflow) {
		t.Errorf("population: got err=%v; want overflow", err)
	}
}

func TestDay6LargeHorizon(t *testing.T) {
	// Find a horizon whose population fits in a uint64 but not an int64.
	// The population at most doubles per day, so one exists right after
	// the last horizon that fits in an int64.
	days := -1
	for d := 400; d < 600; d++ {
		n, err := grow(day6Example, d)
		if err != nil {
			t.Fatalf("grow(%d) overflowed before passing MaxInt64: %s", d, err)
		}
		if n > math.MaxInt64 {
			days = d
			break
		}
	}
	if days < 0 {
		t.Fatal("no horizon exceeded MaxInt64")
	}
	for _, d := range []int{days, 600} {
		file, err := ini.Load(strings.NewReader(fmt.Sprintf("[6]\npart2_days = %d\n", d)))
		if err != nil {
			t.Fatal(err)
		}
		opts := (&config{file: file}).options("6", false)
		ans, err := day6(strings.NewReader("3,4,3,1,2\n"), opts)
		if !errors.Is(err, errOverflow) {
			t.Errorf("%d days: got %s, err=%v; want overflow", d, ans, err)
		}
	}
}
