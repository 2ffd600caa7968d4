package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"
	"strings"

	"github.com/dustin/go-humanize"
)

func init() {
	register("8", day8)
}

var (
	errMalformed = errors.New("malformed note entry")
	errAmbiguous = errors.New("ambiguous note entry")
)

func day8(r io.Reader, opts *options) (answers, error) {
	lines, err := readLines(r)
	if err != nil {
		return answers{}, err
	}
	if len(lines) == 0 {
		return answers{}, errEmptyInput
	}
	entries := make([]noteEntry, len(lines))
	for i, line := range lines {
		e, err := parseNoteEntry(line.text)
		if err != nil {
			return answers{}, fmt.Errorf("line %d: %w", line.num, err)
		}
		e.line = line.num
		entries[i] = e
	}

	var logf func(string, ...interface{})
	if opts.verbose {
		logf = opts.logf
	}
	sum, err := sumOutputs(entries, logf)
	if err != nil {
		return answers{}, err
	}
	opts.logf("Decoded %d entries; output sum %s", len(entries), humanize.Comma(int64(sum)))
	return answers{
		part1: int64(countEasyDigits(entries)),
		part2: int64(sum),
	}, nil
}

// A wireSet is a set of the wires a-g; bit i is wire 'a'+i.
type wireSet uint8

const allWires wireSet = 1<<7 - 1

func makeWireSet(s string) (wireSet, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty pattern", errMalformed)
	}
	var set wireSet
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("%w: pattern %q contains %q", errMalformed, s, c)
		}
		bit := wireSet(1) << (c - 'a')
		if set&bit != 0 {
			return 0, fmt.Errorf("%w: pattern %q repeats %q", errMalformed, s, c)
		}
		set |= bit
	}
	return set, nil
}

func (s wireSet) size() int { return bits.OnesCount8(uint8(s)) }

func (s wireSet) contains(t wireSet) bool { return s&t == t }

func (s wireSet) String() string {
	var b strings.Builder
	for i := 0; i < 7; i++ {
		if s&(1<<i) != 0 {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}

type segment int

const (
	top segment = iota
	topLeft
	topRight
	middle
	bottomLeft
	bottomRight
	bottom
	numSegments
)

var segmentNames = [numSegments]string{
	"top", "topLeft", "topRight", "middle", "bottomLeft", "bottomRight", "bottom",
}

func (s segment) String() string { return segmentNames[s] }

var digitSegments = [10][]segment{
	0: {top, topLeft, topRight, bottomLeft, bottomRight, bottom},
	1: {topRight, bottomRight},
	2: {top, topRight, middle, bottomLeft, bottom},
	3: {top, topRight, middle, bottomRight, bottom},
	4: {topLeft, topRight, middle, bottomRight},
	5: {top, topLeft, middle, bottomRight, bottom},
	6: {top, topLeft, middle, bottomLeft, bottomRight, bottom},
	7: {top, topRight, bottomRight},
	8: {top, topLeft, topRight, middle, bottomLeft, bottomRight, bottom},
	9: {top, topLeft, topRight, middle, bottomRight, bottom},
}

// patternSizes[n] is the number of digits drawn with n segments.
var patternSizes = [8]int{2: 1, 3: 1, 4: 1, 5: 3, 6: 3, 7: 1}

type noteEntry struct {
	line     int // input line number, or 0
	patterns [10]wireSet
	output   [4]wireSet
}

func parseNoteEntry(s string) (noteEntry, error) {
	var e noteEntry
	patterns, output, ok := strings.Cut(s, "|")
	if !ok {
		return e, fmt.Errorf("%w: no | separator", errMalformed)
	}
	if err := parsePatterns(e.patterns[:], patterns, "signal patterns"); err != nil {
		return e, err
	}
	if err := parsePatterns(e.output[:], output, "output patterns"); err != nil {
		return e, err
	}
	if err := e.validate(); err != nil {
		return e, err
	}
	return e, nil
}

func parsePatterns(dst []wireSet, s, what string) error {
	fields := strings.Fields(s)
	if len(fields) != len(dst) {
		return fmt.Errorf("%w: got %d %s; want %d", errMalformed, len(fields), what, len(dst))
	}
	for i, field := range fields {
		p, err := makeWireSet(field)
		if err != nil {
			return err
		}
		dst[i] = p
	}
	return nil
}

func (e *noteEntry) validate() error {
	var union wireSet
	var sizes [8]int
	for _, p := range e.patterns {
		union |= p
		sizes[p.size()]++
	}
	if union != allWires {
		return fmt.Errorf("%w: signal patterns use wires %q; want all of %q", errMalformed, union, allWires)
	}
	if sizes != patternSizes {
		return fmt.Errorf("%w: signal pattern sizes %v do not match the ten digits", errMalformed, e.sizes())
	}
	for _, p := range e.output {
		if !e.hasPattern(p) {
			return fmt.Errorf("%w: output pattern %q is not one of the signal patterns", errMalformed, p)
		}
	}
	return nil
}

func (e *noteEntry) sizes() []int {
	sizes := make([]int, len(e.patterns))
	for i, p := range e.patterns {
		sizes[i] = p.size()
	}
	return sizes
}

func (e *noteEntry) hasPattern(p wireSet) bool {
	for _, p1 := range e.patterns {
		if p1 == p {
			return true
		}
	}
	return false
}

func (e *noteEntry) ofSize(n int) []wireSet {
	var ps []wireSet
	for _, p := range e.patterns {
		if p.size() == n {
			ps = append(ps, p)
		}
	}
	return ps
}

// A wiring maps each segment to the single wire that drives it.
type wiring [numSegments]wireSet

func (w wiring) String() string {
	parts := make([]string, numSegments)
	for seg, wire := range w {
		parts[seg] = fmt.Sprintf("%s=%s", segment(seg), wire)
	}
	return strings.Join(parts, " ")
}

// pattern returns the wires lit to display digit d.
func (w wiring) pattern(d int) wireSet {
	var p wireSet
	for _, seg := range digitSegments[d] {
		p |= w[seg]
	}
	return p
}

func (w wiring) digit(p wireSet) (int, error) {
	switch p.size() {
	case 2:
		return 1, nil
	case 3:
		return 7, nil
	case 4:
		return 4, nil
	case 7:
		return 8, nil
	case 5:
		switch {
		case p.contains(w[topLeft]):
			return 5, nil
		case p.contains(w[bottomLeft]):
			return 2, nil
		default:
			return 3, nil
		}
	case 6:
		switch {
		case !p.contains(w[middle]):
			return 0, nil
		case p.contains(w[bottomLeft]):
			return 6, nil
		default:
			return 9, nil
		}
	}
	return 0, fmt.Errorf("%w: pattern %q has %d wires", errMalformed, p, p.size())
}

// check verifies that w is a bijection onto the seven wires and that it
// reproduces exactly the entry's ten signal patterns.
func (w wiring) check(e *noteEntry) error {
	var all wireSet
	for seg, wire := range w {
		if wire.size() != 1 {
			return fmt.Errorf("%w: %s has wires %q", errAmbiguous, segment(seg), wire)
		}
		if all&wire != 0 {
			return fmt.Errorf("%w: wire %s drives two segments", errAmbiguous, wire)
		}
		all |= wire
	}
	if all != allWires {
		return fmt.Errorf("%w: wiring only covers %q", errAmbiguous, all)
	}
	for d := range digitSegments {
		if p := w.pattern(d); !e.hasPattern(p) {
			return fmt.Errorf("%w: wiring draws %d as %q, which is not a signal pattern", errAmbiguous, d, p)
		}
	}
	return nil
}

// wiringSolver deduces a wiring one segment at a time. The first failure
// sticks; later steps are no-ops.
type wiringSolver struct {
	e   *noteEntry
	w   wiring
	err error
}

// only returns the single pattern with n wires.
func (s *wiringSolver) only(n int) wireSet {
	if s.err != nil {
		return 0
	}
	ps := s.e.ofSize(n)
	if len(ps) != 1 {
		s.err = fmt.Errorf("%w: %d patterns with %d wires", errAmbiguous, len(ps), n)
		return 0
	}
	return ps[0]
}

// assign sets seg's wire, which must be the only member of candidates.
func (s *wiringSolver) assign(seg segment, candidates wireSet) {
	if s.err != nil {
		return
	}
	if candidates.size() != 1 {
		s.err = fmt.Errorf("%w: %d candidate wires (%q) for %s", errAmbiguous, candidates.size(), candidates, seg)
		return
	}
	s.w[seg] = candidates
}

// extendByOne finds the single pattern with n wires, other than exclude,
// that is base plus exactly one more wire.
func (s *wiringSolver) extendByOne(n int, base, exclude wireSet, digit int) wireSet {
	if s.err != nil {
		return 0
	}
	var match wireSet
	var count int
	for _, p := range s.e.ofSize(n) {
		if p == exclude {
			continue
		}
		if p.contains(base) && (p&^base).size() == 1 {
			match = p
			count++
		}
	}
	if count != 1 {
		s.err = fmt.Errorf("%w: %d candidate patterns for %d", errAmbiguous, count, digit)
		return 0
	}
	return match
}

func inferWiring(e noteEntry) (wiring, error) {
	s := &wiringSolver{e: &e}
	one := s.only(2)
	seven := s.only(3)
	four := s.only(4)
	eight := s.only(7)

	s.assign(top, seven&^one)

	nine := s.extendByOne(6, four|seven, 0, 9)
	s.assign(bottom, nine&^(four|seven))

	base := s.w[top] | s.w[bottom] | one
	three := s.extendByOne(5, base, 0, 3)
	s.assign(middle, three&^base)

	s.assign(topLeft, four&^three)
	s.assign(bottomLeft, eight&^(four|three))

	y := s.w[top] | s.w[middle] | s.w[bottom] | s.w[topLeft] | s.w[bottomLeft]
	six := s.extendByOne(6, y, nine, 6)
	s.assign(bottomRight, six&^y)
	s.assign(topRight, one&^s.w[bottomRight])

	if s.err != nil {
		return wiring{}, s.err
	}
	if err := s.w.check(&e); err != nil {
		return wiring{}, err
	}
	return s.w, nil
}

func decodeEntry(e noteEntry) (int, error) {
	_, n, err := decodeWiring(e)
	return n, err
}

// decodeWiring infers e's wiring and decodes its output with it.
func decodeWiring(e noteEntry) (wiring, int, error) {
	w, err := inferWiring(e)
	if err != nil {
		return w, 0, err
	}
	var n int
	for _, p := range e.output {
		d, err := w.digit(p)
		if err != nil {
			return w, 0, err
		}
		n = n*10 + d
	}
	return w, n, nil
}

var errSumOverflow = errors.New("output sum overflows 32 bits")

// sumOutputs decodes every entry and adds up the outputs. If logf is
// non-nil it is called with each entry's wiring and value.
func sumOutputs(entries []noteEntry, logf func(string, ...interface{})) (uint32, error) {
	var sum uint32
	for i, e := range entries {
		where := fmt.Sprintf("entry %d", i)
		if e.line > 0 {
			where = fmt.Sprintf("line %d", e.line)
		}
		w, n, err := decodeWiring(e)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", where, err)
		}
		if logf != nil {
			logf("%s: %s => %04d", where, w, n)
		}
		sum, err = addOutput(sum, n)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", where, err)
		}
	}
	return sum, nil
}

func addOutput(sum uint32, n int) (uint32, error) {
	if n < 0 || uint64(sum)+uint64(n) > math.MaxUint32 {
		return 0, errSumOverflow
	}
	return sum + uint32(n), nil
}

// countEasyDigits counts the output patterns that can only be 1, 4, 7, or 8.
func countEasyDigits(entries []noteEntry) int {
	var count int
	for _, e := range entries {
		for _, p := range e.output {
			switch p.size() {
			case 2, 3, 4, 7:
				count++
			}
		}
	}
	return count
}
