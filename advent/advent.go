package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/felixge/fgprof"
)

func main() {
	log.SetFlags(0)
	var (
		verbose     = flag.Bool("v", false, "Log diagnostics to stderr")
		interactive = flag.Bool("i", false, "Read inputs interactively, one line at a time")
		configFile  = flag.String("config", defaultConfigFile, "INI config `file` (optional)")
		profileFile = flag.String("fgprof", "", "Write a wall-clock profile of the solve to `file`")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(1)
	}
	name := flag.Arg(0)
	fn, ok := solutions[name]
	if !ok {
		log.Fatalf("unknown solution %q", name)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	opts := cfg.options(name, *verbose)

	if *interactive {
		if err := runInteractive(name, fn, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	inputFile := opts.get("input", "input.txt")
	if flag.NArg() == 2 {
		inputFile = flag.Arg(1)
	}
	ans, err := solveFile(fn, inputFile, opts, *profileFile)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ans)
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [inputfile]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "and flags are:")
	flag.PrintDefaults()
}

type answers struct {
	part1 int64
	part2 int64
}

func (a answers) String() string {
	return fmt.Sprintf("part 1 answer is %d, part 2 answer is %d", a.part1, a.part2)
}

// A solution parses a complete puzzle input and computes both answers.
type solution func(r io.Reader, opts *options) (answers, error)

func solveFile(fn solution, name string, opts *options, profile string) (answers, error) {
	f, err := os.Open(name)
	if err != nil {
		return answers{}, err
	}
	defer f.Close()

	if profile != "" {
		pf, err := os.Create(profile)
		if err != nil {
			return answers{}, err
		}
		defer pf.Close()
		stop := fgprof.Start(pf, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Println("Error writing profile:", err)
			}
		}()
	}

	start := time.Now()
	ans, err := fn(f, opts)
	if err != nil {
		return answers{}, fmt.Errorf("%s: %w", name, err)
	}
	opts.logf("Solved %s in %s", name, time.Since(start).Round(time.Microsecond))
	return ans, nil
}

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	if _, err := strconv.Atoi(name[:leadingDigits(name)]); err != nil {
		panic(fmt.Sprintf("solution name %q does not start with a day number", name))
	}
	solutions[name] = fn
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := leadingDigits(name)
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

func leadingDigits(name string) int {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	return i
}
