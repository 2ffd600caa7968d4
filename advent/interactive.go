package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// runInteractive solves each line typed at the prompt as a complete input.
func runInteractive(name string, fn solution, opts *options) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      name + "> ",
		HistoryFile: opts.get("history", ""),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintln(l.Stdout(), solveLine(fn, line, opts))
	}
}

func solveLine(fn solution, line string, opts *options) string {
	ans, err := fn(strings.NewReader(line), opts)
	if err != nil {
		return "error: " + err.Error()
	}
	return ans.String()
}
