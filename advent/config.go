package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"

	"github.com/kr/pretty"
	"github.com/vaughan0/go-ini"
)

const defaultConfigFile = "advent.ini"

// config is the optional INI file. Top-level keys apply to every day;
// a section named after a day overrides them for that day.
type config struct {
	file ini.File
}

func loadConfig(name string) (*config, error) {
	file, err := ini.LoadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && name == defaultConfigFile {
			return &config{file: make(ini.File)}, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %w", name, err)
	}
	return &config{file: file}, nil
}

func (c *config) options(day string, verbose bool) *options {
	opts := &options{
		day:     day,
		global:  c.file[""],
		section: c.file[day],
		verbose: verbose,
	}
	if verbose {
		log.Printf("Config for %s: %# v", day, pretty.Formatter(opts.merged()))
	}
	return opts
}

type options struct {
	day     string
	global  ini.Section
	section ini.Section
	verbose bool
}

func (o *options) lookup(key string) (string, bool) {
	if v, ok := o.section[key]; ok {
		return v, true
	}
	v, ok := o.global[key]
	return v, ok
}

func (o *options) get(key, def string) string {
	if v, ok := o.lookup(key); ok {
		return v
	}
	return def
}

func (o *options) getInt(key string, def int) (int, error) {
	v, ok := o.lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("bad config value for %s: %q is not an integer", key, v)
	}
	return n, nil
}

func (o *options) merged() map[string]string {
	m := make(map[string]string)
	for k, v := range o.global {
		m[k] = v
	}
	for k, v := range o.section {
		m[k] = v
	}
	return m
}

func (o *options) logf(format string, args ...interface{}) {
	if o.verbose {
		log.Printf("day %s: %s", o.day, fmt.Sprintf(format, args...))
	}
}
