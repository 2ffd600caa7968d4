package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/vaughan0/go-ini"
)

const testConfig = `
input = all.txt
history = /tmp/hist
part2_days = 128

[6]
input = fish.txt
part1_days = 18

[7]
part1_days = lots
`

func loadTestConfig(t *testing.T) *config {
	t.Helper()
	file, err := ini.Load(strings.NewReader(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	return &config{file: file}
}

func TestOptionsLookup(t *testing.T) {
	cfg := loadTestConfig(t)
	for _, tt := range []struct {
		day  string
		key  string
		def  string
		want string
	}{
		{"6", "input", "input.txt", "fish.txt"},
		{"8", "input", "input.txt", "all.txt"},
		{"6", "history", "", "/tmp/hist"},
		{"6", "missing", "dflt", "dflt"},
	} {
		got := cfg.options(tt.day, false).get(tt.key, tt.def)
		if got != tt.want {
			t.Errorf("[%s] %s: got %q; want %q", tt.day, tt.key, got, tt.want)
		}
	}
}

func TestOptionsGetInt(t *testing.T) {
	cfg := loadTestConfig(t)
	opts := cfg.options("6", false)
	for _, tt := range []struct {
		key  string
		want int
	}{
		{"part1_days", 18},
		{"part2_days", 128},
		{"other_days", 7},
	} {
		got, err := opts.getInt(tt.key, 7)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: got %d; want %d", tt.key, got, tt.want)
		}
	}
	if _, err := cfg.options("7", false).getInt("part1_days", 80); err == nil {
		t.Error("got nil error for non-integer value")
	}
}

func TestOptionsMerged(t *testing.T) {
	got := loadTestConfig(t).options("6", true).merged()
	want := map[string]string{
		"input":      "fish.txt",
		"history":    "/tmp/hist",
		"part1_days": "18",
		"part2_days": "128",
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("merged config differs:\n%s", strings.Join(diff, "\n"))
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := loadConfig(defaultConfigFile)
	if err != nil {
		t.Fatalf("missing default config: %s", err)
	}
	if got := cfg.options("8", false).get("input", "input.txt"); got != "input.txt" {
		t.Errorf("got %q; want input.txt", got)
	}

	if _, err := loadConfig(filepath.Join(dir, "other.ini")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing explicit config: got err=%v; want not-exist error", err)
	}

	if err := os.WriteFile(defaultConfigFile, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(defaultConfigFile)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.options("6", false).get("input", ""); got != "fish.txt" {
		t.Errorf("got %q; want fish.txt", got)
	}
}
