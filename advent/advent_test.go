package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/kr/pretty"
	"github.com/vaughan0/go-ini"
)

// solve runs the named solution on input and returns its trimmed output.
func solve(t *testing.T, name, input string, opts ini.Section) (string, error) {
	t.Helper()
	fn, ok := solutions[name]
	if !ok {
		t.Fatalf("no solution registered for %q", name)
	}
	var out bytes.Buffer
	p := &puzzle{
		in:   strings.NewReader(input),
		out:  &out,
		opts: opts,
	}
	err := fn(p)
	return strings.TrimSpace(out.String()), err
}

func TestNameLess(t *testing.T) {
	names := []string{"10a", "2b", "1b", "2a", "1a", "10b", "9a"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	want := []string{"1a", "1b", "2a", "2b", "9a", "10a", "10b"}
	if diff := pretty.Diff(names, want); len(diff) > 0 {
		t.Errorf("got %v; want %v", names, want)
	}
}

func TestSolutionNames(t *testing.T) {
	want := []string{"1a", "1b", "2a", "2b", "3a", "3b", "4a", "4b", "5a", "5b", "6a", "6b"}
	if diff := pretty.Diff(solutionNames(), want); len(diff) > 0 {
		t.Errorf("registered solutions differ:\n%s", strings.Join(diff, "\n"))
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic registering 1a twice")
		}
	}()
	register("1a", day1a)
}

func TestRunInputFile(t *testing.T) {
	cfg := &config{file: make(ini.File)}
	for _, tt := range []struct {
		name string
		file string
		want string
	}{
		{"1a", "testdata/1.txt", "514579"},
		{"1b", "testdata/1.txt", "241861950"},
		{"3a", "testdata/3.txt", "7"},
		{"3b", "testdata/3.txt", "336"},
		{"4a", "testdata/4.txt", "2"},
		{"4b", "testdata/4_valid.txt", "4"},
		{"4b", "testdata/4_invalid.txt", "0"},
		{"6a", "testdata/6.txt", "11"},
		{"6b", "testdata/6.txt", "6"},
	} {
		var out bytes.Buffer
		if err := run(cfg, []string{tt.name, tt.file}, &out); err != nil {
			t.Errorf("%s %s: %s", tt.name, tt.file, err)
			continue
		}
		if got := strings.TrimSpace(out.String()); got != tt.want {
			t.Errorf("%s %s: got %s; want %s", tt.name, tt.file, got, tt.want)
		}
	}
}

func TestRunInputDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1.txt"), []byte("1000\n1020\n7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := &config{
		inputDir: dir,
		file: ini.File{
			"day1": ini.Section{"target": "1027"},
		},
	}
	var out bytes.Buffer
	if err := run(cfg, []string{"1a"}, &out); err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(out.String()), "7140"; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestRunErrors(t *testing.T) {
	cfg := &config{file: make(ini.File)}
	var out bytes.Buffer
	err := run(cfg, []string{"99z"}, &out)
	if !errors.Is(err, errUnknownSolution) {
		t.Errorf("unknown solution: got err %v; want %v", err, errUnknownSolution)
	}
	if err := run(cfg, []string{"1a", "testdata/nonexistent.txt"}, &out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing input: got err %v; want not-exist error", err)
	}
	if err := run(cfg, []string{"1b", "testdata/6.txt"}, &out); !errors.Is(err, errNoAnswer) {
		t.Errorf("1b on non-numeric input: got err %v; want %v", err, errNoAnswer)
	}
	if out.Len() > 0 {
		t.Errorf("failed runs wrote output %q", out.String())
	}
}

func TestIntOpt(t *testing.T) {
	p := &puzzle{opts: ini.Section{"target": "100", "bad": "x1"}}
	for _, tt := range []struct {
		key     string
		want    int64
		wantErr bool
	}{
		{"target", 100, false},
		{"missing", 42, false},
		{"bad", 0, true},
	} {
		got, err := p.intOpt(tt.key, 42)
		if (err != nil) != tt.wantErr {
			t.Errorf("intOpt(%q): got err %v; want error: %t", tt.key, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("intOpt(%q): got %d; want %d", tt.key, got, tt.want)
		}
	}

	var empty puzzle
	if got, err := empty.intOpt("target", 2020); err != nil || got != 2020 {
		t.Errorf("intOpt with no options: got %d, %v; want 2020", got, err)
	}
}

func TestInterpret(t *testing.T) {
	cfg := &config{file: make(ini.File)}
	var out bytes.Buffer
	if err := interpret(cfg, "  ", &out); err != nil || out.Len() > 0 {
		t.Errorf("blank line: got %q, %v", out.String(), err)
	}
	if err := interpret(cfg, "list", &out); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); !strings.HasPrefix(got, "1a 1b 2a") {
		t.Errorf("list: got %q", got)
	}
	out.Reset()
	if err := interpret(cfg, "6a testdata/6.txt", &out); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "11\n"; got != want {
		t.Errorf("6a: got %q; want %q", got, want)
	}
	if err := interpret(cfg, "6a", &out); err == nil {
		t.Error("6a without input: got nil error")
	}
	if err := interpret(cfg, "6a a b", &out); err == nil {
		t.Error("too many arguments: got nil error")
	}
}

func TestValidArgs(t *testing.T) {
	for _, tt := range []struct {
		interactive bool
		args        []string
		want        bool
	}{
		{false, nil, false},
		{false, []string{"1a"}, true},
		{false, []string{"1a", "input.txt"}, true},
		{false, []string{"1a", "input.txt", "extra"}, false},
		{true, nil, true},
		{true, []string{"1a"}, false},
	} {
		if got := validArgs(tt.interactive, tt.args); got != tt.want {
			t.Errorf("validArgs(%t, %q): got %t; want %t", tt.interactive, tt.args, got, tt.want)
		}
	}
}

func TestWithProfile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "advent.prof")
	var ran bool
	err := withProfile(name, func() error {
		ran = true
		time.Sleep(20 * time.Millisecond)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("profiled function did not run")
	}
	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("profile is empty")
	}

	// The profile is still written when the run fails.
	name = filepath.Join(t.TempDir(), "failed.prof")
	if err := withProfile(name, func() error { return errNoAnswer }); !errors.Is(err, errNoAnswer) {
		t.Errorf("got err %v; want %v", err, errNoAnswer)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		t.Errorf("failed run left no profile (err=%v)", err)
	}

	if err := withProfile("", func() error { return errNoAnswer }); !errors.Is(err, errNoAnswer) {
		t.Errorf("no profile: got err %v; want %v", err, errNoAnswer)
	}
	if err := withProfile(filepath.Join(t.TempDir(), "nodir", "x.prof"), func() error { return nil }); err == nil {
		t.Error("unwritable profile path: got nil error")
	}
}
