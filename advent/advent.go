package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/felixge/fgprof"
	"github.com/vaughan0/go-ini"
)

func main() {
	log.SetFlags(0)
	configFile := flag.String("config", defaultConfigFile(), "ini file with runner and per-day settings")
	flag.BoolVar(&verbose, "v", false, "Log extra detail about each solution")
	profile := flag.String("fgprof", "", "Write a wall-clock profile (pprof format) to this file")
	interactive := flag.Bool("i", false, "Read solution names from an interactive prompt")
	flag.Usage = usage
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.verbose {
		verbose = true
	}

	if !validArgs(*interactive, flag.Args()) {
		usage()
		os.Exit(1)
	}
	err = withProfile(*profile, func() error {
		if *interactive {
			return runInteractive(cfg)
		}
		return run(cfg, flag.Args(), os.Stdout)
	})
	if err != nil {
		log.Fatal(err)
	}
}

// validArgs reports whether args name a solution run: a solution and an
// optional input file, or nothing at all in interactive mode.
func validArgs(interactive bool, args []string) bool {
	if interactive {
		return len(args) == 0
	}
	return len(args) == 1 || len(args) == 2
}

// withProfile runs fn, recording a wall-clock profile of it to file
// unless file is empty.
func withProfile(file string, fn func() error) error {
	if file == "" {
		return fn()
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()
	stop := fgprof.Start(f, fgprof.FormatPprof)
	err = fn()
	if err1 := stop(); err1 != nil && err == nil {
		err = fmt.Errorf("error writing profile: %s", err1)
	}
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [inputfile]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// A solution reads its puzzle input and writes the answer.
type solution func(p *puzzle) error

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

var (
	errUnknownSolution = errors.New("unknown solution")
	errNoAnswer        = errors.New("no answer found")
)

// run runs the solution named by args[0]. The input is args[1] if present,
// else the day's file in the configured input directory, else stdin.
func run(cfg *config, args []string, w io.Writer) error {
	name := args[0]
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownSolution, name)
	}
	day, _ := splitName(name)

	var inputFile string
	switch {
	case len(args) > 1:
		inputFile = args[1]
	case cfg.inputDir != "":
		inputFile = filepath.Join(cfg.inputDir, strconv.Itoa(day)+".txt")
	}
	var r io.Reader = os.Stdin
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	p := &puzzle{
		in:   r,
		out:  w,
		opts: cfg.day(day),
	}
	vlogf("running %s on %s", name, inputName(inputFile))
	if err := fn(p); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func inputName(file string) string {
	if file == "" {
		return "stdin"
	}
	return file
}

// puzzle is the environment a solution runs in.
type puzzle struct {
	in   io.Reader
	out  io.Writer
	opts ini.Section
}

// intOpt returns the per-day option key as an integer,
// or def if the option is unset.
func (p *puzzle) intOpt(key string, def int64) (int64, error) {
	s, ok := p.opts[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value for option %s: %s", key, err)
	}
	return n, nil
}

func (p *puzzle) answer(v any) {
	fmt.Fprintln(p.out, v)
}

var verbose bool

func vlogf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
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
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
