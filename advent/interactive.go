package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// runInteractive reads "solution [inputfile]" lines from a prompt and runs
// each one until EOF.
func runInteractive(cfg *config) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "advent> ",
		HistoryFile: historyFile(),
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
		if err := interpret(cfg, line, l.Stdout()); err != nil {
			log.Println(err)
		}
	}
}

// interpret runs a single interactive command line.
func interpret(cfg *config, line string, w io.Writer) error {
	args := strings.Fields(line)
	switch {
	case len(args) == 0:
		return nil
	case len(args) == 1 && args[0] == "list":
		fmt.Fprintln(w, strings.Join(solutionNames(), " "))
		return nil
	case len(args) > 2:
		return fmt.Errorf("usage: solution [inputfile]")
	case len(args) == 1 && cfg.inputDir == "":
		// Stdin belongs to the prompt.
		return fmt.Errorf("%s: no input file given and no inputdir configured", args[0])
	}
	return run(cfg, args, w)
}

func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "advent2020_history")
}
