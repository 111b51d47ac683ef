package main

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
}

func day2a(p *puzzle) error {
	return countValidPasswords(p, (*passwordEntry).validCount)
}

func day2b(p *puzzle) error {
	return countValidPasswords(p, (*passwordEntry).validPositions)
}

func countValidPasswords(p *puzzle, valid func(*passwordEntry) bool) error {
	lines, err := readLines(p.in)
	if err != nil {
		return err
	}
	var n int
	for i, line := range lines {
		e, err := parsePasswordEntry(line)
		if err != nil {
			return fmt.Errorf("line %d: %s", i+1, err)
		}
		if valid(e) {
			n++
		}
	}
	p.answer(n)
	return nil
}

// A passwordEntry is a line like "1-3 a: abcde".
type passwordEntry struct {
	lo, hi   int
	letter   byte
	password string
}

func parsePasswordEntry(line string) (*passwordEntry, error) {
	bounds, rest, ok0 := strings.Cut(line, " ")
	letter, password, ok1 := strings.Cut(rest, ": ")
	lo, hi, ok2 := strings.Cut(bounds, "-")
	if !ok0 || !ok1 || !ok2 || len(letter) != 1 || password == "" {
		return nil, fmt.Errorf("malformed password entry %q", line)
	}
	e := &passwordEntry{letter: letter[0], password: password}
	var err error
	if e.lo, err = strconv.Atoi(lo); err != nil {
		return nil, fmt.Errorf("malformed password entry %q: %s", line, err)
	}
	if e.hi, err = strconv.Atoi(hi); err != nil {
		return nil, fmt.Errorf("malformed password entry %q: %s", line, err)
	}
	if e.lo < 1 || e.hi < e.lo {
		return nil, fmt.Errorf("bad range %d-%d in %q", e.lo, e.hi, line)
	}
	return e, nil
}

// validCount reports whether the letter occurs between lo and hi times.
func (e *passwordEntry) validCount() bool {
	n := strings.Count(e.password, string(e.letter))
	return n >= e.lo && n <= e.hi
}

// validPositions reports whether the letter is at exactly one of the
// (1-based) positions lo and hi.
func (e *passwordEntry) validPositions() bool {
	at := func(i int) bool {
		return i <= len(e.password) && e.password[i-1] == e.letter
	}
	return at(e.lo) != at(e.hi)
}
