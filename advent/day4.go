package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func init() {
	register("4a", day4a)
	register("4b", day4b)
}

func day4a(p *puzzle) error {
	return countPassports(p, passport.hasRequiredFields)
}

func day4b(p *puzzle) error {
	return countPassports(p, passport.valid)
}

func countPassports(p *puzzle, ok func(passport) bool) error {
	passports, err := readPassports(p)
	if err != nil {
		return err
	}
	var n int
	for _, pp := range passports {
		if ok(pp) {
			n++
		}
	}
	vlogf("%d of %d passports pass", n, len(passports))
	p.answer(n)
	return nil
}

// A passport maps field names (byr, pid, ...) to values.
type passport map[string]string

func readPassports(p *puzzle) ([]passport, error) {
	groups, err := readGroups(p.in)
	if err != nil {
		return nil, err
	}
	passports := make([]passport, len(groups))
	for i, group := range groups {
		pp, err := parsePassport(group)
		if err != nil {
			return nil, fmt.Errorf("passport %d: %s", i+1, err)
		}
		passports[i] = pp
	}
	return passports, nil
}

func parsePassport(lines []string) (passport, error) {
	pp := make(passport)
	for _, line := range lines {
		for _, field := range strings.Fields(line) {
			k, v, ok := strings.Cut(field, ":")
			if !ok {
				return nil, fmt.Errorf("malformed field %q", field)
			}
			pp[k] = v
		}
	}
	return pp, nil
}

var requiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

func (pp passport) hasRequiredFields() bool {
	for _, k := range requiredFields {
		if _, ok := pp[k]; !ok {
			return false
		}
	}
	return true
}

var fieldValidators = map[string]func(string) bool{
	"byr": func(s string) bool { return validYear(s, 1920, 2002) },
	"iyr": func(s string) bool { return validYear(s, 2010, 2020) },
	"eyr": func(s string) bool { return validYear(s, 2020, 2030) },
	"hgt": validHeight,
	"hcl": validHairColor,
	"ecl": validEyeColor,
	"pid": validPassportID,
}

func (pp passport) valid() bool {
	if !pp.hasRequiredFields() {
		return false
	}
	for k, valid := range fieldValidators {
		if !valid(pp[k]) {
			return false
		}
	}
	return true
}

func validYear(s string, min, max int) bool {
	if len(s) != 4 {
		return false
	}
	return inRange(s, min, max)
}

func inRange(s string, min, max int) bool {
	if s == "" || !isDigits(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= min && n <= max
}

func validHeight(s string) bool {
	if n, ok := strings.CutSuffix(s, "cm"); ok {
		return inRange(n, 150, 193)
	}
	if n, ok := strings.CutSuffix(s, "in"); ok {
		return inRange(n, 59, 76)
	}
	return false
}

func validHairColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return false
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}

var eyeColors = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}

func validEyeColor(s string) bool {
	return slices.Contains(eyeColors, s)
}

func validPassportID(s string) bool {
	return len(s) == 9 && isDigits(s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
