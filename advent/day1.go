package main

import (
	"slices"
	"strings"

	"github.com/cespare/advent2020/sumfind"
	"github.com/dustin/go-humanize"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
}

func day1a(p *puzzle) error {
	nums, target, err := readExpenses(p)
	if err != nil {
		return err
	}
	a, b, ok := sumfind.FindPair(nums, target, 0)
	if !ok {
		return errNoAnswer
	}
	reportProduct(p, a, b)
	return nil
}

func day1b(p *puzzle) error {
	nums, target, err := readExpenses(p)
	if err != nil {
		return err
	}
	a, b, c, ok := sumfind.FindTriple(nums, target)
	if !ok {
		return errNoAnswer
	}
	reportProduct(p, a, b, c)
	return nil
}

// readExpenses returns the sorted expense report and the target sum.
func readExpenses(p *puzzle) ([]int64, int64, error) {
	target, err := p.intOpt("target", 2020)
	if err != nil {
		return nil, 0, err
	}
	nums, err := readInts(p.in)
	if err != nil {
		return nil, 0, err
	}
	slices.Sort(nums)
	vlogf("read %d entries; target %d", len(nums), target)
	return nums, target, nil
}

func reportProduct(p *puzzle, summands ...int64) {
	product := sumfind.Product(summands...)
	if verbose {
		parts := make([]string, len(summands))
		for i, n := range summands {
			parts[i] = humanize.Comma(n)
		}
		vlogf("%s = %s", strings.Join(parts, " * "), humanize.Comma(product))
	}
	p.answer(product)
}
