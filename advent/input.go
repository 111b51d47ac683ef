package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// readInts reads one integer per line. Lines that don't parse as integers
// are skipped. The numbers are returned in input order.
func readInts(r io.Reader) ([]int64, error) {
	scanner := bufio.NewScanner(r)
	var nums []int64
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			vlogf("skipping line %d: %q is not an integer", lineNum, line)
			continue
		}
		nums = append(nums, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nums, nil
}

// readLines reads the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// readGroups reads groups of lines separated by one or more blank lines.
func readGroups(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	var groups [][]string
	var group []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			if group != nil {
				groups = append(groups, group)
				group = nil
			}
			continue
		}
		group = append(group, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if group != nil {
		groups = append(groups, group)
	}
	return groups, nil
}
