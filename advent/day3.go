package main

import (
	"errors"
	"fmt"
	"strings"
)

func init() {
	register("3a", day3a)
	register("3b", day3b)
}

func day3a(p *puzzle) error {
	right, err := p.intOpt("right", 3)
	if err != nil {
		return err
	}
	down, err := p.intOpt("down", 1)
	if err != nil {
		return err
	}
	if right < 0 || down < 1 {
		return fmt.Errorf("bad slope (%d, %d)", right, down)
	}
	m, err := readTreeMap(p)
	if err != nil {
		return err
	}
	p.answer(m.countTrees(vec2{int(right), int(down)}))
	return nil
}

var allSlopes = []vec2{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

func day3b(p *puzzle) error {
	m, err := readTreeMap(p)
	if err != nil {
		return err
	}
	product := 1
	for _, slope := range allSlopes {
		n := m.countTrees(slope)
		vlogf("slope (%d, %d): %d trees", slope.x, slope.y, n)
		product *= n
	}
	p.answer(product)
	return nil
}

// A treeMap is a grid of open squares and trees
// which repeats infinitely to the right.
type treeMap struct {
	rows  [][]bool // true for a tree
	width int
}

func readTreeMap(p *puzzle) (*treeMap, error) {
	lines, err := readLines(p.in)
	if err != nil {
		return nil, err
	}
	return parseTreeMap(lines)
}

func parseTreeMap(lines []string) (*treeMap, error) {
	if len(lines) == 0 {
		return nil, errors.New("empty map")
	}
	m := &treeMap{width: len(lines[0])}
	for i, line := range lines {
		if len(line) != m.width {
			return nil, fmt.Errorf("line %d: width %d differs from first line (%d)", i+1, len(line), m.width)
		}
		if j := strings.IndexFunc(line, func(r rune) bool { return r != '.' && r != '#' }); j >= 0 {
			return nil, fmt.Errorf("line %d: bad map square %q", i+1, line[j])
		}
		row := make([]bool, len(line))
		for j := range line {
			row[j] = line[j] == '#'
		}
		m.rows = append(m.rows, row)
	}
	return m, nil
}

func (m *treeMap) tree(x, y int) bool {
	return m.rows[y][x%m.width]
}

// countTrees counts the trees hit going from the top-left
// corner to the bottom of the map in steps of slope.
func (m *treeMap) countTrees(slope vec2) int {
	var n int
	var pos vec2
	for pos.y < len(m.rows) {
		if m.tree(pos.x, pos.y) {
			n++
		}
		pos = pos.add(slope)
	}
	return n
}

type vec2 struct {
	x, y int
}

func (v vec2) add(v1 vec2) vec2 {
	return vec2{v.x + v1.x, v.y + v1.y}
}
