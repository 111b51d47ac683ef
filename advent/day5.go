package main

import (
	"fmt"
	"slices"
)

func init() {
	register("5a", day5a)
	register("5b", day5b)
}

func day5a(p *puzzle) error {
	ids, err := readSeatIDs(p)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return errNoAnswer
	}
	id := slices.Max(ids)
	vlogf("highest seat is row %d, column %d", seatRow(id), seatColumn(id))
	p.answer(id)
	return nil
}

func day5b(p *puzzle) error {
	ids, err := readSeatIDs(p)
	if err != nil {
		return err
	}
	slices.Sort(ids)
	id, ok := missingSeat(ids)
	if !ok {
		return errNoAnswer
	}
	p.answer(id)
	return nil
}

func readSeatIDs(p *puzzle) ([]int, error) {
	lines, err := readLines(p.in)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(lines))
	for i, line := range lines {
		id, err := seatID(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", i+1, err)
		}
		ids[i] = id
	}
	return ids, nil
}

// seatID decodes a boarding pass such as "FBFBBFFRLR": 7 row bits (F=0,
// B=1) followed by 3 column bits (L=0, R=1). The ID is row*8 + column,
// which is just the 10-bit number.
func seatID(pass string) (int, error) {
	if len(pass) != 10 {
		return 0, fmt.Errorf("boarding pass %q is not 10 characters", pass)
	}
	var id int
	for i := 0; i < len(pass); i++ {
		zero, one := byte('F'), byte('B')
		if i >= 7 {
			zero, one = 'L', 'R'
		}
		id <<= 1
		switch pass[i] {
		case zero:
		case one:
			id |= 1
		default:
			return 0, fmt.Errorf("bad character %q in boarding pass %q", pass[i], pass)
		}
	}
	return id, nil
}

func seatRow(id int) int    { return id / 8 }
func seatColumn(id int) int { return id % 8 }

// missingSeat finds the first gap in the sorted IDs.
func missingSeat(ids []int) (int, bool) {
	for i := 1; i < len(ids); i++ {
		if ids[i]-ids[i-1] > 1 {
			return ids[i-1] + 1, true
		}
	}
	return 0, false
}
