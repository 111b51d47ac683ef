package main

func init() {
	register("6a", day6a)
	register("6b", day6b)
}

func day6a(p *puzzle) error {
	return sumGroupCounts(p, anyoneAnswered)
}

func day6b(p *puzzle) error {
	return sumGroupCounts(p, everyoneAnswered)
}

func sumGroupCounts(p *puzzle, count func([]string) int) error {
	groups, err := readGroups(p.in)
	if err != nil {
		return err
	}
	var sum int
	for _, group := range groups {
		sum += count(group)
	}
	p.answer(sum)
	return nil
}

type questionSet map[rune]struct{}

func answerSet(answers string) questionSet {
	s := make(questionSet)
	for _, q := range answers {
		s[q] = struct{}{}
	}
	return s
}

// anyoneAnswered counts the questions answered by anyone in the group
// (the size of the union of their answers).
func anyoneAnswered(group []string) int {
	union := make(questionSet)
	for _, answers := range group {
		for q := range answerSet(answers) {
			union[q] = struct{}{}
		}
	}
	return len(union)
}

// everyoneAnswered counts the questions answered by everyone in the group
// (the size of the intersection of their answers).
func everyoneAnswered(group []string) int {
	if len(group) == 0 {
		return 0
	}
	common := answerSet(group[0])
	for _, answers := range group[1:] {
		s := answerSet(answers)
		for q := range common {
			if _, ok := s[q]; !ok {
				delete(common, q)
			}
		}
	}
	return len(common)
}
