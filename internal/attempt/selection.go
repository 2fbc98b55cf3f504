// Package attempt holds the in-memory state of live quiz attempts: the
// per-question selection map, the attempt session it belongs to, and the
// registry that scopes each session to exactly one attempt view.
package attempt

// Selection tracks the option picks of one quiz attempt, keyed by the
// question's dataset-wide index. Untouched questions have no entry and are
// treated as an empty selection. The per-question slice is semantically a
// set; duplicates are impossible by construction.
type Selection map[int][]int

// Toggle flips optionIndex for the question at questionIndex.
//
// Multi-select questions accumulate: the option is inserted if absent and
// removed if present. Single-select questions hold at most one option:
// re-clicking the sole selected option clears the selection, any other
// option replaces it. Indices are a caller contract — they must be valid
// for the question's option list.
func (s Selection) Toggle(questionIndex, optionIndex int, multi bool) {
	current := s[questionIndex]

	if multi {
		for i, opt := range current {
			if opt == optionIndex {
				s[questionIndex] = append(current[:i:i], current[i+1:]...)
				return
			}
		}
		s[questionIndex] = append(current, optionIndex)
		return
	}

	if len(current) == 1 && current[0] == optionIndex {
		s[questionIndex] = []int{}
		return
	}
	s[questionIndex] = []int{optionIndex}
}

// Picked returns a copy of the current selection for one question.
func (s Selection) Picked(questionIndex int) []int {
	return append([]int{}, s[questionIndex]...)
}

// AnswerSequence flattens the selection into the position-aligned payload
// the grading backend expects: exactly questionCount entries, one per
// question, with an empty (never nil) entry for untouched questions so the
// JSON encoding stays [] rather than null.
func (s Selection) AnswerSequence(questionCount int) [][]int {
	answers := make([][]int, questionCount)
	for i := range answers {
		answers[i] = append([]int{}, s[i]...)
	}
	return answers
}
