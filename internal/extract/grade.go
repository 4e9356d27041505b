// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "github.com/pdiddy/tutor-engine/pkg/types"

// Verdict summarizes a graded quiz.
type Verdict string

const (
	// VerdictPerfect means every question was answered correctly.
	VerdictPerfect Verdict = "perfect"
	// VerdictPassing means at least half were answered correctly.
	VerdictPassing Verdict = "passing"
	// VerdictReview means fewer than half were correct, or the quiz was empty.
	VerdictReview Verdict = "review"
)

// Score is the outcome of grading a quiz.
type Score struct {
	Correct int     `json:"correct" yaml:"correct"`
	Total   int     `json:"total" yaml:"total"`
	Verdict Verdict `json:"verdict" yaml:"verdict"`

	// Missed holds the indexes of questions answered wrongly or not at all.
	Missed []int `json:"missed,omitempty" yaml:"missed,omitempty"`
}

// Grade scores answers against questions. answers[i] is the chosen
// option index for questions[i]; missing or out-of-range answers count
// as wrong. All correct is perfect, at least half is passing, anything
// less is review. An empty quiz grades as review.
func Grade(questions []types.QuizQuestion, answers []int) Score {
	s := Score{Total: len(questions)}
	for i, q := range questions {
		if i < len(answers) && answers[i] >= 0 && answers[i] < len(q.Options) && answers[i] == q.CorrectAnswer {
			s.Correct++
			continue
		}
		s.Missed = append(s.Missed, i)
	}

	switch {
	case s.Total > 0 && s.Correct == s.Total:
		s.Verdict = VerdictPerfect
	case s.Total > 0 && s.Correct*2 >= s.Total:
		s.Verdict = VerdictPassing
	default:
		s.Verdict = VerdictReview
	}
	return s
}
