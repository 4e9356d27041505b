// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

var fourDigitYear = regexp.MustCompile(`\b(\d{4})\b`)

const (
	minQuizParagraphLen = 100
	minQuizSentenceLen  = 20
	yearBlank           = "______"
)

// Quiz builds up to five multiple-choice questions.
//
// For every paragraph of at least 100 characters it asks for the first
// four-digit year of the paragraph (options shuffled, CorrectAnswer
// tracks the true year) and "Who was X?" for the paragraph's first key
// figure. One question asking what title is always follows. Figure and
// definition questions keep the correct option first and are not
// shuffled. The question list itself is shuffled before truncation.
func (e *Extractor) Quiz(content, title string) []types.QuizQuestion {
	if blank(content) || blank(title) {
		return nil
	}
	out, _ := memo(e, opQuiz, cache.Key(opQuiz, content, title), cloneQuestions, func() []types.QuizQuestion {
		return e.quiz(content, title)
	})
	return out
}

func (e *Extractor) quiz(content, title string) []types.QuizQuestion {
	var questions []types.QuizQuestion

	for _, p := range paragraphs(content) {
		if runeLen(p) < minQuizParagraphLen {
			continue
		}
		if q, ok := e.yearQuestion(p); ok {
			questions = append(questions, q)
		}
		if figures := keyFigures([]string{p}); len(figures) > 0 {
			questions = append(questions, figureQuestion(figures[0], title))
		}
	}
	questions = append(questions, definitionQuestion(content, title))

	e.shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return capped(questions, maxQuizQuestions)
}

// yearQuestion blanks the first four-digit year of p out of its
// enclosing sentence.
func (e *Extractor) yearQuestion(p string) (types.QuizQuestion, bool) {
	m := fourDigitYear.FindStringSubmatchIndex(p)
	if m == nil {
		return types.QuizQuestion{}, false
	}
	year := p[m[2]:m[3]]
	sentence, ok := enclosingSentence(p, m[0], m[1])
	if !ok || runeLen(sentence) <= minQuizSentenceLen || !strings.Contains(sentence, year) {
		return types.QuizQuestion{}, false
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return types.QuizQuestion{}, false
	}

	options := e.yearOptions(year, n)
	e.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return types.QuizQuestion{
		Question:      "In what year did the following event occur: " + strings.Replace(sentence, year, yearBlank, 1),
		Options:       options,
		CorrectAnswer: slices.Index(options, year),
		Explanation:   sentence,
		Kind:          types.QuestionYear,
	}, true
}

// yearOptions returns the true year followed by three distinct
// distractors offset by +1..10, -1..-10 and +10..30. A distractor that
// repeats an earlier option is drawn again.
func (e *Extractor) yearOptions(year string, n int) []string {
	options := []string{year}
	draws := []func() int{
		func() int { return n + e.intN(10) + 1 },
		func() int { return n - e.intN(10) - 1 },
		func() int { return n + e.intN(21) + 10 },
	}
	for _, draw := range draws {
		for {
			d := strconv.Itoa(draw())
			if !slices.Contains(options, d) {
				options = append(options, d)
				break
			}
		}
	}
	return options
}

func figureQuestion(f types.KeyFigure, title string) types.QuizQuestion {
	return types.QuizQuestion{
		Question: "Who was " + f.Name + "?",
		Options: []string{
			f.Description,
			"A fictional character in " + title + " literature",
			"An opponent of the main historical figures in " + title,
			"A modern historian who studied " + title,
		},
		CorrectAnswer: 0,
		Explanation:   f.Description,
		Kind:          types.QuestionFigure,
	}
}

func definitionQuestion(content, title string) types.QuizQuestion {
	first, _, _ := strings.Cut(content, ".")
	first = strings.TrimSpace(first)
	return types.QuizQuestion{
		Question: "Which of the following best describes " + title + "?",
		Options: []string{
			first,
			"A modern political movement based on historical events",
			"A fictional story created for entertainment purposes",
			"A scientific theory proposed in the 21st century",
		},
		CorrectAnswer: 0,
		Explanation:   first,
		Kind:          types.QuestionDefinition,
	}
}

func cloneQuestions(in []types.QuizQuestion) []types.QuizQuestion {
	if in == nil {
		return nil
	}
	out := make([]types.QuizQuestion, len(in))
	for i, q := range in {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}
