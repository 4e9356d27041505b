// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tutor-engine/internal/extract"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [topic-id]",
	Short: "Take the quiz for a stored lesson",
	Long: `Quiz asks each question of a stored lesson's quiz on the terminal and
grades the answers. Answer with the option number (1-4); an empty line
skips the question.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		l, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(l.Quiz) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No quiz questions for %s.\n", l.Title)
			return nil
		}

		score := runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), l.Quiz)
		fmt.Fprintf(cmd.OutOrStdout(), "\nScore: %d/%d (%s)\n", score.Correct, score.Total, score.Verdict)
		return nil
	},
}

// runQuiz asks every question on w, reads one answer line per question
// from r, explains each result, and returns the graded score. Running out
// of input leaves the remaining questions unanswered. Questions whose
// answer index does not point into their options are skipped and left
// out of the score.
func runQuiz(r io.Reader, w io.Writer, all []types.QuizQuestion) extract.Score {
	var qs []types.QuizQuestion
	for _, q := range all {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			fmt.Fprintf(w, "skipping malformed question: %s\n", q.Question)
			continue
		}
		qs = append(qs, q)
	}

	sc := bufio.NewScanner(r)
	answers := make([]int, len(qs))

	for i, q := range qs {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(w, "   %d) %s\n", j+1, opt)
		}
		fmt.Fprint(w, "> ")

		answers[i] = -1
		if sc.Scan() {
			if n, err := strconv.Atoi(strings.TrimSpace(sc.Text())); err == nil {
				answers[i] = n - 1
			}
		}

		if answers[i] == q.CorrectAnswer {
			fmt.Fprintln(w, "Correct.")
		} else {
			fmt.Fprintf(w, "Incorrect. The answer is %s.\n", q.Options[q.CorrectAnswer])
		}
		if q.Explanation != "" {
			fmt.Fprintln(w, q.Explanation)
		}
	}
	return extract.Grade(qs, answers)
}

func init() {
	rootCmd.AddCommand(quizCmd)
}
