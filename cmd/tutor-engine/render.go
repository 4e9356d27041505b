// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/tutor-engine/internal/lesson"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// cell truncates s to width display columns and pads it to exactly width.
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}

// wrap breaks s into lines of at most width display columns, splitting
// on spaces. A single word wider than width gets a line of its own.
func wrap(s string, width int) []string {
	var (
		lines []string
		line  strings.Builder
		used  int
	)
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if used > 0 && used+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			used = 0
		}
		if used > 0 {
			line.WriteByte(' ')
			used++
		}
		line.WriteString(word)
		used += ww
	}
	if used > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func renderSummaries(w io.Writer, rows []lesson.Summary) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No lessons found.")
		return
	}

	fmt.Fprintf(w, "%s  %s  %s\n", cell("Topic", 24), cell("Title", 40), "Generated")
	fmt.Fprintln(w, strings.Repeat("-", 86))
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s  %s\n",
			cell(r.TopicID, 24), cell(r.Title, 40), r.GeneratedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "\n%d lessons\n", len(rows))
}

// renderLesson prints a text summary of l wrapped to width columns.
func renderLesson(w io.Writer, l *types.Lesson, width int) {
	fmt.Fprintln(w, l.Title)
	fmt.Fprintln(w, strings.Repeat("=", min(runewidth.StringWidth(l.Title), width)))
	fmt.Fprintf(w, "topic %s, built %s\n", l.TopicID, l.GeneratedAt.Format("2006-01-02 15:04"))

	heading := func(name string, n int) {
		fmt.Fprintf(w, "\n%s (%d)\n", name, n)
	}
	bullet := func(s string) {
		for i, line := range wrap(s, width-2) {
			if i == 0 {
				fmt.Fprintf(w, "- %s\n", line)
			} else {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}

	heading("Sections", len(l.Sections))
	for _, s := range l.Sections {
		bullet(fmt.Sprintf("%s (%d paragraphs)", s.Title, len(s.Content)))
	}

	if len(l.QuickFacts) > 0 {
		heading("Quick facts", len(l.QuickFacts))
		labelWidth := 0
		for _, f := range l.QuickFacts {
			labelWidth = max(labelWidth, runewidth.StringWidth(string(f.Label)))
		}
		for _, f := range l.QuickFacts {
			fmt.Fprintf(w, "%s  %s\n", cell(string(f.Label), labelWidth), runewidth.Truncate(f.Value, width-labelWidth-2, "..."))
		}
	}

	if len(l.Timeline) > 0 {
		heading("Timeline", len(l.Timeline))
		for _, e := range l.Timeline {
			bullet(e.Year + ": " + e.Description)
		}
	}

	if len(l.KeyFigures) > 0 {
		heading("Key figures", len(l.KeyFigures))
		for _, f := range l.KeyFigures {
			bullet(f.Name)
		}
	}

	if len(l.Locations) > 0 {
		heading("Locations", len(l.Locations))
		for _, loc := range l.Locations {
			coords := fmt.Sprintf("%.2f, %.2f", loc.Lat, loc.Lng)
			if loc.Synthetic {
				coords += " (placeholder)"
			}
			bullet(loc.Name + " " + coords)
		}
	}

	if len(l.KeyTerms) > 0 {
		heading("Key terms", len(l.KeyTerms))
		for _, t := range l.KeyTerms {
			bullet(t.Term + ": " + t.Definition)
		}
	}

	if len(l.Takeaways) > 0 {
		heading("Takeaways", len(l.Takeaways))
		for _, t := range l.Takeaways {
			bullet(t)
		}
	}

	if len(l.RelatedTopics) > 0 {
		heading("Related topics", len(l.RelatedTopics))
		for _, r := range l.RelatedTopics {
			bullet(r.Title)
		}
	}

	fmt.Fprintf(w, "\nQuiz: %d questions\n", len(l.Quiz))
}
