// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types for the tutor-engine
// pipeline. Every record is derived from article text and is never
// mutated after it is produced; recomputation replaces it wholesale.
package types

import "time"

// Article is the raw input to the pipeline: one encyclopedia article body
// and the topic it describes.
type Article struct {
	// ID is the topic identifier used by the lesson store.
	ID string `json:"id" yaml:"id"`

	// Title is the topic title (e.g. "Roman Empire").
	Title string `json:"title" yaml:"title"`

	// Content is the plain-text article body. Paragraphs are separated by
	// line breaks.
	Content string `json:"content" yaml:"content"`
}

// Section is one titled block of the article outline.
type Section struct {
	// ID is the slug of Title: lowercased, runs of non-alphanumerics
	// collapsed to a single hyphen.
	ID string `json:"id" yaml:"id"`

	Title string `json:"title" yaml:"title"`

	// Content holds the section's paragraphs in article order.
	Content []string `json:"content" yaml:"content"`
}

// TimelineEvent is a dated sentence found in the article.
type TimelineEvent struct {
	// Year is the matched year, possibly with an era suffix (BC, BCE, AD,
	// CE), or a full calendar date such as "July 20, 1969".
	Year string `json:"year" yaml:"year"`

	Title string `json:"title" yaml:"title"`

	// Description is the sentence enclosing the date.
	Description string `json:"description" yaml:"description"`
}

// KeyFigure is a person-like capitalized name with its enclosing sentence.
type KeyFigure struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Location is a gazetteer place name with its enclosing sentence.
//
// Lat and Lng are placeholders drawn at random. They carry no geodetic
// meaning and Synthetic is set on every record that holds them.
type Location struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Lat         float64 `json:"lat" yaml:"lat"`
	Lng         float64 `json:"lng" yaml:"lng"`

	// Synthetic marks coordinates that did not come from a real geocoder.
	Synthetic bool `json:"synthetic" yaml:"synthetic"`
}

// KeyTerm is a glossary entry: a capitalized phrase followed by a
// definitional verb, and the sentence that defines it.
type KeyTerm struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
}

// FactLabel names the slot a QuickFact fills.
type FactLabel string

const (
	FactTimePeriod      FactLabel = "Time Period"
	FactRegion          FactLabel = "Region"
	FactKeyFigure       FactLabel = "Key Figure"
	FactSignificantDate FactLabel = "Significant Date"
	FactDuration        FactLabel = "Duration"
	FactOutcome         FactLabel = "Outcome"
	FactCategory        FactLabel = "Category"
	FactSignificance    FactLabel = "Significance"
)

// QuickFact is a single labeled value pulled from the article.
type QuickFact struct {
	Label FactLabel `json:"label" yaml:"label"`
	Value string    `json:"value" yaml:"value"`
}

// QuestionKind identifies how a QuizQuestion was built.
type QuestionKind string

const (
	// QuestionYear is a fill-in-the-blank year question. Its options are
	// shuffled.
	QuestionYear QuestionKind = "year"

	// QuestionFigure asks "Who was X?". Its options are not shuffled and
	// the correct answer is always the first option.
	QuestionFigure QuestionKind = "figure"

	// QuestionDefinition asks what the topic is. Like QuestionFigure its
	// options keep their original order.
	QuestionDefinition QuestionKind = "definition"
)

// QuizQuestion is a four-option multiple-choice question.
// Options[CorrectAnswer] is always the string sourced from the article.
// Consumers must not reorder Options.
type QuizQuestion struct {
	Question      string       `json:"question" yaml:"question"`
	Options       []string     `json:"options" yaml:"options"`
	CorrectAnswer int          `json:"correct_answer" yaml:"correct_answer"`
	Explanation   string       `json:"explanation" yaml:"explanation"`
	Kind          QuestionKind `json:"kind" yaml:"kind"`
}

// RelatedTopic is a suggested neighbouring subject.
//
// ID is a mock identifier hashed from Title. It is not a key into any
// encyclopedia and must not be used to fetch an article.
type RelatedTopic struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Lesson is the combined pipeline output for one article. The lesson
// store keeps one Lesson per topic.
type Lesson struct {
	// TopicID is the Article ID the lesson was built from.
	TopicID string `json:"topic_id" yaml:"topic_id"`

	Title string `json:"title" yaml:"title"`

	// ContentHash is the hex SHA-256 of the article content. A stored
	// lesson is reused only while the hash matches.
	ContentHash string `json:"content_hash" yaml:"content_hash"`

	// RunID identifies the build that produced the lesson.
	RunID string `json:"run_id" yaml:"run_id"`

	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	Content       string          `json:"content" yaml:"content"`
	Sections      []Section       `json:"sections" yaml:"sections"`
	Timeline      []TimelineEvent `json:"timeline" yaml:"timeline"`
	KeyFigures    []KeyFigure     `json:"key_figures" yaml:"key_figures"`
	Locations     []Location      `json:"locations" yaml:"locations"`
	KeyTerms      []KeyTerm       `json:"key_terms" yaml:"key_terms"`
	Takeaways     []string        `json:"takeaways" yaml:"takeaways"`
	QuickFacts    []QuickFact     `json:"quick_facts" yaml:"quick_facts"`
	Quiz          []QuizQuestion  `json:"quiz" yaml:"quiz"`
	RelatedTopics []RelatedTopic  `json:"related_topics" yaml:"related_topics"`
}
