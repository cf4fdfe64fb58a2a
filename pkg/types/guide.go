// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Section is one pattern section extracted from the study guide: the raw
// markdown header line paired with the body text that follows it, up to the
// next pattern header. Headers are unique within a single parse.
type Section struct {
	// Header is the full header line, e.g. "#### **Two Pointers** Pattern".
	Header string `json:"header" yaml:"header"`

	// Body is the raw markdown between this header and the next one.
	Body string `json:"body" yaml:"body"`
}

// Flashcard is a single front/back study card. Cards carry no identity
// beyond their position in the deck; the deck is regenerated on every run.
type Flashcard struct {
	// Front is the prompt shown to the student.
	Front string `json:"front" yaml:"front"`

	// Back is the answer.
	Back string `json:"back" yaml:"back"`
}

// PatternCards groups the flashcards synthesized for one algorithm pattern.
type PatternCards struct {
	// Pattern is the clean pattern name, e.g. "Two Pointers".
	Pattern string `json:"pattern" yaml:"pattern"`

	// Cards lists the cards for this pattern in synthesis order.
	Cards []Flashcard `json:"cards" yaml:"cards"`
}

// DocEntry is one source file in the combined study guide, paired with the
// display title used for its generated section heading.
type DocEntry struct {
	// File is the markdown file name under the docs directory.
	File string `json:"file" yaml:"file"`

	// Title is the display title for the section.
	Title string `json:"title" yaml:"title"`
}

// DocGroup is an ordered group of source files under one top-level heading.
type DocGroup struct {
	// Title is the group heading, e.g. "Core Fundamentals".
	Title string `json:"title" yaml:"title"`

	// Sections lists the source files in traversal order.
	Sections []DocEntry `json:"sections" yaml:"sections"`
}
