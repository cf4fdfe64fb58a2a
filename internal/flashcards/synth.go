// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flashcards synthesizes study cards from pattern sections and
// renders them into the generated flashcard formats.
package flashcards

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/guidegen/pkg/types"
)

// maxCodeCards caps the number of implement cards per pattern.
const maxCodeCards = 2

var (
	// patternNamePattern captures the bold pattern name inside a header.
	patternNamePattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

	// indicatorsPattern captures the "Key indicators" block, terminated by
	// the "Examples" marker or end of section. RE2 has no lookahead, so the
	// terminator is a consumed alternation; only group 1 is used.
	indicatorsPattern = regexp.MustCompile(`(?s)\*\*Key indicators\*\*:(.*?)(?:\*\*Examples\*\*:|$)`)

	// examplesPattern captures the "Examples" block, terminated by the first
	// code fence or end of section.
	examplesPattern = regexp.MustCompile("(?s)\\*\\*Examples\\*\\*:(.*?)(?:```|$)")

	// declPattern matches a function declaration at the start of a line.
	declPattern = regexp.MustCompile(`(?m)^\s*(?:def|func)\s+(\w+)`)
)

// complexityTable maps pattern names to their canonical time/space answer.
var complexityTable = map[string]string{
	"Two Pointers":        "O(n) time, O(1) space",
	"Sliding Window":      "O(n) time, O(k) space",
	"Binary Search":       "O(log n) time, O(1) space",
	"Tree Traversal":      "O(n) time, O(h) space",
	"Graph Traversal":     "O(V + E) time, O(V) space",
	"Dynamic Programming": "Varies by problem",
	"Heap":                "O(n log k) time, O(k) space",
	"Backtracking":        "O(n!) time, O(n) space",
}

// complexityFallback is the answer for patterns missing from the table.
const complexityFallback = "Varies by implementation"

// markdown is the shared goldmark instance used to locate fenced code blocks.
var markdown = goldmark.New()

// PatternName extracts the clean pattern name from a section header: the
// text inside the first bold-emphasis marker. ok is false when the header
// carries no bold span.
func PatternName(header string) (name string, ok bool) {
	m := patternNamePattern.FindStringSubmatch(header)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// BuildDeck synthesizes cards for every section whose header carries a
// pattern name. Sections without one are skipped. Deck order follows
// section order.
func BuildDeck(sections []types.Section) []types.PatternCards {
	var deck []types.PatternCards
	for _, sec := range sections {
		name, ok := PatternName(sec.Header)
		if !ok {
			continue
		}
		deck = append(deck, types.PatternCards{
			Pattern: name,
			Cards:   Synthesize(name, sec.Body),
		})
	}
	return deck
}

// Synthesize produces the cards for one pattern section: an indicators card,
// an examples card, up to two implement cards, and a complexity card. A
// sub-block that does not match its shape is omitted without error, so a
// sparse section yields fewer cards.
func Synthesize(pattern, body string) []types.Flashcard {
	var cards []types.Flashcard

	if m := indicatorsPattern.FindStringSubmatch(body); m != nil {
		if items := bulletItems(m[1]); len(items) > 0 {
			cards = append(cards, types.Flashcard{
				Front: fmt.Sprintf("Identify the algorithm pattern for: %s", pattern),
				Back:  "Key indicators:\n" + bulletList(items),
			})
		}
	}

	if m := examplesPattern.FindStringSubmatch(body); m != nil {
		if items := bulletItems(m[1]); len(items) > 0 {
			cards = append(cards, types.Flashcard{
				Front: fmt.Sprintf("Give examples of %s problems", pattern),
				Back:  "Common examples:\n" + bulletList(items),
			})
		}
	}

	// Only the first two code blocks are considered; later ones tend to be
	// variations of the same idea.
	blocks := fencedBlocks(body)
	if len(blocks) > maxCodeCards {
		blocks = blocks[:maxCodeCards]
	}
	for _, block := range blocks {
		m := declPattern.FindStringSubmatch(block.code)
		if m == nil {
			continue
		}
		cards = append(cards, types.Flashcard{
			Front: fmt.Sprintf("Implement %s using %s", m[1], pattern),
			Back:  fence(block),
		})
	}

	answer, ok := complexityTable[pattern]
	if !ok {
		answer = complexityFallback
	}
	cards = append(cards, types.Flashcard{
		Front: fmt.Sprintf("What is the time/space complexity of %s?", pattern),
		Back:  answer,
	})

	return cards
}

// bulletItems splits a captured sub-block into its list items.
func bulletItems(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, "-") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// bulletList renders items as a bullet-per-line answer body.
func bulletList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(item)
	}
	return b.String()
}

// codeBlock is one fenced code block found in a section body.
type codeBlock struct {
	lang string
	code string
}

// fencedBlocks walks the markdown AST of body and collects every fenced
// code block in document order.
func fencedBlocks(body string) []codeBlock {
	src := []byte(body)
	doc := markdown.Parser().Parse(text.NewReader(src))

	var blocks []codeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}

		blocks = append(blocks, codeBlock{
			lang: string(fenced.Language(src)),
			code: strings.TrimRight(buf.String(), "\n"),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// fence renders a code block back into a fenced markdown answer.
func fence(b codeBlock) string {
	return fmt.Sprintf("```%s\n%s\n```", b.lang, b.code)
}
