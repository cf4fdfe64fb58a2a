// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package guide parses the study guide markdown into pattern sections.
package guide

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/guidegen/pkg/types"
)

// AnchorHeading marks the start of the extractable part of the guide.
// Everything before it is ignored.
const AnchorHeading = "## Algorithm Problem Identification Guide"

// patternHeaderPrefix is the shape of a pattern section header. A header
// line must also contain the literal word "Pattern" to count.
const patternHeaderPrefix = "#### **"

// ExtractFile reads the guide at path and returns its pattern sections.
func ExtractFile(path string, w io.Writer) ([]types.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading guide %s: %w", path, err)
	}
	return ExtractSections(string(data), w), nil
}

// ExtractSections locates the anchor heading in content and splits the text
// after it into sections on pattern header lines. Each section pairs the
// header line with the body up to the next header. If the anchor heading is
// absent a warning is written to w and the result is empty.
func ExtractSections(content string, w io.Writer) []types.Section {
	start := strings.Index(content, AnchorHeading)
	if start == -1 {
		fmt.Fprintf(w, "warning: %q section not found\n", strings.TrimLeft(AnchorHeading, "# "))
		return nil
	}

	var sections []types.Section
	currentHeader := ""
	var bodyLines []string

	flush := func() {
		if currentHeader != "" {
			sections = append(sections, types.Section{
				Header: currentHeader,
				Body:   strings.TrimSpace(strings.Join(bodyLines, "\n")),
			})
		}
		bodyLines = nil
	}

	for _, line := range strings.Split(content[start:], "\n") {
		if isPatternHeader(line) {
			flush()
			currentHeader = strings.TrimSpace(line)
			continue
		}
		if currentHeader != "" {
			bodyLines = append(bodyLines, line)
		}
	}

	flush()
	return sections
}

// isPatternHeader reports whether the line opens a pattern section.
func isPatternHeader(line string) bool {
	return strings.HasPrefix(line, patternHeaderPrefix) && strings.Contains(line, "Pattern")
}
