// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"bytes"
	"strings"
	"testing"
)

const sampleGuide = `# Study Guide

Some intro text that precedes the guide.

## Algorithm Problem Identification Guide

Preamble under the anchor.

#### **Two Pointers** Pattern

**Key indicators**:
- Sorted array input
- Pair sums to target

**Examples**:
- Two Sum in sorted array

#### **Sliding Window** Pattern

**Key indicators**:
- Longest substring
`

func TestExtractSections(t *testing.T) {
	var log bytes.Buffer
	sections := ExtractSections(sampleGuide, &log)

	if len(sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sections))
	}
	if sections[0].Header != "#### **Two Pointers** Pattern" {
		t.Errorf("first header = %q", sections[0].Header)
	}
	if !strings.Contains(sections[0].Body, "Sorted array input") {
		t.Errorf("first body missing indicator: %q", sections[0].Body)
	}
	if strings.Contains(sections[0].Body, "Sliding Window") {
		t.Error("first body should stop at the next pattern header")
	}
	if sections[1].Header != "#### **Sliding Window** Pattern" {
		t.Errorf("second header = %q", sections[1].Header)
	}
	if !strings.Contains(sections[1].Body, "Longest substring") {
		t.Errorf("last section body not captured: %q", sections[1].Body)
	}
	if log.Len() != 0 {
		t.Errorf("unexpected warnings: %q", log.String())
	}
}

func TestExtractSections_MissingAnchor(t *testing.T) {
	var log bytes.Buffer
	sections := ExtractSections("# Study Guide\n\nNo guide section here.\n", &log)

	if len(sections) != 0 {
		t.Fatalf("sections = %d, want 0", len(sections))
	}
	if !strings.Contains(log.String(), "not found") {
		t.Errorf("expected warning, got %q", log.String())
	}
}

func TestExtractSections_IgnoresNonPatternHeaders(t *testing.T) {
	content := AnchorHeading + `

#### **Two Pointers** Pattern

Body line.

#### **Aside**

This header lacks the Pattern marker and belongs to the section above.
`
	var log bytes.Buffer
	sections := ExtractSections(content, &log)

	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	if !strings.Contains(sections[0].Body, "lacks the Pattern marker") {
		t.Errorf("non-pattern header should stay in the body: %q", sections[0].Body)
	}
}

func TestExtractFile_Missing(t *testing.T) {
	var log bytes.Buffer
	if _, err := ExtractFile("does-not-exist.md", &log); err == nil {
		t.Fatal("expected error for missing file")
	}
}
