// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/guidegen/pkg/types"
)

const docWithFrontMatter = `---
title: Algorithms
layout: default
---

# Algorithms & Data Structures

First body line.
Second body line.

## Subsection

Third body line.
`

const plainDoc = `# Searching

Search body line.
`

// setupDocs writes the test sources and returns an Assembler over them with
// a two-entry structure.
func setupDocs(t *testing.T) *Assembler {
	t.Helper()
	docsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "algo.md"), []byte(docWithFrontMatter), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "search.md"), []byte(plainDoc), 0o644))

	a := New(docsDir)
	a.Structure = []types.DocGroup{
		{
			Title: "Core Fundamentals",
			Sections: []types.DocEntry{
				{File: "algo.md", Title: "Algorithms & Data Structures"},
				{File: "search.md", Title: "Searching & Sorting"},
			},
		},
	}
	return a
}

func TestPrintable_RoundTrip(t *testing.T) {
	a := setupDocs(t)
	outPath := filepath.Join(t.TempDir(), "printable.md")
	var log bytes.Buffer

	require.NoError(t, a.Printable(outPath, &log))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	content := string(data)

	// Every non-front-matter, non-title body line appears exactly once,
	// in source order.
	bodyLines := []string{
		"First body line.",
		"Second body line.",
		"## Subsection",
		"Third body line.",
		"Search body line.",
	}
	pos := 0
	for _, line := range bodyLines {
		idx := strings.Index(content[pos:], line)
		require.GreaterOrEqual(t, idx, 0, "missing line %q", line)
		pos += idx + len(line)
		assert.NotContains(t, content[pos:], line, "line %q duplicated", line)
	}

	assert.NotContains(t, content, "layout: default", "front matter must be stripped")
	assert.Contains(t, content, "## Table of Contents")
	assert.Contains(t, content, "# Core Fundamentals")
	assert.Contains(t, content, "## Algorithms & Data Structures")
	assert.NotContains(t, content, "# Searching\n", "source titles must be replaced by structure titles")
}

func TestPrintable_MissingFileSkipped(t *testing.T) {
	a := setupDocs(t)
	a.Structure[0].Sections = append(a.Structure[0].Sections,
		types.DocEntry{File: "missing.md", Title: "Missing Section"})

	outPath := filepath.Join(t.TempDir(), "printable.md")
	var log bytes.Buffer
	require.NoError(t, a.Printable(outPath, &log))

	assert.Contains(t, log.String(), "missing.md not found")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	// The missing section still shows in the TOC but produces no body heading.
	assert.NotContains(t, string(data), "## Missing Section")
}

func TestWeb(t *testing.T) {
	a := setupDocs(t)
	outPath := filepath.Join(t.TempDir(), "web.md")
	var log bytes.Buffer

	require.NoError(t, a.Web(outPath, &log))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "---\n"), "web version must start with a metadata block")
	assert.Contains(t, content, "title: Complete Study Guide")
	assert.Contains(t, content, "layout: default")
	assert.Contains(t, content, "## Quick Navigation")
	assert.Contains(t, content, "[Algorithms & Data Structures](#algorithms--data-structures)")
	assert.Contains(t, content, "<a name='algorithms--data-structures'></a>")
	// The back-to-top anchor keeps the title's hyphen, unlike section slugs.
	assert.Contains(t, content, "[↑ Back to Top](#devops--backend-study-guide---complete-edition)")
}

func TestGenerate(t *testing.T) {
	docsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "custom.md"), []byte(plainDoc), 0o644))

	structPath := filepath.Join(t.TempDir(), "structure.yaml")
	structure := `
- title: Custom Group
  sections:
    - file: custom.md
      title: Custom Section
`
	require.NoError(t, os.WriteFile(structPath, []byte(structure), 0o644))

	outDir := filepath.Join(t.TempDir(), "generated")
	var log bytes.Buffer
	cfg := types.AssembleConfig{
		DocsDir:       docsDir,
		OutputDir:     outDir,
		StructureFile: structPath,
	}
	require.NoError(t, Generate(cfg, &log))

	data, err := os.ReadFile(filepath.Join(outDir, PrintableFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Custom Section")

	data, err = os.ReadFile(filepath.Join(outDir, WebFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Custom Section](#custom-section)")
}

func TestGenerate_MissingDocsDir(t *testing.T) {
	var log bytes.Buffer
	cfg := types.AssembleConfig{
		DocsDir:   filepath.Join(t.TempDir(), "absent"),
		OutputDir: t.TempDir(),
	}
	assert.Error(t, Generate(cfg, &log))
}

func TestCleanContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "front matter and title stripped",
			in:   "---\ntitle: X\n---\n\n# Title\n\nBody.",
			want: "Body.",
		},
		{
			name: "no front matter",
			in:   "# Title\n\nBody.",
			want: "Body.",
		},
		{
			name: "no title",
			in:   "Body only.",
			want: "Body only.",
		},
		{
			name: "second-level heading kept",
			in:   "## Kept\n\nBody.",
			want: "## Kept\n\nBody.",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanContent(tt.in))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Searching & Sorting", "searching--sorting"},
		{"CI/CD & Infrastructure", "cicd--infrastructure"},
		{"Design Patterns", "design-patterns"},
		{"Cheat Sheet", "cheat-sheet"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestLoadStructure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structure.yaml")
	content := `
- title: Custom Group
  sections:
    - file: custom.md
      title: Custom Section
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	groups, err := LoadStructure(path)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Custom Group", groups[0].Title)
	require.Len(t, groups[0].Sections, 1)
	assert.Equal(t, "custom.md", groups[0].Sections[0].File)

	_, err = LoadStructure(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefaultStructure(t *testing.T) {
	groups := DefaultStructure()
	require.Len(t, groups, 4)

	total := 0
	for _, g := range groups {
		total += len(g.Sections)
	}
	assert.Equal(t, 15, total)
	assert.Equal(t, "Core Fundamentals", groups[0].Title)
	assert.Equal(t, "algo.md", groups[0].Sections[0].File)
}
