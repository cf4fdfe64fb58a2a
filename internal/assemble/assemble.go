// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble concatenates the study guide sources into combined
// documents: a printable single file and a web file with anchor navigation.
package assemble

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/guidegen/pkg/types"
)

const (
	// PrintableFileName is the combined file for printing and offline study.
	PrintableFileName = "study-guide-printable.md"
	// WebFileName is the combined file consumed by the static-site renderer.
	WebFileName = "study-guide-complete.md"
)

// guideTitle heads both combined documents.
const guideTitle = "# DevOps & Backend Study Guide - Complete Edition"

// nonSlugPattern matches the runes dropped when slugifying a title.
var nonSlugPattern = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// webMeta is the metadata block prefixed to the web rendering.
type webMeta struct {
	Title  string `yaml:"title"`
	Layout string `yaml:"layout"`
}

// Assembler builds combined documents from the docs directory according to
// a document structure.
type Assembler struct {
	DocsDir   string
	Structure []types.DocGroup
}

// New returns an Assembler over docsDir with the built-in structure.
func New(docsDir string) *Assembler {
	return &Assembler{DocsDir: docsDir, Structure: DefaultStructure()}
}

// Generate writes both combined editions for cfg. A missing docs directory
// is fatal; a structure file, when configured, replaces the built-in table.
func Generate(cfg types.AssembleConfig, w io.Writer) error {
	if _, err := os.Stat(cfg.DocsDir); err != nil {
		return fmt.Errorf("docs directory %s not found", cfg.DocsDir)
	}

	a := New(cfg.DocsDir)
	if cfg.StructureFile != "" {
		groups, err := LoadStructure(cfg.StructureFile)
		if err != nil {
			return err
		}
		a.Structure = groups
	}

	fmt.Fprintln(w, "Generating printable version...")
	if err := a.Printable(filepath.Join(cfg.OutputDir, PrintableFileName), w); err != nil {
		return err
	}

	fmt.Fprintln(w, "Generating web version...")
	return a.Web(filepath.Join(cfg.OutputDir, WebFileName), w)
}

// Printable writes the printable rendering to outPath, overwriting any
// prior content. Missing source files are warned about on w and skipped.
func (a *Assembler) Printable(outPath string, w io.Writer) error {
	var parts []string

	parts = append(parts,
		guideTitle+"\n",
		"*A comprehensive study guide covering DevOps, Chaos Engineering, and Backend Development fundamentals*\n",
		"*Generated for printing and offline study*\n",
		"---\n",
	)

	parts = append(parts, "## Table of Contents\n")
	for _, group := range a.Structure {
		parts = append(parts, fmt.Sprintf("### %s\n", group.Title))
		for _, entry := range group.Sections {
			parts = append(parts, fmt.Sprintf("- %s\n", entry.Title))
		}
		parts = append(parts, "")
	}
	parts = append(parts, "---\n")

	parts = a.appendSections(parts, w, func(entry types.DocEntry) []string {
		return []string{fmt.Sprintf("## %s\n", entry.Title)}
	})

	return writeDocument(outPath, parts, w, "printable")
}

// Web writes the web rendering to outPath: a metadata block, a quick
// navigation stanza with anchor links, anchored sections, and back-to-top
// links. Missing source files are warned about on w and skipped.
func (a *Assembler) Web(outPath string, w io.Writer) error {
	meta, err := yaml.Marshal(webMeta{Title: "Complete Study Guide", Layout: "default"})
	if err != nil {
		return fmt.Errorf("marshaling metadata block: %w", err)
	}

	var parts []string
	parts = append(parts,
		"---",
		strings.TrimRight(string(meta), "\n"),
		"---",
		"",
		guideTitle+"\n",
		"*A comprehensive study guide covering DevOps, Chaos Engineering, and Backend Development fundamentals*\n",
		"*[View individual sections](/) for better navigation*\n",
		"---\n",
	)

	parts = append(parts, "## Quick Navigation\n")
	for _, group := range a.Structure {
		parts = append(parts, fmt.Sprintf("### %s\n", group.Title))
		for _, entry := range group.Sections {
			parts = append(parts, fmt.Sprintf("- [%s](#%s)\n", entry.Title, Slugify(entry.Title)))
		}
		parts = append(parts, "")
	}
	parts = append(parts, "---\n")

	parts = a.appendSections(parts, w, func(entry types.DocEntry) []string {
		return []string{
			fmt.Sprintf("<a name='%s'></a>", Slugify(entry.Title)),
			fmt.Sprintf("## %s\n", entry.Title),
		}
	})

	parts = append(parts,
		"## Navigation\n",
		fmt.Sprintf("[↑ Back to Top](#%s)\n", headingAnchor(strings.TrimPrefix(guideTitle, "# "))),
		"[← Back to Index](/)",
	)

	return writeDocument(outPath, parts, w, "web")
}

// appendSections walks the structure, loading and cleaning each source file
// and appending its heading (via heading) and body. Missing files produce a
// warning and are skipped.
func (a *Assembler) appendSections(parts []string, w io.Writer, heading func(types.DocEntry) []string) []string {
	for _, group := range a.Structure {
		parts = append(parts, fmt.Sprintf("# %s\n", group.Title))

		for _, entry := range group.Sections {
			path := filepath.Join(a.DocsDir, entry.File)
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(w, "warning: %s not found\n", entry.File)
				continue
			}

			fmt.Fprintf(w, "  processing %s\n", entry.File)
			body := CleanContent(string(data))
			if body == "" {
				continue
			}

			parts = append(parts, heading(entry)...)
			parts = append(parts, body, "\n---\n")
		}
	}
	return parts
}

// CleanContent strips a leading front-matter block and the first top-level
// heading line, returning the trimmed remainder. Content that fails
// front-matter parsing is used as-is.
func CleanContent(content string) string {
	rest, err := frontmatter.Parse(strings.NewReader(content), &map[string]any{})
	body := content
	if err == nil {
		body = string(rest)
	}

	body = strings.TrimLeft(body, "\n")
	if strings.HasPrefix(body, "# ") {
		if i := strings.IndexByte(body, '\n'); i >= 0 {
			body = body[i+1:]
		} else {
			body = ""
		}
	}

	return strings.TrimSpace(body)
}

// Slugify converts a section title to its anchor form: non-alphanumeric,
// non-space runes dropped, lowercased, spaces to hyphens. Section anchors
// are emitted as <a name> tags, so this form only has to agree with the
// quick-navigation links.
func Slugify(title string) string {
	s := nonSlugPattern.ReplaceAllString(title, "")
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// nonAnchorPattern matches the runes the static-site renderer drops when it
// derives a heading anchor. Unlike Slugify, hyphens survive.
var nonAnchorPattern = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)

// headingAnchor converts a heading to the anchor the static-site renderer
// generates for it. The back-to-top link targets the title heading the
// renderer anchors itself, so its hyphens must be preserved.
func headingAnchor(heading string) string {
	s := nonAnchorPattern.ReplaceAllString(heading, "")
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// writeDocument joins parts and writes the combined document, logging the
// destination to w.
func writeDocument(outPath string, parts []string, w io.Writer, kind string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	content := strings.Join(parts, "\n")
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s version: %w", kind, err)
	}
	fmt.Fprintf(w, "%s version generated: %s\n", kind, outPath)
	return nil
}
