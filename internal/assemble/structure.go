// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/guidegen/pkg/types"
)

// DefaultStructure returns the built-in document structure: the ordered
// groups of (file, title) pairs that define both traversal order and the
// generated section headings.
func DefaultStructure() []types.DocGroup {
	return []types.DocGroup{
		{
			Title: "Core Fundamentals",
			Sections: []types.DocEntry{
				{File: "algo.md", Title: "Algorithms & Data Structures"},
				{File: "Core_Data_Structures.md", Title: "Core Data Structures"},
				{File: "graphs_linked_lists.md", Title: "Complex Data Structures"},
				{File: "search.md", Title: "Searching & Sorting"},
				{File: "sliding_window.md", Title: "Sliding Window Algorithms"},
				{File: "frontend.md", Title: "Frontend Development"},
				{File: "programming_languages.md", Title: "Programming Languages & Tools"},
			},
		},
		{
			Title: "System Design & Architecture",
			Sections: []types.DocEntry{
				{File: "system_design.md", Title: "System Design Problems"},
				{File: "data_layer.md", Title: "Data Layer & Databases"},
				{File: "design_patterns.md", Title: "Design Patterns"},
				{File: "cheat_sheet.md", Title: "Cheat Sheet"},
			},
		},
		{
			Title: "DevOps & Cloud",
			Sections: []types.DocEntry{
				{File: "cicd.md", Title: "CI/CD & Infrastructure"},
				{File: "reliability.md", Title: "Reliability Engineering (Internet Fundamentals, Observability, Chaos Engineering, Load Testing)"},
			},
		},
		{
			Title: "Security & Performance",
			Sections: []types.DocEntry{
				{File: "security_compliance.md", Title: "Security & Compliance"},
			},
		},
	}
}

// LoadStructure reads a document structure override from a YAML file.
func LoadStructure(path string) ([]types.DocGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading structure file: %w", err)
	}
	var groups []types.DocGroup
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parsing structure file: %w", err)
	}
	return groups, nil
}
