// skillz/skill.go
package skillz

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
)

////////////////////////////////////////////////////////////////////////
// Types
////////////////////////////////////////////////////////////////////////

// SkillItem is one self-rated entry of a personal development plan (PDI).
// Level is 1 (weakest) to 5 by convention; bounds are the caller's concern.
type SkillItem struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Plan is the PDI request body: three independent skill categories.
type Plan struct {
	SoftSkills []SkillItem `json:"softSkills,omitempty"`
	HardSkills []SkillItem `json:"hardSkills,omitempty"`
	Tools      []SkillItem `json:"tools,omitempty"`
}

////////////////////////////////////////////////////////////////////////
// Weakest-item selection
////////////////////////////////////////////////////////////////////////

// Weakest returns every item whose level equals the minimum level in items.
// Ties are all kept and input order is preserved. Empty input yields nil.
func Weakest(items []SkillItem) []SkillItem {
	if len(items) == 0 {
		return nil
	}

	minLevel := items[0].Level
	for _, item := range items[1:] {
		if item.Level < minLevel {
			minLevel = item.Level
		}
	}

	weakest := make([]SkillItem, 0, len(items))
	for _, item := range items {
		if item.Level == minLevel {
			weakest = append(weakest, item)
		}
	}
	return weakest
}

// Weakest applies Weakest to each category independently.
func (p Plan) Weakest() Plan {
	return Plan{
		SoftSkills: Weakest(p.SoftSkills),
		HardSkills: Weakest(p.HardSkills),
		Tools:      Weakest(p.Tools),
	}
}

// IsEmpty reports whether no category has any item.
func (p Plan) IsEmpty() bool {
	return len(p.SoftSkills) == 0 && len(p.HardSkills) == 0 && len(p.Tools) == 0
}

// Names returns the names of every item across the three categories,
// in soft skills, hard skills, tools order. Blank names are skipped.
func (p Plan) Names() []string {
	var names []string
	for _, category := range [][]SkillItem{p.SoftSkills, p.HardSkills, p.Tools} {
		for _, item := range category {
			if name := strings.TrimSpace(item.Name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// Fingerprint is a deterministic serialization of the plan, suitable as a
// cache key input. Nil and empty categories serialize identically.
func (p Plan) Fingerprint() string {
	normalized := struct {
		SoftSkills []SkillItem `json:"softSkills"`
		HardSkills []SkillItem `json:"hardSkills"`
		Tools      []SkillItem `json:"tools"`
	}{
		SoftSkills: nonNil(p.SoftSkills),
		HardSkills: nonNil(p.HardSkills),
		Tools:      nonNil(p.Tools),
	}
	// Marshalling plain structs of strings and ints cannot fail.
	b, _ := json.Marshal(normalized)
	return string(b)
}

func nonNil(items []SkillItem) []SkillItem {
	if items == nil {
		return []SkillItem{}
	}
	return items
}

////////////////////////////////////////////////////////////////////////
// Term matching
////////////////////////////////////////////////////////////////////////

// MatchesAny reports whether any of texts contains any of terms, ignoring
// case (Unicode case folding, so "PYTHON" matches "python" and "ÇÃ" matches "çã").
// With no terms nothing matches.
func MatchesAny(texts []string, terms []string) bool {
	// A Caser holds state, so each call gets its own.
	folder := cases.Fold()

	foldedTerms := make([]string, 0, len(terms))
	for _, term := range terms {
		if t := folder.String(strings.TrimSpace(term)); t != "" {
			foldedTerms = append(foldedTerms, t)
		}
	}
	if len(foldedTerms) == 0 {
		return false
	}

	for _, text := range texts {
		folded := folder.String(text)
		for _, term := range foldedTerms {
			if strings.Contains(folded, term) {
				return true
			}
		}
	}
	return false
}
