package certs

import (
	"slices"

	"github.com/pranav244872/certsearch/skillz"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Facets are the filter values available in a result set.
type Facets struct {
	Levels    []string `json:"levels"`
	Languages []string `json:"languages"`
}

// FacetSelection holds the chosen facet values. An empty field means no filter.
type FacetSelection struct {
	Level    string
	Language string
}

// DeriveFacets collects distinct levels in first-seen order and distinct
// languages sorted alphabetically (Portuguese collation).
func DeriveFacets(certifications []Certification) Facets {
	facets := Facets{Levels: []string{}, Languages: []string{}}
	seenLevels := make(map[string]struct{})
	seenLanguages := make(map[string]struct{})

	for _, c := range certifications {
		if _, ok := seenLevels[c.Level]; !ok {
			seenLevels[c.Level] = struct{}{}
			facets.Levels = append(facets.Levels, c.Level)
		}
		for _, lang := range c.Languages {
			if _, ok := seenLanguages[lang]; !ok {
				seenLanguages[lang] = struct{}{}
				facets.Languages = append(facets.Languages, lang)
			}
		}
	}

	collate.New(language.BrazilianPortuguese).SortStrings(facets.Languages)
	return facets
}

// Filter keeps the records matching every set facet: equal level and a
// language list containing the chosen language.
func Filter(certifications []Certification, sel FacetSelection) []Certification {
	filtered := make([]Certification, 0, len(certifications))
	for _, c := range certifications {
		if sel.Level != "" && c.Level != sel.Level {
			continue
		}
		if sel.Language != "" && !slices.Contains(c.Languages, sel.Language) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// FilterByTerms keeps the records whose name or description mentions at
// least one of terms, case-insensitively.
func FilterByTerms(certifications []Certification, terms []string) []Certification {
	filtered := make([]Certification, 0, len(certifications))
	for _, c := range certifications {
		if skillz.MatchesAny([]string{c.Name, c.Description}, terms) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
