package certs

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeQuery trims and lowercases a free-text search term. The result is
// both the cache key and the prompt input. A blank term is ErrInvalidInput.
func NormalizeQuery(raw string) (string, error) {
	normalized := cases.Lower(language.Und).String(strings.TrimSpace(raw))
	if normalized == "" {
		return "", fmt.Errorf("%w: search query is empty", ErrInvalidInput)
	}
	return normalized, nil
}

// sanitize flattens user text before it goes into a prompt: whitespace runs
// (including line breaks) become one space, double quotes become single
// quotes and backticks are dropped, so the text stays inside its quoted slot.
func sanitize(s string) string {
	s = strings.NewReplacer(`"`, `'`, "`", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
