// certs/certification.go
package certs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Certification is one record returned by the model. Values are treated as
// immutable once parsed. Level and Price are free-form strings.
type Certification struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Languages   []string `json:"languages"`
	Price       string   `json:"price"`
	URL         string   `json:"url"`
	Level       string   `json:"level"`
	Provider    string   `json:"provider"`
}

// UnmarshalJSON accepts what the model actually writes: text fields may come
// back as numbers or booleans ("price": 0) and languages as a single string.
func (c *Certification) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        looseText `json:"name"`
		Description looseText `json:"description"`
		Languages   looseList `json:"languages"`
		Price       looseText `json:"price"`
		URL         looseText `json:"url"`
		Level       looseText `json:"level"`
		Provider    looseText `json:"provider"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = Certification{
		Name:        string(raw.Name),
		Description: string(raw.Description),
		Languages:   []string(raw.Languages),
		Price:       string(raw.Price),
		URL:         string(raw.URL),
		Level:       string(raw.Level),
		Provider:    string(raw.Provider),
	}
	return nil
}

// looseText is a JSON scalar rendered as text. Numbers keep their literal
// form, so 0 stays "0" and 49.90 stays "49.90". Null is "".
type looseText string

func (t *looseText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = looseText(s)
	case 'n':
		*t = ""
	case '{', '[':
		return fmt.Errorf("expected a text value, got %s", truncate(string(data), 40))
	default:
		// true, false or a number; the decoder has already validated the literal
		*t = looseText(data)
	}
	return nil
}

// looseList is a list of texts that also accepts a single scalar as a
// one-element list. Null and "" decode to nil.
type looseList []string

func (l *looseList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []looseText
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		list := make([]string, len(items))
		for i, item := range items {
			list[i] = string(item)
		}
		*l = list
		return nil
	}

	var single looseText
	if err := single.UnmarshalJSON(data); err != nil {
		return err
	}
	if single == "" {
		*l = nil
		return nil
	}
	*l = looseList{string(single)}
	return nil
}

// Source tells the client where a result came from.
type Source string

const (
	SourceCache Source = "cache"
	SourceModel Source = "IA"
)

// SearchResult is an ordered list of certifications plus its origin.
type SearchResult struct {
	Certifications []Certification `json:"certifications"`
	Source         Source          `json:"source"`
}

// modelPayload is the object the model is asked to return.
type modelPayload struct {
	Certifications []Certification `json:"certifications"`
}
