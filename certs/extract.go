// certs/extract.go
package certs

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/pranav244872/certsearch/llm"
	"github.com/pranav244872/certsearch/logging"
)

// codeFence matches a Markdown fence marker with an optional language tag.
var codeFence = regexp.MustCompile("```[A-Za-z0-9_+-]*")

////////////////////////////////////////////////////////////////////////
// Extraction
////////////////////////////////////////////////////////////////////////

// ExtractJSON pulls the JSON object out of raw model text. Every code-fence
// marker is removed, then the span from the first '{' to the last '}' is
// returned. Text without such a pair is ErrMalformedModelResponse.
func ExtractJSON(raw string) (string, error) {
	text := codeFence.ReplaceAllString(raw, "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("%w: no JSON object found in %q", ErrMalformedModelResponse, truncate(raw, 200))
	}
	return text[start : end+1], nil
}

// ParseCertifications decodes an extracted JSON object. A missing or null
// "certifications" key yields an empty list; anything that does not decode
// is ErrMalformedModelResponse and nothing is salvaged.
func ParseCertifications(candidate string) ([]Certification, error) {
	var payload modelPayload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelResponse, err)
	}

	certifications := payload.Certifications
	if certifications == nil {
		certifications = []Certification{}
	}
	for i := range certifications {
		if certifications[i].Languages == nil {
			certifications[i].Languages = []string{}
		}
	}
	return certifications, nil
}

////////////////////////////////////////////////////////////////////////
// Gateway
////////////////////////////////////////////////////////////////////////

// Gateway sends prompts to the model and turns its text output into certifications.
type Gateway struct {
	client llm.Client
	log    *logging.Logger
}

func NewGateway(client llm.Client, log *logging.Logger) *Gateway {
	return &Gateway{client: client, log: log}
}

// Fetch runs one prompt. Any client failure is ErrUpstreamUnavailable;
// extraction and decoding failures are ErrMalformedModelResponse. No retries.
func (g *Gateway) Fetch(ctx context.Context, prompt string) ([]Certification, error) {
	raw, err := g.client.CallLLM(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	candidate, err := ExtractJSON(raw)
	if err != nil {
		g.log.Debug("model output without JSON object", "raw", truncate(raw, 500))
		return nil, err
	}

	certifications, err := ParseCertifications(candidate)
	if err != nil {
		g.log.Debug("model output failed to decode", "candidate", truncate(candidate, 500))
		return nil, err
	}
	return certifications, nil
}

// truncate returns the first maxLen bytes of s, appending "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
