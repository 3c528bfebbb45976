package certs_test

import (
	"context"
	"sync"
	"testing"

	"github.com/pranav244872/certsearch/certs"
	"github.com/pranav244872/certsearch/util"
	"github.com/stretchr/testify/require"
)

// mockLLMClient stands in for the real Gemini client. It returns a fixed
// response and records every prompt it receives.
type mockLLMClient struct {
	mockResponse string
	mockErr      error
	// release, when set, blocks every call until it is closed.
	release chan struct{}

	mu   sync.Mutex
	seen []string
}

func (m *mockLLMClient) CallLLM(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.seen = append(m.seen, prompt)
	m.mu.Unlock()

	if m.release != nil {
		<-m.release
	}
	return m.mockResponse, m.mockErr
}

func (m *mockLLMClient) prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.seen...)
}

func (m *mockLLMClient) calls() int {
	return len(m.prompts())
}

func createRandomCertification(t *testing.T) certs.Certification {
	provider := util.RandomProvider()
	cert := certs.Certification{
		Name:        util.RandomCertificationName(provider),
		Description: "Certificação " + util.RandomString(8),
		Languages:   util.RandomLanguages(),
		Price:       "USD " + util.RandomString(3),
		URL:         "https://example.com/" + util.RandomString(6),
		Level:       util.RandomLevel(),
		Provider:    provider,
	}
	require.NotEmpty(t, cert.Name)
	require.NotEmpty(t, cert.Languages)
	return cert
}
