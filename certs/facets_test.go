package certs_test

import (
	"testing"

	"github.com/pranav244872/certsearch/certs"
	"github.com/stretchr/testify/require"
)

func facetFixture() []certs.Certification {
	return []certs.Certification{
		{Name: "A", Level: "Básico", Languages: []string{"Inglês"}},
		{Name: "B", Level: "Básico", Languages: []string{"Português"}},
		{Name: "C", Level: "Avançado", Languages: []string{"Inglês", "Espanhol"}},
	}
}

func TestDeriveFacets(t *testing.T) {
	facets := certs.DeriveFacets(facetFixture())

	require.Equal(t, []string{"Básico", "Avançado"}, facets.Levels)
	require.Equal(t, []string{"Espanhol", "Inglês", "Português"}, facets.Languages)
}

func TestDeriveFacetsEmpty(t *testing.T) {
	facets := certs.DeriveFacets(nil)
	require.NotNil(t, facets.Levels)
	require.NotNil(t, facets.Languages)
	require.Empty(t, facets.Levels)
	require.Empty(t, facets.Languages)
}

func TestDeriveFacetsSortsAccentedLanguages(t *testing.T) {
	list := []certs.Certification{
		{Level: "Iniciante", Languages: []string{"Português", "Árabe", "Inglês"}},
	}
	facets := certs.DeriveFacets(list)
	require.Equal(t, []string{"Árabe", "Inglês", "Português"}, facets.Languages)
}

func TestFilter(t *testing.T) {
	list := facetFixture()

	testCases := []struct {
		name  string
		sel   certs.FacetSelection
		names []string
	}{
		{"No Filter", certs.FacetSelection{}, []string{"A", "B", "C"}},
		{"Level Only", certs.FacetSelection{Level: "Básico"}, []string{"A", "B"}},
		{"Language Only", certs.FacetSelection{Language: "Inglês"}, []string{"A", "C"}},
		{"Level And Language", certs.FacetSelection{Level: "Básico", Language: "Inglês"}, []string{"A"}},
		{"Nothing Matches", certs.FacetSelection{Level: "Avançado", Language: "Português"}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := certs.Filter(list, tc.sel)
			names := make([]string, 0, len(got))
			for _, c := range got {
				names = append(names, c.Name)
			}
			require.Equal(t, tc.names, names)
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	list := facetFixture()
	_ = certs.Filter(list, certs.FacetSelection{Level: "Avançado"})
	require.Equal(t, facetFixture(), list)
}

func TestFilterByTerms(t *testing.T) {
	list := []certs.Certification{
		{Name: "PCEP – Certified Entry-Level Python Programmer", Description: "Fundamentos de programação"},
		{Name: "AWS Certified Cloud Practitioner", Description: "Conceitos de nuvem"},
		{Name: "Databricks Associate", Description: "Engenharia de dados com PYTHON e Spark"},
	}

	got := certs.FilterByTerms(list, []string{"Python"})
	require.Len(t, got, 2)
	require.Equal(t, list[0], got[0])
	require.Equal(t, list[2], got[1])

	require.Empty(t, certs.FilterByTerms(list, nil))
}

func TestDeriveFacetsIgnoresCaseWhenSorting(t *testing.T) {
	list := []certs.Certification{
		{Languages: []string{"Português", "inglês"}},
		{Languages: []string{"Árabe", "Espanhol"}},
	}
	facets := certs.DeriveFacets(list)
	require.Equal(t, []string{"Árabe", "Espanhol", "inglês", "Português"}, facets.Languages)
}
