// skillz/skill_test.go
package skillz_test

import (
	"testing"

	"github.com/pranav244872/certsearch/skillz"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////
// Test for Weakest
////////////////////////////////////////////////////////////////////////

func TestWeakest(t *testing.T) {
	testCases := []struct {
		name  string
		items []skillz.SkillItem
		want  []skillz.SkillItem
	}{
		{
			name: "Ties Are All Kept",
			items: []skillz.SkillItem{
				{Name: "Comunicação", Level: 2},
				{Name: "Empatia", Level: 4},
				{Name: "Escuta", Level: 2},
			},
			want: []skillz.SkillItem{
				{Name: "Comunicação", Level: 2},
				{Name: "Escuta", Level: 2},
			},
		},
		{
			name:  "Single Item",
			items: []skillz.SkillItem{{Name: "Python", Level: 1}},
			want:  []skillz.SkillItem{{Name: "Python", Level: 1}},
		},
		{
			name: "Minimum Is Not First",
			items: []skillz.SkillItem{
				{Name: "Docker", Level: 5},
				{Name: "Git", Level: 3},
				{Name: "Kubernetes", Level: 1},
			},
			want: []skillz.SkillItem{{Name: "Kubernetes", Level: 1}},
		},
		{
			name:  "Empty Category",
			items: nil,
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, skillz.Weakest(tc.items))
		})
	}
}

func TestPlanWeakest(t *testing.T) {
	plan := skillz.Plan{
		SoftSkills: []skillz.SkillItem{{Name: "Liderança", Level: 3}, {Name: "Oratória", Level: 2}},
		HardSkills: []skillz.SkillItem{{Name: "Python", Level: 1}},
	}

	weakest := plan.Weakest()
	require.Equal(t, []skillz.SkillItem{{Name: "Oratória", Level: 2}}, weakest.SoftSkills)
	require.Equal(t, []skillz.SkillItem{{Name: "Python", Level: 1}}, weakest.HardSkills)
	require.Empty(t, weakest.Tools)
	require.Equal(t, []string{"Oratória", "Python"}, weakest.Names())
	require.False(t, weakest.IsEmpty())
	require.True(t, skillz.Plan{}.IsEmpty())
}

func TestPlanFingerprint(t *testing.T) {
	a := skillz.Plan{HardSkills: []skillz.SkillItem{{Name: "Go", Level: 2}}}
	b := skillz.Plan{HardSkills: []skillz.SkillItem{{Name: "Go", Level: 2}}, Tools: []skillz.SkillItem{}}
	c := skillz.Plan{HardSkills: []skillz.SkillItem{{Name: "Go", Level: 3}}}

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	require.Equal(t, `{"softSkills":[],"hardSkills":[],"tools":[]}`, skillz.Plan{}.Fingerprint())
}

////////////////////////////////////////////////////////////////////////
// Test for MatchesAny
////////////////////////////////////////////////////////////////////////

func TestMatchesAny(t *testing.T) {
	testCases := []struct {
		name  string
		texts []string
		terms []string
		want  bool
	}{
		{"Case Insensitive", []string{"PCEP – Certified Entry-Level PYTHON Programmer"}, []string{"python"}, true},
		{"Matches In Second Text", []string{"AZ-900", "Fundamentos de nuvem com Python"}, []string{"Python"}, true},
		{"Accented Terms", []string{"Curso de COMUNICAÇÃO assertiva"}, []string{"Comunicação"}, true},
		{"No Match", []string{"AWS Cloud Practitioner", "Conceitos de nuvem"}, []string{"Python"}, false},
		{"No Terms", []string{"anything"}, nil, false},
		{"Blank Terms Ignored", []string{"anything"}, []string{"  "}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, skillz.MatchesAny(tc.texts, tc.terms))
		})
	}
}
