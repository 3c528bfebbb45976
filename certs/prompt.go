// certs/prompt.go
package certs

import (
	"fmt"
	"strings"

	"github.com/pranav244872/certsearch/skillz"
)

////////////////////////////////////////////////////////////////////////

// We define our LLM prompts as constants here to keep them organized and easy to modify.

const (
	// outputSchema describes the JSON object both prompts ask for.
	outputSchema = `Retorne uma lista de certificações em formato JSON.
O JSON deve ter uma chave principal "certifications" que contém um array de objetos.
Cada objeto deve ter as seguintes chaves:
- "name": O nome oficial da certificação (string).
- "description": Uma breve descrição do que a certificação abrange. A descrição DEVE ser uma tradução para o Português do Brasil (string).
- "languages": Um array de strings com os idiomas disponíveis para o exame (ex: ["Inglês", "Espanhol", "Português"]).
- "price": O custo do exame de certificação. Se variar ou for gratuito, indique (string, ex: "USD 165", "Varia por região", "Gratuito").
- "url": O link direto para a página oficial da certificação (string).
- "level": O nível de dificuldade da certificação (ex: "Iniciante", "Intermediário", "Avançado") (string).
- "provider": A empresa que oferece a certificação (ex: "Microsoft", "Amazon", "Google") (string).

Se não encontrar nenhuma certificação, retorne um array vazio dentro da chave "certifications".
Não inclua nenhuma explicação ou texto adicional fora do objeto JSON. A resposta DEVE ser apenas o JSON.`

	// officialSources restricts the model to vendor-owned catalogues.
	officialSources = `Busque apenas em fontes oficiais como Microsoft Learn, AWS Training and Certification, Google Cloud Skills Boost, Cisco, Oracle University, CompTIA, Linux Foundation, etc.`

	// queryPrompt is used for the free-text flow. %s is the normalized search term.
	queryPrompt = `
Você é um assistente especialista em certificações de tecnologia.
Sua tarefa é buscar informações sobre certificações relacionadas ao termo "%s".
%s
%s
`

	// planPrompt is used for the PDI flow. The first %s is the list of weakest items per category.
	planPrompt = `
Você é um assistente especialista em certificações de tecnologia e em planos de desenvolvimento individual (PDI).
Um profissional avaliou suas competências de 1 (mais fraco) a 5 (mais forte).
Os pontos que ele mais precisa desenvolver são:
%s
Para cada categoria listada acima, recomende de 5 a 10 certificações que ajudem a desenvolver esses pontos.
O nome ou a descrição de cada certificação deve mencionar explicitamente a competência que ela desenvolve.
%s
%s
`
)

// planCategories fixes the order and the Portuguese label of each PDI category.
var planCategories = []struct {
	label string
	items func(skillz.Plan) []skillz.SkillItem
}{
	{"Soft skills", func(p skillz.Plan) []skillz.SkillItem { return p.SoftSkills }},
	{"Hard skills", func(p skillz.Plan) []skillz.SkillItem { return p.HardSkills }},
	{"Ferramentas", func(p skillz.Plan) []skillz.SkillItem { return p.Tools }},
}

// BuildQueryPrompt renders the free-text prompt for an already normalized query.
func BuildQueryPrompt(query string) string {
	return fmt.Sprintf(queryPrompt, sanitize(query), officialSources, outputSchema)
}

// BuildPlanPrompt renders the PDI prompt for the weakest items of a plan.
// Empty categories are left out of the prompt entirely.
func BuildPlanPrompt(weakest skillz.Plan) string {
	return fmt.Sprintf(planPrompt, describePlan(weakest), officialSources, outputSchema)
}

// describePlan lists each non-empty category as "- Label: Name (nível N), ...".
func describePlan(p skillz.Plan) string {
	var sb strings.Builder
	for _, category := range planCategories {
		items := category.items(p)
		if len(items) == 0 {
			continue
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, fmt.Sprintf("%s (nível %d)", sanitize(item.Name), item.Level))
		}
		fmt.Fprintf(&sb, "- %s: %s\n", category.label, strings.Join(parts, ", "))
	}
	return sb.String()
}
