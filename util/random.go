package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alpha = "abcdefghjklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	if max < min {
		min, max = max, min // swap if needed
	}
	return rand.Int63n(max-min+1) + min
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alpha)

	for range n {
		c := alpha[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomQuery generates a random search term with surrounding noise
// (mixed case and padding) that normalization has to strip.
func RandomQuery() string {
	return "  " + strings.ToUpper(RandomString(3)) + RandomString(5) + " "
}

// RandomLevel returns one of the conventional certification levels.
func RandomLevel() string {
	options := []string{"Iniciante", "Intermediário", "Avançado"}
	return options[rand.Intn(len(options))]
}

// RandomLanguages returns a non-empty subset of exam languages.
func RandomLanguages() []string {
	options := []string{"Inglês", "Português", "Espanhol", "Japonês"}
	n := int(RandomInt(1, int64(len(options))))
	perm := rand.Perm(len(options))[:n]

	languages := make([]string, 0, n)
	for _, i := range perm {
		languages = append(languages, options[i])
	}
	return languages
}

// RandomProvider returns a certification vendor name.
func RandomProvider() string {
	options := []string{"Microsoft", "Amazon", "Google", "Cisco", "Oracle", "CompTIA"}
	return options[rand.Intn(len(options))]
}

// RandomCertificationName generates a tech-sounding certification name like "Google Certified Cloud Associate"
func RandomCertificationName(provider string) string {
	areas := []string{"Cloud", "Data", "Security", "DevOps", "AI", "Network", "Database"}
	tiers := []string{"Fundamentals", "Associate", "Professional", "Specialty", "Expert"}

	return fmt.Sprintf("%s Certified %s %s",
		provider,
		areas[rand.Intn(len(areas))],
		tiers[rand.Intn(len(tiers))],
	)
}

// RandomSkillLevel returns a self-rated proficiency between 1 and 5.
func RandomSkillLevel() int {
	return int(RandomInt(1, 5))
}
