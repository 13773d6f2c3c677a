package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lumina/internal/domain"
)

func TestClassify(t *testing.T) {
	c := Default()

	tests := []struct {
		topic string
		want  domain.Classification
	}{
		{"quantum physics", domain.Specialized("physics")},
		{"Linear Algebra", domain.Specialized("math")},
		{"React hooks", domain.Specialized("react")},
		{"AI ethics", domain.Specialized("ai")},
		{"machine learning", domain.Specialized("ai")},
		// science is declared before physics
		{"space physics", domain.Specialized("science")},
		// python is a Tier 1 subject, blockchain only a dictionary key
		{"python blockchain tutorial", domain.Specialized("python")},

		{"blockchain", domain.Dictionary("blockchain")},
		{"Photosynthesis", domain.Dictionary("photosynthesis")},
		{"the internet", domain.Dictionary("internet")},
		{"cryptocurrency", domain.Dictionary("cryptocurrency")},

		{"underwater basket weaving", domain.Heuristic(domain.CategoryGeneral)},
		{"who was napoleon", domain.Heuristic(domain.CategoryPerson)},
		{"a queen", domain.Heuristic(domain.CategoryPerson)},
		{"the amazon river", domain.Heuristic(domain.CategoryPlace)},
		{"how to knit", domain.Heuristic(domain.CategorySkill)},
		{"stoicism", domain.Heuristic(domain.CategoryConcept)},
		{"", domain.Heuristic(domain.CategoryGeneral)},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.topic))
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := Default()
	for _, topic := range []string{"quantum physics", "blockchain", "underwater basket weaving", "Einstein"} {
		first := c.Classify(topic)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, c.Classify(topic), topic)
		}
	}
}

func TestClassify_DictionaryPersonKeepsTier2(t *testing.T) {
	got := Default().Classify("einstein")

	assert.Equal(t, domain.TierDictionary, got.Tier)
	assert.Equal(t, "einstein", got.Key)
	assert.Equal(t, domain.Category(""), got.Category())
}

func TestHeuristic_Order(t *testing.T) {
	// Person is checked before Place.
	assert.Equal(t, domain.CategoryPerson, Heuristic("king of the mountain"))
	// Place before Skill.
	assert.Equal(t, domain.CategoryPlace, Heuristic("city guide"))
	// Skill before Concept.
	assert.Equal(t, domain.CategorySkill, Heuristic("learn the theory"))
	assert.Equal(t, domain.CategoryGeneral, Heuristic("knitting"))
}
