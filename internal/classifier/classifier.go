// Package classifier maps a free-text topic to a content tier.
package classifier

import (
	"regexp"
	"strings"

	"lumina/internal/catalog"
	"lumina/internal/domain"
)

type heuristic struct {
	category domain.Category
	re       *regexp.Regexp
}

// Checked in order; the first match wins.
var heuristics = []heuristic{
	{domain.CategoryPerson, regexp.MustCompile(`person|who|king|queen|president|scientist|artist|writer|actor`)},
	{domain.CategoryPlace, regexp.MustCompile(`place|city|country|continent|river|mountain|ocean|planet`)},
	{domain.CategorySkill, regexp.MustCompile(`how to|guide|tutorial|learn|steps`)},
	{domain.CategoryConcept, regexp.MustCompile(`theory|concept|idea|philosophy|ism`)},
}

// Classifier is safe for concurrent use.
type Classifier struct {
	catalog *catalog.Catalog
}

func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{catalog: cat}
}

// Default classifies against the embedded catalog.
func Default() *Classifier {
	return New(catalog.Default())
}

// Classify never fails; topics that match nothing land in Tier 3 General.
func (c *Classifier) Classify(topic string) domain.Classification {
	lower := strings.ToLower(topic)

	if s, ok := c.catalog.MatchSubject(lower); ok {
		return domain.Specialized(s.Tag)
	}
	if e, ok := c.catalog.MatchDictionary(lower); ok {
		return domain.Dictionary(e.Key)
	}
	return domain.Heuristic(Heuristic(lower))
}

// Heuristic guesses the broad category of a lowercased topic.
func Heuristic(lowerTopic string) domain.Category {
	for _, h := range heuristics {
		if h.re.MatchString(lowerTopic) {
			return h.category
		}
	}
	return domain.CategoryGeneral
}
