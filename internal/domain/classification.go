package domain

// Tier is the priority level a topic resolved at.
type Tier int

const (
	TierSpecialized Tier = 1 // curated subject content
	TierDictionary  Tier = 2 // short dictionary facts
	TierHeuristic   Tier = 3 // generic templates
)

func (t Tier) String() string {
	switch t {
	case TierSpecialized:
		return "specialized"
	case TierDictionary:
		return "dictionary"
	case TierHeuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

// Category is the heuristic type guessed for topics the catalog does not know.
type Category string

const (
	CategoryPerson  Category = "Person"
	CategoryPlace   Category = "Place"
	CategorySkill   Category = "Skill"
	CategoryConcept Category = "Concept"
	CategoryGeneral Category = "General"
)

// Classification is the result of matching a topic. Key holds the subject
// tag for tier 1, the dictionary key for tier 2 and the Category for tier 3.
type Classification struct {
	Tier Tier   `json:"tier"`
	Key  string `json:"key"`
}

// Specialized builds a tier 1 classification.
func Specialized(tag string) Classification {
	return Classification{Tier: TierSpecialized, Key: tag}
}

// Dictionary builds a tier 2 classification.
func Dictionary(key string) Classification {
	return Classification{Tier: TierDictionary, Key: key}
}

// Heuristic builds a tier 3 classification.
func Heuristic(category Category) Classification {
	return Classification{Tier: TierHeuristic, Key: string(category)}
}

// Category returns the heuristic category. Only meaningful for tier 3.
func (c Classification) Category() Category {
	if c.Tier != TierHeuristic {
		return ""
	}
	return Category(c.Key)
}
