// Package catalog holds the static course content: Tier 1 subjects with deep
// content and Tier 2 dictionary entries. The data is embedded in the binary
// and validated once at load.
package catalog

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"lumina/internal/domain"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	subjectsFile   = "data/subjects.yaml"
	dictionaryFile = "data/dictionary.yaml"

	// SubjectQuizSize is the number of quiz items each subject carries,
	// two for each generated lesson.
	SubjectQuizSize = 6
)

// QuizItem is a question template stored in the catalog.
type QuizItem struct {
	ID           string   `yaml:"id,omitempty"`
	Text         string   `yaml:"text"`
	Options      []string `yaml:"options"`
	CorrectIndex int      `yaml:"correct_index"`
}

// Question converts the item into a domain question with the given id.
func (q QuizItem) Question(id string) domain.Question {
	return domain.Question{
		ID:           id,
		Text:         q.Text,
		Options:      append([]string(nil), q.Options...),
		CorrectIndex: q.CorrectIndex,
	}
}

func (q QuizItem) validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) < 2 || len(q.Options) > 4 {
		return fmt.Errorf("question %q has %d options, want 2 to 4", q.Text, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q has correct index %d out of range", q.Text, q.CorrectIndex)
	}
	return nil
}

// Subject is a Tier 1 entry with hand-written content.
type Subject struct {
	Tag                string     `yaml:"tag"`
	Pattern            string     `yaml:"pattern"`
	Intro              string     `yaml:"intro"`
	HistoricalContext  string     `yaml:"historical_context"`
	TechnicalBreakdown string     `yaml:"technical_breakdown"`
	ModernImplications string     `yaml:"modern_implications"`
	Quiz               []QuizItem `yaml:"quiz"`

	re *regexp.Regexp
}

// Matches reports whether the lowercased topic matches the subject pattern.
func (s Subject) Matches(lowerTopic string) bool {
	if s.re == nil {
		return false
	}
	return s.re.MatchString(lowerTopic)
}

func (s Subject) clone() Subject {
	s.Quiz = append([]QuizItem(nil), s.Quiz...)
	return s
}

// DictionaryEntry is a Tier 2 entry with a short factual summary.
type DictionaryEntry struct {
	Key      string     `yaml:"key"`
	Summary  string     `yaml:"summary"`
	Category string     `yaml:"category"`
	KeyFact  string     `yaml:"key_fact"`
	Quiz     []QuizItem `yaml:"quiz"`
}

func (e DictionaryEntry) clone() DictionaryEntry {
	e.Quiz = append([]QuizItem(nil), e.Quiz...)
	return e
}

// Catalog is immutable after Parse returns.
type Catalog struct {
	subjects   []Subject
	dictionary []DictionaryEntry
	bySubject  map[string]int
	byKey      map[string]int
}

type subjectsDoc struct {
	Subjects []Subject `yaml:"subjects"`
}

type dictionaryDoc struct {
	Entries []DictionaryEntry `yaml:"entries"`
}

// Parse decodes and validates both catalog documents.
func Parse(subjectsYAML, dictionaryYAML []byte) (*Catalog, error) {
	var sd subjectsDoc
	if err := yaml.Unmarshal(subjectsYAML, &sd); err != nil {
		return nil, fmt.Errorf("decoding subjects: %w", err)
	}
	var dd dictionaryDoc
	if err := yaml.Unmarshal(dictionaryYAML, &dd); err != nil {
		return nil, fmt.Errorf("decoding dictionary: %w", err)
	}

	c := &Catalog{
		subjects:   make([]Subject, 0, len(sd.Subjects)),
		dictionary: make([]DictionaryEntry, 0, len(dd.Entries)),
		bySubject:  make(map[string]int, len(sd.Subjects)),
		byKey:      make(map[string]int, len(dd.Entries)),
	}

	for i, s := range sd.Subjects {
		if s.Tag == "" {
			return nil, fmt.Errorf("subject %d: tag is empty", i)
		}
		if _, dup := c.bySubject[s.Tag]; dup {
			return nil, fmt.Errorf("subject %q: duplicate tag", s.Tag)
		}
		if s.Pattern == "" {
			return nil, fmt.Errorf("subject %q: pattern is empty", s.Tag)
		}
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("subject %q: compiling pattern: %w", s.Tag, err)
		}
		s.re = re
		if len(s.Quiz) != SubjectQuizSize {
			return nil, fmt.Errorf("subject %q: has %d quiz items, want %d", s.Tag, len(s.Quiz), SubjectQuizSize)
		}
		for _, q := range s.Quiz {
			if err := q.validate(); err != nil {
				return nil, fmt.Errorf("subject %q: %w", s.Tag, err)
			}
		}
		c.bySubject[s.Tag] = len(c.subjects)
		c.subjects = append(c.subjects, s)
	}

	for i, e := range dd.Entries {
		if e.Key == "" {
			return nil, fmt.Errorf("dictionary entry %d: key is empty", i)
		}
		if e.Key != strings.ToLower(e.Key) {
			return nil, fmt.Errorf("dictionary entry %q: key must be lowercase", e.Key)
		}
		if _, dup := c.byKey[e.Key]; dup {
			return nil, fmt.Errorf("dictionary entry %q: duplicate key", e.Key)
		}
		if e.Category == "" {
			return nil, fmt.Errorf("dictionary entry %q: category is empty", e.Key)
		}
		if len(e.Quiz) == 0 {
			return nil, fmt.Errorf("dictionary entry %q: quiz is empty", e.Key)
		}
		for _, q := range e.Quiz {
			if q.ID == "" {
				return nil, fmt.Errorf("dictionary entry %q: question %q has no id", e.Key, q.Text)
			}
			if err := q.validate(); err != nil {
				return nil, fmt.Errorf("dictionary entry %q: %w", e.Key, err)
			}
		}
		c.byKey[e.Key] = len(c.dictionary)
		c.dictionary = append(c.dictionary, e)
	}

	return c, nil
}

// Load parses the catalog compiled into the binary.
func Load() (*Catalog, error) {
	subjects, err := dataFS.ReadFile(subjectsFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", subjectsFile, err)
	}
	dictionary, err := dataFS.ReadFile(dictionaryFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dictionaryFile, err)
	}
	return Parse(subjects, dictionary)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared embedded catalog. It panics if the embedded
// data is invalid, which can only happen with a broken build.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load()
		if err != nil {
			panic(fmt.Sprintf("catalog: load embedded data: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Subjects returns the Tier 1 subjects in match order.
func (c *Catalog) Subjects() []Subject {
	out := make([]Subject, len(c.subjects))
	for i, s := range c.subjects {
		out[i] = s.clone()
	}
	return out
}

func (c *Catalog) Subject(tag string) (Subject, bool) {
	i, ok := c.bySubject[tag]
	if !ok {
		return Subject{}, false
	}
	return c.subjects[i].clone(), true
}

// MatchSubject returns the first subject whose pattern matches the
// lowercased topic.
func (c *Catalog) MatchSubject(lowerTopic string) (Subject, bool) {
	for _, s := range c.subjects {
		if s.Matches(lowerTopic) {
			return s.clone(), true
		}
	}
	return Subject{}, false
}

// Dictionary returns the Tier 2 entries in match order.
func (c *Catalog) Dictionary() []DictionaryEntry {
	out := make([]DictionaryEntry, len(c.dictionary))
	for i, e := range c.dictionary {
		out[i] = e.clone()
	}
	return out
}

func (c *Catalog) DictionaryEntry(key string) (DictionaryEntry, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return DictionaryEntry{}, false
	}
	return c.dictionary[i].clone(), true
}

// MatchDictionary returns the first entry whose key occurs in the
// lowercased topic.
func (c *Catalog) MatchDictionary(lowerTopic string) (DictionaryEntry, bool) {
	for _, e := range c.dictionary {
		if strings.Contains(lowerTopic, e.Key) {
			return e.clone(), true
		}
	}
	return DictionaryEntry{}, false
}

// Tags lists the subject tags in match order.
func (c *Catalog) Tags() []string {
	tags := make([]string, len(c.subjects))
	for i, s := range c.subjects {
		tags[i] = s.Tag
	}
	return tags
}

// Keys lists the dictionary keys in match order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.dictionary))
	for i, e := range c.dictionary {
		keys[i] = e.Key
	}
	return keys
}
