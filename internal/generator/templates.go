package generator

import "lumina/internal/domain"

// Tier 1 lesson layout. Each lesson takes two consecutive catalog quiz items.
const (
	foundationsTemplate = "# Module 1: Foundations\n\n%s\n\n## Historical Context\n%s\n\n> \"History is the best teacher.\""
	mechanicsTemplate   = "# Module 2: Mechanics\n\n%s\n\n## Analysis\nUnderstanding the components is crucial for application."
	futureTemplate      = "# Module 3: The Future\n\n%s\n\n## Conclusion\nThe path forward requires constant adaptation."

	specializedDescription = "A comprehensive deep-dive into %s, designed for mastery."
)

// Tier 2.
const (
	definitionsTemplate = "# What is %[1]s?\n\n%[2]s\n\n## Key Insight\n%[3]s\n\n## Category\nThis falls under the domain of **%[4]s**."
	deepDiveTemplate    = "# Advanced Analysis\n\nWhen studying **%[1]s**, it is important to consider its impact on the wider %[2]s landscape.\n\n- **Relevance**: High\n- **Complexity**: Moderate\n\n> \"Knowledge is power.\""
	relatedQuestion     = "True or False: %s is related to %s?"

	dictionaryDescription = "An accelerated learning module focused on %s."
)

// Tier 3. %[1]s is the proper title, %[2]s the raw topic, %[3]s the category.
const (
	introductionTemplate = `# Introduction to %[1]s

**%[1]s** is a significant subject within the realm of **%[3]s**. To understand it, we must first accept that it works according to a specific set of rules and logic.

## Why this matters
Grasping the fundamentals of **%[2]s** allows you to navigate more complex related topics with ease. It is a building block of wider knowledge.

## Key Terminology
- **Concept**: The core idea.
- **Context**: Where it applies.
- **Application**: How it is used.`

	operationalTemplate = `# How it Works

Every system, including **%[2]s**, operates on input and output.
1.  **Input**: What is required to start the process?
2.  **Process**: The transformation or action.
3.  **Output**: The result or consequence.

By analyzing **%[2]s** through this lens, we remove the mystery and reveal the mechanics.`

	heuristicDescription = "A structured analysis of %s and its fundamental principles."
)

type questionTemplate struct {
	id           string
	text         string // %[1]s proper title, %[2]s raw topic
	options      []string
	correctIndex int
}

// The Tier 3 pool. Lesson 1 takes the first two, lesson 2 the rest.
var heuristicQuestions = []questionTemplate{
	{"dq1", "What is the primary method to understand %[2]s?", []string{"Guessing", "Systematic Analysis", "Ignoring it", "Running away"}, 1},
	{"dq2", "True or False: %[1]s requires dedicated study to master.", []string{"False", "True"}, 1},
	{"dq3", "Which of the following is crucial for %[2]s?", []string{"Chaos", "Structure and Rules", "Silence", "Darkness"}, 1},
	{"dq4", "How strictly should one follow the rules of %[2]s?", []string{"Not at all", "Depending on context", "Rigidly", "Randomly"}, 1},
}

// Adaptive follow-up lessons.
var (
	remedialLesson = domain.Lesson{
		Title:    "Reinforcement Session",
		Type:     domain.LessonTypeText,
		Duration: "3 min",
		Content:  "# Review Required\n\nIt seems we moved too fast. Let's revisit the core definitions.\n\n## Key Takeaway\nFocus on the fundamental definitions before moving to complex applications.",
		Quiz: []domain.Question{{
			ID:           "q-rem",
			Text:         "What is the best way to improved understanding?",
			Options:      []string{"Speed", "Repetition and Analysis", "Giving up"},
			CorrectIndex: 1,
		}},
	}

	advancedLesson = domain.Lesson{
		Title:    "Advanced Application",
		Type:     domain.LessonTypeInteractive,
		Duration: "5 min",
		Content:  "# Advanced Application\n\nSince you have mastered the basics, consider how this applies in edge-cases.\n\n## Scenario\nImagine a situation where standard rules do not apply...",
		Quiz: []domain.Question{{
			ID:           "q-adv",
			Text:         "In advanced scenarios, what becomes more important?",
			Options:      []string{"Rigid rules", "Adaptability", "Speed"},
			CorrectIndex: 1,
		}},
	}
)

// Tutor replies.
const (
	tutorGreeting = "Hello! I'm your Lumina learning assistant. Need help with this section?"
	tutorRefusal  = "I can't give you the direct answer, but I can guide you! Try focusing on the first paragraph of the lesson."
	tutorClarify  = "I'd be happy to. Which part is most confusing for you right now?"
	tutorDefault  = "That's an interesting question. Let's look at the core concept again. Would you like a simpler explanation?"
)
