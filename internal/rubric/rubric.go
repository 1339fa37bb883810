package rubric

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownExamType indicates the requested exam type has no registered rubric.
var ErrUnknownExamType = errors.New("unknown exam type")

// Criterion is one scored dimension of a rubric.
type Criterion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
	MaxScore    int    `json:"max_score"`
}

// Rubric groups the weighted criteria and scoring guidance for one exam type.
type Rubric struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Criteria []Criterion `json:"criteria"`
	Guidance string      `json:"guidance"`
}

// Get resolves the rubric registered for the given exam type key.
func Get(examType string) (Rubric, error) {
	rubric, ok := registry[strings.ToLower(strings.TrimSpace(examType))]
	if !ok {
		return Rubric{}, ErrUnknownExamType
	}
	return rubric, nil
}

// ValidTypes returns the sorted list of supported exam type keys.
func ValidTypes() []string {
	types := make([]string, 0, len(registry))
	for key := range registry {
		types = append(types, key)
	}
	sort.Strings(types)
	return types
}

var registry = map[string]Rubric{
	"ielts": {
		ID:   "ielts",
		Name: "IELTS Writing Task 2",
		Criteria: []Criterion{
			{
				ID:          "task-response",
				Name:        "Task Response",
				Description: "How well the essay addresses all parts of the task with relevant ideas and examples",
				Weight:      25,
				MaxScore:    9,
			},
			{
				ID:          "coherence-cohesion",
				Name:        "Coherence and Cohesion",
				Description: "How well the essay is organized with clear logical progression and linking devices",
				Weight:      25,
				MaxScore:    9,
			},
			{
				ID:          "lexical-resource",
				Name:        "Lexical Resource",
				Description: "Range and accuracy of vocabulary used in the essay",
				Weight:      25,
				MaxScore:    9,
			},
			{
				ID:          "grammatical-range",
				Name:        "Grammatical Range and Accuracy",
				Description: "Range and accuracy of grammatical structures used",
				Weight:      25,
				MaxScore:    9,
			},
		},
		Guidance: ieltsGuidance,
	},
	"toefl": {
		ID:   "toefl",
		Name: "TOEFL Independent Writing",
		Criteria: []Criterion{
			{
				ID:          "development",
				Name:        "Development",
				Description: "How well the essay develops ideas with examples and details",
				Weight:      30,
				MaxScore:    5,
			},
			{
				ID:          "organization",
				Name:        "Organization",
				Description: "How well the essay is structured with clear introduction, body, and conclusion",
				Weight:      30,
				MaxScore:    5,
			},
			{
				ID:          "language-use",
				Name:        "Language Use",
				Description: "Accuracy and variety of vocabulary and grammar",
				Weight:      40,
				MaxScore:    5,
			},
		},
		Guidance: toeflGuidance,
	},
	"metu-epe": {
		ID:   "metu-epe",
		Name: "METU EPE Writing",
		Criteria: []Criterion{
			{
				ID:          "content",
				Name:        "Content",
				Description: "How well the essay addresses the topic with relevant ideas and examples",
				Weight:      25,
				MaxScore:    10,
			},
			{
				ID:          "organization",
				Name:        "Organization",
				Description: "How well the essay is structured with clear introduction, body, and conclusion",
				Weight:      25,
				MaxScore:    10,
			},
			{
				ID:          "language",
				Name:        "Language",
				Description: "Accuracy and variety of vocabulary and grammar",
				Weight:      25,
				MaxScore:    10,
			},
			{
				ID:          "mechanics",
				Name:        "Mechanics",
				Description: "Spelling, punctuation, and formatting accuracy",
				Weight:      25,
				MaxScore:    10,
			},
		},
		Guidance: metuEpeGuidance,
	},
}
