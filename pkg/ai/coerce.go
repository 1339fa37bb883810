package ai

import (
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Todo priorities recognised in model output.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// CriterionResult is the decoded outcome of a per-criterion scoring call.
// Fallback is set when the model output did not match the expected shape and
// the raw text was kept as feedback instead.
type CriterionResult struct {
	Score       float64  `json:"score"`
	MaxScore    int      `json:"maxScore"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
	Fallback    bool     `json:"-"`
}

// TodoDraft is one actionable suggestion extracted from model output.
type TodoDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// ImprovementResult is the decoded outcome of an improvement evaluation call.
type ImprovementResult struct {
	ImprovementScore int      `json:"improvementScore"`
	Feedback         string   `json:"feedback"`
	Suggestions      []string `json:"suggestions"`
	Fallback         bool     `json:"-"`
}

// neutralImprovementScore is the mid-range default used when the model output
// cannot be parsed.
const neutralImprovementScore = 5

var criterionSchema = jsonschema.MustCompileString("criterion.json", `{
	"type": "object",
	"required": ["score", "maxScore", "feedback", "suggestions"],
	"properties": {
		"score": {"type": "number"},
		"maxScore": {"type": "number"},
		"feedback": {"type": "string"},
		"suggestions": {"type": "array", "items": {"type": "string"}}
	}
}`)

var todoSchema = jsonschema.MustCompileString("todo.json", `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["title"],
		"properties": {
			"title": {"type": "string"},
			"description": {"type": "string"},
			"priority": {"type": "string"}
		}
	}
}`)

var improvementSchema = jsonschema.MustCompileString("improvement.json", `{
	"type": "object",
	"required": ["improvementScore", "feedback"],
	"properties": {
		"improvementScore": {"type": "number"},
		"feedback": {"type": "string"},
		"suggestions": {"type": "array", "items": {"type": "string"}}
	}
}`)

// CoerceCriterionResult decodes raw model output into a criterion score. The
// decode never fails: malformed or mis-shaped output degrades to a zero score
// with the raw text preserved verbatim as feedback.
func CoerceCriterionResult(raw string, maxScore int) CriterionResult {
	fallback := CriterionResult{
		Score:       0,
		MaxScore:    maxScore,
		Feedback:    raw,
		Suggestions: []string{},
		Fallback:    true,
	}

	payload, ok := validate(raw, criterionSchema)
	if !ok {
		return fallback
	}

	var result CriterionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return fallback
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.MaxScore <= 0 {
		result.MaxScore = maxScore
	}
	if result.Score > float64(result.MaxScore) {
		result.Score = float64(result.MaxScore)
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}

	return result
}

// CoerceTodoDrafts decodes raw model output into todo drafts, defaulting to an
// empty list when the output cannot be parsed.
func CoerceTodoDrafts(raw string) []TodoDraft {
	payload, ok := validate(raw, todoSchema)
	if !ok {
		return []TodoDraft{}
	}

	var drafts []TodoDraft
	if err := json.Unmarshal(payload, &drafts); err != nil {
		return []TodoDraft{}
	}

	for i := range drafts {
		switch drafts[i].Priority {
		case PriorityLow, PriorityMedium, PriorityHigh:
		default:
			drafts[i].Priority = PriorityMedium
		}
	}

	return drafts
}

// CoerceImprovementResult decodes raw model output into an improvement
// evaluation, defaulting to a neutral mid-range score on parse failure.
func CoerceImprovementResult(raw string) ImprovementResult {
	fallback := ImprovementResult{
		ImprovementScore: neutralImprovementScore,
		Feedback:         raw,
		Suggestions:      []string{},
		Fallback:         true,
	}

	payload, ok := validate(raw, improvementSchema)
	if !ok {
		return fallback
	}

	var result ImprovementResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return fallback
	}

	if result.ImprovementScore < 1 {
		result.ImprovementScore = 1
	}
	if result.ImprovementScore > 10 {
		result.ImprovementScore = 10
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}

	return result
}

// validate strips optional markdown fences, parses the payload, and checks it
// against the expected schema.
func validate(raw string, schema *jsonschema.Schema) ([]byte, bool) {
	payload := []byte(stripCodeFence(raw))

	var value interface{}
	if err := json.Unmarshal(payload, &value); err != nil {
		return nil, false
	}
	if err := schema.Validate(value); err != nil {
		return nil, false
	}

	return payload, true
}

// stripCodeFence removes a surrounding markdown code fence, which models
// frequently add despite instructions not to.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 && strings.EqualFold(strings.TrimSpace(trimmed[:idx]), "json") {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
