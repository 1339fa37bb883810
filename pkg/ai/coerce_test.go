package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoerceCriterionResultWellFormed(t *testing.T) {
	raw := `{"score": 7, "maxScore": 9, "feedback": "Solid argument structure.", "suggestions": ["Vary linking words"]}`

	result := CoerceCriterionResult(raw, 9)
	require.False(t, result.Fallback)
	require.Equal(t, 7.0, result.Score)
	require.Equal(t, 9, result.MaxScore)
	require.Equal(t, "Solid argument structure.", result.Feedback)
	require.Equal(t, []string{"Vary linking words"}, result.Suggestions)
}

func TestCoerceCriterionResultFencedJSON(t *testing.T) {
	raw := "```json\n{\"score\": 4, \"maxScore\": 5, \"feedback\": \"ok\", \"suggestions\": []}\n```"

	result := CoerceCriterionResult(raw, 5)
	require.False(t, result.Fallback)
	require.Equal(t, 4.0, result.Score)
}

func TestCoerceCriterionResultMalformedFallsBack(t *testing.T) {
	raw := "The essay shows good task response overall."

	result := CoerceCriterionResult(raw, 9)
	require.True(t, result.Fallback)
	require.Zero(t, result.Score)
	require.Equal(t, 9, result.MaxScore)
	require.Equal(t, raw, result.Feedback)
	require.Empty(t, result.Suggestions)
}

func TestCoerceCriterionResultMissingFieldFallsBack(t *testing.T) {
	raw := `{"score": 7, "feedback": "missing maxScore and suggestions"}`

	result := CoerceCriterionResult(raw, 9)
	require.True(t, result.Fallback)
	require.Equal(t, raw, result.Feedback)
}

func TestCoerceCriterionResultClampsScore(t *testing.T) {
	raw := `{"score": 42, "maxScore": 9, "feedback": "overshoot", "suggestions": []}`

	result := CoerceCriterionResult(raw, 9)
	require.False(t, result.Fallback)
	require.Equal(t, 9.0, result.Score)
}

func TestCoerceTodoDrafts(t *testing.T) {
	raw := `[{"title": "Add a counterargument", "description": "Address the opposing view in body 2", "priority": "high"},
		{"title": "Fix comma splices"}]`

	drafts := CoerceTodoDrafts(raw)
	require.Len(t, drafts, 2)
	require.Equal(t, PriorityHigh, drafts[0].Priority)
	require.Equal(t, PriorityMedium, drafts[1].Priority, "unknown priority defaults to medium")
}

func TestCoerceTodoDraftsMalformedReturnsEmpty(t *testing.T) {
	require.Empty(t, CoerceTodoDrafts("1. Work on vocabulary\n2. Check grammar"))
	require.Empty(t, CoerceTodoDrafts(`{"title": "not an array"}`))
}

func TestCoerceImprovementResult(t *testing.T) {
	raw := `{"improvementScore": 8, "feedback": "Clear improvement in cohesion.", "suggestions": ["Tighten the conclusion"]}`

	result := CoerceImprovementResult(raw)
	require.False(t, result.Fallback)
	require.Equal(t, 8, result.ImprovementScore)
}

func TestCoerceImprovementResultMalformedDefaultsNeutral(t *testing.T) {
	raw := "You improved the essay somewhat."

	result := CoerceImprovementResult(raw)
	require.True(t, result.Fallback)
	require.Equal(t, 5, result.ImprovementScore)
	require.Equal(t, raw, result.Feedback)
}

func TestCoerceImprovementResultClampsRange(t *testing.T) {
	result := CoerceImprovementResult(`{"improvementScore": 0, "feedback": "low"}`)
	require.Equal(t, 1, result.ImprovementScore)

	result = CoerceImprovementResult(`{"improvementScore": 15, "feedback": "high"}`)
	require.Equal(t, 10, result.ImprovementScore)
}
