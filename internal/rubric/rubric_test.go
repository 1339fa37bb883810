package rubric

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetReturnsRegisteredRubrics(t *testing.T) {
	for _, examType := range ValidTypes() {
		r, err := Get(examType)
		require.NoError(t, err)
		require.Equal(t, examType, r.ID)
		require.NotEmpty(t, r.Name)
		require.NotEmpty(t, r.Criteria)
		require.NotEmpty(t, r.Guidance)
	}
}

func TestGetNormalisesKey(t *testing.T) {
	r, err := Get("  IELTS ")
	require.NoError(t, err)
	require.Equal(t, "ielts", r.ID)
}

func TestGetRejectsUnknownExamType(t *testing.T) {
	_, err := Get("klingon")
	require.True(t, errors.Is(err, ErrUnknownExamType))
}

func TestWeightsSumToHundred(t *testing.T) {
	for _, examType := range ValidTypes() {
		r, err := Get(examType)
		require.NoError(t, err)

		total := 0
		seen := map[string]bool{}
		for _, criterion := range r.Criteria {
			total += criterion.Weight
			require.False(t, seen[criterion.ID], "duplicate criterion id %s in %s", criterion.ID, examType)
			seen[criterion.ID] = true
			require.Positive(t, criterion.MaxScore)
		}
		require.Equal(t, 100, total, "weights for %s must sum to 100", examType)
	}
}

func TestValidTypesIsSorted(t *testing.T) {
	require.Equal(t, []string{"ielts", "metu-epe", "toefl"}, ValidTypes())
}
