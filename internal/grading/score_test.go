package grading

import (
	"fmt"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(id, correct string) model.Question {
	q := model.Question{CorrectAnswer: correct}
	q.ID = id
	return q
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		num, den, want int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 8, 13}, // 12.5 向上取整
		{1, 2, 50},
		{166, 5, 3320},
		{166, 200, 83},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundPercent(tt.num, tt.den), "%d/%d", tt.num, tt.den)
	}
}

func TestScoreAllCorrect(t *testing.T) {
	qs := []model.Question{question("q1", "Paris"), question("q2", "42")}

	res, err := Score(qs, map[string]string{"q1": "paris", "q2": "42"})
	require.NoError(t, err)

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 2, res.CorrectCount)
	assert.Equal(t, 2, res.TotalQuestions)
	for _, d := range res.Detail {
		assert.True(t, d.IsCorrect)
	}
}

func TestScoreMissingAnswerIsIncorrect(t *testing.T) {
	qs := []model.Question{question("q1", "Paris"), question("q2", "42")}

	res, err := Score(qs, map[string]string{"q1": "London"})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.CorrectCount)
	require.Len(t, res.Detail, 2)

	assert.Equal(t, "q1", res.Detail[0].QuestionID)
	require.NotNil(t, res.Detail[0].UserAnswer)
	assert.Equal(t, "London", *res.Detail[0].UserAnswer)

	assert.Equal(t, "q2", res.Detail[1].QuestionID)
	assert.Nil(t, res.Detail[1].UserAnswer)
	assert.Equal(t, "42", res.Detail[1].CorrectAnswer)
	assert.False(t, res.Detail[1].IsCorrect)
}

func TestScoreBlankNeverMatchesEmptyCorrectAnswer(t *testing.T) {
	qs := []model.Question{question("q1", "")}

	res, err := Score(qs, map[string]string{"q1": "   "})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	assert.Nil(t, res.Detail[0].UserAnswer)
}

func TestScoreIgnoresUnknownKeys(t *testing.T) {
	qs := []model.Question{question("q1", "yes")}

	res, err := Score(qs, map[string]string{"q1": "YES", "other": "yes"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.CorrectCount)
	assert.Len(t, res.Detail, 1)
}

func TestScoreEmptyQuestionnaire(t *testing.T) {
	_, err := Score(nil, map[string]string{"q1": "x"})
	assert.ErrorIs(t, err, util.ErrEmptyQuestionnaire)
}

func TestScoreBounds(t *testing.T) {
	for n := 1; n <= 12; n++ {
		qs := make([]model.Question, n)
		answers := map[string]string{}
		for i := range qs {
			id := fmt.Sprintf("q%d", i)
			qs[i] = question(id, "a")
			if i%2 == 0 {
				answers[id] = "A"
			}
		}
		res, err := Score(qs, answers)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 100)

		none, err := Score(qs, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, none.Score)
	}
}
