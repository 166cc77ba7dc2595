package grading

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"
)

type Result struct {
	Score          int                  `json:"score"`
	CorrectCount   int                  `json:"correctCount"`
	TotalQuestions int                  `json:"totalQuestions"`
	Detail         []model.AnswerDetail `json:"detail"`
}

// RoundPercent 计算 100*num/den 并四舍五入（half-up），要求 num>=0, den>0
func RoundPercent(num, den int) int {
	return (200*num + den) / (2 * den)
}

// Score 按题目顺序逐题比较规范化后的答案。
// 不属于该问卷的答案键被忽略。
func Score(questions []model.Question, answers map[string]string) (*Result, error) {
	if len(questions) == 0 {
		return nil, util.ErrEmptyQuestionnaire
	}

	res := &Result{
		TotalQuestions: len(questions),
		Detail:         make([]model.AnswerDetail, 0, len(questions)),
	}

	for _, q := range questions {
		raw, present := answers[q.ID]
		submitted := NormalizeAnswer(raw, present)
		correct := submitted.Matches(NormalizeCorrect(q.CorrectAnswer))
		if correct {
			res.CorrectCount++
		}

		var userAnswer *string
		if submitted.Answered() {
			ua := raw
			userAnswer = &ua
		}

		res.Detail = append(res.Detail, model.AnswerDetail{
			QuestionID:    q.ID,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
		})
	}

	res.Score = RoundPercent(res.CorrectCount, res.TotalQuestions)
	return res, nil
}
