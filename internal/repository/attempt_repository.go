package repository

import (
	"context"
	"errors"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

// AttemptRepository 答题记录只提供追加和查询，不提供更新删除
type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) WithTx(tx *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: tx}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.DB.WithContext(ctx).Create(attempt).Error
}

func (r *AttemptRepository) CountByUserAndQuestionnaire(ctx context.Context, userID uint, questionnaireID string) (int, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.QuizAttempt{}).
		Where("user_id = ? AND questionnaire_id = ?", userID, questionnaireID).
		Count(&count).Error
	return int(count), err
}

// FindLatest 最近一次答题，没有记录时返回 nil, nil
func (r *AttemptRepository) FindLatest(ctx context.Context, userID uint, questionnaireID string) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND questionnaire_id = ?", userID, questionnaireID).
		Order("created_at desc, attempt_number desc").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// LatestScores 每个问卷最近一次的得分，未作答的问卷不在结果中
func (r *AttemptRepository) LatestScores(ctx context.Context, userID uint, questionnaireIDs []string) (map[string]int, error) {
	scores := make(map[string]int, len(questionnaireIDs))
	for _, qid := range questionnaireIDs {
		a, err := r.FindLatest(ctx, userID, qid)
		if err != nil {
			return nil, err
		}
		if a != nil {
			scores[qid] = a.Score
		}
	}
	return scores, nil
}

func (r *AttemptRepository) ListByUserAndQuestionnaire(ctx context.Context, userID uint, questionnaireID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND questionnaire_id = ?", userID, questionnaireID).
		Order("created_at desc, attempt_number desc").
		Find(&attempts).Error
	return attempts, err
}
