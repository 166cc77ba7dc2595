package repository

import (
	"context"
	"errors"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionnaireRepository struct {
	DB *gorm.DB
}

func NewQuestionnaireRepository(db *gorm.DB) *QuestionnaireRepository {
	return &QuestionnaireRepository{DB: db}
}

func (r *QuestionnaireRepository) WithTx(tx *gorm.DB) *QuestionnaireRepository {
	return &QuestionnaireRepository{DB: tx}
}

// Create 问卷与题目一起写入
func (r *QuestionnaireRepository) Create(ctx context.Context, q *model.Questionnaire) error {
	return r.DB.WithContext(ctx).Create(q).Error
}

func (r *QuestionnaireRepository) FindByID(ctx context.Context, id string) (*model.Questionnaire, error) {
	var q model.Questionnaire
	if err := r.DB.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "questionnaire", id)
	}
	return &q, nil
}

func (r *QuestionnaireRepository) ListQuestions(ctx context.Context, questionnaireID string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.WithContext(ctx).
		Where("questionnaire_id = ?", questionnaireID).
		Order("position asc, created_at asc").
		Find(&qs).Error
	return qs, err
}

// CountQuestions 按问卷统计题目数
func (r *QuestionnaireRepository) CountQuestions(ctx context.Context, questionnaireIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(questionnaireIDs))
	if len(questionnaireIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		QuestionnaireID string
		Total           int
	}
	err := r.DB.WithContext(ctx).Model(&model.Question{}).
		Select("questionnaire_id, COUNT(*) as total").
		Where("questionnaire_id IN ?", questionnaireIDs).
		Group("questionnaire_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.QuestionnaireID] = row.Total
	}
	return counts, nil
}

// ListActiveForCourse 课程大纲中处于激活状态的问卷
func (r *QuestionnaireRepository) ListActiveForCourse(ctx context.Context, courseID string) ([]model.Questionnaire, error) {
	var qs []model.Questionnaire
	err := r.DB.WithContext(ctx).
		Joins("JOIN course_questionnaires cq ON cq.questionnaire_id = questionnaires.id").
		Where("cq.course_id = ? AND cq.is_active = ?", courseID, true).
		Order("questionnaires.created_at asc").
		Find(&qs).Error
	return qs, err
}

// UpdatePlacement 更新问卷所属课程和章节
func (r *QuestionnaireRepository) UpdatePlacement(ctx context.Context, q *model.Questionnaire) error {
	var chapterID interface{}
	if q.ChapterID != nil {
		chapterID = *q.ChapterID
	}
	return r.DB.WithContext(ctx).Model(&model.Questionnaire{}).
		Where("id = ?", q.ID).
		Updates(map[string]interface{}{
			"course_id":  q.CourseID,
			"chapter_id": chapterID,
		}).Error
}

// ClearChapter 章节改挂其他问卷时，清掉原问卷指向该章节的引用
func (r *QuestionnaireRepository) ClearChapter(ctx context.Context, chapterID, exceptQuestionnaireID string) error {
	return r.DB.WithContext(ctx).Model(&model.Questionnaire{}).
		Where("chapter_id = ? AND id <> ?", chapterID, exceptQuestionnaireID).
		Update("chapter_id", nil).Error
}

// DeactivateOtherLinks 问卷换课程后，停用它在其他课程下的关联
func (r *QuestionnaireRepository) DeactivateOtherLinks(ctx context.Context, questionnaireID, keepCourseID string) error {
	return r.DB.WithContext(ctx).Model(&model.CourseQuestionnaire{}).
		Where("questionnaire_id = ? AND course_id <> ? AND is_active = ?", questionnaireID, keepCourseID, true).
		Update("is_active", false).Error
}

// EnsureCourseLink 幂等地创建课程-问卷关联，已存在则复用并确保处于激活状态
func (r *QuestionnaireRepository) EnsureCourseLink(ctx context.Context, courseID, questionnaireID string) (*model.CourseQuestionnaire, bool, error) {
	db := r.DB.WithContext(ctx)

	var link model.CourseQuestionnaire
	err := db.Where("course_id = ? AND questionnaire_id = ?", courseID, questionnaireID).First(&link).Error
	if err == nil {
		if !link.IsActive {
			link.IsActive = true
			if err := db.Model(&link).Update("is_active", true).Error; err != nil {
				return nil, false, err
			}
		}
		return &link, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	link = model.CourseQuestionnaire{CourseID: courseID, QuestionnaireID: questionnaireID, IsActive: true}
	if err := db.Create(&link).Error; err != nil {
		// 并发创建时唯一索引兜底，复用已存在的行
		if IsDuplicateKey(err) {
			var existing model.CourseQuestionnaire
			if err := db.Where("course_id = ? AND questionnaire_id = ?", courseID, questionnaireID).First(&existing).Error; err != nil {
				return nil, false, err
			}
			return &existing, false, nil
		}
		return nil, false, err
	}
	return &link, true, nil
}

func (r *QuestionnaireRepository) ListCourseLinks(ctx context.Context, courseID, questionnaireID string) ([]model.CourseQuestionnaire, error) {
	var links []model.CourseQuestionnaire
	q := r.DB.WithContext(ctx)
	if courseID != "" {
		q = q.Where("course_id = ?", courseID)
	}
	if questionnaireID != "" {
		q = q.Where("questionnaire_id = ?", questionnaireID)
	}
	err := q.Order("id asc").Find(&links).Error
	return links, err
}
