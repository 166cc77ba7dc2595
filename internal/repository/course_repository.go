package repository

import (
	"context"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// WithTx 返回绑定到事务的仓库
func (r *CourseRepository) WithTx(tx *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: tx}
}

func (r *CourseRepository) CreateCourse(ctx context.Context, course *model.Course) error {
	return r.DB.WithContext(ctx).Create(course).Error
}

func (r *CourseRepository) FindCourseByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	if err := r.DB.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "course", id)
	}
	return &course, nil
}

func (r *CourseRepository) CreateChapter(ctx context.Context, chapter *model.Chapter) error {
	return r.DB.WithContext(ctx).Create(chapter).Error
}

func (r *CourseRepository) FindChapterByID(ctx context.Context, id string) (*model.Chapter, error) {
	var chapter model.Chapter
	if err := r.DB.WithContext(ctx).First(&chapter, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "chapter", id)
	}
	return &chapter, nil
}

func (r *CourseRepository) ListChapters(ctx context.Context, courseID string) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("position asc, created_at asc").
		Find(&chapters).Error
	return chapters, err
}

// LinkedQuestionnaireIDs 课程各章节挂载的问卷ID，按章节顺序去重，跳过未挂载的章节
func (r *CourseRepository) LinkedQuestionnaireIDs(ctx context.Context, courseID string) ([]string, error) {
	chapters, err := r.ListChapters(ctx, courseID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(chapters))
	ids := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		if ch.QuestionnaireID == nil || *ch.QuestionnaireID == "" || seen[*ch.QuestionnaireID] {
			continue
		}
		seen[*ch.QuestionnaireID] = true
		ids = append(ids, *ch.QuestionnaireID)
	}
	return ids, nil
}

// SetChapterQuestionnaire 覆盖章节当前挂载的问卷
func (r *CourseRepository) SetChapterQuestionnaire(ctx context.Context, chapterID, questionnaireID string) error {
	return r.DB.WithContext(ctx).Model(&model.Chapter{}).
		Where("id = ?", chapterID).
		Update("questionnaire_id", questionnaireID).Error
}

// DetachQuestionnaire 解除除 keepChapterID 之外所有章节对该问卷的引用
func (r *CourseRepository) DetachQuestionnaire(ctx context.Context, questionnaireID, keepChapterID string) error {
	q := r.DB.WithContext(ctx).Model(&model.Chapter{}).Where("questionnaire_id = ?", questionnaireID)
	if keepChapterID != "" {
		q = q.Where("id <> ?", keepChapterID)
	}
	return q.Update("questionnaire_id", nil).Error
}
