package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type QuestionnaireService struct {
	DB      *gorm.DB
	Repo    *repository.QuestionnaireRepository
	Courses *repository.CourseRepository
	Quiz    *QuizService
	Storage *StorageService

	defaultMinScore int
}

func NewQuestionnaireService(
	db *gorm.DB,
	repo *repository.QuestionnaireRepository,
	courses *repository.CourseRepository,
	quiz *QuizService,
	storage *StorageService,
	defaultMinScore int,
) *QuestionnaireService {
	return &QuestionnaireService{
		DB:              db,
		Repo:            repo,
		Courses:         courses,
		Quiz:            quiz,
		Storage:         storage,
		defaultMinScore: defaultMinScore,
	}
}

type QuestionInput struct {
	Text    string   `json:"text" yaml:"text" binding:"required"`
	Options []string `json:"options" yaml:"options"`
	Answer  string   `json:"answer" yaml:"answer" binding:"required"`
}

type CreateQuestionnaireRequest struct {
	CourseID   string          `json:"courseId" binding:"required"`
	ChapterID  *string         `json:"chapterId"`
	Title      string          `json:"title" binding:"required"`
	IsRequired bool            `json:"isRequired"`
	MinScore   *int            `json:"minScore"`
	Questions  []QuestionInput `json:"questions"`
}

// questionnaireBundle 导入用的 YAML 文件结构
type questionnaireBundle struct {
	Title     string          `yaml:"title"`
	Required  bool            `yaml:"required"`
	MinScore  *int            `yaml:"min_score"`
	ChapterID string          `yaml:"chapter_id"`
	Questions []QuestionInput `yaml:"questions"`
}

func (s *QuestionnaireService) validate(req *CreateQuestionnaireRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return util.InvalidInput("questionnaire title is required")
	}
	if req.CourseID == "" {
		return util.InvalidInput("courseId is required")
	}
	if len(req.Questions) == 0 {
		return util.InvalidInput("questionnaire needs at least one question")
	}
	for i, q := range req.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return util.InvalidInput("question %d has no text", i+1)
		}
		if strings.TrimSpace(q.Answer) == "" {
			return util.InvalidInput("question %d has no correct answer", i+1)
		}
	}
	if req.MinScore != nil && (*req.MinScore < 0 || *req.MinScore > 100) {
		return util.InvalidInput("minScore must be within 0-100, got %d", *req.MinScore)
	}
	return nil
}

// CreateQuestionnaire 问卷、题目与课程关联在同一事务中写入
func (s *QuestionnaireService) CreateQuestionnaire(ctx context.Context, req CreateQuestionnaireRequest) (*model.Questionnaire, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	return s.create(ctx, model.GenerateUUID(), req)
}

func (s *QuestionnaireService) create(ctx context.Context, id string, req CreateQuestionnaireRequest) (*model.Questionnaire, error) {
	minScore := s.defaultMinScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	q := &model.Questionnaire{
		CourseID:   req.CourseID,
		Title:      req.Title,
		IsRequired: req.IsRequired,
		MinScore:   minScore,
		Questions:  make([]model.Question, 0, len(req.Questions)),
	}
	q.ID = id
	for i, in := range req.Questions {
		q.Questions = append(q.Questions, model.Question{
			Text:          strings.TrimSpace(in.Text),
			Options:       model.StringList(in.Options),
			CorrectAnswer: in.Answer,
			Position:      i + 1,
		})
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.Courses.WithTx(tx).FindCourseByID(ctx, req.CourseID); err != nil {
			return err
		}
		if err := s.Repo.WithTx(tx).Create(ctx, q); err != nil {
			return err
		}
		placed, err := s.Quiz.assignQuestionnaire(ctx, tx, q.ID, req.CourseID, req.ChapterID)
		if err != nil {
			return err
		}
		q.ChapterID = placed.ChapterID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("questionnaire created",
		zap.String("questionnaire_id", q.ID),
		zap.String("course_id", q.CourseID),
		zap.Int("questions", len(q.Questions)),
	)
	return q, nil
}

// ImportYAML 从 YAML 文件导入问卷，原始文件归档到存储
func (s *QuestionnaireService) ImportYAML(ctx context.Context, courseID string, r io.Reader) (*model.Questionnaire, error) {
	data, err := io.ReadAll(io.LimitReader(r, util.MaxBundleSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > util.MaxBundleSize {
		return nil, util.InvalidInput("questionnaire bundle exceeds %d bytes", util.MaxBundleSize)
	}

	var bundle questionnaireBundle
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&bundle); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, util.InvalidInput("questionnaire bundle is empty")
		}
		return nil, util.InvalidInput("malformed questionnaire bundle: %v", err)
	}

	req := CreateQuestionnaireRequest{
		CourseID:   courseID,
		Title:      bundle.Title,
		IsRequired: bundle.Required,
		MinScore:   bundle.MinScore,
		Questions:  bundle.Questions,
	}
	if bundle.ChapterID != "" {
		chapterID := bundle.ChapterID
		req.ChapterID = &chapterID
	}
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	id := model.GenerateUUID()
	key := "questionnaires/" + id + ".yaml"
	if _, err := s.Storage.UploadBytes(ctx, key, data, util.MimeYAML); err != nil {
		return nil, err
	}

	q, err := s.create(ctx, id, req)
	if err != nil {
		if delErr := s.Storage.Delete(ctx, key); delErr != nil {
			logger.Log.Warn("failed to remove archived bundle", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}
	return q, nil
}
