package service

import (
	"context"
	"testing"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/lock"
	"learnhub_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	ctx            context.Context
	db             *gorm.DB
	storageDir     string
	attempts       *repository.AttemptRepository
	quiz           *QuizService
	courses        *CourseService
	questionnaires *QuestionnaireService
	certificates   *CertificateService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger.InitNop()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	dir := t.TempDir()
	cfg := &config.Config{
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: dir},
		Quiz:    config.DefaultQuizConfig(),
	}

	courseRepo := repository.NewCourseRepository(db)
	questionnaireRepo := repository.NewQuestionnaireRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	certRepo := repository.NewCertificateRepository(db)
	storage := NewStorageService(cfg)

	quiz := NewQuizService(db, questionnaireRepo, courseRepo, attemptRepo, lock.NewLocalLocker(), cfg.Quiz)
	return &fixture{
		ctx:            context.Background(),
		db:             db,
		storageDir:     dir,
		attempts:       attemptRepo,
		quiz:           quiz,
		courses:        NewCourseService(courseRepo),
		questionnaires: NewQuestionnaireService(db, questionnaireRepo, courseRepo, quiz, storage, cfg.Quiz.DefaultMinScore),
		certificates:   NewCertificateService(certRepo, courseRepo, questionnaireRepo, attemptRepo, quiz, storage),
	}
}

func (f *fixture) course(t *testing.T, title string) *model.Course {
	t.Helper()
	c, err := f.courses.CreateCourse(f.ctx, 1, CreateCourseRequest{Title: title})
	require.NoError(t, err)
	return c
}

func (f *fixture) chapter(t *testing.T, courseID string, position int) *model.Chapter {
	t.Helper()
	ch, err := f.courses.CreateChapter(f.ctx, courseID, CreateChapterRequest{Title: "chapter", Position: position})
	require.NoError(t, err)
	return ch
}

// questionnaire 每个正确答案生成一道题
func (f *fixture) questionnaire(t *testing.T, courseID string, chapterID *string, answers ...string) *model.Questionnaire {
	t.Helper()
	req := CreateQuestionnaireRequest{
		CourseID:  courseID,
		ChapterID: chapterID,
		Title:     "quiz",
	}
	for _, a := range answers {
		req.Questions = append(req.Questions, QuestionInput{Text: "question", Options: []string{a, "other"}, Answer: a})
	}
	q, err := f.questionnaires.CreateQuestionnaire(f.ctx, req)
	require.NoError(t, err)
	return q
}

func (f *fixture) reloadChapter(t *testing.T, id string) *model.Chapter {
	t.Helper()
	var ch model.Chapter
	require.NoError(t, f.db.First(&ch, "id = ?", id).Error)
	return &ch
}

func (f *fixture) reloadQuestionnaire(t *testing.T, id string) *model.Questionnaire {
	t.Helper()
	var q model.Questionnaire
	require.NoError(t, f.db.First(&q, "id = ?", id).Error)
	return &q
}

func (f *fixture) countAttempts(t *testing.T, userID uint, questionnaireID string) int {
	t.Helper()
	n, err := f.attempts.CountByUserAndQuestionnaire(f.ctx, userID, questionnaireID)
	require.NoError(t, err)
	return n
}

func strPtr(s string) *string {
	return &s
}
