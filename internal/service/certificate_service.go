package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"learnhub_backend/internal/grading"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CertificateService struct {
	Repo           *repository.CertificateRepository
	Courses        *repository.CourseRepository
	Questionnaires *repository.QuestionnaireRepository
	Attempts       *repository.AttemptRepository
	Quiz           *QuizService
	Storage        *StorageService

	now func() time.Time
}

func NewCertificateService(
	repo *repository.CertificateRepository,
	courses *repository.CourseRepository,
	questionnaires *repository.QuestionnaireRepository,
	attempts *repository.AttemptRepository,
	quiz *QuizService,
	storage *StorageService,
) *CertificateService {
	return &CertificateService{
		Repo:           repo,
		Courses:        courses,
		Questionnaires: questionnaires,
		Attempts:       attempts,
		Quiz:           quiz,
		Storage:        storage,
		now:            time.Now,
	}
}

// 课程未配置模板时使用
var defaultPlaceholders = []model.Placeholder{
	{Key: model.PlaceholderStudentName, X: 50, Y: 40, FontSize: 32},
	{Key: model.PlaceholderCourseTitle, X: 50, Y: 55, FontSize: 24},
	{Key: model.PlaceholderIssuedAt, X: 50, Y: 70, FontSize: 14},
	{Key: model.PlaceholderSerialNumber, X: 85, Y: 92, FontSize: 10},
}

func validatePlaceholders(placeholders []model.Placeholder) error {
	seen := make(map[string]bool, len(placeholders))
	for _, p := range placeholders {
		if !model.PlaceholderKeys[p.Key] {
			return util.InvalidInput("unknown placeholder %q", p.Key)
		}
		if seen[p.Key] {
			return util.InvalidInput("placeholder %q given twice", p.Key)
		}
		seen[p.Key] = true
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
			return util.InvalidInput("placeholder %q position must be within 0-100", p.Key)
		}
		if p.FontSize < 0 {
			return util.InvalidInput("placeholder %q has negative font size", p.Key)
		}
	}
	return nil
}

func (s *CertificateService) UpsertTemplate(ctx context.Context, courseID, title string, placeholders []model.Placeholder) (*model.CertificateTemplate, error) {
	if err := validatePlaceholders(placeholders); err != nil {
		return nil, err
	}
	course, err := s.Courses.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		title = course.Title
	}

	tpl := &model.CertificateTemplate{
		CourseID:     courseID,
		Title:        title,
		Placeholders: model.PlaceholderList(placeholders),
	}
	if err := s.Repo.UpsertTemplate(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// eligibility 所有必修问卷的最近得分都达到及格线时返回必修问卷的平均分
func (s *CertificateService) eligibility(ctx context.Context, userID uint, courseID string) (int, error) {
	questionnaires, err := s.Questionnaires.ListActiveForCourse(ctx, courseID)
	if err != nil {
		return 0, err
	}

	items := make([]grading.QuestionnaireProgress, 0, len(questionnaires))
	for _, q := range questionnaires {
		if !q.IsRequired {
			continue
		}
		latest, err := s.Attempts.FindLatest(ctx, userID, q.ID)
		if err != nil {
			return 0, err
		}
		if latest == nil || latest.Score < q.MinScore {
			return 0, fmt.Errorf("questionnaire %q not passed: %w", q.Title, util.ErrCertificateNotEligible)
		}
		score := latest.Score
		items = append(items, grading.QuestionnaireProgress{QuestionnaireID: q.ID, LatestScore: &score})
	}
	return grading.AggregateProgress(items, grading.FormulaAverage).Progress, nil
}

type renderedPlaceholder struct {
	Key      string  `json:"key"`
	Value    string  `json:"value"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize int     `json:"fontSize"`
}

type certificateDocument struct {
	SerialNumber string                `json:"serialNumber"`
	Title        string                `json:"title"`
	Placeholders []renderedPlaceholder `json:"placeholders"`
}

func newSerialNumber(now time.Time) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("LH-%s-%s", now.Format("20060102"), strings.ToUpper(id[:8]))
}

// Issue 签发结业证书，同一用户同一课程只签发一次
func (s *CertificateService) Issue(ctx context.Context, userID uint, courseID, studentName string) (*model.Certificate, error) {
	course, err := s.Courses.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	score, err := s.eligibility(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	progress, err := s.Quiz.ComputeCourseProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	title := course.Title
	placeholders := defaultPlaceholders
	tpl, err := s.Repo.FindTemplateByCourse(ctx, courseID)
	switch {
	case err == nil:
		title = tpl.Title
		placeholders = tpl.Placeholders
	case !errors.Is(err, util.ErrNotFound):
		return nil, err
	}

	issuedAt := s.now()
	serial := newSerialNumber(issuedAt)
	values := map[string]string{
		model.PlaceholderStudentName:  studentName,
		model.PlaceholderCourseTitle:  course.Title,
		model.PlaceholderIssuedAt:     issuedAt.Format(util.DateFormat),
		model.PlaceholderSerialNumber: serial,
		model.PlaceholderScore:        strconv.Itoa(score),
	}
	doc := certificateDocument{
		SerialNumber: serial,
		Title:        title,
		Placeholders: make([]renderedPlaceholder, 0, len(placeholders)),
	}
	for _, p := range placeholders {
		doc.Placeholders = append(doc.Placeholders, renderedPlaceholder{
			Key:      p.Key,
			Value:    values[p.Key],
			X:        p.X,
			Y:        p.Y,
			FontSize: p.FontSize,
		})
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	key := "certificates/" + serial + ".json"
	url, err := s.Storage.UploadBytes(ctx, key, data, util.MimeJSON)
	if err != nil {
		return nil, err
	}

	cert := &model.Certificate{
		UserID:       userID,
		CourseID:     courseID,
		SerialNumber: serial,
		Progress:     progress.Progress.Progress,
		FileURL:      url,
		IssuedAt:     issuedAt,
	}
	if err := s.Repo.Create(ctx, cert); err != nil {
		if delErr := s.Storage.Delete(ctx, key); delErr != nil {
			logger.Log.Warn("failed to remove certificate document", zap.String("key", key), zap.Error(delErr))
		}
		// 并发签发时返回先写入的那一份
		if repository.IsDuplicateKey(err) {
			if existing, findErr := s.Repo.FindByUserAndCourse(ctx, userID, courseID); findErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, err
	}

	monitoring.CertificatesIssued.Inc()
	logger.Log.Info("certificate issued",
		zap.Uint("user_id", userID),
		zap.String("course_id", courseID),
		zap.String("serial", serial),
	)
	return cert, nil
}

func (s *CertificateService) ListForUser(ctx context.Context, userID uint) ([]model.Certificate, error) {
	return s.Repo.ListByUser(ctx, userID)
}
