package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/grading"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/lock"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"learnhub_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 唯一索引冲突后的重试次数
const maxInsertRetries = 3

type QuizService struct {
	DB             *gorm.DB
	Questionnaires *repository.QuestionnaireRepository
	Courses        *repository.CourseRepository
	Attempts       *repository.AttemptRepository
	Locker         lock.Locker

	maxAttempts int
	lockTTL     time.Duration
	formula     atomic.Value
}

func NewQuizService(
	db *gorm.DB,
	questionnaires *repository.QuestionnaireRepository,
	courses *repository.CourseRepository,
	attempts *repository.AttemptRepository,
	locker lock.Locker,
	cfg config.QuizConfig,
) *QuizService {
	s := &QuizService{
		DB:             db,
		Questionnaires: questionnaires,
		Courses:        courses,
		Attempts:       attempts,
		Locker:         locker,
		maxAttempts:    cfg.MaxAttempts,
		lockTTL:        cfg.LockTTL(),
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = config.DefaultQuizConfig().MaxAttempts
	}
	if s.lockTTL <= 0 {
		s.lockTTL = config.DefaultQuizConfig().LockTTL()
	}
	s.SetProgressFormula(cfg.ProgressFormula)
	return s
}

// SetProgressFormula 配置热更新时切换进度公式，未知值按 legacy 处理
func (s *QuizService) SetProgressFormula(formula string) {
	f := grading.Formula(formula)
	if f != grading.FormulaAverage {
		f = grading.FormulaLegacy
	}
	s.formula.Store(f)
}

func (s *QuizService) ProgressFormula() grading.Formula {
	return s.formula.Load().(grading.Formula)
}

func (s *QuizService) MaxAttempts() int {
	return s.maxAttempts
}

type SubmitResult struct {
	AttemptID      string               `json:"attemptId"`
	Score          int                  `json:"score"`
	AttemptCount   int                  `json:"attemptCount"`
	CorrectCount   int                  `json:"correctCount"`
	TotalQuestions int                  `json:"totalQuestions"`
	Detail         []model.AnswerDetail `json:"detail"`
}

func attemptLockKey(userID uint, questionnaireID string) string {
	return fmt.Sprintf("quiz_attempt:%d:%s", userID, questionnaireID)
}

// SubmitAttempt 判分并记录一次答题。
// 同一 (用户, 问卷) 的计数检查与写入在锁和事务内完成，唯一索引兜底跨实例的竞争。
func (s *QuizService) SubmitAttempt(ctx context.Context, userID uint, questionnaireID string, answers map[string]string) (res *SubmitResult, err error) {
	ctx, span := tracing.Start(ctx, "QuizService.SubmitAttempt",
		attribute.Int64("user_id", int64(userID)),
		attribute.String("questionnaire_id", questionnaireID),
	)
	defer func() { tracing.End(span, err) }()
	defer func() { s.observeSubmit(userID, questionnaireID, res, err) }()

	if _, err = s.Questionnaires.FindByID(ctx, questionnaireID); err != nil {
		return nil, err
	}

	unlock, err := s.Locker.Lock(ctx, attemptLockKey(userID, questionnaireID), s.lockTTL)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for retry := 0; ; retry++ {
		res, err = s.recordAttempt(ctx, userID, questionnaireID, answers)
		if err == nil || !repository.IsDuplicateKey(err) || retry >= maxInsertRetries {
			break
		}
		logger.Log.Warn("attempt number conflict, re-checking",
			zap.Uint("user_id", userID),
			zap.String("questionnaire_id", questionnaireID),
			zap.Int("retry", retry+1),
		)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *QuizService) recordAttempt(ctx context.Context, userID uint, questionnaireID string, answers map[string]string) (*SubmitResult, error) {
	var res *SubmitResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempts := s.Attempts.WithTx(tx)

		count, err := attempts.CountByUserAndQuestionnaire(ctx, userID, questionnaireID)
		if err != nil {
			return err
		}
		if count >= s.maxAttempts {
			return &util.AttemptLimitError{Count: count}
		}

		questions, err := s.Questionnaires.WithTx(tx).ListQuestions(ctx, questionnaireID)
		if err != nil {
			return err
		}
		graded, err := grading.Score(questions, answers)
		if err != nil {
			return err
		}

		raw := make(model.AnswerMap, len(answers))
		for k, v := range answers {
			raw[k] = v
		}
		attempt := &model.QuizAttempt{
			UserID:          userID,
			QuestionnaireID: questionnaireID,
			AttemptNumber:   count + 1,
			Score:           graded.Score,
			Answers:         raw,
			Detail:          model.AnswerDetailList(graded.Detail),
		}
		if err := attempts.Create(ctx, attempt); err != nil {
			return err
		}

		res = &SubmitResult{
			AttemptID:      attempt.ID,
			Score:          graded.Score,
			AttemptCount:   attempt.AttemptNumber,
			CorrectCount:   graded.CorrectCount,
			TotalQuestions: graded.TotalQuestions,
			Detail:         graded.Detail,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *QuizService) observeSubmit(userID uint, questionnaireID string, res *SubmitResult, err error) {
	fields := []zap.Field{
		zap.Uint("user_id", userID),
		zap.String("questionnaire_id", questionnaireID),
	}
	var limitErr *util.AttemptLimitError
	switch {
	case err == nil:
		monitoring.ObserveAttempt(monitoring.AttemptAccepted, res.Score)
		logger.Log.Info("quiz attempt recorded", append(fields,
			zap.Int("attempt_count", res.AttemptCount),
			zap.Int("score", res.Score),
		)...)
	case errors.As(err, &limitErr):
		monitoring.ObserveAttempt(monitoring.AttemptLimitExceeded, 0)
		logger.Log.Info("quiz attempt rejected", append(fields, zap.Int("attempt_count", limitErr.Count))...)
	case errors.Is(err, util.ErrNotFound), errors.Is(err, util.ErrEmptyQuestionnaire):
		monitoring.ObserveAttempt(monitoring.AttemptRejected, 0)
		logger.Log.Info("quiz attempt rejected", append(fields, zap.Error(err))...)
	default:
		monitoring.ObserveAttempt(monitoring.AttemptFailed, 0)
		logger.Log.Error("quiz attempt failed", append(fields, zap.Error(err))...)
	}
}

// CourseProgress 进度、总分、满分与各问卷明细
type CourseProgress struct {
	CourseID string          `json:"courseId"`
	Formula  grading.Formula `json:"formula"`
	grading.Progress
	Questionnaires []grading.QuestionnaireProgress `json:"questionnaires"`
}

// ComputeCourseProgress 按章节挂载的问卷汇总用户最近一次答题成绩
func (s *QuizService) ComputeCourseProgress(ctx context.Context, userID uint, courseID string) (res *CourseProgress, err error) {
	ctx, span := tracing.Start(ctx, "QuizService.ComputeCourseProgress",
		attribute.Int64("user_id", int64(userID)),
		attribute.String("course_id", courseID),
	)
	defer func() { tracing.End(span, err) }()

	if _, err = s.Courses.FindCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	formula := s.ProgressFormula()
	res = &CourseProgress{
		CourseID:       courseID,
		Formula:        formula,
		Questionnaires: []grading.QuestionnaireProgress{},
	}

	ids, err := s.Courses.LinkedQuestionnaireIDs(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return res, nil
	}

	counts, err := s.Questionnaires.CountQuestions(ctx, ids)
	if err != nil {
		return nil, err
	}
	scores, err := s.Attempts.LatestScores(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		item := grading.QuestionnaireProgress{QuestionnaireID: id, QuestionCount: counts[id]}
		if score, ok := scores[id]; ok {
			item.LatestScore = &score
		}
		res.Questionnaires = append(res.Questionnaires, item)
	}
	res.Progress = grading.AggregateProgress(res.Questionnaires, formula)
	return res, nil
}

// AssignQuestionnaire 把问卷放到课程（及可选章节）下，所有写入在一个事务中完成
func (s *QuizService) AssignQuestionnaire(ctx context.Context, questionnaireID, courseID string, chapterID *string) (*model.Questionnaire, error) {
	var q *model.Questionnaire
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		q, err = s.assignQuestionnaire(ctx, tx, questionnaireID, courseID, chapterID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("questionnaire assigned",
		zap.String("questionnaire_id", q.ID),
		zap.String("course_id", q.CourseID),
		zap.Stringp("chapter_id", q.ChapterID),
	)
	return q, nil
}

// assignQuestionnaire 校验全部通过后才开始写入
func (s *QuizService) assignQuestionnaire(ctx context.Context, tx *gorm.DB, questionnaireID, courseID string, chapterID *string) (*model.Questionnaire, error) {
	questionnaires := s.Questionnaires.WithTx(tx)
	courses := s.Courses.WithTx(tx)

	q, err := questionnaires.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if _, err := courses.FindCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	if chapterID != nil && *chapterID == "" {
		chapterID = nil
	}
	if chapterID != nil {
		chapter, err := courses.FindChapterByID(ctx, *chapterID)
		if err != nil {
			return nil, err
		}
		if chapter.CourseID != courseID {
			return nil, fmt.Errorf("chapter %q belongs to course %q, not %q: %w",
				chapter.ID, chapter.CourseID, courseID, util.ErrCourseMismatch)
		}
	}

	if _, _, err := questionnaires.EnsureCourseLink(ctx, courseID, q.ID); err != nil {
		return nil, err
	}
	if err := questionnaires.DeactivateOtherLinks(ctx, q.ID, courseID); err != nil {
		return nil, err
	}

	keepChapter := ""
	if chapterID != nil {
		keepChapter = *chapterID
		if err := questionnaires.ClearChapter(ctx, keepChapter, q.ID); err != nil {
			return nil, err
		}
		if err := courses.SetChapterQuestionnaire(ctx, keepChapter, q.ID); err != nil {
			return nil, err
		}
	}
	if err := courses.DetachQuestionnaire(ctx, q.ID, keepChapter); err != nil {
		return nil, err
	}

	q.CourseID = courseID
	q.ChapterID = chapterID
	if err := questionnaires.UpdatePlacement(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// LearnerQuestion 不含正确答案
type LearnerQuestion struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Position int      `json:"position"`
}

type LearnerQuestionnaire struct {
	ID                string            `json:"id"`
	CourseID          string            `json:"courseId"`
	ChapterID         *string           `json:"chapterId"`
	Title             string            `json:"title"`
	IsRequired        bool              `json:"isRequired"`
	MinScore          int               `json:"minScore"`
	Questions         []LearnerQuestion `json:"questions"`
	AttemptCount      int               `json:"attemptCount"`
	MaxAttempts       int               `json:"maxAttempts"`
	RemainingAttempts int               `json:"remainingAttempts"`
	LatestScore       *int              `json:"latestScore"`
	Passed            bool              `json:"passed"`
}

func (s *QuizService) GetQuestionnaireForLearner(ctx context.Context, userID uint, questionnaireID string) (*LearnerQuestionnaire, error) {
	q, err := s.Questionnaires.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	questions, err := s.Questionnaires.ListQuestions(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	count, err := s.Attempts.CountByUserAndQuestionnaire(ctx, userID, questionnaireID)
	if err != nil {
		return nil, err
	}
	latest, err := s.Attempts.FindLatest(ctx, userID, questionnaireID)
	if err != nil {
		return nil, err
	}

	res := &LearnerQuestionnaire{
		ID:           q.ID,
		CourseID:     q.CourseID,
		ChapterID:    q.ChapterID,
		Title:        q.Title,
		IsRequired:   q.IsRequired,
		MinScore:     q.MinScore,
		Questions:    make([]LearnerQuestion, 0, len(questions)),
		AttemptCount: count,
		MaxAttempts:  s.maxAttempts,
	}
	if count < s.maxAttempts {
		res.RemainingAttempts = s.maxAttempts - count
	}
	if latest != nil {
		score := latest.Score
		res.LatestScore = &score
		res.Passed = score >= q.MinScore
	}
	for _, qu := range questions {
		options := []string(qu.Options)
		if options == nil {
			options = []string{}
		}
		res.Questions = append(res.Questions, LearnerQuestion{
			ID:       qu.ID,
			Text:     qu.Text,
			Options:  options,
			Position: qu.Position,
		})
	}
	return res, nil
}

// ListAttempts 答题历史，最新的在前
func (s *QuizService) ListAttempts(ctx context.Context, userID uint, questionnaireID string) ([]model.QuizAttempt, error) {
	if _, err := s.Questionnaires.FindByID(ctx, questionnaireID); err != nil {
		return nil, err
	}
	return s.Attempts.ListByUserAndQuestionnaire(ctx, userID, questionnaireID)
}
