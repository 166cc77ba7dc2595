package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "app-test-secret"

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t       *testing.T
	app     *App
	teacher string
	student string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger.InitNop()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", Mode: "test"},
		JWT:     config.JWTConfig{Secret: testSecret, ExpireTime: time.Hour},
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()},
		Quiz:    config.DefaultQuizConfig(),
	}

	teacher, err := util.GenerateJWT(1, model.Teacher, "Grace", testSecret, time.Hour)
	require.NoError(t, err)
	student, err := util.GenerateJWT(2, model.Student, "Ada", testSecret, time.Hour)
	require.NoError(t, err)

	return &testServer{t: t, app: newApp(cfg, db, nil), teacher: teacher, student: student}
}

func (s *testServer) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.serve(req)
}

func (s *testServer) serve(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decode(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

type questionnaireView struct {
	ID        string  `json:"id"`
	ChapterID *string `json:"chapterId"`
	Questions []struct {
		ID            string `json:"id"`
		CorrectAnswer string `json:"correctAnswer"`
	} `json:"questions"`
}

// seedCourse 教师创建课程、章节和挂在章节上的两题问卷
func (s *testServer) seedCourse() (courseID, chapterID string, q questionnaireView) {
	t := s.t
	w, env := s.do(http.MethodPost, "/api/teacher/courses", s.teacher, obj{"title": "Geography"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var course model.Course
	decode(t, env, &course)

	w, env = s.do(http.MethodPost, "/api/teacher/courses/"+course.ID+"/chapters", s.teacher, obj{"title": "Europe", "position": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var chapter model.Chapter
	decode(t, env, &chapter)

	w, env = s.do(http.MethodPost, "/api/teacher/questionnaires", s.teacher, obj{
		"courseId":   course.ID,
		"chapterId":  chapter.ID,
		"title":      "Capitals",
		"isRequired": true,
		"questions": []obj{
			{"text": "Capital of France?", "options": []string{"Paris", "Lyon"}, "answer": "Paris"},
			{"text": "Answer to everything?", "answer": "42"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, env, &q)
	return course.ID, chapter.ID, q
}

type obj = map[string]interface{}

func TestSubmitQuizFlow(t *testing.T) {
	s := newTestServer(t)
	courseID, _, q := s.seedCourse()
	require.Len(t, q.Questions, 2)

	// 学员视图不包含正确答案
	w, env := s.do(http.MethodGet, "/api/questionnaires/"+q.ID, s.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view questionnaireView
	decode(t, env, &view)
	for _, question := range view.Questions {
		assert.Empty(t, question.CorrectAnswer)
	}

	answers := obj{q.Questions[0].ID: " paris", q.Questions[1].ID: "41"}
	for i := 1; i <= 3; i++ {
		w, env = s.do(http.MethodPost, "/api/submit-quiz", s.student, obj{"questionnaireId": q.ID, "answers": answers})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var res struct {
			Success        bool `json:"success"`
			Score          int  `json:"score"`
			AttemptCount   int  `json:"attemptCount"`
			CorrectAnswers int  `json:"correctAnswers"`
			TotalQuestions int  `json:"totalQuestions"`
			Feedback       struct {
				Questions []model.AnswerDetail `json:"questions"`
			} `json:"feedback"`
		}
		decode(t, env, &res)
		assert.True(t, res.Success)
		assert.Equal(t, 50, res.Score)
		assert.Equal(t, i, res.AttemptCount)
		assert.Equal(t, 1, res.CorrectAnswers)
		assert.Equal(t, 2, res.TotalQuestions)
		assert.Len(t, res.Feedback.Questions, 2)
	}

	w, env = s.do(http.MethodPost, "/api/submit-quiz", s.student, obj{"questionnaireId": q.ID, "answers": answers})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Maximum quiz attempts reached", env.Message)
	var limit struct {
		Error        string `json:"error"`
		AttemptCount int    `json:"attemptCount"`
	}
	decode(t, env, &limit)
	assert.Equal(t, "Maximum quiz attempts reached", limit.Error)
	assert.Equal(t, 3, limit.AttemptCount)

	w, env = s.do(http.MethodGet, "/api/course-progress?courseId="+courseID, s.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var progress struct {
		Progress   int `json:"progress"`
		TotalScore int `json:"totalScore"`
		MaxScore   int `json:"maxScore"`
	}
	decode(t, env, &progress)
	assert.Equal(t, 2500, progress.Progress)
	assert.Equal(t, 50, progress.TotalScore)
	assert.Equal(t, 2, progress.MaxScore)

	w, env = s.do(http.MethodGet, "/api/questionnaires/"+q.ID+"/attempts", s.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Total int `json:"total"`
	}
	decode(t, env, &history)
	assert.Equal(t, 3, history.Total)
}

func TestSubmitQuizErrors(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodPost, "/api/submit-quiz", "", obj{"questionnaireId": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodPost, "/api/submit-quiz", s.student, obj{"answers": obj{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPost, "/api/submit-quiz", s.student, obj{"questionnaireId": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodGet, "/api/course-progress", s.student, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodGet, "/api/course-progress?courseId=missing", s.student, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignQuestionnaireEndpoint(t *testing.T) {
	s := newTestServer(t)
	courseID, chapterID, q := s.seedCourse()

	w, _ := s.do(http.MethodPost, "/api/teacher/assign-questionnaire", s.student, obj{"questionnaireId": q.ID, "courseId": courseID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := s.do(http.MethodPost, "/api/teacher/assign-questionnaire", s.teacher, obj{
		"questionnaireId": q.ID, "courseId": courseID, "chapterId": chapterID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var assigned questionnaireView
	decode(t, env, &assigned)
	require.NotNil(t, assigned.ChapterID)
	assert.Equal(t, chapterID, *assigned.ChapterID)

	w, env = s.do(http.MethodPost, "/api/teacher/courses", s.teacher, obj{"title": "History"})
	require.Equal(t, http.StatusCreated, w.Code)
	var other model.Course
	decode(t, env, &other)

	w, _ = s.do(http.MethodPost, "/api/teacher/assign-questionnaire", s.teacher, obj{
		"questionnaireId": q.ID, "courseId": other.ID, "chapterId": chapterID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPost, "/api/teacher/assign-questionnaire", s.teacher, obj{
		"questionnaireId": "missing", "courseId": courseID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportQuestionnaireEndpoint(t *testing.T) {
	s := newTestServer(t)
	courseID, _, _ := s.seedCourse()

	upload := func(filename, content string) (*httptest.ResponseRecorder, envelope) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/teacher/courses/"+courseID+"/questionnaires/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+s.teacher)
		return s.serve(req)
	}

	bundle := "title: Rivers\nquestions:\n  - text: Longest river?\n    answer: Nile\n"
	w, env := upload("rivers.yaml", bundle)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var q questionnaireView
	decode(t, env, &q)
	assert.Len(t, q.Questions, 1)

	w, _ = upload("rivers.json", bundle)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = upload("broken.yml", "title: [")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCertificateEndpoints(t *testing.T) {
	s := newTestServer(t)
	courseID, _, q := s.seedCourse()

	w, _ := s.do(http.MethodPost, "/api/courses/"+courseID+"/certificate", s.student, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPut, "/api/teacher/courses/"+courseID+"/certificate-template", s.teacher, obj{
		"title":        "Certificate of Geography",
		"placeholders": []obj{{"key": "student_name", "x": 50, "y": 40, "fontSize": 28}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = s.do(http.MethodPost, "/api/submit-quiz", s.student, obj{
		"questionnaireId": q.ID,
		"answers":         obj{q.Questions[0].ID: "Paris", q.Questions[1].ID: "42"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := s.do(http.MethodPost, "/api/courses/"+courseID+"/certificate", s.student, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cert model.Certificate
	decode(t, env, &cert)
	assert.NotEmpty(t, cert.SerialNumber)

	w, env = s.do(http.MethodGet, "/api/certificates", s.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Items []model.Certificate `json:"items"`
	}
	decode(t, env, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, cert.SerialNumber, list.Items[0].SerialNumber)
}

func TestHealthAndConfigReload(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	cfg := *s.app.Config
	cfg.Quiz.ProgressFormula = config.ProgressFormulaAverage
	s.app.ApplyConfig(&cfg)
	assert.Equal(t, config.ProgressFormulaAverage, string(s.app.services.quiz.ProgressFormula()))
}
