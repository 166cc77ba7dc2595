package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerMap 题目ID -> 用户原始答案
type AnswerMap map[string]string

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		m = AnswerMap{}
	}
	return jsonValue(map[string]string(m))
}

func (m *AnswerMap) Scan(value interface{}) error {
	return scanJSON(value, (*map[string]string)(m))
}

// AnswerDetail 单题判分明细，UserAnswer 为 nil 表示未作答
type AnswerDetail struct {
	QuestionID    string  `json:"questionId"`
	UserAnswer    *string `json:"userAnswer"`
	CorrectAnswer string  `json:"correctAnswer"`
	IsCorrect     bool    `json:"isCorrect"`
}

type AnswerDetailList []AnswerDetail

func (l AnswerDetailList) Value() (driver.Value, error) {
	if l == nil {
		l = AnswerDetailList{}
	}
	return jsonValue([]AnswerDetail(l))
}

func (l *AnswerDetailList) Scan(value interface{}) error {
	return scanJSON(value, (*[]AnswerDetail)(l))
}

// QuizAttempt 只追加的答题记录，创建后不再修改或删除
// swagger:model QuizAttempt
type QuizAttempt struct {
	ID              string           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID          uint             `gorm:"not null;uniqueIndex:idx_attempt_user_quiz_no,priority:1" json:"userId"`
	QuestionnaireID string           `gorm:"type:varchar(36);not null;uniqueIndex:idx_attempt_user_quiz_no,priority:2" json:"questionnaireId"`
	AttemptNumber   int              `gorm:"not null;uniqueIndex:idx_attempt_user_quiz_no,priority:3" json:"attemptNumber"`
	Score           int              `gorm:"not null" json:"score"`
	Answers         AnswerMap        `gorm:"type:json" json:"answers"`
	Detail          AnswerDetailList `gorm:"type:json" json:"detail"`
	CreatedAt       time.Time        `gorm:"index" json:"createdAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

func (a *QuizAttempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
