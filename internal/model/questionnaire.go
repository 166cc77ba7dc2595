package model

import "time"

const DefaultMinScore = 80

// swagger:model Questionnaire
type Questionnaire struct {
	UUIDBase
	CourseID   string     `gorm:"index;type:varchar(36);not null" json:"courseId"`
	ChapterID  *string    `gorm:"index;type:varchar(36)" json:"chapterId"`
	Title      string     `gorm:"size:255;not null" json:"title"`
	IsRequired bool       `gorm:"default:false" json:"isRequired"`
	MinScore   int        `gorm:"default:80" json:"minScore"`
	Questions  []Question `gorm:"foreignKey:QuestionnaireID" json:"questions,omitempty"`
}

func (Questionnaire) TableName() string {
	return "questionnaires"
}

// swagger:model Question
type Question struct {
	UUIDBase
	QuestionnaireID string     `gorm:"index;type:varchar(36);not null" json:"questionnaireId"`
	Text            string     `gorm:"type:text;not null" json:"text"`
	Options         StringList `gorm:"type:json" json:"options"`
	CorrectAnswer   string     `gorm:"type:text;not null" json:"correctAnswer"`
	Position        int        `gorm:"default:0" json:"position"`
}

func (Question) TableName() string {
	return "questions"
}

// CourseQuestionnaire 问卷在课程大纲中的位置，与章节挂载无关
type CourseQuestionnaire struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID        string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_course_questionnaire" json:"courseId"`
	QuestionnaireID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_course_questionnaire" json:"questionnaireId"`
	IsActive        bool      `gorm:"default:true" json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (CourseQuestionnaire) TableName() string {
	return "course_questionnaires"
}
