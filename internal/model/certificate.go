package model

import (
	"database/sql/driver"
	"time"
)

// 证书模板中可用的占位符
const (
	PlaceholderStudentName  = "student_name"
	PlaceholderCourseTitle  = "course_title"
	PlaceholderIssuedAt     = "issued_at"
	PlaceholderSerialNumber = "serial_number"
	PlaceholderScore        = "score"
)

var PlaceholderKeys = map[string]bool{
	PlaceholderStudentName:  true,
	PlaceholderCourseTitle:  true,
	PlaceholderIssuedAt:     true,
	PlaceholderSerialNumber: true,
	PlaceholderScore:        true,
}

// Placeholder X/Y 为相对证书画布的百分比坐标
type Placeholder struct {
	Key      string  `json:"key" yaml:"key"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	FontSize int     `json:"fontSize" yaml:"font_size"`
}

type PlaceholderList []Placeholder

func (l PlaceholderList) Value() (driver.Value, error) {
	if l == nil {
		l = PlaceholderList{}
	}
	return jsonValue([]Placeholder(l))
}

func (l *PlaceholderList) Scan(value interface{}) error {
	return scanJSON(value, (*[]Placeholder)(l))
}

// swagger:model CertificateTemplate
type CertificateTemplate struct {
	UUIDBase
	CourseID     string          `gorm:"type:varchar(36);not null;uniqueIndex" json:"courseId"`
	Title        string          `gorm:"size:255" json:"title"`
	Placeholders PlaceholderList `gorm:"type:json" json:"placeholders"`
}

func (CertificateTemplate) TableName() string {
	return "certificate_templates"
}

// swagger:model Certificate
type Certificate struct {
	UUIDBase
	UserID       uint      `gorm:"not null;uniqueIndex:idx_certificate_user_course" json:"userId"`
	CourseID     string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_certificate_user_course" json:"courseId"`
	SerialNumber string    `gorm:"size:64;not null;uniqueIndex" json:"serialNumber"`
	Progress     int       `json:"progress"`
	FileURL      string    `gorm:"size:512" json:"fileUrl"`
	IssuedAt     time.Time `json:"issuedAt"`
}

func (Certificate) TableName() string {
	return "certificates"
}
