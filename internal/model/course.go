package model

// swagger:model Course
type Course struct {
	UUIDBase
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	InstructorID uint      `gorm:"index" json:"instructorId"`
	IsPublished  bool      `gorm:"default:false" json:"isPublished"`
	Chapters     []Chapter `gorm:"foreignKey:CourseID" json:"chapters,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Chapter
type Chapter struct {
	UUIDBase
	CourseID        string  `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Title           string  `gorm:"size:255;not null" json:"title"`
	Position        int     `gorm:"default:0" json:"position"`
	QuestionnaireID *string `gorm:"index;type:varchar(36)" json:"questionnaireId"`
}

func (Chapter) TableName() string {
	return "chapters"
}
