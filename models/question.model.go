package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeMCQ   = "MCQ"
	QuestionTypeEssay = "ESSAY"
)

// Question belongs to one exam and, redundantly, the exam's course.
// CorrectAnswer is the answer key: it must never be serialized into any
// student-facing response, hence the json:"-" tag.
type Question struct {
	gorm.Model
	QuestionText  string         `json:"question_text"`
	QuestionType  string         `json:"question_type"` // MCQ, ESSAY
	Options       datatypes.JSON `json:"options"`       // JSON array of option strings (MCQ only)
	CorrectAnswer string         `json:"-"`
	ExamID        uint           `json:"exam_id" gorm:"index;not null"`
	CourseID      uint           `json:"course_id" gorm:"index;not null"`
	IsDeleted     bool           `gorm:"default:false"`
}
