package models

import (
	"time"

	"gorm.io/gorm"
)

// Exam belongs to exactly one course. ExamCode is unique within that
// course, not globally. The submission window is [StartAt, StartAt+Duration).
type Exam struct {
	gorm.Model
	ExamCode        string    `json:"exam_code" gorm:"uniqueIndex:idx_exams_course_code;not null"`
	CourseID        uint      `json:"course_id" gorm:"uniqueIndex:idx_exams_course_code;index;not null"`
	ExamTitle       string    `json:"exam_title"`
	StartAt         time.Time `json:"start_at"`
	DurationMinutes int       `json:"duration_minutes"`
	IsDeleted       bool      `gorm:"default:false"`
}

// WindowEnd is the instant after which answer submission is rejected.
func (e *Exam) WindowEnd() time.Time {
	return e.StartAt.Add(time.Duration(e.DurationMinutes) * time.Minute)
}
