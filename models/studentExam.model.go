package models

import "gorm.io/gorm"

// StudentExam is the attempt record for one (student, exam) pair. It exists
// iff the student is enrolled in that exam, and Submitted only ever goes
// false -> true.
type StudentExam struct {
	gorm.Model
	StudentID uint `json:"student_id" gorm:"uniqueIndex:idx_student_exams_pair;not null"`
	ExamID    uint `json:"exam_id" gorm:"uniqueIndex:idx_student_exams_pair;not null"`
	Submitted bool `json:"submitted" gorm:"default:false"`
	Score     int  `json:"score" gorm:"default:0"`
}
