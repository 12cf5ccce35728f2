package models

import "gorm.io/gorm"

// Enrollment is the ternary relation between a student, a course and one of
// the course's exams. It is created by admin action and never mutated.
type Enrollment struct {
	gorm.Model
	StudentID uint `json:"student_id" gorm:"uniqueIndex:idx_enrollments_triple;not null"`
	CourseID  uint `json:"course_id" gorm:"uniqueIndex:idx_enrollments_triple;not null"`
	ExamID    uint `json:"exam_id" gorm:"uniqueIndex:idx_enrollments_triple;not null"`
}
