package models

import "gorm.io/gorm"

// Result is the write-once outcome of a finalized attempt. The unique index
// on (student_id, exam_id) is the backstop against two concurrent finalize
// calls both inserting a row.
type Result struct {
	gorm.Model
	StudentID uint   `json:"student_id" gorm:"uniqueIndex:idx_results_pair;not null"`
	ExamID    uint   `json:"exam_id" gorm:"uniqueIndex:idx_results_pair;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Score     int    `json:"score"`
	Grade     string `json:"grade"`
}
