package models

import "gorm.io/gorm"

// Answer is a raw recorded answer. Resubmitting the same question appends a
// new row; grading keeps only the latest row per question.
type Answer struct {
	gorm.Model
	StudentID      uint   `json:"student_id" gorm:"index:idx_answers_student_exam;not null"`
	ExamID         uint   `json:"exam_id" gorm:"index:idx_answers_student_exam;not null"`
	QuestionID     uint   `json:"question_id" gorm:"index;not null"`
	SelectedOption string `json:"selected_option"`
}
