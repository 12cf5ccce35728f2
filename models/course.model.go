package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	CourseCode        string `json:"course_code" gorm:"uniqueIndex;not null"`
	CourseTitle       string `json:"course_title"`
	CourseDescription string `json:"course_description"`
	Department        string `json:"department"`
	Level             int    `json:"level"`
	Credits           int    `json:"credits"`
	IsDeleted         bool   `gorm:"default:false"`
}
