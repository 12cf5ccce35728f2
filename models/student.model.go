package models

import "gorm.io/gorm"

type Student struct {
	gorm.Model
	StudentID  string `json:"student_id" gorm:"uniqueIndex;not null"` // admin-assigned registration number
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"unique;not null"`
	Department string `json:"department"`
	Level      int    `json:"level"`
	Password   string `json:"-" gorm:"not null"`
	Role       string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, ADMIN
	IsDeleted  bool   `gorm:"default:false"`
}
