package utils

import (
	"examdesk/database"
	"examdesk/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[EXAM-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processExamReminders emails every enrolled student about exams starting
// within the next 24 hours. Notification only; attempt state is never
// touched here.
func processExamReminders() {
	db := database.Database.Db
	now := time.Now()

	var exams []models.Exam
	if err := db.Where("start_at > ? AND start_at <= ? AND is_deleted = ?", now, now.Add(24*time.Hour), false).
		Find(&exams).Error; err != nil {
		logScheduler("Error fetching upcoming exams: " + err.Error())
		return
	}

	for _, exam := range exams {
		var enrollments []models.Enrollment
		if err := db.Where("exam_id = ?", exam.ID).Find(&enrollments).Error; err != nil {
			logScheduler("Error fetching enrollments: " + err.Error())
			continue
		}

		for _, enrollment := range enrollments {
			var student models.Student
			if err := db.Select("name", "email").First(&student, enrollment.StudentID).Error; err != nil || student.Email == "" {
				continue
			}
			SendExamReminderEmail(student.Email, student.Name, exam.ExamTitle, exam.StartAt, exam.DurationMinutes)
		}
	}
}

// StartExamReminderScheduler runs hourly
func StartExamReminderScheduler(c *cron.Cron) {
	c.AddFunc("0 * * * *", func() {
		processExamReminders()
	})
	logScheduler("Exam reminder scheduler started - runs hourly")
}

// InitializeSchedulers initializes all background schedulers
func InitializeSchedulers() *cron.Cron {
	logScheduler("Initializing schedulers...")

	c := cron.New()
	StartExamReminderScheduler(c)
	c.Start()

	logScheduler("All schedulers initialized successfully")
	return c
}
