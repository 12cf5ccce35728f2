package utils

import (
	"examdesk/config"
	"examdesk/models"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// PushResultWebhook posts a newly created result to the configured external
// portal. Fire-and-forget: failures are logged, never retried, and never
// affect the finalize path.
func PushResultWebhook(result *models.Result) {
	url := config.AppConfig.ResultWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"student_id": result.StudentID,
			"exam_id":    result.ExamID,
			"course_id":  result.CourseID,
			"score":      result.Score,
			"grade":      result.Grade,
		}).
		Post(url)
	if err != nil {
		log.Printf("Error pushing result webhook: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Result webhook rejected: status %d", resp.StatusCode())
	}
}
