package examsession

import (
	"examdesk/models"
	"time"
)

// IsWithinWindow reports whether answers may still be submitted for the exam
// at instant now. Only the end of the window is enforced: a submission made
// before the scheduled start is accepted, and the window closes exactly at
// start + duration. The missing lower bound mirrors the documented behavior
// of the legacy system; see DESIGN.md before tightening it.
func IsWithinWindow(exam *models.Exam, now time.Time) bool {
	return now.Before(exam.WindowEnd())
}
