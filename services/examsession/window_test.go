package examsession

import (
	"testing"
	"time"

	"examdesk/models"

	"github.com/stretchr/testify/assert"
)

func TestIsWithinWindow(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	exam := &models.Exam{StartAt: start, DurationMinutes: 60}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		// The lower bound is deliberately not enforced: a submission before
		// the scheduled start is accepted.
		{name: "before scheduled start", now: start.Add(-2 * time.Hour), want: true},
		{name: "exactly at start", now: start, want: true},
		{name: "inside the window", now: start.Add(30 * time.Minute), want: true},
		{name: "one second before end", now: start.Add(60*time.Minute - time.Second), want: true},
		{name: "exactly at end", now: start.Add(60 * time.Minute), want: false},
		{name: "after end", now: start.Add(61 * time.Minute), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsWithinWindow(exam, tc.now))
		})
	}
}
