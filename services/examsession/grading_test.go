package examsession

import (
	"testing"

	"examdesk/models"

	"github.com/stretchr/testify/assert"
)

func TestGradeForPercentage(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		want       string
	}{
		{name: "perfect score", percentage: 100, want: "A"},
		{name: "exactly 90", percentage: 90, want: "A"},
		{name: "just below 90", percentage: 89.99, want: "B"},
		{name: "exactly 80", percentage: 80, want: "B"},
		{name: "just below 80", percentage: 79.99, want: "C"},
		{name: "exactly 70", percentage: 70, want: "C"},
		{name: "just below 70", percentage: 69.99, want: "D"},
		{name: "exactly 60", percentage: 60, want: "D"},
		{name: "just below 60", percentage: 59.99, want: "F"},
		{name: "zero", percentage: 0, want: "F"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GradeForPercentage(tc.percentage))
		})
	}
}

func TestScoreAnswers(t *testing.T) {
	key := map[uint]string{
		1: "Paris",
		2: "4",
		3: "Blue",
		4: "Go",
	}

	t.Run("three of four correct", func(t *testing.T) {
		answers := []models.Answer{
			{QuestionID: 1, SelectedOption: "Paris"},
			{QuestionID: 2, SelectedOption: "4"},
			{QuestionID: 3, SelectedOption: "Red"},
			{QuestionID: 4, SelectedOption: "Go"},
		}
		score, answered := ScoreAnswers(answers, key)
		assert.Equal(t, 3, score)
		assert.Equal(t, 4, answered)
	})

	t.Run("latest answer per question wins", func(t *testing.T) {
		answers := []models.Answer{
			{QuestionID: 1, SelectedOption: "London"},
			{QuestionID: 1, SelectedOption: "Paris"},
		}
		score, answered := ScoreAnswers(answers, key)
		assert.Equal(t, 1, score)
		assert.Equal(t, 1, answered)

		// Reversed order: the wrong answer came last, so it counts.
		answers = []models.Answer{
			{QuestionID: 1, SelectedOption: "Paris"},
			{QuestionID: 1, SelectedOption: "London"},
		}
		score, answered = ScoreAnswers(answers, key)
		assert.Equal(t, 0, score)
		assert.Equal(t, 1, answered)
	})

	t.Run("duplicates never count twice", func(t *testing.T) {
		answers := []models.Answer{
			{QuestionID: 1, SelectedOption: "Paris"},
			{QuestionID: 1, SelectedOption: "Paris"},
			{QuestionID: 1, SelectedOption: "Paris"},
		}
		score, answered := ScoreAnswers(answers, key)
		assert.Equal(t, 1, score)
		assert.Equal(t, 1, answered)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		answers := []models.Answer{
			{QuestionID: 1, SelectedOption: "paris"},
		}
		score, answered := ScoreAnswers(answers, key)
		assert.Equal(t, 0, score)
		assert.Equal(t, 1, answered)
	})

	t.Run("question with empty key never scores", func(t *testing.T) {
		essayKey := map[uint]string{5: ""}
		answers := []models.Answer{
			{QuestionID: 5, SelectedOption: ""},
			{QuestionID: 5, SelectedOption: "free text"},
		}
		score, answered := ScoreAnswers(answers, essayKey)
		assert.Equal(t, 0, score)
		assert.Equal(t, 1, answered)
	})

	t.Run("answer to a question outside the key is ignored entirely", func(t *testing.T) {
		answers := []models.Answer{
			{QuestionID: 99, SelectedOption: "anything"},
		}
		score, answered := ScoreAnswers(answers, key)
		assert.Equal(t, 0, score)
		assert.Equal(t, 0, answered)
	})
}

func TestGradeAnswers(t *testing.T) {
	key := map[uint]string{
		1: "A",
		2: "B",
		3: "C",
		4: "D",
	}

	t.Run("three of four is 75 percent, grade C", func(t *testing.T) {
		answers := []models.Answer{
			{QuestionID: 1, SelectedOption: "A"},
			{QuestionID: 2, SelectedOption: "B"},
			{QuestionID: 3, SelectedOption: "C"},
			{QuestionID: 4, SelectedOption: "wrong"},
		}
		score, grade := GradeAnswers(answers, key)
		assert.Equal(t, 3, score)
		assert.Equal(t, "C", grade)
	})

	t.Run("zero answers is a defined grade, not a crash", func(t *testing.T) {
		score, grade := GradeAnswers(nil, key)
		assert.Equal(t, 0, score)
		assert.Equal(t, "F", grade)
	})

	t.Run("answer from another exam does not dilute the percentage", func(t *testing.T) {
		answers := []models.Answer{
			{QuestionID: 1, SelectedOption: "A"},
			{QuestionID: 99, SelectedOption: "A"}, // not in this exam's key
		}
		score, grade := GradeAnswers(answers, key)
		assert.Equal(t, 1, score)
		assert.Equal(t, "A", grade) // 1 of 1 answered, not 1 of 2
	})

	t.Run("single correct answer scores 100 percent", func(t *testing.T) {
		// Percentage is over answered questions only; skipping the rest of
		// the exam does not dilute it. Preserved legacy behavior.
		answers := []models.Answer{
			{QuestionID: 1, SelectedOption: "A"},
		}
		score, grade := GradeAnswers(answers, key)
		assert.Equal(t, 1, score)
		assert.Equal(t, "A", grade)
	})
}
