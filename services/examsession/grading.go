package examsession

import "examdesk/models"

// GradeForPercentage maps a percentage to a letter grade. Thresholds are
// inclusive lower bounds: >=90 A, >=80 B, >=70 C, >=60 D, else F.
func GradeForPercentage(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

// ScoreAnswers scores recorded answers against the answer key. Raw answer
// rows may contain several entries for one question; the rows must be passed
// in insertion order and the latest entry per question wins. A question with
// an empty key (essay questions have no stored answer key) never scores.
// Answers to questions absent from the key belong to some other exam and are
// ignored entirely: they count toward neither score nor answered.
//
// Returns the number of correct answers and the number of distinct exam
// questions answered.
func ScoreAnswers(answers []models.Answer, keyByQuestion map[uint]string) (score, answered int) {
	effective := make(map[uint]string, len(answers))
	for _, a := range answers {
		effective[a.QuestionID] = a.SelectedOption
	}

	for questionID, selected := range effective {
		key, ok := keyByQuestion[questionID]
		if !ok {
			continue
		}
		answered++
		if key != "" && key == selected {
			score++
		}
	}

	return score, answered
}

// GradeAnswers derives the final score and letter grade for a set of raw
// answer rows. Zero answered questions is an explicit special case: the
// percentage is undefined, so the grade is F with score 0 rather than a
// division by zero.
//
// The percentage is computed over answered questions only, not over every
// question in the exam. Unanswered questions are not penalized; this is
// preserved legacy behavior (see DESIGN.md).
func GradeAnswers(answers []models.Answer, keyByQuestion map[uint]string) (score int, grade string) {
	score, answered := ScoreAnswers(answers, keyByQuestion)
	if answered == 0 {
		return 0, "F"
	}

	percentage := float64(score) / float64(answered) * 100
	return score, GradeForPercentage(percentage)
}
