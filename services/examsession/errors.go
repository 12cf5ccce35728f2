package examsession

import "errors"

// Sentinel errors returned by the session service. Controllers translate
// these into HTTP statuses; the service itself is transport-agnostic.
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrCourseNotFound    = errors.New("course not found")
	ErrExamNotFound      = errors.New("exam not found")
	ErrAlreadyEnrolled   = errors.New("student is already enrolled in this exam")
	ErrNotEnrolled       = errors.New("student is not enrolled in this exam")
	ErrAttemptNotFound   = errors.New("no attempt exists for this student and exam")
	ErrAlreadySubmitted  = errors.New("exam has already been submitted")
	ErrNoAnswers         = errors.New("answers must be a non-empty list")
	ErrInvalidAnswer     = errors.New("each answer must include a question id and a selected option")
	ErrQuestionNotInExam = errors.New("answer refers to a question that is not part of this exam")
	ErrTimeUp            = errors.New("time's up! you cannot submit answers anymore")
)
