package examsession

import (
	"errors"
	"time"

	"examdesk/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service owns the exam session lifecycle: enrollment, answer recording,
// finalize-and-grade, and result reads. All coordination happens through the
// database; the service keeps no cross-request state.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// AnswerInput is one submitted answer entry.
type AnswerInput struct {
	QuestionID     uint   `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

// QuestionView is the student-facing projection of a question. It must never
// carry the answer key.
type QuestionView struct {
	ID           uint           `json:"id"`
	QuestionText string         `json:"question_text"`
	QuestionType string         `json:"question_type"`
	Options      datatypes.JSON `json:"options"`
}

// ExamPayload is what a student sees when opening an exam.
type ExamPayload struct {
	ExamTitle       string         `json:"exam_title"`
	DurationMinutes int            `json:"duration_minutes"`
	Questions       []QuestionView `json:"questions"`
}

// ResultView is a result row enriched with course and exam identifiers.
type ResultView struct {
	ID         uint   `json:"id"`
	StudentID  uint   `json:"student_id"`
	ExamID     uint   `json:"exam_id"`
	CourseID   uint   `json:"course_id"`
	Score      int    `json:"score"`
	Grade      string `json:"grade"`
	CourseCode string `json:"course_code"`
	ExamTitle  string `json:"exam_title"`
}

// Enroll records that a student may attempt the given exam of the given
// course. The Enrollment row and its StudentExam attempt record are created
// in one transaction: both persist or neither does.
func (s *Service) Enroll(studentID, courseID, examID uint) (*models.Enrollment, error) {
	var student models.Student
	if err := s.db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	var course models.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	// The exam must belong to the course named in the request.
	var exam models.Exam
	if err := s.db.Where("id = ? AND course_id = ? AND is_deleted = ?", examID, courseID, false).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	var existing models.Enrollment
	err := s.db.Where("student_id = ? AND course_id = ? AND exam_id = ?", studentID, courseID, examID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		ExamID:    examID,
	}
	attempt := models.StudentExam{
		StudentID: studentID,
		ExamID:    examID,
		Submitted: false,
		Score:     0,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Create(&attempt).Error
	}); err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// LoadExam returns the exam content for an attempting student: title,
// duration and the questions without their answer keys. A student without an
// attempt record gets ErrNotEnrolled, not ErrExamNotFound, so an
// unauthorized caller cannot probe which exams exist.
func (s *Service) LoadExam(studentID, examID uint) (*ExamPayload, error) {
	var attempt models.StudentExam
	if err := s.db.Where("student_id = ? AND exam_id = ?", studentID, examID).First(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	var exam models.Exam
	if err := s.db.Where("id = ? AND is_deleted = ?", examID, false).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	// Explicit projection: the correct_answer column is never selected here.
	var questions []QuestionView
	if err := s.db.Model(&models.Question{}).
		Select("id", "question_text", "question_type", "options").
		Where("exam_id = ? AND is_deleted = ?", examID, false).
		Order("id asc").
		Scan(&questions).Error; err != nil {
		return nil, err
	}

	return &ExamPayload{
		ExamTitle:       exam.ExamTitle,
		DurationMinutes: exam.DurationMinutes,
		Questions:       questions,
	}, nil
}

// RecordAnswers appends one answer row per entry, gated by the submission
// window. Resubmitting a question appends a new row; grading keeps only the
// latest. Returns the number of inserted rows.
func (s *Service) RecordAnswers(studentID, examID uint, answers []AnswerInput) (int, error) {
	if len(answers) == 0 {
		return 0, ErrNoAnswers
	}
	for _, a := range answers {
		if a.QuestionID == 0 || a.SelectedOption == "" {
			return 0, ErrInvalidAnswer
		}
	}

	var exam models.Exam
	if err := s.db.Where("id = ? AND is_deleted = ?", examID, false).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrExamNotFound
		}
		return 0, err
	}

	// Eligibility is checked against the enrollment relation, independent of
	// attempt state.
	var enrolled int64
	if err := s.db.Model(&models.Enrollment{}).
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		Count(&enrolled).Error; err != nil {
		return 0, err
	}
	if enrolled == 0 {
		return 0, ErrNotEnrolled
	}

	if !IsWithinWindow(&exam, s.now()) {
		return 0, ErrTimeUp
	}

	// Every answer must target a live question of this exam.
	var questionIDs []uint
	if err := s.db.Model(&models.Question{}).
		Where("exam_id = ? AND is_deleted = ?", examID, false).
		Pluck("id", &questionIDs).Error; err != nil {
		return 0, err
	}
	known := make(map[uint]struct{}, len(questionIDs))
	for _, id := range questionIDs {
		known[id] = struct{}{}
	}
	for _, a := range answers {
		if _, ok := known[a.QuestionID]; !ok {
			return 0, ErrQuestionNotInExam
		}
	}

	rows := make([]models.Answer, 0, len(answers))
	for _, a := range answers {
		rows = append(rows, models.Answer{
			StudentID:      studentID,
			ExamID:         examID,
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
		})
	}

	if err := s.db.Create(&rows).Error; err != nil {
		return 0, err
	}

	return len(rows), nil
}

// Finalize closes the attempt and grades it. The submitted flag flips
// false -> true exactly once: the guarded UPDATE is the mutual exclusion for
// concurrent finalize calls, and the unique index on results(student_id,
// exam_id) is the backstop. A second call returns ErrAlreadySubmitted and
// never re-grades.
func (s *Service) Finalize(studentID, examID uint) (*models.Result, error) {
	var attempt models.StudentExam
	if err := s.db.Where("student_id = ? AND exam_id = ?", studentID, examID).First(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.Submitted {
		return nil, ErrAlreadySubmitted
	}

	var result models.Result

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		// Compare-and-set on the submitted flag. Zero rows affected means a
		// concurrent finalize won the race.
		flip := tx.Model(&models.StudentExam{}).
			Where("student_id = ? AND exam_id = ? AND submitted = ?", studentID, examID, false).
			Update("submitted", true)
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return ErrAlreadySubmitted
		}

		var exam models.Exam
		if err := tx.Where("id = ?", examID).First(&exam).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExamNotFound
			}
			return err
		}

		// Insertion order matters: the latest answer per question wins.
		var answers []models.Answer
		if err := tx.Where("student_id = ? AND exam_id = ?", studentID, examID).
			Order("id asc").
			Find(&answers).Error; err != nil {
			return err
		}

		var questions []models.Question
		if err := tx.Where("exam_id = ? AND is_deleted = ?", examID, false).Find(&questions).Error; err != nil {
			return err
		}
		keyByQuestion := make(map[uint]string, len(questions))
		for _, q := range questions {
			keyByQuestion[q.ID] = q.CorrectAnswer
		}

		score, grade := GradeAnswers(answers, keyByQuestion)

		if err := tx.Model(&models.StudentExam{}).
			Where("student_id = ? AND exam_id = ?", studentID, examID).
			Update("score", score).Error; err != nil {
			return err
		}

		// Backstop for races that slipped past the flag: the results table
		// holds at most one row per (student, exam).
		var existing int64
		if err := tx.Model(&models.Result{}).
			Where("student_id = ? AND exam_id = ?", studentID, examID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadySubmitted
		}

		result = models.Result{
			StudentID: studentID,
			ExamID:    examID,
			CourseID:  exam.CourseID,
			Score:     score,
			Grade:     grade,
		}
		return tx.Create(&result).Error
	}); err != nil {
		return nil, err
	}

	return &result, nil
}

// AvailableExams lists upcoming exams for the courses the student is
// enrolled in.
func (s *Service) AvailableExams(studentID uint) ([]models.Exam, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("student_id = ?", studentID).Find(&enrollments).Error; err != nil {
		return nil, err
	}

	courseIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}
	if len(courseIDs) == 0 {
		return []models.Exam{}, nil
	}

	var exams []models.Exam
	if err := s.db.Where("course_id IN ? AND start_at >= ? AND is_deleted = ?", courseIDs, s.now(), false).
		Order("start_at asc").
		Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

// ResultsForStudent returns the student's own results.
func (s *Service) ResultsForStudent(studentID uint) ([]ResultView, error) {
	return s.queryResults(s.db.Where("results.student_id = ?", studentID))
}

// AllResults returns every result, for the admin view.
func (s *Service) AllResults() ([]ResultView, error) {
	return s.queryResults(s.db)
}

func (s *Service) queryResults(scope *gorm.DB) ([]ResultView, error) {
	views := make([]ResultView, 0)
	err := scope.Table("results").
		Select("results.id, results.student_id, results.exam_id, results.course_id, results.score, results.grade, courses.course_code, exams.exam_title").
		Joins("JOIN courses ON courses.id = results.course_id").
		Joins("JOIN exams ON exams.id = results.exam_id").
		Order("results.id asc").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
