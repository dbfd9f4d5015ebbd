// Package store keeps the in-memory student, course and enrollment data.
package store

import (
	"errors"
	"slices"
	"sync"

	"github.com/jas-4484/enrollment-api/internal/models"
)

var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this course")
)

// Directory resolves student ids. *StudentDirectory implements it.
type Directory interface {
	FindByID(studentID string) (models.Student, bool)
}

// EnrollmentStore maps each student id to the ordered course ids that student
// is enrolled in. A course id appears at most once per student.
//
// Every operation holds mu for its whole duration, so requests are applied
// one at a time.
type EnrollmentStore struct {
	mu        sync.Mutex
	directory Directory
	initial   []models.Enrollment

	order   []string
	courses map[string][]string
}

// NewEnrollmentStore starts from initial, which is also the snapshot Reset
// returns to.
func NewEnrollmentStore(directory Directory, initial []models.Enrollment) *EnrollmentStore {
	s := &EnrollmentStore{
		directory: directory,
		initial:   cloneEnrollments(initial),
	}
	s.load(s.initial)
	return s
}

func (s *EnrollmentStore) load(records []models.Enrollment) {
	s.order = make([]string, 0, len(records))
	s.courses = make(map[string][]string, len(records))
	for _, e := range records {
		if _, ok := s.courses[e.StudentID]; !ok {
			s.order = append(s.order, e.StudentID)
		}
		s.courses[e.StudentID] = slices.Clone(nonNil(e.CourseIDs))
	}
}

// List returns a copy of every record.
func (s *EnrollmentStore) List() []models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *EnrollmentStore) snapshot() []models.Enrollment {
	out := make([]models.Enrollment, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, models.Enrollment{StudentID: id, CourseIDs: slices.Clone(s.courses[id])})
	}
	return out
}

// Reset replaces all records with the start-up snapshot.
func (s *EnrollmentStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(s.initial)
}

// Student returns the directory record with Courses set to the student's
// current enrollments.
func (s *EnrollmentStore) Student(studentID string) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.student(studentID)
}

func (s *EnrollmentStore) student(studentID string) (models.Student, error) {
	student, ok := s.directory.FindByID(studentID)
	if !ok {
		return models.Student{}, ErrStudentNotFound
	}
	student.Courses = slices.Clone(nonNil(s.courses[studentID]))
	return student, nil
}

// Enroll appends courseID to the student's record, creating the record if
// the student has none. It returns the student as of this change.
func (s *EnrollmentStore) Enroll(studentID, courseID string) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directory.FindByID(studentID); !ok {
		return models.Student{}, ErrStudentNotFound
	}
	current, ok := s.courses[studentID]
	if slices.Contains(current, courseID) {
		return models.Student{}, ErrAlreadyEnrolled
	}
	if !ok {
		s.order = append(s.order, studentID)
	}
	s.courses[studentID] = append(current, courseID)
	return s.student(studentID)
}

// Unenroll removes courseID from the student's record. It returns the student
// as of this change and every record. The record itself stays, even when it
// becomes empty.
func (s *EnrollmentStore) Unenroll(studentID, courseID string) (models.Student, []models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directory.FindByID(studentID); !ok {
		return models.Student{}, nil, ErrStudentNotFound
	}
	current, ok := s.courses[studentID]
	if !ok {
		return models.Student{}, nil, ErrEnrollmentNotFound
	}
	i := slices.Index(current, courseID)
	if i < 0 {
		return models.Student{}, nil, ErrEnrollmentNotFound
	}
	s.courses[studentID] = slices.Delete(current, i, i+1)
	student, err := s.student(studentID)
	if err != nil {
		return models.Student{}, nil, err
	}
	return student, s.snapshot(), nil
}

func cloneEnrollments(in []models.Enrollment) []models.Enrollment {
	out := make([]models.Enrollment, len(in))
	for i, e := range in {
		out[i] = models.Enrollment{StudentID: e.StudentID, CourseIDs: slices.Clone(nonNil(e.CourseIDs))}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
