// Package validate checks the shape of path and body parameters before they
// reach the stores.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

const StudentIDLength = 10

var (
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
	courseIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,16}$`)
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StudentID accepts exactly StudentIDLength digits.
func StudentID(raw string) error {
	if len(raw) != StudentIDLength {
		return &ValidationError{Field: "studentId", Message: fmt.Sprintf("Student Id must contain %d characters", StudentIDLength)}
	}
	if !digitsPattern.MatchString(raw) {
		return &ValidationError{Field: "studentId", Message: "Student Id must contain only digits"}
	}
	return nil
}

func CourseID(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &ValidationError{Field: "courseId", Message: "Course Id is required"}
	}
	if !courseIDPattern.MatchString(raw) {
		return &ValidationError{Field: "courseId", Message: "Course Id must be 1-16 letters, digits or dashes"}
	}
	return nil
}

// EnrollmentBody is the body accepted by the enroll and unenroll routes.
type EnrollmentBody struct {
	CourseID string `json:"courseId"`
}

func (b EnrollmentBody) Validate() error {
	return CourseID(b.CourseID)
}
