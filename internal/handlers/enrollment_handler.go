package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jas-4484/enrollment-api/internal/models"
	"github.com/jas-4484/enrollment-api/internal/notify"
	"github.com/jas-4484/enrollment-api/internal/response"
	"github.com/jas-4484/enrollment-api/internal/store"
	"github.com/jas-4484/enrollment-api/internal/validate"
)

type EnrollmentHandler struct {
	store    *store.EnrollmentStore
	notifier notify.Notifier
}

func NewEnrollmentHandler(s *store.EnrollmentStore, n notify.Notifier) *EnrollmentHandler {
	if n == nil {
		n = notify.Nop{}
	}
	return &EnrollmentHandler{store: s, notifier: n}
}

// ListEnrollments returns every enrollment record
func (h *EnrollmentHandler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	records := h.store.List()
	summaries := make([]models.EnrollmentSummary, 0, len(records))
	for _, e := range records {
		summaries = append(summaries, e.Summary())
	}
	response.Success(w, http.StatusOK, "Enrollments Information", summaries)
}

// ResetEnrollments restores the seeded enrollments
func (h *EnrollmentHandler) ResetEnrollments(w http.ResponseWriter, r *http.Request) {
	h.store.Reset()
	response.Success(w, http.StatusOK, "enrollments database has been reset", nil)
}

// GetStudentEnrollment returns one student with their current courses.
// A malformed id is answered with 403, not 404.
func (h *EnrollmentHandler) GetStudentEnrollment(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]
	if !validStudentID(w, studentID) {
		return
	}

	student, err := h.store.Student(studentID)
	if err != nil {
		h.storeError(w, err, studentID, "")
		return
	}
	response.Success(w, http.StatusOK, "Student Information", student)
}

// EnrollCourse adds the course in the body to the student's enrollments.
// Ids are not format-checked here: an unknown student is a 404.
func (h *EnrollmentHandler) EnrollCourse(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]
	body, ok := decodeEnrollmentBody(w, r)
	if !ok {
		return
	}

	student, err := h.store.Enroll(studentID, body.CourseID)
	if err != nil {
		h.storeError(w, err, studentID, body.CourseID)
		return
	}

	h.notifyAsync(student, body.CourseID, notify.Enrolled)
	response.Success(w, http.StatusCreated,
		fmt.Sprintf("Student %s && Course %s has been added successfully", studentID, body.CourseID),
		models.EnrollResult{StudentID: studentID, CourseID: body.CourseID})
}

// UnenrollCourse drops the course in the body and returns every enrollment record
func (h *EnrollmentHandler) UnenrollCourse(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]
	body, ok := decodeEnrollmentBody(w, r)
	if !ok {
		return
	}

	student, records, err := h.store.Unenroll(studentID, body.CourseID)
	if err != nil {
		h.storeError(w, err, studentID, body.CourseID)
		return
	}

	h.notifyAsync(student, body.CourseID, notify.Unenrolled)
	response.Success(w, http.StatusOK,
		fmt.Sprintf("Student %s && Course %s has been deleted successfully", studentID, body.CourseID), records)
}

// notifyAsync sends student as returned by the store operation being reported.
func (h *EnrollmentHandler) notifyAsync(student models.Student, courseID string, kind notify.Kind) {
	go func() {
		if err := h.notifier.Notify(notify.Notification{Student: student, CourseID: courseID, Kind: kind}); err != nil {
			log.Printf("notify %s: %v", student.StudentID, err)
		}
	}()
}

func (h *EnrollmentHandler) storeError(w http.ResponseWriter, err error, studentID, courseID string) {
	switch {
	case errors.Is(err, store.ErrStudentNotFound):
		response.Failure(w, http.StatusNotFound, fmt.Sprintf("Student %s does not exists", studentID), nil)
	case errors.Is(err, store.ErrEnrollmentNotFound):
		response.Failure(w, http.StatusNotFound, "Enrollment does not exists", nil)
	case errors.Is(err, store.ErrAlreadyEnrolled):
		response.Failure(w, http.StatusConflict,
			fmt.Sprintf("Student %s is already enrolled in course %s", studentID, courseID), nil)
	default:
		response.Internal(w, err)
	}
}

func validStudentID(w http.ResponseWriter, studentID string) bool {
	if err := validate.StudentID(studentID); err != nil {
		forbidden(w, err)
		return false
	}
	return true
}

// decodeEnrollmentBody answers a body that does not decode, or lacks a
// usable courseId, as an internal fault.
func decodeEnrollmentBody(w http.ResponseWriter, r *http.Request) (validate.EnrollmentBody, bool) {
	var body validate.EnrollmentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Internal(w, fmt.Errorf("decode body: %w", err))
		return body, false
	}
	if err := body.Validate(); err != nil {
		response.Internal(w, fmt.Errorf("invalid body: %w", err))
		return body, false
	}
	return body, true
}

// forbidden reports a validation failure. Malformed identifiers are treated
// as access violations.
func forbidden(w http.ResponseWriter, err error) {
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		response.Failure(w, http.StatusForbidden, "Forbidden access", verr.Message)
		return
	}
	response.Failure(w, http.StatusForbidden, "Forbidden access", err.Error())
}
