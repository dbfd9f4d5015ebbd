package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jas-4484/enrollment-api/internal/models"
	"github.com/jas-4484/enrollment-api/internal/notify"
	"github.com/jas-4484/enrollment-api/internal/store"
)

type recordingNotifier struct {
	sent chan notify.Notification
}

func (r *recordingNotifier) Notify(n notify.Notification) error {
	r.sent <- n
	return nil
}

func newTestHandler(t *testing.T) (*EnrollmentHandler, *recordingNotifier) {
	t.Helper()
	dir := store.NewStudentDirectory([]models.Student{
		{StudentID: "6610000000", FirstName: "Somchai", Email: "somchai@example.edu"},
		{StudentID: "6610000001", FirstName: "Suda"},
	})
	s := store.NewEnrollmentStore(dir, []models.Enrollment{
		{StudentID: "6610000000", CourseIDs: []string{}},
		{StudentID: "6610000001", CourseIDs: []string{"261207"}},
	})
	n := &recordingNotifier{sent: make(chan notify.Notification, 4)}
	return NewEnrollmentHandler(s, n), n
}

func serve(h http.HandlerFunc, method, studentID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v2/enrollments/"+studentID, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"studentId": studentID})
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func waitNotification(t *testing.T, n *recordingNotifier) notify.Notification {
	t.Helper()
	select {
	case got := <-n.sent:
		return got
	case <-time.After(time.Second):
		t.Fatal("no notification sent")
		return notify.Notification{}
	}
}

func TestEnrollCourse_NotifiesStudent(t *testing.T) {
	h, n := newTestHandler(t)

	rec := serve(h.EnrollCourse, http.MethodPost, "6610000000", `{"courseId":"CS101"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Student 6610000000 && Course CS101 has been added successfully", resp.Message)

	got := waitNotification(t, n)
	assert.Equal(t, notify.Enrolled, got.Kind)
	assert.Equal(t, "CS101", got.CourseID)
	assert.Equal(t, "somchai@example.edu", got.Student.Email)
	assert.Equal(t, []string{"CS101"}, got.Student.Courses)
}

func TestUnenrollCourse_NotifiesStudent(t *testing.T) {
	h, n := newTestHandler(t)

	rec := serve(h.UnenrollCourse, http.MethodDelete, "6610000001", `{"courseId":"261207"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	got := waitNotification(t, n)
	assert.Equal(t, notify.Unenrolled, got.Kind)
	assert.Empty(t, got.Student.Courses)
}

func TestEnrollmentErrors(t *testing.T) {
	tests := []struct {
		name      string
		handler   func(h *EnrollmentHandler) http.HandlerFunc
		method    string
		studentID string
		body      string
		want      int
		message   string
	}{
		{
			name:      "enroll unknown student",
			handler:   func(h *EnrollmentHandler) http.HandlerFunc { return h.EnrollCourse },
			method:    http.MethodPost,
			studentID: "6699999999",
			body:      `{"courseId":"CS101"}`,
			want:      http.StatusNotFound,
			message:   "Student 6699999999 does not exists",
		},
		{
			name:      "enroll duplicate",
			handler:   func(h *EnrollmentHandler) http.HandlerFunc { return h.EnrollCourse },
			method:    http.MethodPost,
			studentID: "6610000001",
			body:      `{"courseId":"261207"}`,
			want:      http.StatusConflict,
			message:   "Student 6610000001 is already enrolled in course 261207",
		},
		{
			name:      "enroll malformed student id",
			handler:   func(h *EnrollmentHandler) http.HandlerFunc { return h.EnrollCourse },
			method:    http.MethodPost,
			studentID: "123",
			body:      `{"courseId":"CS101"}`,
			want:      http.StatusNotFound,
			message:   "Student 123 does not exists",
		},
		{
			name:      "unenroll malformed student id",
			handler:   func(h *EnrollmentHandler) http.HandlerFunc { return h.UnenrollCourse },
			method:    http.MethodDelete,
			studentID: "abc",
			body:      `{"courseId":"CS101"}`,
			want:      http.StatusNotFound,
			message:   "Student abc does not exists",
		},
		{
			name:      "enroll body without courseId",
			handler:   func(h *EnrollmentHandler) http.HandlerFunc { return h.EnrollCourse },
			method:    http.MethodPost,
			studentID: "6610000000",
			body:      `{}`,
			want:      http.StatusInternalServerError,
			message:   "Something is wrong, please try again",
		},
		{
			name:      "unenroll body without courseId",
			handler:   func(h *EnrollmentHandler) http.HandlerFunc { return h.UnenrollCourse },
			method:    http.MethodDelete,
			studentID: "6610000001",
			body:      `{"other":1}`,
			want:      http.StatusInternalServerError,
			message:   "Something is wrong, please try again",
		},
		{
			name:      "enroll empty body",
			handler:   func(h *EnrollmentHandler) http.HandlerFunc { return h.EnrollCourse },
			method:    http.MethodPost,
			studentID: "6610000000",
			body:      ``,
			want:      http.StatusInternalServerError,
			message:   "Something is wrong, please try again",
		},
		{
			name:      "unenroll missing course",
			handler:   func(h *EnrollmentHandler) http.HandlerFunc { return h.UnenrollCourse },
			method:    http.MethodDelete,
			studentID: "6610000000",
			body:      `{"courseId":"CS101"}`,
			want:      http.StatusNotFound,
			message:   "Enrollment does not exists",
		},
		{
			name:      "get bad id",
			handler:   func(h *EnrollmentHandler) http.HandlerFunc { return h.GetStudentEnrollment },
			method:    http.MethodGet,
			studentID: "abcdefghij",
			want:      http.StatusForbidden,
			message:   "Forbidden access",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, n := newTestHandler(t)
			rec := serve(tt.handler(h), tt.method, tt.studentID, tt.body)
			assert.Equal(t, tt.want, rec.Code)

			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
			assert.Empty(t, n.sent)
		})
	}
}

func TestResetEnrollments(t *testing.T) {
	h, _ := newTestHandler(t)
	serve(h.EnrollCourse, http.MethodPost, "6610000000", `{"courseId":"CS101"}`)

	rec := serve(h.ResetEnrollments, http.MethodPost, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h.GetStudentEnrollment, http.MethodGet, "6610000000", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"courses":[]`)
}
