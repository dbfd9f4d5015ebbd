package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jas-4484/enrollment-api/internal/response"
	"github.com/jas-4484/enrollment-api/internal/store"
	"github.com/jas-4484/enrollment-api/internal/validate"
)

type CourseHandler struct {
	catalog *store.CourseCatalog
}

func NewCourseHandler(catalog *store.CourseCatalog) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

// GetCourses retrieves all courses
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Courses Information", h.catalog.List())
}

// get course by id
func (h *CourseHandler) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	courseID := mux.Vars(r)["courseId"]
	if err := validate.CourseID(courseID); err != nil {
		forbidden(w, err)
		return
	}

	course, ok := h.catalog.FindByID(courseID)
	if !ok {
		response.Failure(w, http.StatusNotFound, fmt.Sprintf("Course %s does not exists", courseID), nil)
		return
	}
	response.Success(w, http.StatusOK, "Course Information", course)
}
