package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jas-4484/enrollment-api/internal/auth"
	"github.com/jas-4484/enrollment-api/internal/handlers"
	"github.com/jas-4484/enrollment-api/internal/middleware"
	"github.com/jas-4484/enrollment-api/internal/models"
	"github.com/jas-4484/enrollment-api/internal/notify"
	"github.com/jas-4484/enrollment-api/internal/response"
	"github.com/jas-4484/enrollment-api/internal/store"
)

type Deps struct {
	Enrollments *store.EnrollmentStore
	Courses     *store.CourseCatalog
	Users       *store.UserDirectory
	Issuer      *auth.Issuer
	Notifier    notify.Notifier
}

func SetupRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger, middleware.Recover)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Failure(w, http.StatusNotFound, "Route not found", nil)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Failure(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	authn := middleware.Authenticate(d.Issuer)
	admin := middleware.RequireRole(models.RoleAdmin)
	studentOnly := middleware.RequireRole(models.RoleStudent)

	userHandler := handlers.NewUserHandler(d.Users, d.Issuer)
	courseHandler := handlers.NewCourseHandler(d.Courses)
	enrollmentHandler := handlers.NewEnrollmentHandler(d.Enrollments, d.Notifier)

	api := router.PathPrefix("/api/v2").Subrouter()
	api.HandleFunc("/users/login", userHandler.Signin).Methods("POST")

	api.Handle("/courses", chain(courseHandler.GetCourses, authn)).Methods("GET")
	api.Handle("/courses/{courseId}", chain(courseHandler.GetCourseByID, authn)).Methods("GET")

	// reset is registered before the {studentId} routes so it is not taken as an id
	api.Handle("/enrollments", chain(enrollmentHandler.ListEnrollments, authn, admin)).Methods("GET")
	api.Handle("/enrollments/reset", chain(enrollmentHandler.ResetEnrollments, authn, admin)).Methods("POST")
	api.Handle("/enrollments/{studentId}", chain(enrollmentHandler.GetStudentEnrollment, authn, middleware.StudentSelf(true))).Methods("GET")
	api.Handle("/enrollments/{studentId}", chain(enrollmentHandler.EnrollCourse, authn, studentOnly, middleware.StudentSelf(false))).Methods("POST")
	api.Handle("/enrollments/{studentId}", chain(enrollmentHandler.UnenrollCourse, authn, middleware.StudentSelf(true))).Methods("DELETE")

	return router
}

// chain wraps h so that mws run in the order given.
func chain(h http.HandlerFunc, mws ...mux.MiddlewareFunc) http.Handler {
	var out http.Handler = h
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}
