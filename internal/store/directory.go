package store

import (
	"github.com/jas-4484/enrollment-api/internal/models"
)

// StudentDirectory is a read-only lookup of student records.
type StudentDirectory struct {
	students []models.Student
	byID     map[string]int
}

func NewStudentDirectory(students []models.Student) *StudentDirectory {
	d := &StudentDirectory{
		students: make([]models.Student, len(students)),
		byID:     make(map[string]int, len(students)),
	}
	copy(d.students, students)
	for i, s := range d.students {
		d.byID[s.StudentID] = i
	}
	return d
}

func (d *StudentDirectory) FindByID(studentID string) (models.Student, bool) {
	i, ok := d.byID[studentID]
	if !ok {
		return models.Student{}, false
	}
	return d.students[i], true
}

type CourseCatalog struct {
	courses []models.Course
}

func NewCourseCatalog(courses []models.Course) *CourseCatalog {
	c := &CourseCatalog{courses: make([]models.Course, len(courses))}
	copy(c.courses, courses)
	return c
}

func (c *CourseCatalog) List() []models.Course {
	out := make([]models.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

func (c *CourseCatalog) FindByID(courseID string) (models.Course, bool) {
	for _, course := range c.courses {
		if course.CourseID == courseID {
			return course, true
		}
	}
	return models.Course{}, false
}

type UserDirectory struct {
	byName map[string]models.User
}

func NewUserDirectory(users []models.User) *UserDirectory {
	d := &UserDirectory{byName: make(map[string]models.User, len(users))}
	for _, u := range users {
		d.byName[u.Username] = u
	}
	return d
}

func (d *UserDirectory) FindByUsername(username string) (models.User, bool) {
	u, ok := d.byName[username]
	return u, ok
}
