// Package seed holds the initial dataset the service starts from and resets
// back to.
package seed

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jas-4484/enrollment-api/internal/models"
	"github.com/jas-4484/enrollment-api/internal/validate"
)

// User is a seeded account. Password is plaintext and is hashed at start-up.
type User struct {
	Username  string          `yaml:"username"`
	Password  string          `yaml:"password"`
	Role      models.UserRole `yaml:"role"`
	StudentID string          `yaml:"studentId,omitempty"`
}

type Dataset struct {
	Students    []models.Student    `yaml:"students"`
	Courses     []models.Course     `yaml:"courses"`
	Enrollments []models.Enrollment `yaml:"enrollments"`
	Users       []User              `yaml:"users"`
}

// Load reads a dataset from a YAML file. An empty path returns Default().
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Dataset{}, fmt.Errorf("parse seed: %w", err)
	}
	d.fillEnrollments()
	if err := d.Validate(); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

// fillEnrollments gives every student without one an empty enrollment record.
func (d *Dataset) fillEnrollments() {
	have := make(map[string]bool, len(d.Enrollments))
	for _, e := range d.Enrollments {
		have[e.StudentID] = true
	}
	for _, s := range d.Students {
		if !have[s.StudentID] {
			d.Enrollments = append(d.Enrollments, models.Enrollment{StudentID: s.StudentID, CourseIDs: []string{}})
			have[s.StudentID] = true
		}
	}
}

// Validate rejects datasets that would break the enrollment invariants.
func (d Dataset) Validate() error {
	students := make(map[string]bool, len(d.Students))
	for _, s := range d.Students {
		if err := validate.StudentID(s.StudentID); err != nil {
			return fmt.Errorf("seed student %q: %w", s.StudentID, err)
		}
		if students[s.StudentID] {
			return fmt.Errorf("seed student %q listed twice", s.StudentID)
		}
		students[s.StudentID] = true
	}

	records := make(map[string]bool, len(d.Enrollments))
	for _, e := range d.Enrollments {
		if !students[e.StudentID] {
			return fmt.Errorf("seed enrollment for unknown student %q", e.StudentID)
		}
		if records[e.StudentID] {
			return fmt.Errorf("seed enrollment for %q listed twice", e.StudentID)
		}
		records[e.StudentID] = true
		seen := make(map[string]bool, len(e.CourseIDs))
		for _, c := range e.CourseIDs {
			if seen[c] {
				return fmt.Errorf("seed enrollment for %q repeats course %q", e.StudentID, c)
			}
			seen[c] = true
		}
	}

	for _, u := range d.Users {
		if u.Username == "" || u.Password == "" {
			return errors.New("seed user needs a username and password")
		}
		switch u.Role {
		case models.RoleAdmin:
		case models.RoleStudent:
			if !students[u.StudentID] {
				return fmt.Errorf("seed user %q points at unknown student %q", u.Username, u.StudentID)
			}
		default:
			return fmt.Errorf("seed user %q has unknown role %q", u.Username, u.Role)
		}
	}
	return nil
}

// Default is the built-in dataset used when no seed file is configured.
func Default() Dataset {
	d := Dataset{
		Students: []models.Student{
			{StudentID: "6610000000", FirstName: "Somchai", LastName: "Jaidee", Program: "CPE"},
			{StudentID: "6610000001", FirstName: "Suda", LastName: "Srisuk", Program: "CPE"},
			{StudentID: "6610000002", FirstName: "Anan", LastName: "Thongdee", Program: "ISNE"},
		},
		Courses: []models.Course{
			{CourseID: "261207", CourseTitle: "Basic Computer Engineering Lab", Instructors: []string{"Dome", "Chanadda"}},
			{CourseID: "261497", CourseTitle: "Full Stack Development", Instructors: []string{"Dome", "Nirand", "Chanadda"}},
			{CourseID: "CS101", CourseTitle: "Introduction to Computer Science", Instructors: []string{"Kasemsit"}},
		},
		Enrollments: []models.Enrollment{
			{StudentID: "6610000000", CourseIDs: []string{}},
			{StudentID: "6610000001", CourseIDs: []string{"261207", "261497"}},
			{StudentID: "6610000002", CourseIDs: []string{"261497"}},
		},
		Users: []User{
			{Username: "admin", Password: "admin1234", Role: models.RoleAdmin},
			{Username: "6610000000", Password: "password", Role: models.RoleStudent, StudentID: "6610000000"},
			{Username: "6610000001", Password: "password", Role: models.RoleStudent, StudentID: "6610000001"},
			{Username: "6610000002", Password: "password", Role: models.RoleStudent, StudentID: "6610000002"},
		},
	}
	return d
}
