package models

type Course struct {
	CourseID    string   `json:"courseId" yaml:"courseId"`
	CourseTitle string   `json:"courseTitle" yaml:"courseTitle"`
	Instructors []string `json:"instructors" yaml:"instructors"`
}
