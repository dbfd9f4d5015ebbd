package models

type Student struct {
	StudentID string   `json:"studentId" yaml:"studentId"`
	FirstName string   `json:"firstName" yaml:"firstName"`
	LastName  string   `json:"lastName" yaml:"lastName"`
	Program   string   `json:"program" yaml:"program"`
	Email     string   `json:"email,omitempty" yaml:"email,omitempty"`
	Courses   []string `json:"courses" yaml:"-"` // filled from the enrollment store
}
