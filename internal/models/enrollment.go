package models

// Enrollment is the per-student record of enrolled course ids, in the order
// they were added.
type Enrollment struct {
	StudentID string   `json:"studentId" yaml:"studentId"`
	CourseIDs []string `json:"courseId" yaml:"courseId"`
}

type CourseRef struct {
	CourseID string `json:"courseId"`
}

// EnrollmentSummary is the listing shape of an enrollment record.
type EnrollmentSummary struct {
	StudentID string      `json:"studentId"`
	Courses   []CourseRef `json:"courses"`
}

func (e Enrollment) Summary() EnrollmentSummary {
	refs := make([]CourseRef, 0, len(e.CourseIDs))
	for _, c := range e.CourseIDs {
		refs = append(refs, CourseRef{CourseID: c})
	}
	return EnrollmentSummary{StudentID: e.StudentID, Courses: refs}
}

// EnrollResult is returned after a successful enroll.
type EnrollResult struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}
