package models

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleStudent UserRole = "student"
)

// User is an account that can sign in. StudentID links student accounts to
// their directory record; it is empty for admins.
type User struct {
	Username     string   `json:"username" yaml:"username"`
	PasswordHash string   `json:"-" yaml:"-"`
	Role         UserRole `json:"role" yaml:"role"`
	StudentID    string   `json:"studentId,omitempty" yaml:"studentId,omitempty"`
}
