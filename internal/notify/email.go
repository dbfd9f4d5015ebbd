// Package notify sends enrollment confirmations to students.
package notify

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/jas-4484/enrollment-api/internal/models"
)

type Kind string

const (
	Enrolled   Kind = "enrolled"
	Unenrolled Kind = "unenrolled"
)

type Notification struct {
	Student  models.Student
	CourseID string
	Kind     Kind
}

type Notifier interface {
	Notify(n Notification) error
}

// Nop drops every notification. Used when SMTP is not configured.
type Nop struct{}

func (Nop) Notify(Notification) error { return nil }

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer emails the student through an SMTP server.
type Mailer struct {
	from string
	send func(m ...*gomail.Message) error
}

func NewMailer(cfg SMTPConfig) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &Mailer{from: from, send: dialer.DialAndSend}
}

// New returns a Mailer when cfg names a host, otherwise Nop.
func New(cfg SMTPConfig) Notifier {
	if cfg.Host == "" {
		return Nop{}
	}
	return NewMailer(cfg)
}

// Notify is a no-op for students without an email address.
func (m *Mailer) Notify(n Notification) error {
	if n.Student.Email == "" {
		return nil
	}
	if err := m.send(m.message(n)); err != nil {
		log.Printf("Failed to send email: %v", err)
		return fmt.Errorf("send %s email to %s: %w", n.Kind, n.Student.StudentID, err)
	}
	log.Printf("Email sent successfully to %s", n.Student.Email)
	return nil
}

func (m *Mailer) message(n Notification) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", n.Student.Email)

	var subject, verb string
	switch n.Kind {
	case Unenrolled:
		subject, verb = "Course dropped", "have been removed from"
	default:
		subject, verb = "Enrollment confirmed", "are now enrolled in"
	}
	msg.SetHeader("Subject", fmt.Sprintf("%s: %s", subject, n.CourseID))
	msg.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nYou %s course %s.\n", n.Student.FirstName, verb, n.CourseID))
	return msg
}
