// Package app assembles the stores, auth and router from a Config.
package app

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"

	"github.com/jas-4484/enrollment-api/internal/auth"
	"github.com/jas-4484/enrollment-api/internal/config"
	"github.com/jas-4484/enrollment-api/internal/models"
	"github.com/jas-4484/enrollment-api/internal/notify"
	"github.com/jas-4484/enrollment-api/internal/routes"
	"github.com/jas-4484/enrollment-api/internal/seed"
	"github.com/jas-4484/enrollment-api/internal/store"
)

type App struct {
	Handler http.Handler
	Issuer  *auth.Issuer
	Store   *store.EnrollmentStore
}

func New(cfg config.Config) (*App, error) {
	dataset, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	users, err := hashUsers(dataset.Users, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	enrollments := store.NewEnrollmentStore(store.NewStudentDirectory(dataset.Students), dataset.Enrollments)

	router := routes.SetupRouter(routes.Deps{
		Enrollments: enrollments,
		Courses:     store.NewCourseCatalog(dataset.Courses),
		Users:       store.NewUserDirectory(users),
		Issuer:      issuer,
		Notifier: notify.New(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}),
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return &App{Handler: c.Handler(router), Issuer: issuer, Store: enrollments}, nil
}

func hashUsers(in []seed.User, cost int) ([]models.User, error) {
	out := make([]models.User, 0, len(in))
	for _, u := range in {
		hash, err := auth.HashPassword(u.Password, cost)
		if err != nil {
			return nil, fmt.Errorf("seed user %q: %w", u.Username, err)
		}
		out = append(out, models.User{
			Username:     u.Username,
			PasswordHash: hash,
			Role:         u.Role,
			StudentID:    u.StudentID,
		})
	}
	return out, nil
}
