package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jas-4484/enrollment-api/internal/auth"
	"github.com/jas-4484/enrollment-api/internal/middleware"
	"github.com/jas-4484/enrollment-api/internal/response"
	"github.com/jas-4484/enrollment-api/internal/store"
)

type UserHandler struct {
	users  *store.UserDirectory
	issuer *auth.Issuer
}

func NewUserHandler(users *store.UserDirectory, issuer *auth.Issuer) *UserHandler {
	return &UserHandler{users: users, issuer: issuer}
}

// Signin handles user login
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		response.Failure(w, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	user, ok := h.users.FindByUsername(credentials.Username)
	if !ok || auth.CheckPassword(user.PasswordHash, credentials.Password) != nil {
		response.Failure(w, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}

	token, err := h.issuer.GenerateJWT(user)
	if err != nil {
		response.Internal(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(h.issuer.TTL()),
		HttpOnly: true,
		Path:     "/api",
	})

	response.Success(w, http.StatusOK, "Login successful", map[string]string{"token": token})
}
