package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"abroberts-backend-go/internal/services"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

type VerifyResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	if !s.LoginLimiter.Allow(services.ClientIP(r)) {
		WriteError(w, http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
		return
	}
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	val := NewValidator()
	val.Email("email", req.Email, "Valid email is required")
	val.Require("password", req.Password, "Password is required")
	if !val.Valid() {
		WriteValidationErrors(w, val.Errors())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	row := struct {
		ID           string `db:"id"`
		Email        string `db:"email"`
		PasswordHash string `db:"password_hash"`
		Role         string `db:"role"`
	}{}
	// Unknown email and wrong password must be indistinguishable.
	if err := s.DB.Get(&row, `SELECT id, email, password_hash, role FROM users WHERE lower(email) = $1`, email); err != nil {
		WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !s.Tokens.VerifyPassword(req.Password, row.PasswordHash) {
		WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	token, _, err := s.Tokens.CreateToken(row.ID, row.Email, row.Role)
	if err != nil {
		s.serverError(w, "Login failed", err)
		return
	}
	_, _ = s.DB.Exec(`UPDATE users SET last_login_at = $1 WHERE id = $2`, time.Now().UTC(), row.ID)
	WriteJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
		User:    UserDTO{ID: row.ID, Email: row.Email, Role: row.Role},
	})
}

func (s *Server) VerifyToken(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, VerifyResponse{
		Success: true,
		User: UserDTO{
			ID:    CurrentUserID(r),
			Email: CurrentEmail(r),
			Role:  CurrentRole(r),
		},
	})
}

func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	val := NewValidator()
	val.Require("currentPassword", req.CurrentPassword, "Current password is required")
	val.MinLength("newPassword", req.NewPassword, 8, "New password must be at least 8 characters")
	if !val.Valid() {
		WriteValidationErrors(w, val.Errors())
		return
	}

	userID := CurrentUserID(r)
	var currentHash string
	if err := s.DB.Get(&currentHash, `SELECT password_hash FROM users WHERE id = $1`, userID); err != nil {
		WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	if !s.Tokens.VerifyPassword(req.CurrentPassword, currentHash) {
		WriteError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}
	newHash, err := s.Tokens.HashPassword(req.NewPassword)
	if err != nil {
		s.serverError(w, "Failed to change password", err)
		return
	}
	if _, err := s.DB.Exec(`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		newHash, time.Now().UTC(), userID); err != nil {
		s.serverError(w, "Failed to change password", err)
		return
	}
	WriteMessage(w, http.StatusOK, "Password updated successfully")
}
