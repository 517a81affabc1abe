package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"abroberts-backend-go/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ContactSubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type ContactListResponse struct {
	Success  bool         `json:"success"`
	Contacts []ContactDTO `json:"contacts"`
}

type ContactResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Contact ContactDTO `json:"contact"`
}

func (s *Server) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	val := NewValidator()
	val.Require("name", req.Name, "Name is required")
	val.Email("email", req.Email, "Valid email is required")
	val.Require("message", req.Message, "Message is required")
	if !val.Valid() {
		WriteValidationErrors(w, val.Errors())
		return
	}

	_, err := s.DB.Exec(`
INSERT INTO contacts (id, name, email, phone, message, is_read, submitted_at)
VALUES ($1,$2,$3,$4,$5,FALSE,$6)
`, uuid.NewString(), strings.TrimSpace(req.Name), strings.ToLower(strings.TrimSpace(req.Email)),
		strings.TrimSpace(req.Phone), req.Message, time.Now().UTC())
	if err != nil {
		s.serverError(w, "Failed to submit contact form", err)
		return
	}
	WriteMessage(w, http.StatusCreated, "Thank you for contacting us. We will respond shortly.")
}

func (s *Server) ListContacts(w http.ResponseWriter, r *http.Request) {
	query := `SELECT * FROM contacts`
	args := []interface{}{}
	if raw := r.URL.Query().Get("isRead"); raw != "" {
		query += ` WHERE is_read = $1`
		args = append(args, raw == "true")
	}
	query += ` ORDER BY submitted_at DESC`

	rows := []models.Contact{}
	if err := s.DB.Select(&rows, query, args...); err != nil {
		s.serverError(w, "Failed to retrieve contacts", err)
		return
	}
	items := make([]ContactDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, contactDTO(row))
	}
	WriteJSON(w, http.StatusOK, ContactListResponse{Success: true, Contacts: items})
}

func (s *Server) GetContact(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")
	row := models.Contact{}
	if err := s.DB.Get(&row, `SELECT * FROM contacts WHERE id = $1`, contactID); err != nil {
		WriteError(w, http.StatusNotFound, "Contact not found")
		return
	}
	WriteJSON(w, http.StatusOK, ContactResponse{Success: true, Contact: contactDTO(row)})
}

func (s *Server) MarkContactRead(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")
	// Absent body means "mark as read".
	var req struct {
		IsRead *bool `json:"isRead"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	row := models.Contact{}
	if err := s.DB.Get(&row, `SELECT * FROM contacts WHERE id = $1`, contactID); err != nil {
		WriteError(w, http.StatusNotFound, "Contact not found")
		return
	}
	isRead := true
	if req.IsRead != nil {
		isRead = *req.IsRead
	}
	row.SetRead(isRead, time.Now().UTC())
	if _, err := s.DB.Exec(`UPDATE contacts SET is_read = $1, read_at = $2 WHERE id = $3`,
		row.IsRead, row.ReadAt, row.ID); err != nil {
		s.serverError(w, "Failed to update contact", err)
		return
	}

	message := "Contact marked as unread"
	if row.IsRead {
		message = "Contact marked as read"
	}
	WriteJSON(w, http.StatusOK, ContactResponse{Success: true, Message: message, Contact: contactDTO(row)})
}

func (s *Server) DeleteContact(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")
	result, err := s.DB.Exec(`DELETE FROM contacts WHERE id = $1`, contactID)
	if err != nil {
		s.serverError(w, "Failed to delete contact", err)
		return
	}
	if count, _ := result.RowsAffected(); count == 0 {
		WriteError(w, http.StatusNotFound, "Contact not found")
		return
	}
	WriteMessage(w, http.StatusOK, "Contact deleted successfully")
}
