package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"abroberts-backend-go/internal/models"
	"abroberts-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type StaffListResponse struct {
	Success bool       `json:"success"`
	Staff   []StaffDTO `json:"staff"`
}

type StaffResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Staff   StaffDTO `json:"staff"`
}

type StaffPhotoResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	PhotoURL string   `json:"photoUrl"`
	Staff    StaffDTO `json:"staff"`
}

type StaffWriteRequest struct {
	Name     string  `json:"name"`
	Title    *string `json:"title"`
	Role     *string `json:"role"`
	Bio      *string `json:"bio"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (s *Server) ListStaff(w http.ResponseWriter, r *http.Request) {
	rows := []models.StaffMember{}
	if err := s.DB.Select(&rows, `SELECT * FROM staff ORDER BY sort_order ASC, created_at DESC`); err != nil {
		s.serverError(w, "Failed to retrieve staff", err)
		return
	}
	WriteJSON(w, http.StatusOK, StaffListResponse{Success: true, Staff: staffDTOs(rows)})
}

func (s *Server) ListActiveStaff(w http.ResponseWriter, r *http.Request) {
	rows := []models.StaffMember{}
	if err := s.DB.Select(&rows, `SELECT * FROM staff WHERE is_active ORDER BY sort_order ASC`); err != nil {
		s.serverError(w, "Failed to retrieve staff", err)
		return
	}
	WriteJSON(w, http.StatusOK, StaffListResponse{Success: true, Staff: staffDTOs(rows)})
}

func (s *Server) GetStaffMember(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	row := models.StaffMember{}
	if err := s.DB.Get(&row, `SELECT * FROM staff WHERE id = $1`, staffID); err != nil {
		WriteError(w, http.StatusNotFound, "Staff member not found")
		return
	}
	WriteJSON(w, http.StatusOK, StaffResponse{Success: true, Staff: staffDTO(row)})
}

func (s *Server) CreateStaffMember(w http.ResponseWriter, r *http.Request) {
	var req StaffWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	val := NewValidator()
	val.Require("name", req.Name, "Name is required")
	role := models.DefaultStaffRole
	if req.Role != nil && *req.Role != "" {
		role = *req.Role
		val.OneOf("role", role, models.StaffRoles, "Unknown staff role")
	}
	if !val.Valid() {
		WriteValidationErrors(w, val.Errors())
		return
	}

	now := time.Now().UTC()
	row := models.StaffMember{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Title != nil {
		row.Title = *req.Title
	}
	if req.Bio != nil {
		row.Bio = *req.Bio
	}
	if req.Order != nil {
		row.SortOrder = *req.Order
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}
	_, err := s.DB.Exec(`
INSERT INTO staff (id, name, title, role, bio, photo_url, sort_order, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,'',$6,$7,$8,$8)
`, row.ID, row.Name, row.Title, row.Role, row.Bio, row.SortOrder, row.IsActive, now)
	if err != nil {
		s.serverError(w, "Failed to create staff member", err)
		return
	}
	WriteJSON(w, http.StatusCreated, StaffResponse{
		Success: true,
		Message: "Staff member created successfully",
		Staff:   staffDTO(row),
	})
}

func (s *Server) UpdateStaffMember(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	var req StaffWriteRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	row := models.StaffMember{}
	if err := s.DB.Get(&row, `SELECT * FROM staff WHERE id = $1`, staffID); err != nil {
		WriteError(w, http.StatusNotFound, "Staff member not found")
		return
	}
	if strings.TrimSpace(req.Name) != "" {
		row.Name = strings.TrimSpace(req.Name)
	}
	if req.Title != nil {
		row.Title = *req.Title
	}
	if req.Role != nil && *req.Role != "" {
		if !models.IsStaffRole(*req.Role) {
			WriteError(w, http.StatusBadRequest, "Unknown staff role")
			return
		}
		row.Role = *req.Role
	}
	if req.Bio != nil {
		row.Bio = *req.Bio
	}
	if req.Order != nil {
		row.SortOrder = *req.Order
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}
	row.UpdatedAt = time.Now().UTC()

	_, err := s.DB.Exec(`
UPDATE staff
SET name = $1, title = $2, role = $3, bio = $4, sort_order = $5, is_active = $6, updated_at = $7
WHERE id = $8
`, row.Name, row.Title, row.Role, row.Bio, row.SortOrder, row.IsActive, row.UpdatedAt, row.ID)
	if err != nil {
		s.serverError(w, "Failed to update staff member", err)
		return
	}
	WriteJSON(w, http.StatusOK, StaffResponse{
		Success: true,
		Message: "Staff member updated successfully",
		Staff:   staffDTO(row),
	})
}

func (s *Server) DeleteStaffMember(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	row := models.StaffMember{}
	if err := s.DB.Get(&row, `SELECT * FROM staff WHERE id = $1`, staffID); err != nil {
		WriteError(w, http.StatusNotFound, "Staff member not found")
		return
	}
	if _, err := s.DB.Exec(`DELETE FROM staff WHERE id = $1`, staffID); err != nil {
		s.serverError(w, "Failed to delete staff member", err)
		return
	}
	if row.PhotoURL != "" {
		services.RemoveUploadByURL(s.Config.UploadPath, row.PhotoURL)
	}
	WriteMessage(w, http.StatusOK, "Staff member deleted successfully")
}

func (s *Server) UploadStaffPhoto(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadBytes)
	if err := r.ParseMultipartForm(services.MaxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "No photo uploaded")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "No photo uploaded")
		return
	}
	defer file.Close()

	row := models.StaffMember{}
	if err := s.DB.Get(&row, `SELECT * FROM staff WHERE id = $1`, staffID); err != nil {
		WriteError(w, http.StatusNotFound, "Staff member not found")
		return
	}

	staffDir := filepath.Join(s.Config.UploadPath, "staff")
	filename, path, err := services.SaveUpload(staffDir, "staff", header.Filename, file)
	if err != nil {
		if serr, ok := err.(services.ServiceError); ok {
			WriteError(w, serr.Status, serr.Message)
			return
		}
		s.serverError(w, "Failed to upload photo", err)
		return
	}
	if err := s.Images.Optimize(path); err != nil {
		log.Printf("staff photo optimize %s: %v", filename, err)
	}

	previous := row.PhotoURL
	row.PhotoURL = "/uploads/staff/" + filename
	row.UpdatedAt = time.Now().UTC()
	if _, err := s.DB.Exec(`UPDATE staff SET photo_url = $1, updated_at = $2 WHERE id = $3`,
		row.PhotoURL, row.UpdatedAt, row.ID); err != nil {
		services.RemoveUploadByURL(s.Config.UploadPath, row.PhotoURL)
		s.serverError(w, "Failed to upload photo", err)
		return
	}
	if previous != "" {
		services.RemoveUploadByURL(s.Config.UploadPath, previous)
	}
	WriteJSON(w, http.StatusOK, StaffPhotoResponse{
		Success:  true,
		Message:  "Photo uploaded successfully",
		PhotoURL: row.PhotoURL,
		Staff:    staffDTO(row),
	})
}

func staffDTOs(rows []models.StaffMember) []StaffDTO {
	items := make([]StaffDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, staffDTO(row))
	}
	return items
}
