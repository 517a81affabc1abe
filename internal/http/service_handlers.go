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

type ServiceListResponse struct {
	Success  bool         `json:"success"`
	Services []ServiceDTO `json:"services"`
}

type ServiceResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Service ServiceDTO `json:"service"`
}

type ServiceWriteRequest struct {
	PackageName string              `json:"packageName"`
	Description string              `json:"description"`
	Items       models.ServiceItems `json:"items"`
	Order       *int                `json:"order"`
	IsActive    *bool               `json:"isActive"`
}

func (s *Server) ListActiveServices(w http.ResponseWriter, r *http.Request) {
	rows := []models.Service{}
	if err := s.DB.Select(&rows, `SELECT * FROM services WHERE is_active ORDER BY sort_order ASC`); err != nil {
		s.serverError(w, "Failed to retrieve services", err)
		return
	}
	items := make([]ServiceDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, serviceDTO(row))
	}
	WriteJSON(w, http.StatusOK, ServiceListResponse{Success: true, Services: items})
}

func (s *Server) ListAllServices(w http.ResponseWriter, r *http.Request) {
	rows := []models.Service{}
	if err := s.DB.Select(&rows, `SELECT * FROM services ORDER BY sort_order ASC`); err != nil {
		s.serverError(w, "Failed to retrieve services", err)
		return
	}
	items := make([]ServiceDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, serviceDTO(row))
	}
	WriteJSON(w, http.StatusOK, ServiceListResponse{Success: true, Services: items})
}

func (s *Server) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceID")
	row := models.Service{}
	if err := s.DB.Get(&row, `SELECT * FROM services WHERE id = $1`, serviceID); err != nil {
		WriteError(w, http.StatusNotFound, "Service not found")
		return
	}
	WriteJSON(w, http.StatusOK, ServiceResponse{Success: true, Service: serviceDTO(row)})
}

func (s *Server) CreateService(w http.ResponseWriter, r *http.Request) {
	var req ServiceWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	val := NewValidator()
	val.Require("packageName", req.PackageName, "Package name is required")
	val.NonEmptyList("items", len(req.Items), "At least one item is required")
	if !val.Valid() {
		WriteValidationErrors(w, val.Errors())
		return
	}

	now := time.Now().UTC()
	itemsJSON, _ := json.Marshal(req.Items)
	row := models.Service{
		ID:          uuid.NewString(),
		PackageName: strings.TrimSpace(req.PackageName),
		Description: req.Description,
		Items:       itemsJSON,
		// Derived on every persist: the stored total always matches the items.
		TotalPrice: req.Items.TotalPrice(),
		SortOrder:  0,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Order != nil {
		row.SortOrder = *req.Order
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}
	_, err := s.DB.Exec(`
INSERT INTO services (id, package_name, description, items, total_price, sort_order, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
`, row.ID, row.PackageName, row.Description, row.Items, row.TotalPrice, row.SortOrder, row.IsActive, now)
	if err != nil {
		s.serverError(w, "Failed to create service", err)
		return
	}
	WriteJSON(w, http.StatusCreated, ServiceResponse{
		Success: true,
		Message: "Service package created successfully",
		Service: serviceDTO(row),
	})
}

func (s *Server) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceID")
	var req ServiceWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	val := NewValidator()
	val.Require("packageName", req.PackageName, "Package name is required")
	val.NonEmptyList("items", len(req.Items), "At least one item is required")
	if !val.Valid() {
		WriteValidationErrors(w, val.Errors())
		return
	}

	row := models.Service{}
	if err := s.DB.Get(&row, `SELECT * FROM services WHERE id = $1`, serviceID); err != nil {
		WriteError(w, http.StatusNotFound, "Service not found")
		return
	}
	itemsJSON, _ := json.Marshal(req.Items)
	row.PackageName = strings.TrimSpace(req.PackageName)
	row.Description = req.Description
	row.Items = itemsJSON
	row.TotalPrice = req.Items.TotalPrice()
	if req.Order != nil {
		row.SortOrder = *req.Order
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}
	row.UpdatedAt = time.Now().UTC()

	_, err := s.DB.Exec(`
UPDATE services
SET package_name = $1, description = $2, items = $3, total_price = $4,
    sort_order = $5, is_active = $6, updated_at = $7
WHERE id = $8
`, row.PackageName, row.Description, row.Items, row.TotalPrice,
		row.SortOrder, row.IsActive, row.UpdatedAt, row.ID)
	if err != nil {
		s.serverError(w, "Failed to update service", err)
		return
	}
	WriteJSON(w, http.StatusOK, ServiceResponse{
		Success: true,
		Message: "Service updated successfully",
		Service: serviceDTO(row),
	})
}

func (s *Server) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceID")
	result, err := s.DB.Exec(`DELETE FROM services WHERE id = $1`, serviceID)
	if err != nil {
		s.serverError(w, "Failed to delete service", err)
		return
	}
	if count, _ := result.RowsAffected(); count == 0 {
		WriteError(w, http.StatusNotFound, "Service not found")
		return
	}
	WriteMessage(w, http.StatusOK, "Service deleted successfully")
}
