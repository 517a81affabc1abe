package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"abroberts-backend-go/internal/models"

	"github.com/go-chi/chi/v5"
)

type PageListResponse struct {
	Success bool      `json:"success"`
	Pages   []PageDTO `json:"pages"`
}

type PageResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Page    PageDTO `json:"page"`
}

type PageUpdateRequest struct {
	Title           *string         `json:"title"`
	MetaDescription *string         `json:"metaDescription"`
	IsActive        *bool           `json:"isActive"`
	Sections        json.RawMessage `json:"sections"`
	Content         json.RawMessage `json:"content"`
}

func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	row := models.Page{}
	if err := s.DB.Get(&row, `SELECT * FROM pages WHERE lower(slug) = lower($1) AND is_active`, slug); err != nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}
	WriteJSON(w, http.StatusOK, PageResponse{Success: true, Page: pageDTO(row)})
}

func (s *Server) ListPages(w http.ResponseWriter, r *http.Request) {
	rows := []models.Page{}
	if err := s.DB.Select(&rows, `SELECT * FROM pages ORDER BY slug ASC`); err != nil {
		s.serverError(w, "Failed to retrieve pages", err)
		return
	}
	items := make([]PageDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, pageDTO(row))
	}
	WriteJSON(w, http.StatusOK, PageListResponse{Success: true, Pages: items})
}

func (s *Server) UpdatePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	var req PageUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	hasSections := rawProvided(req.Sections)
	hasContent := rawProvided(req.Content)
	if hasSections && hasContent {
		WriteError(w, http.StatusBadRequest, "Provide either sections or content, not both")
		return
	}

	row := models.Page{}
	if err := s.DB.Get(&row, `SELECT * FROM pages WHERE lower(slug) = lower($1)`, slug); err != nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		row.Title = strings.TrimSpace(*req.Title)
	}
	if req.MetaDescription != nil {
		row.MetaDescription = *req.MetaDescription
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}
	// A page uses exactly one content shape; writing one shape selects its
	// format and clears the other.
	if hasSections {
		row.ContentFormat = models.PageFormatSections
		row.Sections = req.Sections
		row.Content = nil
	}
	if hasContent {
		row.ContentFormat = models.PageFormatDocument
		row.Content = req.Content
		row.Sections = []byte("[]")
	}
	row.UpdatedAt = time.Now().UTC()

	_, err := s.DB.Exec(`
UPDATE pages
SET title = $1, meta_description = $2, content_format = $3, sections = $4,
    content = $5, is_active = $6, updated_at = $7
WHERE id = $8
`, row.Title, row.MetaDescription, row.ContentFormat, row.Sections,
		row.Content, row.IsActive, row.UpdatedAt, row.ID)
	if err != nil {
		s.serverError(w, "Failed to update page", err)
		return
	}
	WriteJSON(w, http.StatusOK, PageResponse{
		Success: true,
		Message: "Page updated successfully",
		Page:    pageDTO(row),
	})
}

// rawProvided reports whether a JSON field was present with a non-null value.
func rawProvided(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}
