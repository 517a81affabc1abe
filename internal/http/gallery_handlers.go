package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"abroberts-backend-go/internal/models"
	"abroberts-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type GalleryListResponse struct {
	Success    bool              `json:"success"`
	Images     []GalleryImageDTO `json:"images"`
	Categories []string          `json:"categories"`
}

type GalleryImageResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Image   GalleryImageDTO `json:"image"`
}

func (s *Server) ListGallery(w http.ResponseWriter, r *http.Request) {
	query := `SELECT * FROM gallery_images`
	args := []interface{}{}
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY sort_order ASC, uploaded_at DESC`

	rows := []models.GalleryImage{}
	if err := s.DB.Select(&rows, query, args...); err != nil {
		s.serverError(w, "Failed to retrieve gallery images", err)
		return
	}
	categories := []string{}
	if err := s.DB.Select(&categories, `SELECT DISTINCT category FROM gallery_images ORDER BY category`); err != nil {
		s.serverError(w, "Failed to retrieve gallery images", err)
		return
	}
	items := make([]GalleryImageDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, galleryImageDTO(row))
	}
	WriteJSON(w, http.StatusOK, GalleryListResponse{Success: true, Images: items, Categories: categories})
}

func (s *Server) UploadGalleryImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadBytes)
	if err := r.ParseMultipartForm(services.MaxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	category := strings.TrimSpace(r.FormValue("category"))
	val := NewValidator()
	val.Require("category", category, "Category is required")
	if category != "" {
		val.OneOf("category", category, models.GalleryCategories, "Unknown gallery category")
	}
	if !val.Valid() {
		WriteValidationErrors(w, val.Errors())
		return
	}

	filename, path, err := services.SaveUpload(s.Config.UploadPath, "gallery", header.Filename, file)
	if err != nil {
		if serr, ok := err.(services.ServiceError); ok {
			WriteError(w, serr.Status, serr.Message)
			return
		}
		s.serverError(w, "Failed to upload image", err)
		return
	}

	if err := s.Images.Optimize(path); err != nil {
		log.Printf("gallery optimize %s: %v", filename, err)
	}
	// A failed thumbnail degrades the record, it never fails the upload.
	var thumbnailURL *string
	if thumb, err := s.Images.Thumbnail(path); err != nil {
		log.Printf("gallery thumbnail %s: %v", filename, err)
	} else {
		thumbnailURL = &thumb.URL
	}

	userID := CurrentUserID(r)
	image := models.GalleryImage{
		ID:           uuid.NewString(),
		ImageURL:     "/uploads/" + filename,
		ThumbnailURL: thumbnailURL,
		Category:     category,
		Caption:      strings.TrimSpace(r.FormValue("caption")),
		SortOrder:    parseInt(r.FormValue("order"), 0),
		UploadedAt:   time.Now().UTC(),
		UploadedBy:   &userID,
	}
	_, err = s.DB.Exec(`
INSERT INTO gallery_images (id, image_url, thumbnail_url, category, caption, sort_order, uploaded_at, uploaded_by)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`, image.ID, image.ImageURL, image.ThumbnailURL, image.Category, image.Caption,
		image.SortOrder, image.UploadedAt, image.UploadedBy)
	if err != nil {
		services.RemoveUploadByURL(s.Config.UploadPath, image.ImageURL)
		if image.ThumbnailURL != nil {
			services.RemoveUploadByURL(s.Config.UploadPath, *image.ThumbnailURL)
		}
		s.serverError(w, "Failed to upload image", err)
		return
	}
	WriteJSON(w, http.StatusCreated, GalleryImageResponse{
		Success: true,
		Message: "Image uploaded successfully",
		Image:   galleryImageDTO(image),
	})
}

func (s *Server) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")
	var req struct {
		Category *string `json:"category"`
		Caption  *string `json:"caption"`
		Order    *int    `json:"order"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	row := models.GalleryImage{}
	if err := s.DB.Get(&row, `SELECT * FROM gallery_images WHERE id = $1`, imageID); err != nil {
		WriteError(w, http.StatusNotFound, "Image not found")
		return
	}
	if req.Category != nil && *req.Category != "" {
		if !models.IsGalleryCategory(*req.Category) {
			WriteError(w, http.StatusBadRequest, "Unknown gallery category")
			return
		}
		row.Category = *req.Category
	}
	if req.Caption != nil {
		row.Caption = *req.Caption
	}
	if req.Order != nil {
		row.SortOrder = *req.Order
	}
	if _, err := s.DB.Exec(`UPDATE gallery_images SET category = $1, caption = $2, sort_order = $3 WHERE id = $4`,
		row.Category, row.Caption, row.SortOrder, row.ID); err != nil {
		s.serverError(w, "Failed to update image", err)
		return
	}
	WriteJSON(w, http.StatusOK, GalleryImageResponse{
		Success: true,
		Message: "Image updated successfully",
		Image:   galleryImageDTO(row),
	})
}

func (s *Server) ReorderGalleryImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")
	var req struct {
		Order int `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	row := models.GalleryImage{}
	if err := s.DB.Get(&row, `SELECT * FROM gallery_images WHERE id = $1`, imageID); err != nil {
		WriteError(w, http.StatusNotFound, "Image not found")
		return
	}
	row.SortOrder = req.Order
	if _, err := s.DB.Exec(`UPDATE gallery_images SET sort_order = $1 WHERE id = $2`, row.SortOrder, row.ID); err != nil {
		s.serverError(w, "Failed to reorder image", err)
		return
	}
	WriteJSON(w, http.StatusOK, GalleryImageResponse{
		Success: true,
		Message: "Image reordered successfully",
		Image:   galleryImageDTO(row),
	})
}

func (s *Server) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")
	row := models.GalleryImage{}
	if err := s.DB.Get(&row, `SELECT * FROM gallery_images WHERE id = $1`, imageID); err != nil {
		WriteError(w, http.StatusNotFound, "Image not found")
		return
	}
	if _, err := s.DB.Exec(`DELETE FROM gallery_images WHERE id = $1`, imageID); err != nil {
		s.serverError(w, "Failed to delete image", err)
		return
	}
	services.RemoveUploadByURL(s.Config.UploadPath, row.ImageURL)
	if row.ThumbnailURL != nil {
		services.RemoveUploadByURL(s.Config.UploadPath, *row.ThumbnailURL)
	}
	WriteMessage(w, http.StatusOK, "Image deleted successfully")
}
