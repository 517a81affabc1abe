package httpapi

import (
	"encoding/json"
	"time"

	"abroberts-backend-go/internal/models"
)

type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ContactDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Message     string     `json:"message"`
	IsRead      bool       `json:"isRead"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ReadAt      *time.Time `json:"readAt"`
}

func contactDTO(m models.Contact) ContactDTO {
	return ContactDTO{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Message:     m.Message,
		IsRead:      m.IsRead,
		SubmittedAt: m.SubmittedAt,
		ReadAt:      m.ReadAt,
	}
}

type GalleryImageDTO struct {
	ID           string    `json:"id"`
	ImageURL     string    `json:"imageUrl"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Category     string    `json:"category"`
	Caption      string    `json:"caption"`
	Order        int       `json:"order"`
	UploadedAt   time.Time `json:"uploadedAt"`
	UploadedBy   *string   `json:"uploadedBy"`
}

func galleryImageDTO(m models.GalleryImage) GalleryImageDTO {
	return GalleryImageDTO{
		ID:           m.ID,
		ImageURL:     m.ImageURL,
		ThumbnailURL: m.ThumbnailURL,
		Category:     m.Category,
		Caption:      m.Caption,
		Order:        m.SortOrder,
		UploadedAt:   m.UploadedAt,
		UploadedBy:   m.UploadedBy,
	}
}

type PageDTO struct {
	ID              string          `json:"id"`
	Slug            string          `json:"slug"`
	Title           string          `json:"title"`
	MetaDescription string          `json:"metaDescription"`
	ContentFormat   string          `json:"contentFormat"`
	Sections        json.RawMessage `json:"sections"`
	Content         json.RawMessage `json:"content"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func pageDTO(m models.Page) PageDTO {
	sections := json.RawMessage(m.Sections)
	if len(sections) == 0 {
		sections = json.RawMessage("[]")
	}
	content := json.RawMessage(m.Content)
	if len(content) == 0 {
		content = json.RawMessage("null")
	}
	return PageDTO{
		ID:              m.ID,
		Slug:            m.Slug,
		Title:           m.Title,
		MetaDescription: m.MetaDescription,
		ContentFormat:   m.ContentFormat,
		Sections:        sections,
		Content:         content,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

type ServiceDTO struct {
	ID          string              `json:"id"`
	PackageName string              `json:"packageName"`
	Description string              `json:"description"`
	Items       models.ServiceItems `json:"items"`
	TotalPrice  float64             `json:"totalPrice"`
	Order       int                 `json:"order"`
	IsActive    bool                `json:"isActive"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func serviceDTO(m models.Service) ServiceDTO {
	items := models.ServiceItems{}
	_ = json.Unmarshal(m.Items, &items)
	return ServiceDTO{
		ID:          m.ID,
		PackageName: m.PackageName,
		Description: m.Description,
		Items:       items,
		TotalPrice:  m.TotalPrice,
		Order:       m.SortOrder,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type StaffDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio"`
	PhotoURL  string    `json:"photoUrl"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func staffDTO(m models.StaffMember) StaffDTO {
	return StaffDTO{
		ID:        m.ID,
		Name:      m.Name,
		Title:     m.Title,
		Role:      m.Role,
		Bio:       m.Bio,
		PhotoURL:  m.PhotoURL,
		Order:     m.SortOrder,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type SettingDTO struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func settingDTO(m models.Setting) SettingDTO {
	return SettingDTO{
		Key:       m.Key,
		Value:     json.RawMessage(m.Value),
		UpdatedAt: m.UpdatedAt,
	}
}
