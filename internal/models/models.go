package models

import "time"

type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	LastLoginAt  *time.Time `db:"last_login_at"`
}

type Contact struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	Message     string     `db:"message"`
	IsRead      bool       `db:"is_read"`
	SubmittedAt time.Time  `db:"submitted_at"`
	ReadAt      *time.Time `db:"read_at"`
}

// SetRead flips the read flag and keeps read_at consistent with it:
// read_at is set when and only when is_read is true.
func (c *Contact) SetRead(isRead bool, now time.Time) {
	c.IsRead = isRead
	if isRead {
		at := now
		c.ReadAt = &at
	} else {
		c.ReadAt = nil
	}
}

type GalleryImage struct {
	ID           string    `db:"id"`
	ImageURL     string    `db:"image_url"`
	ThumbnailURL *string   `db:"thumbnail_url"`
	Category     string    `db:"category"`
	Caption      string    `db:"caption"`
	SortOrder    int       `db:"sort_order"`
	UploadedAt   time.Time `db:"uploaded_at"`
	UploadedBy   *string   `db:"uploaded_by"`
}

type Page struct {
	ID              string    `db:"id"`
	Slug            string    `db:"slug"`
	Title           string    `db:"title"`
	MetaDescription string    `db:"meta_description"`
	ContentFormat   string    `db:"content_format"`
	Sections        []byte    `db:"sections"`
	Content         []byte    `db:"content"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Service struct {
	ID          string    `db:"id"`
	PackageName string    `db:"package_name"`
	Description string    `db:"description"`
	Items       []byte    `db:"items"`
	TotalPrice  float64   `db:"total_price"`
	SortOrder   int       `db:"sort_order"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type StaffMember struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Title     string    `db:"title"`
	Role      string    `db:"role"`
	Bio       string    `db:"bio"`
	PhotoURL  string    `db:"photo_url"`
	SortOrder int       `db:"sort_order"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Setting struct {
	Key       string    `db:"key"`
	Value     []byte    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
