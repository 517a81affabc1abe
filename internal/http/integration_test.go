package httpapi

// These tests need a real Postgres database and are skipped unless
// TEST_DATABASE_URL is set. They cover the behaviors that live in SQL:
// case-insensitive slug uniqueness, gallery filtering and ordering, and the
// login flow against a populated users table.

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"abroberts-backend-go/internal/config"
	"abroberts-backend-go/internal/db"
	"abroberts-backend-go/internal/migrations"
	"abroberts-backend-go/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func integrationServer(t *testing.T) *Server {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	database, err := db.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, migrations.Apply(database, filepath.Join("..", "..", "migrations")))
	_, err = database.Exec(`TRUNCATE users, contacts, gallery_images, pages, services, staff, settings, server_metric_samples`)
	require.NoError(t, err)

	cfg := config.Config{
		JWTSecret:       "integration-secret",
		JWTIssuer:       "abroberts-test",
		TokenTTLSeconds: 3600,
		UploadPath:      t.TempDir(),
		Environment:     "test",
	}
	limiter := services.NewLoginLimiter(100, time.Minute)
	return NewServer(database, cfg, limiter, services.NewMetricsHub())
}

func adminToken(t *testing.T, server *Server) string {
	t.Helper()
	token, _, err := server.Tokens.CreateToken(uuid.NewString(), "admin@example.com", "admin")
	require.NoError(t, err)
	return token
}

func TestLoginUnknownEmailAndWrongPasswordMatch(t *testing.T) {
	server := integrationServer(t)
	hash, err := server.Tokens.HashPassword("right-password")
	require.NoError(t, err)
	_, err = server.DB.Exec(`INSERT INTO users (id, email, password_hash, role) VALUES ($1,$2,$3,'admin')`,
		uuid.NewString(), "admin@example.com", hash)
	require.NoError(t, err)

	router := server.Router()
	attempt := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body)))
		return rec
	}

	wrongPassword := attempt(`{"email":"admin@example.com","password":"wrong-password"}`)
	unknownEmail := attempt(`{"email":"ghost@example.com","password":"whatever-else"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
		"unknown email and wrong password must be indistinguishable")

	success := attempt(`{"email":"Admin@Example.com","password":"right-password"}`)
	require.Equal(t, http.StatusOK, success.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(success.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@example.com", resp.User.Email)
}

func TestPageSlugCaseInsensitive(t *testing.T) {
	server := integrationServer(t)
	_, err := server.DB.Exec(`
INSERT INTO pages (id, slug, title, content_format, sections, is_active)
VALUES ($1,'our-story','Our Story','document','[]',TRUE)`, uuid.NewString())
	require.NoError(t, err)

	_, err = server.DB.Exec(`INSERT INTO pages (id, slug, title) VALUES ($1,'Our-Story','Duplicate')`,
		uuid.NewString())
	assert.Error(t, err, "slugs differing only in case must collide")

	router := server.Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/pages/OUR-STORY", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "our-story", resp.Page.Slug)
}

func TestGalleryCategoryFilterAndOrder(t *testing.T) {
	server := integrationServer(t)
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := []struct {
		caption   string
		category  string
		sortOrder int
		uploaded  time.Time
	}{
		{"chapel-late", "chapel", 2, base},
		{"chapel-new", "chapel", 1, base.Add(2 * time.Hour)},
		{"chapel-old", "chapel", 1, base.Add(time.Hour)},
		{"vehicle", "vehicles", 0, base},
	}
	for _, row := range rows {
		_, err := server.DB.Exec(`
INSERT INTO gallery_images (id, image_url, category, caption, sort_order, uploaded_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
			uuid.NewString(), "/uploads/"+row.caption+".jpg", row.category, row.caption, row.sortOrder, row.uploaded)
		require.NoError(t, err)
	}

	router := server.Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/gallery/?category=chapel", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GalleryListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Images, 3)
	captions := []string{resp.Images[0].Caption, resp.Images[1].Caption, resp.Images[2].Caption}
	assert.Equal(t, []string{"chapel-new", "chapel-old", "chapel-late"}, captions,
		"sort_order ascending, then newest first within equal order")
	assert.Equal(t, []string{"chapel", "vehicles"}, resp.Categories)
}

func TestMarkContactReadDefaultsToRead(t *testing.T) {
	server := integrationServer(t)
	contactID := uuid.NewString()
	_, err := server.DB.Exec(`INSERT INTO contacts (id, name, email, message) VALUES ($1,'Ada','ada@example.com','Hello')`,
		contactID)
	require.NoError(t, err)

	router := server.Router()
	token := adminToken(t, server)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("PATCH", "/api/contact/"+contactID+"/read", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ContactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Contact marked as read", resp.Message)
	assert.True(t, resp.Contact.IsRead)
	assert.NotNil(t, resp.Contact.ReadAt)

	rec = httptest.NewRecorder()
	r = httptest.NewRequest("PATCH", "/api/contact/"+contactID+"/read", strings.NewReader(`{"isRead":false}`))
	r.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Contact marked as unread", resp.Message)
	assert.False(t, resp.Contact.IsRead)
	assert.Nil(t, resp.Contact.ReadAt)
}
