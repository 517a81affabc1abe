package main

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"abroberts-backend-go/internal/config"
	"abroberts-backend-go/internal/db"
	"abroberts-backend-go/internal/migrations"
	"abroberts-backend-go/internal/models"
	"abroberts-backend-go/internal/services"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

// Seeds the database with the initial admin account, default site
// settings and the starter pages. Safe to run repeatedly: existing
// rows are left untouched.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := migrations.Apply(database, "migrations"); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	if err := seedAdmin(database); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := seedSettings(database); err != nil {
		log.Fatalf("seed settings: %v", err)
	}
	if err := seedPages(database); err != nil {
		log.Fatalf("seed pages: %v", err)
	}
	log.Printf("seed complete")
}

func seedAdmin(database *sqlx.DB) error {
	email := strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL"))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Printf("SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	var count int
	if err := database.Get(&count, `SELECT count(*) FROM users WHERE lower(email) = lower($1)`, email); err != nil {
		return err
	}
	if count > 0 {
		log.Printf("admin %s already exists", email)
		return nil
	}

	hash, err := services.TokenService{}.HashPassword(password)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = database.Exec(`
INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
VALUES ($1,$2,$3,'admin',$4,$4)
`, uuid.NewString(), email, hash, now)
	if err != nil {
		return err
	}
	log.Printf("created admin %s", email)
	return nil
}

func seedSettings(database *sqlx.DB) error {
	defaults := map[string]any{
		"contact_info": map[string]any{
			"phone":   "",
			"email":   "",
			"address": "",
		},
		"business_hours": map[string]any{
			"weekdays": "9:00 AM - 5:00 PM",
			"saturday": "9:00 AM - 1:00 PM",
			"sunday":   "Closed",
		},
	}
	now := time.Now().UTC()
	for key, value := range defaults {
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		result, err := database.Exec(`
INSERT INTO settings (key, value, updated_at)
VALUES ($1,$2,$3)
ON CONFLICT (key) DO NOTHING
`, key, encoded, now)
		if err != nil {
			return err
		}
		if count, _ := result.RowsAffected(); count > 0 {
			log.Printf("created setting %s", key)
		}
	}
	return nil
}

func seedPages(database *sqlx.DB) error {
	pages := []struct {
		slug    string
		title   string
		meta    string
		content any
	}{
		{
			slug:  "home",
			title: "Welcome to A.B. Roberts Funeral Home",
			meta:  "Compassionate funeral services for your family in a time of need.",
			content: map[string]any{
				"hero": map[string]any{
					"heading":    "Honoring Lives with Dignity",
					"subheading": "Serving our community with compassion and care",
				},
				"blocks": []any{},
			},
		},
		{
			slug:  "about",
			title: "About Us",
			meta:  "Learn about our history, our chapel and the people who serve you.",
			content: map[string]any{
				"blocks": []any{},
			},
		},
	}

	now := time.Now().UTC()
	for _, page := range pages {
		var count int
		if err := database.Get(&count, `SELECT count(*) FROM pages WHERE lower(slug) = lower($1)`, page.slug); err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		encoded, err := json.Marshal(page.content)
		if err != nil {
			return err
		}
		_, err = database.Exec(`
INSERT INTO pages (id, slug, title, meta_description, content_format, sections, content, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,'[]',$6,TRUE,$7,$7)
`, uuid.NewString(), page.slug, page.title, page.meta, models.PageFormatDocument, encoded, now)
		if err != nil {
			return err
		}
		log.Printf("created page %s", page.slug)
	}
	return nil
}
