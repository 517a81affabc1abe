package httpapi

import (
	"net/http"
	"time"

	"abroberts-backend-go/internal/config"
	"abroberts-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB           *sqlx.DB
	Config       config.Config
	Tokens       services.TokenService
	LoginLimiter *services.LoginLimiter
	Images       *services.ImageProcessor
	MetricsHub   *services.MetricsHub
}

func NewServer(db *sqlx.DB, cfg config.Config, limiter *services.LoginLimiter, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    time.Duration(cfg.TokenTTLSeconds) * time.Second,
	}
	return &Server{
		DB:           db,
		Config:       cfg,
		Tokens:       tokens,
		LoginLimiter: limiter,
		Images:       services.NewImageProcessor(cfg.UploadPath),
		MetricsHub:   hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	withAuth := WithAuth(s.Tokens)
	adminOnly := RequireRole("admin")

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", s.Health)

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", s.Login)
			auth.With(withAuth).Post("/verify", s.VerifyToken)
			auth.With(withAuth).Put("/password", s.ChangePassword)
		})

		api.Route("/contact", func(contact chi.Router) {
			contact.Post("/", s.SubmitContact)
			contact.Group(func(admin chi.Router) {
				admin.Use(withAuth, adminOnly)
				admin.Get("/", s.ListContacts)
				admin.Get("/{contactID}", s.GetContact)
				admin.Patch("/{contactID}/read", s.MarkContactRead)
				admin.Delete("/{contactID}", s.DeleteContact)
			})
		})

		api.Route("/gallery", func(gallery chi.Router) {
			gallery.Get("/", s.ListGallery)
			gallery.Group(func(admin chi.Router) {
				admin.Use(withAuth, adminOnly)
				admin.Post("/", s.UploadGalleryImage)
				admin.Put("/{imageID}", s.UpdateGalleryImage)
				admin.Patch("/{imageID}/reorder", s.ReorderGalleryImage)
				admin.Delete("/{imageID}", s.DeleteGalleryImage)
			})
		})

		api.Route("/pages", func(pages chi.Router) {
			pages.With(withAuth, adminOnly).Get("/", s.ListPages)
			pages.Get("/{slug}", s.GetPage)
			pages.With(withAuth, adminOnly).Put("/{slug}", s.UpdatePage)
		})

		api.Route("/services", func(svc chi.Router) {
			svc.Get("/", s.ListActiveServices)
			svc.Group(func(admin chi.Router) {
				admin.Use(withAuth, adminOnly)
				admin.Get("/admin/all", s.ListAllServices)
				admin.Get("/{serviceID}", s.GetService)
				admin.Post("/", s.CreateService)
				admin.Put("/{serviceID}", s.UpdateService)
				admin.Delete("/{serviceID}", s.DeleteService)
			})
		})

		api.Route("/settings", func(settings chi.Router) {
			settings.With(withAuth, adminOnly).Get("/", s.ListSettings)
			settings.Get("/{key}", s.GetSetting)
			settings.With(withAuth, adminOnly).Put("/{key}", s.UpsertSetting)
		})

		api.Route("/staff", func(staff chi.Router) {
			staff.Get("/active", s.ListActiveStaff)
			staff.Group(func(admin chi.Router) {
				admin.Use(withAuth, adminOnly)
				admin.Get("/", s.ListStaff)
				admin.Get("/{staffID}", s.GetStaffMember)
				admin.Post("/", s.CreateStaffMember)
				admin.Put("/{staffID}", s.UpdateStaffMember)
				admin.Delete("/{staffID}", s.DeleteStaffMember)
				admin.Post("/{staffID}/photo", s.UploadStaffPhoto)
			})
		})

		api.With(withAuth, adminOnly).Get("/admin/metrics/history", s.MetricsHistory)
	})

	r.Get("/ws/metrics", s.MetricsSocket)

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.Config.UploadPath)))
	r.Handle("/uploads/*", fileServer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "Route not found")
	})
	return r
}

type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Success:   true,
		Message:   "A.B. Roberts API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
