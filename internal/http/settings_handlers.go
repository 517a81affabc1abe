package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"abroberts-backend-go/internal/models"

	"github.com/go-chi/chi/v5"
)

type SettingListResponse struct {
	Success  bool         `json:"success"`
	Settings []SettingDTO `json:"settings"`
}

type SettingResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Setting SettingDTO `json:"setting"`
}

func (s *Server) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	row := models.Setting{}
	if err := s.DB.Get(&row, `SELECT * FROM settings WHERE key = $1`, key); err != nil {
		WriteError(w, http.StatusNotFound, "Setting not found")
		return
	}
	WriteJSON(w, http.StatusOK, SettingResponse{Success: true, Setting: settingDTO(row)})
}

func (s *Server) ListSettings(w http.ResponseWriter, r *http.Request) {
	rows := []models.Setting{}
	if err := s.DB.Select(&rows, `SELECT * FROM settings ORDER BY key ASC`); err != nil {
		s.serverError(w, "Failed to retrieve settings", err)
		return
	}
	items := make([]SettingDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, settingDTO(row))
	}
	WriteJSON(w, http.StatusOK, SettingListResponse{Success: true, Settings: items})
}

func (s *Server) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !rawProvided(req.Value) {
		WriteError(w, http.StatusBadRequest, "Value is required")
		return
	}

	row := models.Setting{
		Key:       key,
		Value:     req.Value,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.DB.Exec(`
INSERT INTO settings (key, value, updated_at)
VALUES ($1,$2,$3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
`, row.Key, row.Value, row.UpdatedAt)
	if err != nil {
		s.serverError(w, "Failed to update setting", err)
		return
	}
	WriteJSON(w, http.StatusOK, SettingResponse{
		Success: true,
		Message: "Setting updated successfully",
		Setting: settingDTO(row),
	})
}
