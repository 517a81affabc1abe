package httpapi

import (
	"net/http"
	"strings"

	"abroberts-backend-go/internal/services"

	"github.com/gorilla/websocket"
)

type MetricsHistoryResponse struct {
	Success bool                    `json:"success"`
	Items   []services.MetricSample `json:"items"`
}

func (s *Server) MetricsHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit > 500 {
		limit = 500
	}
	items, err := services.LatestMetrics(s.DB, limit)
	if err != nil {
		s.serverError(w, "Failed to retrieve metrics", err)
		return
	}
	WriteJSON(w, http.StatusOK, MetricsHistoryResponse{Success: true, Items: items})
}

// MetricsSocket streams live server samples to the admin dashboard. Browsers
// cannot set headers on websocket upgrades, so the token rides the query.
func (s *Server) MetricsSocket(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("token")
	if raw == "" {
		WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	token, claims, err := s.Tokens.ParseToken(raw)
	if err != nil || !token.Valid {
		WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	role, _ := claims["role"].(string)
	if !strings.EqualFold(role, "admin") {
		WriteError(w, http.StatusForbidden, "Not allowed")
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.MetricsHub.Add(conn)
	defer func() {
		s.MetricsHub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
