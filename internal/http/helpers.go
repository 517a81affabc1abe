package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// serverError logs the underlying cause and sends the generic 500 envelope.
// Outside production the error text is echoed in the details field.
func (s *Server) serverError(w http.ResponseWriter, message string, err error) {
	log.Printf("%s: %v", message, err)
	resp := ErrorResponse{Message: message}
	if err != nil && !s.Config.IsProduction() {
		resp.Details = err.Error()
	}
	WriteJSON(w, http.StatusInternalServerError, resp)
}

// decodeJSON decodes an optional request body. An empty body decodes as an
// empty object so partial updates may omit the payload entirely.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func parseInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return value
}
