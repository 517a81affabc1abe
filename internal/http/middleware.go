package httpapi

import (
	"log"
	"net/http"
	"time"

	"abroberts-backend-go/internal/services"
)

// responseRecorder captures the status code and payload size a handler
// writes so the request log can report them.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// RequestLogger logs one line per request: client, method, path, status,
// response size and duration. The client address resolves through
// X-Forwarded-For so entries stay useful behind the reverse proxy.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(recorder, r)
		if recorder.status == 0 {
			recorder.status = http.StatusOK
		}
		log.Printf("%s %s %s %d %dB %s",
			services.ClientIP(r), r.Method, r.URL.Path, recorder.status, recorder.bytes, time.Since(start))
	})
}
