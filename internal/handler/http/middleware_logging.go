package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		event := logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)

		// set by the auth middleware
		if lw.subjectID != 0 {
			event = event.Int64("subject_id", lw.subjectID)
		}
		event.Send()
	})
}

// rememberSubject records the authenticated subject on the logging writer,
// if the response passes through one.
func rememberSubject(w http.ResponseWriter, r *http.Request) {
	lw, ok := w.(*responseWriter)
	if !ok {
		return
	}
	if subjectID, ok := utils.GetSubjectIDFromContext(r.Context()); ok {
		lw.subjectID = subjectID
	}
}
