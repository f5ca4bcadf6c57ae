package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// auth enforces bearer-token authentication.
//
// It reads the "Authorization" header, strips the "Bearer " prefix, verifies
// the token via [service.AuthService.ParseToken] and stores the subject id in
// the request context under [utils.SubjectIDCtxKey] before delegating to
// next. Every failure is answered with 401 and the same generic body; next
// and the persistence layer are never reached.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subjectID, err := h.resolveSubject(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		r = r.WithContext(utils.WithSubjectID(r.Context(), subjectID))
		rememberSubject(w, r)

		next.ServeHTTP(w, r)
	})
}

// optionalAuth resolves the subject like auth but never rejects: a missing
// or invalid token leaves the request anonymous.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subjectID, err := h.resolveSubject(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		r = r.WithContext(utils.WithSubjectID(r.Context(), subjectID))
		rememberSubject(w, r)

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) resolveSubject(r *http.Request) (int64, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return 0, ErrEmptyAuthorizationHeader
	}

	tokenString := utils.ParseBearerToken(authHeader)
	if tokenString == "" {
		return 0, ErrEmptyToken
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return 0, err
	}

	return token.SubjectID, nil
}
