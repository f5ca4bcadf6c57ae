package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// errorStatus binds a sentinel to the status and the public message sent to
// the client. An empty message means the sentinel's own text is sent.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order; the first match wins. Token failures
// share one generic message so that clients cannot tell expired from forged.
var errorStatuses = []errorStatus{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrNoSubjectInContext, http.StatusUnauthorized, app.MsgUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized, ""},

	{ErrTooManyRequests, http.StatusTooManyRequests, ""},

	{ErrInvalidJSON, http.StatusBadRequest, ""},
	{ErrInvalidResourceID, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},

	{service.ErrResourceNotFound, http.StatusNotFound, ""},
	{store.ErrResourceNotFound, http.StatusNotFound, ""},
	{store.ErrBlogNotFound, http.StatusNotFound, ""},
	{store.ErrCommentNotFound, http.StatusNotFound, ""},
	{store.ErrNoUserWasFound, http.StatusNotFound, ""},

	{service.ErrForbidden, http.StatusForbidden, app.MsgForbidden},

	{store.ErrUsernameAlreadyExists, http.StatusConflict, ""},

	{store.ErrObjectStorageDisabled, http.StatusInternalServerError, ""},
}

// statusFromError resolves err to the HTTP status and the message returned
// to the client. Unknown errors become 500 with the generic status text.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.message != "" {
				return e.status, e.message
			}
			return e.status, e.target.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError writes the JSON error body for err. Validation failures carry
// the per-field map; everything else a single message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, models.ErrorResponse{
			Message: app.MsgValidationFailed,
			Errors:  validationErr.Fields,
		}, http.StatusBadRequest)
		return
	}

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
