package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// pathID parses the chi URL parameter param as a positive int64.
func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %w", ErrInvalidResourceID, validators.NewFieldError(param, "must be a positive integer"))
	}
	return id, nil
}

// subjectFromRequest returns the subject stored by the auth middleware.
func subjectFromRequest(r *http.Request) (int64, error) {
	subjectID, ok := utils.GetSubjectIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoSubjectInContext
	}
	return subjectID, nil
}

// pageFromQuery reads ?page and ?pageSize, applying the defaults for absent
// values and the PageRequest rules to present ones.
func (h *Handler) pageFromQuery(r *http.Request) (models.Page, error) {
	query := r.URL.Query()
	request := models.PageRequest{Page: defaultPage, PageSize: defaultPageSize}

	params := []struct {
		name string
		dst  *int
	}{
		{"page", &request.Page},
		{"pageSize", &request.PageSize},
	}
	for _, p := range params {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return models.Page{}, validators.NewFieldError(p.name, "must be an integer")
		}
		*p.dst = value
	}

	if err := h.validator.Validate(r.Context(), request); err != nil {
		return models.Page{}, err
	}

	return models.Page{Number: request.Page, Size: request.PageSize}, nil
}
