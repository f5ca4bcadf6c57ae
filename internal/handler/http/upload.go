package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) avatarUploadURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subjectID, err := subjectFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	request, ok := bodyFromContext[models.UploadURLRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	upload, err := h.services.UploadService.AvatarUploadURL(ctx, subjectID, request.ContentType)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, upload, http.StatusOK)
}

// blogImageUploadURL runs behind requireOwnership, so the blog exists and
// belongs to the caller.
func (h *Handler) blogImageUploadURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	blogID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	request, ok := bodyFromContext[models.UploadURLRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	upload, err := h.services.UploadService.BlogImageUploadURL(ctx, blogID, request.ContentType)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, upload, http.StatusOK)
}
