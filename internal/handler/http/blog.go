package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	page, err := h.pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	blogs, err := h.services.BlogService.List(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blogs, http.StatusOK)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	blogID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	blog, err := h.services.BlogService.Get(r.Context(), blogID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BlogResponse{Blog: blog}, http.StatusOK)
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subjectID, err := subjectFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	request, ok := bodyFromContext[models.BlogCreateRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	created, err := h.services.BlogService.Create(ctx, models.Blog{
		Title:    request.Title,
		Content:  request.Content,
		AuthorID: subjectID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("blog_id", created.ID).Msg("blog created")
	utils.WriteJSON(w, models.IDResponse{ID: created.ID}, http.StatusCreated)
}

// updateBlog runs behind requireOwnership.
func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	blogID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	request, ok := bodyFromContext[models.BlogUpdateRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updated, err := h.services.BlogService.Update(ctx, models.BlogUpdate{
		ID:       blogID,
		Title:    request.Title,
		Content:  request.Content,
		ImageURL: request.ImageURL,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.IDResponse{ID: updated.ID}, http.StatusOK)
}

// deleteBlog runs behind requireOwnership.
func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	blogID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.BlogService.Delete(r.Context(), blogID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("blog_id", blogID).Msg("blog deleted")
	w.WriteHeader(http.StatusNoContent)
}
