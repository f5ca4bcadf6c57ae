package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	blogID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.List(r.Context(), blogID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CommentsResponse{Comments: comments}, http.StatusOK)
}

// createComment needs no ownership: any authenticated subject may comment
// on any existing blog.
func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	blogID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	subjectID, err := subjectFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	request, ok := bodyFromContext[models.CommentCreateRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	created, err := h.services.CommentService.Create(ctx, models.Comment{
		Content: request.Content,
		BlogID:  blogID,
		UserID:  subjectID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CommentResponse{Comment: created}, http.StatusCreated)
}

// deleteComment runs behind requireOwnership on commentId. A comment of
// another blog is reported as not found.
func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	blogID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	commentID, err := pathID(r, "commentId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CommentService.Delete(r.Context(), blogID, commentID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
