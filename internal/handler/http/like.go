package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) react(w http.ResponseWriter, r *http.Request) {
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

	request, ok := bodyFromContext[models.ReactionRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	result, err := h.services.ReactionService.React(ctx, models.Like{
		BlogID: blogID,
		UserID: subjectID,
		Type:   request.Type,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// reactionSummary is public; the caller's own reaction is included only when
// optionalAuth resolved a subject.
func (h *Handler) reactionSummary(w http.ResponseWriter, r *http.Request) {
	blogID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	subjectID, _ := utils.GetSubjectIDFromContext(r.Context())

	summary, err := h.services.ReactionService.Summary(r.Context(), blogID, subjectID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
