package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	request, ok := bodyFromContext[models.SignUpRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.ID).Msg("user registered")
	h.writeToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	request, ok := bodyFromContext[models.SignInRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", foundUser.ID).Msg("user successfully logged in")
	h.writeToken(w, r, foundUser, http.StatusOK)
}

// writeToken issues a token for user and sends it both in the body and in
// the Authorization header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, status)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	subjectID, err := subjectFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), subjectID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subjectID, err := subjectFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	request, ok := bodyFromContext[models.ProfileUpdateRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.UserService.UpdateProfile(ctx, models.ProfileUpdate{
		UserID: subjectID,
		Name:   request.Name,
		Bio:    request.Bio,
		Avatar: request.Avatar,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
