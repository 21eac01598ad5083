package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-airbnb-api/internal/app"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/service"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
	"github.com/MKhiriev/go-airbnb-api/models"
)

// pictureField is the form field carrying an uploaded photo.
const pictureField = "picture"

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	session, err := h.services.AuthService.SignUp(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", session.ID.String()).Msg("account signed up")
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) logIn(w http.ResponseWriter, r *http.Request) {
	var req models.LogInRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	session, err := h.services.AuthService.LogIn(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	profile, err := h.services.AccountService.GetProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) userRooms(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	listings, err := h.services.ListingService.ListByOwner(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, listings, http.StatusOK)
}

// updateUser accepts a JSON body, or a multipart form whose optional
// "picture" file replaces the profile photo.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	account, err := actor(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	id, err := urlID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var update models.ProfileUpdate
	if err = decodeBody(r, &update); err != nil {
		writeServiceError(w, r, err)
		return
	}
	photo, err := readUpload(r, pictureField)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	session, err := h.services.AccountService.UpdateProfile(r.Context(), account, id, update, photo)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) deleteUserPicture(w http.ResponseWriter, r *http.Request) {
	account, err := actor(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	id, err := urlID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	session, err := h.services.AccountService.DeletePhoto(r.Context(), account, id)
	if errors.Is(err, service.ErrPhotoNotFound) {
		utils.WriteError(w, app.MsgNoPhotoFound, http.StatusNotFound)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	account, err := actor(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req models.PasswordUpdate
	if err = decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	session, err := h.services.AuthService.UpdatePassword(r.Context(), account, req)
	if errors.Is(err, service.ErrUnauthorized) {
		utils.WriteError(w, app.MsgWrongPreviousPassword, http.StatusUnauthorized)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) recoverPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordRecovery
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.services.PasswordResetService.RequestReset(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgRecoveryMailSent, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordReset
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	session, err := h.services.PasswordResetService.ResetPassword(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	account, err := actor(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.AccountService.DeleteAccount(r.Context(), account); err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", account.ID.String()).Msg("account deleted")
	utils.WriteMessage(w, app.MsgUserDeleted, http.StatusOK)
}
