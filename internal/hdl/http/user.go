package http

import (
	"net/http"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/dto"
	"github.com/JMURv/zedasignal/internal/hdl"
	mid "github.com/JMURv/zedasignal/internal/hdl/http/middleware"
	"github.com/JMURv/zedasignal/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterUserRoutes(r chi.Router) {
	r.Use(mid.Auth(h.au))
	r.Get("/me", h.getMe)
	r.Put("/me", h.updateMe)
	r.Get("/me/profile", h.getProfile)
	r.Put("/me/profile", h.updateProfile)
}

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	const op = "users.getMe.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.GetUserByUUID(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	const op = "users.updateMe.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	req := &dto.UpdateUserRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.UpdateUser(r.Context(), uid, req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "User updated", res)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	const op = "users.getProfile.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.GetProfile(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	const op = "users.updateProfile.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	req := &dto.UpdateProfileRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.UpdateProfile(r.Context(), uid, req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Profile updated", res)
}

func callerUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrFailedToGetUUID)
		return uuid.Nil, false
	}
	return uid, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	uid, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil || uid == uuid.Nil {
		utils.ErrResponse(w, http.StatusNotFound, hdl.ErrFailedToParseUUID)
		return uuid.Nil, false
	}
	return uid, true
}
