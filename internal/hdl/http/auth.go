package http

import (
	"net/http"

	"github.com/JMURv/zedasignal/internal/dto"
	mid "github.com/JMURv/zedasignal/internal/hdl/http/middleware"
	"github.com/JMURv/zedasignal/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterAuthRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/send-verification-code", h.sendVerificationCode)
	r.Post("/verify", h.verify)
	r.Post("/login", h.login)
	r.Post("/token/refresh", h.refresh)
	r.With(mid.Auth(h.au)).Post("/logout", h.logout)
	r.With(mid.ClientInfo).Post("/password-reset", h.requestPasswordReset)
	r.Post("/password-reset/validate-token", h.validateResetToken)
	r.Post("/password-reset/confirm", h.confirmPasswordReset)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	const op = "auth.register.hdl"
	req := &dto.RegisterRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Register(r.Context(), req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "User registered successfully", res)
}

func (h *Handler) sendVerificationCode(w http.ResponseWriter, r *http.Request) {
	const op = "auth.sendVerificationCode.hdl"
	req := &dto.EmailRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.SendVerificationCode(r.Context(), req.Email); err != nil {
		fail(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "Verification code sent successfully")
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	const op = "auth.verify.hdl"
	req := &dto.VerifyRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.VerifyEmail(r.Context(), req); err != nil {
		fail(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "User account verified")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login.hdl"
	req := &dto.LoginRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Login(r.Context(), req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SetAuthCookies(w, res.Tokens.Access, res.Tokens.Refresh)
	utils.SuccessResponse(w, http.StatusOK, "Login successful", res)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	const op = "auth.refresh.hdl"
	req := &dto.RefreshRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Refresh(r.Context(), req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SetAuthCookies(w, res.Access, res.Refresh)
	utils.SuccessResponse(w, http.StatusOK, "Token refreshed", res)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	const op = "auth.logout.hdl"
	req := &dto.RefreshRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.Logout(r.Context(), req); err != nil {
		fail(w, op, err)
		return
	}

	utils.ClearAuthCookies(w)
	utils.StatusResponse(w, http.StatusResetContent, "User successfully logged out")
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	const op = "auth.requestPasswordReset.hdl"
	req := &dto.EmailRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.RequestPasswordReset(r.Context(), req.Email); err != nil {
		fail(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "Password request token sent successfully")
}

func (h *Handler) validateResetToken(w http.ResponseWriter, r *http.Request) {
	const op = "auth.validateResetToken.hdl"
	req := &dto.ResetTokenRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.ValidateResetToken(r.Context(), req.Token); err != nil {
		fail(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "Password reset token validated successfully")
}

func (h *Handler) confirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	const op = "auth.confirmPasswordReset.hdl"
	req := &dto.ConfirmResetRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.ConfirmPasswordReset(r.Context(), req); err != nil {
		fail(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "Password reset successfully")
}
