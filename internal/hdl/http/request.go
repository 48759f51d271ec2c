package http

import (
	"net/http"

	"github.com/JMURv/zedasignal/internal/access"
	"github.com/JMURv/zedasignal/internal/dto"
	"github.com/JMURv/zedasignal/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerRequestRoutes(r chi.Router) {
	h.can(r, access.SubmitRequests).Post("/account-screening-request", h.createScreeningRequest)
	h.can(r, access.SubmitRequests).Get("/check-account-screening-request-approval", h.checkScreeningApproval)
	h.can(r, access.ManageRequests).Post("/account-screening-request/{uuid}/approve", h.approveScreeningRequest)
	h.can(r, access.SubmitRequests).Post("/help-support-request", h.helpSupportRequest)
	h.can(r, access.SubmitRequests).Post("/account-upgrade-payment-request", h.upgradePaymentRequest)
}

func (h *Handler) createScreeningRequest(w http.ResponseWriter, r *http.Request) {
	const op = "trading.createScreeningRequest.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	req := &dto.ScreeningRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateScreeningRequest(r.Context(), uid, req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "Account screening request submitted.", res)
}

func (h *Handler) checkScreeningApproval(w http.ResponseWriter, r *http.Request) {
	const op = "trading.checkScreeningApproval.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.CheckScreeningApproval(r.Context(), uid); err != nil {
		fail(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "Account screening approved.")
}

func (h *Handler) approveScreeningRequest(w http.ResponseWriter, r *http.Request) {
	const op = "trading.approveScreeningRequest.hdl"
	uid, ok := pathUUID(w, r, "uuid")
	if !ok {
		return
	}

	if err := h.ctrl.ApproveScreeningRequest(r.Context(), uid); err != nil {
		fail(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "Account screening request approved.")
}

func (h *Handler) helpSupportRequest(w http.ResponseWriter, r *http.Request) {
	const op = "trading.helpSupportRequest.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	req := &dto.HelpSupportRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.SendHelpSupportRequest(r.Context(), uid, req); err != nil {
		fail(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "Help support request sent.")
}

func (h *Handler) upgradePaymentRequest(w http.ResponseWriter, r *http.Request) {
	const op = "trading.upgradePaymentRequest.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	req := &dto.UpgradePaymentRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateUpgradeRequest(r.Context(), uid, req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "Account upgrade payment request submitted.", res)
}
