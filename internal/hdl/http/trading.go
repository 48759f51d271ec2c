package http

import (
	"net/http"

	"github.com/JMURv/zedasignal/internal/access"
	"github.com/JMURv/zedasignal/internal/dto"
	mid "github.com/JMURv/zedasignal/internal/hdl/http/middleware"
	"github.com/JMURv/zedasignal/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterTradingRoutes(r chi.Router) {
	h.can(r, access.ReadSignals).Get("/signals", h.listSignals)
	h.can(r, access.ReadSignals).Get("/signals/{uuid}", h.getSignal)
	h.can(r, access.PublishSignals).Post("/create-signal", h.createSignal)
	h.can(r, access.PublishSignals).Post("/signals/{uuid}/deactivate", h.deactivateSignal)

	r.Get("/subscription-plans", h.listPlans)
	r.Get("/subscription-plans/{uuid}", h.getPlan)
	h.can(r, access.ManagePlans).Post("/subscription-plans", h.createPlan)
	r.With(mid.Auth(h.au)).Get("/user-active-subscription-plans", h.listPlansForUser)
	h.can(r, access.ManageUsers).Get("/users-and-active-subscription-plans", h.listUsersWithPlans)
	h.can(r, access.ManageUsers).Get("/users-and-active-subscription-plans/{uuid}", h.getUserWithPlan)
	h.can(r, access.ManagePlans).Post("/activate-user-subscription-plan", h.activateSubscription)
	h.can(r, access.ReadDashboard).Get("/admin-dashboard-statistics", h.dashboardStats)

	h.registerBotRoutes(r)
	h.registerRequestRoutes(r)
}

func (h *Handler) listSignals(w http.ResponseWriter, r *http.Request) {
	const op = "trading.listSignals.hdl"
	page, size := utils.ParsePaginationValues(r)

	res, err := h.ctrl.ListSignals(r.Context(), page, size)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) getSignal(w http.ResponseWriter, r *http.Request) {
	const op = "trading.getSignal.hdl"
	uid, ok := pathUUID(w, r, "uuid")
	if !ok {
		return
	}

	res, err := h.ctrl.GetSignal(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) createSignal(w http.ResponseWriter, r *http.Request) {
	const op = "trading.createSignal.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	req := &dto.CreateSignalRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateSignal(r.Context(), uid, req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "Signal created.", res)
}

func (h *Handler) deactivateSignal(w http.ResponseWriter, r *http.Request) {
	const op = "trading.deactivateSignal.hdl"
	uid, ok := pathUUID(w, r, "uuid")
	if !ok {
		return
	}

	if err := h.ctrl.DeactivateSignal(r.Context(), uid); err != nil {
		fail(w, op, err)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "Signal deactivated.")
}

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	const op = "trading.listPlans.hdl"
	res, err := h.ctrl.ListPlans(r.Context())
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	const op = "trading.getPlan.hdl"
	uid, ok := pathUUID(w, r, "uuid")
	if !ok {
		return
	}

	res, err := h.ctrl.GetPlan(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	const op = "trading.createPlan.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	req := &dto.CreatePlanRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreatePlan(r.Context(), uid, req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "", res)
}

func (h *Handler) listPlansForUser(w http.ResponseWriter, r *http.Request) {
	const op = "trading.listPlansForUser.hdl"
	uid, ok := callerUID(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.ListPlansForUser(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "User active subscription plans.", res)
}

func (h *Handler) listUsersWithPlans(w http.ResponseWriter, r *http.Request) {
	const op = "trading.listUsersWithPlans.hdl"
	page, size := utils.ParsePaginationValues(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListUsersWithPlans(r.Context(), page, size, filters)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) getUserWithPlan(w http.ResponseWriter, r *http.Request) {
	const op = "trading.getUserWithPlan.hdl"
	uid, ok := pathUUID(w, r, "uuid")
	if !ok {
		return
	}

	res, err := h.ctrl.GetUserWithPlan(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) activateSubscription(w http.ResponseWriter, r *http.Request) {
	const op = "trading.activateSubscription.hdl"
	req := &dto.ActivateSubscriptionRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.ActivateSubscription(r.Context(), req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "Subscription plan activated.", res)
}

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	const op = "trading.dashboardStats.hdl"
	res, err := h.ctrl.GetDashboardStats(r.Context())
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}
