package http

import (
	"net/http"

	"github.com/JMURv/zedasignal/internal/access"
	"github.com/JMURv/zedasignal/internal/dto"
	mid "github.com/JMURv/zedasignal/internal/hdl/http/middleware"
	"github.com/JMURv/zedasignal/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerBotRoutes(r chi.Router) {
	authed := r.With(mid.Auth(h.au))
	authed.Get("/bots", h.listBots)
	authed.Get("/bots/{uuid}", h.getBot)
	authed.Get("/top-performing-bots", h.listTopBots)
	authed.Get("/bot-lab-bots", h.listBotlabBots)
	authed.Get("/bot-lab-bots/{uuid}", h.getBotlabBot)
	authed.Get("/copy-trading-guide/{bot_uuid}", h.getGuide)

	h.can(r, access.ManageBots).Post("/bots", h.createBot)
	h.can(r, access.ManageBots).Post("/bot-lab-bots", h.createBotlabBot)
	h.can(r, access.ManageBots).Post("/copy-trading-guide", h.createGuide)
}

func (h *Handler) listBots(w http.ResponseWriter, r *http.Request) {
	const op = "trading.listBots.hdl"
	res, err := h.ctrl.ListBots(r.Context(), false)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) listTopBots(w http.ResponseWriter, r *http.Request) {
	const op = "trading.listTopBots.hdl"
	res, err := h.ctrl.ListBots(r.Context(), true)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) getBot(w http.ResponseWriter, r *http.Request) {
	const op = "trading.getBot.hdl"
	uid, ok := pathUUID(w, r, "uuid")
	if !ok {
		return
	}

	res, err := h.ctrl.GetBot(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) createBot(w http.ResponseWriter, r *http.Request) {
	const op = "trading.createBot.hdl"
	req := &dto.CreateBotRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateBot(r.Context(), req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "", res)
}

func (h *Handler) listBotlabBots(w http.ResponseWriter, r *http.Request) {
	const op = "trading.listBotlabBots.hdl"
	res, err := h.ctrl.ListBotlabBots(r.Context())
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) getBotlabBot(w http.ResponseWriter, r *http.Request) {
	const op = "trading.getBotlabBot.hdl"
	uid, ok := pathUUID(w, r, "uuid")
	if !ok {
		return
	}

	res, err := h.ctrl.GetBotlabBot(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) createBotlabBot(w http.ResponseWriter, r *http.Request) {
	const op = "trading.createBotlabBot.hdl"
	req := &dto.CreateBotlabBotRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateBotlabBot(r.Context(), req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "", res)
}

func (h *Handler) getGuide(w http.ResponseWriter, r *http.Request) {
	const op = "trading.getGuide.hdl"
	uid, ok := pathUUID(w, r, "bot_uuid")
	if !ok {
		return
	}

	res, err := h.ctrl.GetGuideByBot(r.Context(), uid)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "", res)
}

func (h *Handler) createGuide(w http.ResponseWriter, r *http.Request) {
	const op = "trading.createGuide.hdl"
	req := &dto.CreateGuideRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateGuide(r.Context(), req)
	if err != nil {
		fail(w, op, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "", res)
}
