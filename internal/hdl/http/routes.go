package http

import (
	"github.com/JMURv/zedasignal/internal/access"
	mid "github.com/JMURv/zedasignal/internal/hdl/http/middleware"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", h.RegisterAuthRoutes)
	r.Route("/users", h.RegisterUserRoutes)
	r.Route("/trading", h.RegisterTradingRoutes)
	r.Route("/education", h.RegisterEducationRoutes)
}

// can chains authentication with one capability check.
func (h *Handler) can(r chi.Router, c access.Capability) chi.Router {
	return r.With(mid.Auth(h.au), mid.Require(h.ctrl, c))
}
