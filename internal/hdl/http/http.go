package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/ctrl"
	"github.com/JMURv/zedasignal/internal/hdl"
	mid "github.com/JMURv/zedasignal/internal/hdl/http/middleware"
	"github.com/JMURv/zedasignal/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"go.uber.org/zap"
)

type Handler struct {
	router *chi.Mux
	au     mid.TokenParser
	srv    *http.Server
	ctrl   ctrl.AppCtrl
	conf   config.ServerConfig
}

func New(au mid.TokenParser, ctrl ctrl.AppCtrl, conf config.ServerConfig) *Handler {
	h := &Handler{
		router: chi.NewRouter(),
		au:     au,
		ctrl:   ctrl,
		conf:   conf,
	}

	h.router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		mid.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.router.NotFound(
		func(w http.ResponseWriter, r *http.Request) {
			utils.ErrResponse(w, http.StatusNotFound, hdl.ErrRouteNotFound)
		},
	)
	h.router.MethodNotAllowed(
		func(w http.ResponseWriter, r *http.Request) {
			utils.ErrResponse(w, http.StatusMethodNotAllowed, hdl.ErrMethodNotAllowed)
		},
	)

	h.router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.StatusResponse(w, http.StatusOK, "OK")
		},
	)
	h.router.Route("/api/v1", h.RegisterRoutes)
	return h
}

func (h *Handler) Start(port int) {
	cors := handlers.CORS(
		handlers.AllowedOrigins(h.conf.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "X-Requested-With"}),
		handlers.AllowCredentials(),
	)

	h.srv = &http.Server{
		Handler:      cors(h.router),
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) Close(ctx context.Context) error {
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
