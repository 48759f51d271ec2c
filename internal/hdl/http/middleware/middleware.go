package middleware

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/JMURv/zedasignal/internal/access"
	"github.com/JMURv/zedasignal/internal/auth/jwt"
	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/ctrl"
	"github.com/JMURv/zedasignal/internal/hdl"
	"github.com/JMURv/zedasignal/internal/hdl/http/utils"
	metrics "github.com/JMURv/zedasignal/internal/observability/metrics/prometheus"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type TokenParser interface {
	ParseClaims(ctx context.Context, token string) (jwt.Claims, error)
}

type SubjectProvider interface {
	GetAccessSubject(ctx context.Context, uid uuid.UUID) (access.Subject, error)
}

// Auth accepts a Bearer access token or the access cookie and puts the user uuid into the context.
func Auth(au TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token := bearer(r)
				if token == "" {
					c, err := r.Cookie(config.AccessCookieName)
					if err != nil {
						utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrNoToken)
						return
					}
					token = c.Value
				}

				claims, err := au.ParseClaims(r.Context(), token)
				if err != nil || claims.Type != jwt.AccessToken {
					utils.ErrResponse(w, http.StatusUnauthorized, jwt.ErrInvalidToken)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, claims.UID)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// Require must run after Auth. It loads the caller's access subject and checks one capability.
func Require(sp SubjectProvider, c access.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
				if !ok || uid == uuid.Nil {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrNoToken)
					return
				}

				s, err := sp.GetAccessSubject(r.Context(), uid)
				if err != nil {
					if errors.Is(err, ctrl.ErrNotFound) {
						utils.ErrResponse(w, http.StatusUnauthorized, jwt.ErrInvalidToken)
						return
					}
					utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
					return
				}

				if !access.Can(s, c) {
					zap.L().Debug(
						"capability denied",
						zap.String("uid", uid.String()),
						zap.String("capability", string(c)),
					)
					utils.ErrResponse(w, http.StatusForbidden, hdl.ErrPermissionDenied)
					return
				}

				next.ServeHTTP(w, r)
			},
		)
	}
}

// ClientInfo stores the caller ip and user agent for password reset bookkeeping.
func ClientInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			ctx := context.WithValue(r.Context(), config.IpKey, ip)
			ctx = context.WithValue(ctx, config.UaKey, r.UserAgent())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// Recoverer turns a panic into the internal error envelope.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					zap.L().Error(
						"panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
				}
			}()

			next.ServeHTTP(w, r)
		},
	)
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)

			metrics.ObserveRequest(time.Since(s), lrw.statusCode, fmt.Sprintf("%s %s", r.Method, routePattern(r)))
		},
	)
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer span.Finish()

			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r.WithContext(ctx))
			span.SetTag("http.status_code", lrw.statusCode)
			if lrw.statusCode >= http.StatusInternalServerError {
				span.SetTag(config.ErrorSpanTag, true)
			}
		},
	)
}
