package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/studentboard/internal/server/auth"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const sessionKey ctxKey = "session"

func sessionFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(sessionKey).(*auth.Claims)
	return c, ok
}

// requirePage guards HTML pages: anonymous visitors are sent to /login.
func (s *HTTPServer) requirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.gate.RequireAuth(r) {
			redirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireSession guards the JSON API. It answers anonymous requests with 401
// and stores the session claims in the request context otherwise.
func (s *HTTPServer) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.gate.Session(r)
		if err != nil {
			s.logger.Debug(r.Context(), "session rejected", "path", r.URL.Path, "reason", err.Error())
			unauthorizedJSON(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}

func unauthorizedJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
}

func (s *HTTPServer) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
