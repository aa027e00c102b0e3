/*
Package handler provides the HTTP handlers and routing setup for the MM Server.

This file defines the main Router, applying middleware like logging, CORS, and
IP-based rate limiting before delegating requests to the guarded operations.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"mmserver/internal/pkg/auth/jwt"
	"mmserver/internal/pkg/limiter"
	"mmserver/internal/pkg/logx"
	"mmserver/internal/pkg/resp"
)

const (
	RegisterRate  = 0.05
	RegisterBurst = 2
	LoginRate     = 0.2
	LoginBurst    = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters for the credential endpoints, configures
// CORS, and applies global and per-route middleware.
func Router(deps *AppDeps) http.Handler {
	registerLimiter := limiter.NewIPRateLimiter(rate.Limit(RegisterRate), RegisterBurst)
	loginLimiter := limiter.NewIPRateLimiter(rate.Limit(LoginRate), LoginBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "MM Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.Method("POST", "/register", registerLimiter.Middleware(HandleRegister(deps)))
			auth.Method("POST", "/login", loginLimiter.Middleware(HandleLogin(deps)))
			auth.Get("/", HandleAuth(deps))
		})

		api.Get("/users/find", HandleFindUser(deps))

		api.Route("/friend-requests", func(fr chi.Router) {
			fr.Get("/", HandleGetFriendRequests(deps))
			fr.Post("/", HandleSendFriendRequest(deps))
			fr.Post("/{id}/accept", HandleAcceptFriendRequest(deps))
			fr.Post("/{id}/reject", HandleRejectFriendRequest(deps))
			fr.Delete("/{id}", HandleCancelFriendRequest(deps))
		})
	})

	return r
}
