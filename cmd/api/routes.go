package main

import (
	"context"
	"net/http"
	"time"

	"booktracker/internal/book"
	"booktracker/internal/httpx"
	"booktracker/internal/slot"
)

func newLimiter(cfg config) *httpx.RateLimitMiddleware {
	return httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
}

func newRouter(cfg config, store *book.Store, kv slot.KV, limiter *httpx.RateLimitMiddleware) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccess(w, map[string]string{"status": "ok"}, nil)
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := kv.Ping(ctx); err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "NOT_READY", "Storage not ready", nil)
			return
		}
		httpx.JSONSuccess(w, map[string]string{"status": "ready"}, nil)
	})

	book.NewHTTPHandler(store).Register(router)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.CORSMiddleware(cfg.CORSOrigins),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		limiter.Middleware,
	)
}
