package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/config"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/handlers"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/middleware"
)

// routes bundles the handlers mounted by newRouter
type routes struct {
	health  *handlers.HealthHandler
	product *handlers.ProductHandler
	pricing *handlers.PricingHandler
	coupon  *handlers.CouponHandler
	order   *handlers.OrderHandler
}

func newRouter(log *slog.Logger, auth config.AuthConfig, h routes) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.health.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/product", h.product.ListProducts)
		r.Get("/product/{productId}", h.product.GetProduct)

		r.Post("/pricing/quote", h.pricing.Quote)
		r.Get("/pricing/season", h.pricing.Season)

		r.Get("/coupon/stats", h.coupon.GetStats)
		r.Post("/coupon/apply", h.coupon.ApplyCoupon)
		r.Get("/coupon/{couponCode}", h.coupon.ValidateCoupon)

		r.With(middleware.APIKeyAuth(auth)).Post("/order", h.order.CreateOrder)
	})

	return r
}
