package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-faster/errors"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/config"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/coupon"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/handlers"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/pkg/clock"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/pricing"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/repository"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/service"
	"github.com/SuhithCodes/UTAMarket-production-sub000/pkg/db"
	"github.com/SuhithCodes/UTAMarket-production-sub000/pkg/logger"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithWriter(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	log.Info("starting utamarket pricing server",
		"version", version,
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	ctx := context.Background()

	pricingCfg, err := pricing.LoadConfig(cfg.Pricing.ConfigFile)
	if err != nil {
		return errors.Wrap(err, "load pricing config")
	}
	log.Info("pricing rules loaded",
		"config_file", cfg.Pricing.ConfigFile,
		"seasons", len(pricingCfg.Calendar.Seasons()),
	)

	calculator, err := newCouponCalculator(ctx, cfg.Coupon.RuleSources)
	if err != nil {
		return errors.Wrap(err, "load coupon rules")
	}
	stats := calculator.Stats()
	log.Info("coupon rules loaded",
		"sources", len(cfg.Coupon.RuleSources),
		"total_rules", stats.TotalRules,
	)

	productRepo, database, err := newProductRepository(ctx, cfg.Database)
	if err != nil {
		return errors.Wrap(err, "open product catalog")
	}
	var pinger handlers.Pinger
	if database != nil {
		defer database.Close()
		pinger = database
		log.Info("product catalog backed by postgres")
	} else {
		log.Info("product catalog held in memory")
	}

	productService := service.NewProductService(productRepo, pricingCfg, clock.NewReal())
	orderService := service.NewOrderService(productRepo, productService, calculator)

	router := newRouter(log, cfg.Auth, routes{
		health:  handlers.NewHealthHandler(log, version, pinger),
		product: handlers.NewProductHandler(productService, log),
		pricing: handlers.NewPricingHandler(productService, log),
		coupon:  handlers.NewCouponHandler(calculator, log),
		order:   handlers.NewOrderHandler(orderService, log),
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return errors.Wrap(err, "listen")
	case <-quit:
	}

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}

	log.Info("server stopped gracefully")
	return nil
}

// newCouponCalculator merges rule sources over the built-in codes.
func newCouponCalculator(ctx context.Context, sources []string) (*coupon.Calculator, error) {
	if len(sources) == 0 {
		return coupon.NewCalculator(nil), nil
	}

	loaded, err := coupon.LoadRules(ctx, sources)
	if err != nil {
		return nil, err
	}

	registry, err := coupon.NewRegistry(coupon.Merge(coupon.DefaultRules(), loaded))
	if err != nil {
		return nil, err
	}
	return coupon.NewCalculator(registry), nil
}

// newProductRepository returns the Postgres catalog when a database URL is
// configured, otherwise the seeded in-memory catalog. The *sql.DB is nil
// for the in-memory catalog.
func newProductRepository(ctx context.Context, cfg config.DatabaseConfig) (repository.ProductRepository, *sql.DB, error) {
	if cfg.URL == "" {
		return repository.NewInMemoryProductRepository(), nil, nil
	}

	database, err := db.NewPostgresConnection(ctx, db.PostgresConfig{
		URL:             cfg.URL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}
	return repository.NewPostgresProductRepository(database), database, nil
}
