package handlers

import (
	"log/slog"
	"testing"
	"time"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/pkg/clock"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/repository"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/service"
	"github.com/SuhithCodes/UTAMarket-production-sub000/pkg/logger"
)

// offSeason is outside every default season window.
var offSeason = time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return logger.New("error")
}

func newProductService(t *testing.T, at time.Time) *service.ProductService {
	t.Helper()
	return service.NewProductService(repository.NewInMemoryProductRepository(), nil, clock.NewFixed(at))
}
