package service

import (
	"context"
	"time"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/models"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/pkg/clock"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/pricing"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/repository"
)

// ProductService lists catalog products at their dynamic price
type ProductService struct {
	repo     repository.ProductRepository
	rules    pricing.Rules
	calendar *pricing.Calendar
	clock    clock.Clock
}

// NewProductService creates a new product service. A nil cfg uses the default
// pricing rules and seasons; a nil clk uses the system clock.
func NewProductService(repo repository.ProductRepository, cfg *pricing.Config, clk clock.Clock) *ProductService {
	if cfg == nil {
		cfg = pricing.DefaultConfig()
	}
	if clk == nil {
		clk = clock.NewReal()
	}
	return &ProductService{
		repo:     repo,
		rules:    cfg.Rules,
		calendar: cfg.Calendar,
		clock:    clk,
	}
}

// ListProducts returns all products priced for userType
func (s *ProductService) ListProducts(ctx context.Context, userType string) ([]models.PricedProduct, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	multiplier := s.SeasonalMultiplier()
	priced := make([]models.PricedProduct, 0, len(products))
	for _, p := range products {
		priced = append(priced, s.price(p, userType, multiplier))
	}
	return priced, nil
}

// GetProduct returns a product by ID priced for userType
func (s *ProductService) GetProduct(ctx context.Context, id int64, userType string) (*models.PricedProduct, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	priced := s.price(*product, userType, s.SeasonalMultiplier())
	return &priced, nil
}

// Price prices a single product for userType at the current season
func (s *ProductService) Price(product models.Product, userType string) models.PricedProduct {
	return s.price(product, userType, s.SeasonalMultiplier())
}

// Quote prices arbitrary inputs with the service's rules
func (s *ProductService) Quote(req models.QuoteRequest) models.QuoteResponse {
	rules := s.rules
	if req.DemandThreshold != nil {
		rules.DemandThreshold = *req.DemandThreshold
	}
	if req.MinStock != nil {
		rules.MinStock = *req.MinStock
	}

	multiplier := s.SeasonalMultiplier()
	if req.SeasonalMultiplier != nil {
		multiplier = *req.SeasonalMultiplier
	}

	q := pricing.Calculate(pricing.Inputs{
		BasePrice:          req.BasePrice,
		SeasonalMultiplier: multiplier,
		SalesVelocity:      req.SalesVelocity,
		Stock:              req.Stock,
		UserType:           req.UserType,
	}, rules)

	return models.QuoteResponse{
		BasePrice: q.BasePrice.InexactFloat64(),
		UserType:  string(q.UserCategory),
		Factors:   toPriceFactors(q.Factors),
		Price:     q.Price.InexactFloat64(),
	}
}

// Now returns the service clock's current time
func (s *ProductService) Now() time.Time {
	return s.clock.Now()
}

// CurrentSeason returns the season in effect now, if any
func (s *ProductService) CurrentSeason() (pricing.Season, bool) {
	return s.calendar.Current(s.clock.Now())
}

// SeasonalMultiplier returns the multiplier for the current date
func (s *ProductService) SeasonalMultiplier() float64 {
	return s.calendar.Multiplier(s.clock.Now())
}

func (s *ProductService) price(p models.Product, userType string, seasonal float64) models.PricedProduct {
	q := pricing.Calculate(pricing.Inputs{
		BasePrice:          p.BasePrice,
		SeasonalMultiplier: seasonal,
		SalesVelocity:      float64(p.SalesCount),
		Stock:              float64(p.Stock),
		UserType:           userType,
	}, s.rules)

	return models.PricedProduct{
		Product:  p,
		Price:    q.Price.InexactFloat64(),
		UserType: string(q.UserCategory),
		Factors:  toPriceFactors(q.Factors),
	}
}

func toPriceFactors(f pricing.Factors) models.PriceFactors {
	return models.PriceFactors{
		Time:      f.Time.InexactFloat64(),
		Demand:    f.Demand.InexactFloat64(),
		Inventory: f.Inventory.InexactFloat64(),
		User:      f.User.InexactFloat64(),
	}
}
