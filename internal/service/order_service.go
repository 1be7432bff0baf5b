package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/coupon"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/models"
	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/repository"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
)

// Pricer prices a product for a shopper
type Pricer interface {
	Price(product models.Product, userType string) models.PricedProduct
}

// DiscountCalculator computes coupon discounts on a subtotal
type DiscountCalculator interface {
	CalculateDiscount(subtotal decimal.Decimal, code string) coupon.Result
}

// ProductRepository interface for product data access
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// OrderService handles checkout
type OrderService struct {
	productRepo ProductRepository
	pricer      Pricer
	discounts   DiscountCalculator
}

// NewOrderService creates a new order service. A nil discounts disables coupons.
func NewOrderService(productRepo ProductRepository, pricer Pricer, discounts DiscountCalculator) *OrderService {
	return &OrderService{
		productRepo: productRepo,
		pricer:      pricer,
		discounts:   discounts,
	}
}

// CreateOrder prices every item for the request's user type and applies the
// coupon, if any. A rejected coupon does not fail the order; it is reported
// in Order.CouponError and the order is charged in full.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	// Validate items and price products (deduplicated, first-seen order)
	priced := make(map[int64]models.PricedProduct)
	firstSeen := make([]int64, 0, len(req.Items))
	lineIDs := make([]int64, 0, len(req.Items))

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		productID, err := strconv.ParseInt(item.ProductID, 10, 64)
		if err != nil {
			return nil, ErrInvalidProduct
		}
		lineIDs = append(lineIDs, productID)

		if _, exists := priced[productID]; exists {
			continue
		}

		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, ErrInvalidProduct
			}
			return nil, err
		}

		priced[productID] = s.pricer.Price(*product, req.UserType)
		firstSeen = append(firstSeen, productID)
	}

	products := make([]models.PricedProduct, 0, len(firstSeen))
	for _, id := range firstSeen {
		products = append(products, priced[id])
	}

	subtotal := decimal.Zero
	lines := make([]models.OrderLine, 0, len(req.Items))
	for i, item := range req.Items {
		p := priced[lineIDs[i]]
		unit := decimal.NewFromFloat(p.Price)
		total := unit.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		subtotal = subtotal.Add(total)

		lines = append(lines, models.OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  item.Quantity,
			UnitPrice: p.Price,
			LineTotal: total.InexactFloat64(),
		})
	}

	result := &models.Order{
		ID:       generateOrderID(),
		UserType: products[0].UserType,
		Items:    req.Items,
		Products: products,
		Lines:    lines,
		Subtotal: subtotal.InexactFloat64(),
		Total:    subtotal.InexactFloat64(),
	}

	if req.CouponCode != "" && s.discounts != nil {
		d := s.discounts.CalculateDiscount(subtotal, req.CouponCode)
		// the order is charged in cents
		discount := d.DiscountAmount.Round(2)
		result.CouponCode = d.Code
		result.Discount = discount.InexactFloat64()
		result.Total = subtotal.Sub(discount).InexactFloat64()
		result.CouponDescription = d.Description
		result.CouponError = d.Error
	}

	return result, nil
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
