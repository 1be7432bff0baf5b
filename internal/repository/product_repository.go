package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage.
// The map is never written after construction.
type InMemoryProductRepository struct {
	products map[int64]models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository with seed data
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return NewInMemoryProductRepositoryWith([]models.Product{
		{ID: 1, Name: "Calculus: Early Transcendentals (Used)", Category: "Textbooks", BasePrice: 49.99, Stock: 12, SalesCount: 8},
		{ID: 2, Name: "Organic Chemistry Model Kit", Category: "Lab Supplies", BasePrice: 34.50, Stock: 4, SalesCount: 14},
		{ID: 3, Name: "TI-84 Plus Graphing Calculator", Category: "Electronics", BasePrice: 109.99, Stock: 20, SalesCount: 31},
		{ID: 4, Name: "Maverick Hoodie", Category: "Apparel", BasePrice: 39.99, Stock: 60, SalesCount: 22},
		{ID: 5, Name: "Lab Goggles", Category: "Lab Supplies", BasePrice: 12.75, Stock: 5, SalesCount: 3},
		{ID: 6, Name: "Engineering Notebook (Quad Ruled)", Category: "Stationery", BasePrice: 8.49, Stock: 150, SalesCount: 10},
		{ID: 7, Name: "Intro to Psychology (Rental)", Category: "Textbooks", BasePrice: 27.00, Stock: 2, SalesCount: 5},
		{ID: 8, Name: "USB-C Hub", Category: "Electronics", BasePrice: 24.99, Stock: 35, SalesCount: 7},
		{ID: 9, Name: "Dorm Desk Lamp", Category: "Dorm", BasePrice: 18.00, Stock: 0, SalesCount: 19},
		{ID: 10, Name: "Campus Water Bottle", Category: "Apparel", BasePrice: 15.00, Stock: 80, SalesCount: 40},
	})
}

// NewInMemoryProductRepositoryWith creates a repository holding exactly products
func NewInMemoryProductRepositoryWith(products []models.Product) *InMemoryProductRepository {
	m := make(map[int64]models.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &InMemoryProductRepository{products: m}
}

// GetAll returns all products ordered by ID
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}
