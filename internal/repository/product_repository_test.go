package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/models"
)

func TestInMemoryProductRepository_GetAll(t *testing.T) {
	repo := NewInMemoryProductRepository()

	products, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(products) != 10 {
		t.Fatalf("expected 10 seeded products, got %d", len(products))
	}

	for i := 1; i < len(products); i++ {
		if products[i-1].ID >= products[i].ID {
			t.Errorf("products not ordered by ID at index %d", i)
		}
	}
}

func TestInMemoryProductRepository_GetByID(t *testing.T) {
	repo := NewInMemoryProductRepositoryWith([]models.Product{
		{ID: 7, Name: "Lab Coat", Category: "Lab Supplies", BasePrice: 22.5, Stock: 3, SalesCount: 11},
	})

	tests := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{name: "existing product", id: 7},
		{name: "missing product", id: 8, wantErr: ErrProductNotFound},
		{name: "negative id", id: -1, wantErr: ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := repo.GetByID(context.Background(), tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && p.Name != "Lab Coat" {
				t.Errorf("expected Lab Coat, got %q", p.Name)
			}
		})
	}
}

func TestInMemoryProductRepository_ReturnsCopies(t *testing.T) {
	repo := NewInMemoryProductRepository()

	p, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	p.BasePrice = 0

	again, _ := repo.GetByID(context.Background(), 1)
	if again.BasePrice == 0 {
		t.Error("mutating a returned product changed the repository")
	}
}
