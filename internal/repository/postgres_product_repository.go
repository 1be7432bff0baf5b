package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SuhithCodes/UTAMarket-production-sub000/internal/models"
)

const selectProducts = `
	SELECT id, name, category, base_price, stock, sales_count
	FROM products
`

// PostgresProductRepository reads the catalog from Postgres
type PostgresProductRepository struct {
	db *sql.DB
}

// NewPostgresProductRepository creates a repository over an open connection pool
func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

// GetAll returns all products ordered by ID
func (r *PostgresProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectProducts+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *PostgresProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	row := r.db.QueryRowContext(ctx, selectProducts+` WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (models.Product, error) {
	var p models.Product
	if err := s.Scan(&p.ID, &p.Name, &p.Category, &p.BasePrice, &p.Stock, &p.SalesCount); err != nil {
		return p, fmt.Errorf("scan product: %w", err)
	}
	return p, nil
}
