package models

// Product is a marketplace listing as stored in the catalog
type Product struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	BasePrice  float64 `json:"basePrice"`
	Stock      int     `json:"stock"`
	SalesCount int     `json:"salesCount"`
}

// PriceFactors is the multiplier breakdown behind a dynamic price
type PriceFactors struct {
	Time      float64 `json:"time"`
	Demand    float64 `json:"demand"`
	Inventory float64 `json:"inventory"`
	User      float64 `json:"user"`
}

// PricedProduct is a product with its price for a given shopper
type PricedProduct struct {
	Product
	Price    float64      `json:"price"`
	UserType string       `json:"userType"`
	Factors  PriceFactors `json:"factors"`
}
