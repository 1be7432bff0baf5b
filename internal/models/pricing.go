package models

// QuoteRequest asks for a price outside the catalog.
// Nil thresholds fall back to the configured rules; a nil seasonal
// multiplier uses the current season.
type QuoteRequest struct {
	BasePrice          float64  `json:"basePrice"`
	SeasonalMultiplier *float64 `json:"seasonalMultiplier,omitempty"`
	SalesVelocity      float64  `json:"salesVelocity"`
	DemandThreshold    *float64 `json:"demandThreshold,omitempty"`
	Stock              float64  `json:"stock"`
	MinStock           *float64 `json:"minStock,omitempty"`
	UserType           string   `json:"userType,omitempty"`
}

// QuoteResponse is a computed price with its breakdown
type QuoteResponse struct {
	BasePrice float64      `json:"basePrice"`
	UserType  string       `json:"userType"`
	Factors   PriceFactors `json:"factors"`
	Price     float64      `json:"price"`
}

// SeasonResponse describes the season in effect
type SeasonResponse struct {
	Date       string  `json:"date"`
	Season     string  `json:"season,omitempty"`
	Start      string  `json:"start,omitempty"`
	End        string  `json:"end,omitempty"`
	Multiplier float64 `json:"multiplier"`
}
