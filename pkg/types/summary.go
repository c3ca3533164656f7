package types

// Summary aggregates a collection of menu items. AveragePrice carries full
// precision; rounding is left to the renderer.
type Summary struct {
	TotalItems   int     `json:"totalItems"`
	AveragePrice float64 `json:"averagePrice"`
}
