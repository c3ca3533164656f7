package menu

import "github.com/mesh-intelligence/maestro/pkg/types"

// Summarize counts items and averages their prices. The average of an empty
// collection is 0.
func Summarize(items []types.MenuItem) types.Summary {
	if len(items) == 0 {
		return types.Summary{}
	}
	var total float64
	for _, m := range items {
		total += m.Price
	}
	return types.Summary{
		TotalItems:   len(items),
		AveragePrice: total / float64(len(items)),
	}
}
