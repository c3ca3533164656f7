package menu

import "github.com/mesh-intelligence/maestro/pkg/types"

// SeedItems returns the starter menu loaded when seeding is enabled.
// A fresh slice is returned on every call.
func SeedItems() []types.MenuItem {
	return []types.MenuItem{
		{
			ID:          "1",
			DishName:    "The Chief Burger",
			Description: "Classic patty with all the fixings.",
			Price:       12.5,
			Course:      types.CourseMainDish,
		},
		{
			ID:          "2",
			DishName:    "Chef Salad",
			Description: "A light and zesty starter.",
			Price:       6.0,
			Course:      types.CourseStarter,
		},
	}
}

// Seed loads SeedItems into store through AddOrUpdate. Items already holding
// a seed ID are replaced by the seed version.
func Seed(store types.Store) {
	for _, m := range SeedItems() {
		store.AddOrUpdate(m)
	}
}
