package types

import "math"

// MenuItem is a single dish on the menu. Items are replaced wholesale on
// edit; there is no partial field update.
type MenuItem struct {
	ID          string  `json:"id" yaml:"id"`                   // Stable for the item's lifetime.
	DishName    string  `json:"dishName" yaml:"dish_name"`      // Display name (required, non-empty).
	Description string  `json:"description" yaml:"description"` // Display text (required, non-empty).
	Price       float64 `json:"price" yaml:"price"`             // Finite, non-negative.
	Course      Course  `json:"course" yaml:"course"`           // One of Courses.
}

// Validate checks the field invariants of the item and returns the first
// violated one as a sentinel error from this package.
func (m MenuItem) Validate() error {
	if m.ID == "" {
		return ErrInvalidID
	}
	if m.DishName == "" {
		return ErrInvalidName
	}
	if m.Description == "" {
		return ErrInvalidDescription
	}
	if !ValidPrice(m.Price) {
		return ErrInvalidPrice
	}
	if !m.Course.Valid() {
		return ErrInvalidCourse
	}
	return nil
}

// ValidPrice reports whether p is a finite, non-negative number.
func ValidPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}
