// Package form turns raw add/edit input into a validated MenuItem.
// Validation failures are reported as *ValidationError so the caller can
// re-prompt without touching the store.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/maestro/pkg/types"
)

// Field names reported in ValidationError.
const (
	FieldID          = "id"
	FieldDishName    = "dish name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCourse      = "course"
)

// User-facing messages, matching the prompts shown on the add/edit form.
const (
	msgMissingFields = "Please fill out all fields."
	msgInvalidPrice  = "Please enter a valid price."
	msgInvalidCourse = "Please choose a valid course."
)

// ErrValidation matches every *ValidationError with errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a single rejected field.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error // Sentinel from pkg/types describing the violation.
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap exposes the types sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrValidation so callers can test for any validation
// failure without a type assertion.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Input holds the raw text of the add/edit form.
type Input struct {
	ID          string
	DishName    string
	Description string
	Price       string
	Course      string
}

// Parse validates in and builds the MenuItem it describes. The ID is copied
// as given; generating IDs for new items is the caller's job. An empty course
// defaults to the first course.
func Parse(in Input) (types.MenuItem, error) {
	name := strings.TrimSpace(in.DishName)
	desc := strings.TrimSpace(in.Description)
	priceText := strings.TrimSpace(in.Price)

	switch {
	case name == "":
		return types.MenuItem{}, missing(FieldDishName, types.ErrInvalidName)
	case desc == "":
		return types.MenuItem{}, missing(FieldDescription, types.ErrInvalidDescription)
	case priceText == "":
		return types.MenuItem{}, missing(FieldPrice, types.ErrInvalidPrice)
	}

	price, err := ParsePrice(priceText)
	if err != nil {
		return types.MenuItem{}, err
	}

	course := types.Courses[0]
	if c := strings.TrimSpace(in.Course); c != "" {
		course, err = types.ParseCourse(c)
		if err != nil {
			return types.MenuItem{}, &ValidationError{
				Field:   FieldCourse,
				Value:   in.Course,
				Message: msgInvalidCourse,
				Err:     types.ErrInvalidCourse,
			}
		}
	}

	return types.MenuItem{
		ID:          strings.TrimSpace(in.ID),
		DishName:    name,
		Description: desc,
		Price:       price,
		Course:      course,
	}, nil
}

// ParsePrice parses a price such as "12.50". A leading "$" is accepted.
// NaN, infinities and negative values are rejected.
func ParsePrice(s string) (float64, error) {
	text := strings.TrimPrefix(strings.TrimSpace(s), "$")
	p, err := strconv.ParseFloat(text, 64)
	if err != nil || !types.ValidPrice(p) {
		return 0, &ValidationError{
			Field:   FieldPrice,
			Value:   s,
			Message: msgInvalidPrice,
			Err:     types.ErrInvalidPrice,
		}
	}
	return p, nil
}

// FromItem renders m back into form input, formatting the price with two
// decimals, so an edit can start from the current values.
func FromItem(m types.MenuItem) Input {
	return Input{
		ID:          m.ID,
		DishName:    m.DishName,
		Description: m.Description,
		Price:       FormatPrice(m.Price),
		Course:      string(m.Course),
	}
}

// FormatPrice renders p with two decimal places.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func missing(field string, sentinel error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: msgMissingFields,
		Err:     sentinel,
	}
}
