package types

import "strings"

// Course is the menu category a dish belongs to. The set is closed.
type Course string

// Courses on the menu.
const (
	CourseStarter  Course = "Starter"
	CourseMainDish Course = "Main Dish"
	CourseDessert  Course = "Dessert"
)

// Courses lists every course in display order.
var Courses = []Course{
	CourseStarter,
	CourseMainDish,
	CourseDessert,
}

// courseAliases maps lowercased input forms to their course.
var courseAliases = map[string]Course{
	"starter":   CourseStarter,
	"main dish": CourseMainDish,
	"main-dish": CourseMainDish,
	"main_dish": CourseMainDish,
	"main":      CourseMainDish,
	"dessert":   CourseDessert,
}

// Valid reports whether c is one of the known courses.
func (c Course) Valid() bool {
	switch c {
	case CourseStarter, CourseMainDish, CourseDessert:
		return true
	}
	return false
}

func (c Course) String() string {
	return string(c)
}

// ParseCourse resolves user input to a Course. Matching is case-insensitive
// and accepts the short aliases "main" and "main-dish".
// Returns ErrInvalidCourse if nothing matches.
func ParseCourse(s string) (Course, error) {
	c, ok := courseAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidCourse
	}
	return c, nil
}
