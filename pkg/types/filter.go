package types

// FilterSelection is the set of courses used to narrow the displayed menu.
// The zero value is empty, which means no filtering.
type FilterSelection struct {
	courses map[Course]bool
}

// NewFilterSelection builds a selection from the given courses.
// Duplicates collapse.
func NewFilterSelection(courses ...Course) FilterSelection {
	sel := FilterSelection{courses: make(map[Course]bool, len(courses))}
	for _, c := range courses {
		sel.courses[c] = true
	}
	return sel
}

// Empty reports whether the selection has no members.
func (s FilterSelection) Empty() bool {
	return len(s.courses) == 0
}

// Len returns the number of selected courses.
func (s FilterSelection) Len() int {
	return len(s.courses)
}

// Has reports whether c is selected.
func (s FilterSelection) Has(c Course) bool {
	return s.courses[c]
}

// Courses returns the selected courses. Known courses come first in display
// order, followed by any others in no particular order.
func (s FilterSelection) Courses() []Course {
	out := make([]Course, 0, len(s.courses))
	for _, c := range Courses {
		if s.courses[c] {
			out = append(out, c)
		}
	}
	for c := range s.courses {
		if !c.Valid() {
			out = append(out, c)
		}
	}
	return out
}
