package menu

import "github.com/mesh-intelligence/maestro/pkg/types"

// Filter returns the items whose course is in sel, in their original
// relative order. An empty selection returns items unchanged. The input is
// never modified.
func Filter(items []types.MenuItem, sel types.FilterSelection) []types.MenuItem {
	if sel.Empty() {
		return items
	}
	out := make([]types.MenuItem, 0, len(items))
	for _, m := range items {
		if sel.Has(m.Course) {
			out = append(out, m)
		}
	}
	return out
}
