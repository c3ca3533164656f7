package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/mesh-intelligence/maestro/internal/form"
	"github.com/mesh-intelligence/maestro/internal/session"
	"github.com/mesh-intelligence/maestro/pkg/types"
)

// writeJSON prints v as indented JSON.
func (a *app) writeJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(a.out, string(output))
	return nil
}

// renderNotice prints what a command changed. In JSON mode the whole view
// is printed instead.
func (a *app) renderNotice(view session.ViewState) error {
	if a.jsonMode {
		return a.writeJSON(view)
	}
	if view.Notice != "" {
		fmt.Fprintln(a.out, view.Notice)
	}
	return nil
}

// renderView prints the filtered menu as a table followed by its summary.
func (a *app) renderView(view session.ViewState) error {
	if a.jsonMode {
		return a.writeJSON(view)
	}
	if len(view.Items) == 0 {
		fmt.Fprintln(a.out, "No menu items found.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tDISH\tCOURSE\tPRICE")
	fmt.Fprintln(w, "--\t----\t------\t-----")
	for _, m := range view.Items {
		// Generated IDs are long; eight characters are enough to tell them apart.
		fmt.Fprintf(w, "%s\t%s\t%s\t$%s\n",
			truncate(m.ID, 8, ""), truncate(m.DishName, 40, "..."), m.Course, form.FormatPrice(m.Price))
	}
	w.Flush()

	// Print output, trimming trailing whitespace from each line
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(a.out, strings.TrimRight(line, " "))
	}

	fmt.Fprintf(a.out, "Total: %d item(s), average $%s\n",
		view.Summary.TotalItems, form.FormatPrice(view.Summary.AveragePrice))
	if !view.Filter.Empty() {
		fmt.Fprintf(a.out, "Filter: %s (%d of %d items shown)\n",
			courseNames(view.Courses), len(view.Items), view.TotalItems)
	}
	return nil
}

// truncate shortens s to at most n characters, ending in suffix when cut.
// It counts runes so multi-byte characters are never split.
func truncate(s string, n int, suffix string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-utf8.RuneCountInString(suffix)]) + suffix
}

// renderSummary prints the summary boxes of the home screen.
func (a *app) renderSummary(s types.Summary) error {
	if a.jsonMode {
		return a.writeJSON(s)
	}
	fmt.Fprintf(a.out, "Total Menu Items: %d\n", s.TotalItems)
	fmt.Fprintf(a.out, "Average Price: $%s\n", form.FormatPrice(s.AveragePrice))
	return nil
}

// renderFilter prints the active filter.
func (a *app) renderFilter(sel types.FilterSelection) error {
	if a.jsonMode {
		return a.writeJSON(map[string]any{"filter": sel.Courses()})
	}
	if sel.Empty() {
		fmt.Fprintln(a.out, "No filters active. Showing all menu items.")
		return nil
	}
	fmt.Fprintf(a.out, "Filter Menu (%d): %s\n", sel.Len(), courseNames(sel.Courses()))
	return nil
}
