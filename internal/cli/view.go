package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/maestro/internal/session"
	"github.com/mesh-intelligence/maestro/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the dishes matching the active filter",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderView(a.session.View())
		},
	}
}

func newFilterCmd(a *app) *cobra.Command {
	var clearAll bool
	cmd := &cobra.Command{
		Use:   "filter [course...]",
		Short: "Show only the given courses",
		Long: `Filter narrows the menu to the given courses. With no courses it shows
the active filter; --clear shows every course again.

Example:
  filter starter dessert
  filter "Main Dish"
  filter --clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clearAll && len(args) == 0 {
				return a.renderFilter(a.session.Filter())
			}
			if clearAll && len(args) > 0 {
				return fmt.Errorf("--clear takes no courses")
			}

			courses := make([]types.Course, 0, len(args))
			for _, arg := range args {
				c, err := types.ParseCourse(arg)
				if err != nil {
					return fmt.Errorf("%w: %q", err, arg)
				}
				courses = append(courses, c)
			}
			view, err := a.session.Apply(session.ApplyFilter{Courses: courses})
			if err != nil {
				return err
			}
			return a.renderNotice(view)
		},
	}
	cmd.Flags().BoolVar(&clearAll, "clear", false, "remove every filter")
	return cmd
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show item count and average price of the filtered menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderSummary(a.session.View().Summary)
		},
	}
}

func newMetricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Print session metrics in Prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.metrics.WriteText(a.out)
		},
	}
}

// courseNames joins courses for display.
func courseNames(courses []types.Course) string {
	names := make([]string, len(courses))
	for i, c := range courses {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
