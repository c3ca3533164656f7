package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/maestro/internal/form"
	"github.com/mesh-intelligence/maestro/internal/session"
)

// itemFlags binds the add/edit form fields to flags.
type itemFlags struct {
	in form.Input
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.in.DishName, "name", "", "dish name")
	cmd.Flags().StringVar(&f.in.Description, "description", "", "dish description")
	cmd.Flags().StringVar(&f.in.Price, "price", "", "price, e.g. 12.50")
	cmd.Flags().StringVar(&f.in.Course, "course", "", "course: Starter, \"Main Dish\" (or main), Dessert")
}

func newAddCmd(a *app) *cobra.Command {
	f := &itemFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a dish to the menu",
		Long: `Add creates a new menu item. The course defaults to Starter.

Example:
  add --name "Chef Salad" --description "A light and zesty starter." --price 6.00 --course starter
  add --name "Fudge Brownie" --description "Warm." --price 5.25 --course dessert --id brownie`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := form.Parse(f.in)
			if err != nil {
				return err
			}
			view, err := a.session.Apply(session.AddItem{Item: item})
			if err != nil {
				return err
			}
			return a.renderNotice(view)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.in.ID, "id", "", "item ID (default: generated)")
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	f := &itemFlags{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a dish on the menu",
		Long: `Edit replaces a menu item. Fields not given keep their current value.

Example:
  edit 1 --price 14.00
  edit 2 --name "House Salad" --course "Main Dish"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, ok := a.session.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", session.ErrUnknownItem, args[0])
			}

			in := form.FromItem(current)
			changed := cmd.Flags().Changed
			if changed("name") {
				in.DishName = f.in.DishName
			}
			if changed("description") {
				in.Description = f.in.Description
			}
			if changed("price") {
				in.Price = f.in.Price
			}
			if changed("course") {
				in.Course = f.in.Course
			}

			item, err := form.Parse(in)
			if err != nil {
				return err
			}
			// The prefilled price is rounded for display; keep the stored one.
			if !changed("price") {
				item.Price = current.Price
			}
			view, err := a.session.Apply(session.EditItem{Item: item})
			if err != nil {
				return err
			}
			return a.renderNotice(view)
		},
	}
	f.register(cmd)
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a dish from the menu",
		Long: `Remove deletes a menu item after asking for confirmation.
Removing an ID that is not on the menu does nothing.

Example:
  remove 2
  remove 2 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if item, ok := a.session.Get(id); ok && !yes {
				if !a.confirm(fmt.Sprintf("Remove '%s'? [y/N] ", item.DishName)) {
					fmt.Fprintln(a.out, "Removal cancelled.")
					return nil
				}
			}
			view, err := a.session.Apply(session.RemoveItem{ID: id})
			if err != nil {
				return err
			}
			return a.renderNotice(view)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "remove without asking")
	return cmd
}

// confirm prints prompt and reads one answer line. Anything other than y or
// yes, including end of input, declines.
func (a *app) confirm(prompt string) bool {
	fmt.Fprint(a.out, prompt)
	answer, _ := a.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
