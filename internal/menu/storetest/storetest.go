// Package storetest provides a behavioral test suite that every
// types.Store implementation must pass.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/maestro/pkg/types"
)

// Factory creates a store preloaded with items in order.
type Factory func(t *testing.T, items ...types.MenuItem) types.Store

// Burger, Salad and Brownie are the fixtures the suite works with.
var (
	Burger = types.MenuItem{
		ID:          "1",
		DishName:    "The Chief Burger",
		Description: "Classic patty with all the fixings.",
		Price:       12.5,
		Course:      types.CourseMainDish,
	}
	Salad = types.MenuItem{
		ID:          "2",
		DishName:    "Chef Salad",
		Description: "A light and zesty starter.",
		Price:       6.0,
		Course:      types.CourseStarter,
	}
	Brownie = types.MenuItem{
		ID:          "3",
		DishName:    "Fudge Brownie",
		Description: "Warm, with vanilla ice cream.",
		Price:       5.25,
		Course:      types.CourseDessert,
	}
)

// Run exercises the Store contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("all on empty store", func(t *testing.T) {
		s := newStore(t)
		got := s.All()
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("all preserves preload order", func(t *testing.T) {
		s := newStore(t, Burger, Salad, Brownie)
		assertItems(t, []types.MenuItem{Burger, Salad, Brownie}, s.All())
	})

	t.Run("add new ID appends at end", func(t *testing.T) {
		s := newStore(t, Burger, Salad)
		got := s.AddOrUpdate(Brownie)
		assertItems(t, []types.MenuItem{Burger, Salad, Brownie}, got)
		assertItems(t, got, s.All())
	})

	t.Run("add to empty store", func(t *testing.T) {
		s := newStore(t)
		got := s.AddOrUpdate(Salad)
		assertItems(t, []types.MenuItem{Salad}, got)
	})

	t.Run("update existing ID replaces in place", func(t *testing.T) {
		s := newStore(t, Burger, Salad, Brownie)
		edited := Salad
		edited.DishName = "House Salad"
		edited.Price = 7.75
		edited.Course = types.CourseMainDish

		got := s.AddOrUpdate(edited)

		assertItems(t, []types.MenuItem{Burger, edited, Brownie}, got)
	})

	t.Run("update is full replacement", func(t *testing.T) {
		s := newStore(t, Burger)
		replacement := types.MenuItem{
			ID:          Burger.ID,
			DishName:    "Veggie Burger",
			Description: "Plant based.",
			Price:       0,
			Course:      types.CourseMainDish,
		}
		got := s.AddOrUpdate(replacement)
		assertItems(t, []types.MenuItem{replacement}, got)
	})

	t.Run("remove present ID drops only that item", func(t *testing.T) {
		s := newStore(t, Burger, Salad, Brownie)
		got := s.Remove(Salad.ID)
		assertItems(t, []types.MenuItem{Burger, Brownie}, got)
	})

	t.Run("remove absent ID is a no-op", func(t *testing.T) {
		s := newStore(t, Burger, Salad)
		got := s.Remove("does-not-exist")
		assertItems(t, []types.MenuItem{Burger, Salad}, got)
	})

	t.Run("remove on empty store", func(t *testing.T) {
		s := newStore(t)
		got := s.Remove(Burger.ID)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("removing the last item leaves an empty non-nil collection", func(t *testing.T) {
		s := newStore(t, Burger)
		got := s.Remove(Burger.ID)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("remove then re-add appends", func(t *testing.T) {
		s := newStore(t, Burger, Salad, Brownie)
		s.Remove(Burger.ID)
		got := s.AddOrUpdate(Burger)
		assertItems(t, []types.MenuItem{Salad, Brownie, Burger}, got)
	})

	t.Run("get", func(t *testing.T) {
		s := newStore(t, Burger, Salad)
		got, ok := s.Get(Salad.ID)
		require.True(t, ok)
		assert.Equal(t, Salad, got)

		_, ok = s.Get("missing")
		assert.False(t, ok)
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		s := newStore(t, Burger, Salad)
		got := s.All()
		got[0].DishName = "mutated"

		assertItems(t, []types.MenuItem{Burger, Salad}, s.All())
	})
}

func assertItems(t *testing.T, want, got []types.MenuItem) {
	t.Helper()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
}
