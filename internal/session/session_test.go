package session

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/maestro/internal/menu"
	"github.com/mesh-intelligence/maestro/internal/menu/storetest"
	"github.com/mesh-intelligence/maestro/internal/metrics"
	"github.com/mesh-intelligence/maestro/internal/sqlite"
	"github.com/mesh-intelligence/maestro/pkg/types"
)

func fixedID(id string) Option {
	return WithIDGenerator(func() (string, error) { return id, nil })
}

func seeded(t *testing.T, opts ...Option) *Session {
	t.Helper()
	return New(menu.NewStore(menu.SeedItems()...), opts...)
}

func withID(m types.MenuItem, id string) types.MenuItem {
	m.ID = id
	return m
}

func names(items []types.MenuItem) []string {
	out := make([]string, len(items))
	for i, m := range items {
		out[i] = m.DishName
	}
	return out
}

func TestViewOfSeededMenu(t *testing.T) {
	s := seeded(t)
	v := s.View()

	assert.Equal(t, []string{"The Chief Burger", "Chef Salad"}, names(v.Items))
	assert.Equal(t, 2, v.TotalItems)
	assert.Equal(t, types.Summary{TotalItems: 2, AveragePrice: 9.25}, v.Summary)
	assert.Empty(t, v.Notice)
	assert.True(t, v.Filter.Empty())
}

func TestAddItemGeneratesID(t *testing.T) {
	s := seeded(t)
	v, err := s.Apply(AddItem{Item: withID(storetest.Brownie, "")})
	require.NoError(t, err)

	require.Len(t, v.Items, 3)
	added := v.Items[2]
	assert.NotEmpty(t, added.ID)
	assert.Len(t, added.ID, 36, "UUID string form")
	assert.Equal(t, "Menu item 'Fudge Brownie' added to the menu.", v.Notice)
}

func TestAddItemKeepsCallerID(t *testing.T) {
	s := seeded(t)
	v, err := s.Apply(AddItem{Item: storetest.Brownie})
	require.NoError(t, err)
	assert.Equal(t, storetest.Brownie, v.Items[2])
}

func TestAddItemRejectsDuplicateID(t *testing.T) {
	s := seeded(t)
	dup := withID(storetest.Brownie, "1")

	v, err := s.Apply(AddItem{Item: dup})

	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 2, v.TotalItems)
	assert.Empty(t, v.Notice)
	got, _ := s.Get("1")
	assert.Equal(t, "The Chief Burger", got.DishName)
}

func TestAddItemIDGeneratorFailure(t *testing.T) {
	boom := errors.New("no entropy")
	s := seeded(t, WithIDGenerator(func() (string, error) { return "", boom }))

	_, err := s.Apply(AddItem{Item: withID(storetest.Brownie, "")})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, s.View().Items, 2)
}

func TestEditItem(t *testing.T) {
	s := seeded(t)
	burger, ok := s.Get("1")
	require.True(t, ok)
	burger.Price = 14

	v, err := s.Apply(EditItem{Item: burger})
	require.NoError(t, err)

	assert.Equal(t, burger, v.Items[0], "edited in place")
	assert.Equal(t, 2, v.TotalItems)
	assert.Equal(t, "Menu item 'The Chief Burger' updated.", v.Notice)
}

func TestEditItemRejectsUnknownOrEmptyID(t *testing.T) {
	s := seeded(t)

	_, err := s.Apply(EditItem{Item: storetest.Brownie})
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = s.Apply(EditItem{Item: withID(storetest.Brownie, "")})
	assert.ErrorIs(t, err, types.ErrInvalidID)

	assert.Len(t, s.View().Items, 2)
}

func TestSaveItemInfersIntent(t *testing.T) {
	s := seeded(t)

	v, err := s.Apply(SaveItem{Item: storetest.Brownie})
	require.NoError(t, err)
	assert.Equal(t, "Menu item 'Fudge Brownie' added to the menu.", v.Notice)
	assert.Len(t, v.Items, 3)

	salad := storetest.Salad
	salad.Price = 6.5
	v, err = s.Apply(SaveItem{Item: salad})
	require.NoError(t, err)
	assert.Equal(t, "Menu item 'Chef Salad' updated.", v.Notice)
	assert.Len(t, v.Items, 3)
	assert.Equal(t, salad, v.Items[1])
}

func TestRemoveItem(t *testing.T) {
	s := seeded(t)

	v, err := s.Apply(RemoveItem{ID: "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"The Chief Burger"}, names(v.Items))
	assert.Equal(t, "Menu item 'Chef Salad' removed.", v.Notice)
}

func TestRemoveUnknownItemIsSilent(t *testing.T) {
	s := seeded(t)
	before := s.View().Items

	v, err := s.Apply(RemoveItem{ID: "nope"})
	require.NoError(t, err)
	assert.Equal(t, before, v.Items)
	assert.Empty(t, v.Notice)
}

func TestApplyFilter(t *testing.T) {
	s := seeded(t)

	v, err := s.Apply(ApplyFilter{Courses: []types.Course{types.CourseStarter}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Chef Salad"}, names(v.Items))
	assert.Equal(t, 2, v.TotalItems, "total counts the unfiltered menu")
	assert.Equal(t, types.Summary{TotalItems: 1, AveragePrice: 6}, v.Summary, "summary follows the filtered view")
	assert.Equal(t, "Showing 1 course(s).", v.Notice)
	assert.Equal(t, []types.Course{types.CourseStarter}, v.Courses)

	v, err = s.Apply(ApplyFilter{Courses: []types.Course{types.CourseDessert, types.CourseMainDish}})
	require.NoError(t, err)
	assert.Equal(t, "Showing 2 course(s).", v.Notice)
	assert.Equal(t, []string{"The Chief Burger"}, names(v.Items))

	v, err = s.Apply(ApplyFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Showing all menu items.", v.Notice)
	assert.Len(t, v.Items, 2)
	assert.True(t, s.Filter().Empty())
}

func TestFilterPersistsAcrossMutations(t *testing.T) {
	s := seeded(t)
	_, err := s.Apply(ApplyFilter{Courses: []types.Course{types.CourseDessert}})
	require.NoError(t, err)

	v, err := s.Apply(AddItem{Item: storetest.Brownie})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fudge Brownie"}, names(v.Items))
	assert.Equal(t, 3, v.TotalItems)
}

func TestNilCommand(t *testing.T) {
	s := seeded(t)
	_, err := s.Apply(nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestMetricsRecorded(t *testing.T) {
	m := metrics.New()
	s := seeded(t, WithMetrics(m), fixedID("new-1"))

	_, err := s.Apply(AddItem{Item: withID(storetest.Brownie, "")})
	require.NoError(t, err)
	_, err = s.Apply(RemoveItem{ID: "missing"})
	require.NoError(t, err)
	_, err = s.Apply(EditItem{Item: storetest.Brownie})
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, `maestro_commands_total{command="add",outcome="applied"} 1`)
	assert.Contains(t, out, `maestro_commands_total{command="remove",outcome="noop"} 1`)
	assert.Contains(t, out, `maestro_commands_total{command="edit",outcome="rejected"} 1`)
	assert.Contains(t, out, "maestro_menu_items 3")
}

// TestEndToEnd walks the seeded scenario against both store variants.
func TestEndToEnd(t *testing.T) {
	stores := map[string]func(t *testing.T) types.Store{
		types.BackendMemory: func(t *testing.T) types.Store {
			return menu.NewStore()
		},
		types.BackendSQLite: func(t *testing.T) types.Store {
			b := sqlite.NewBackend(nil)
			require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite}))
			t.Cleanup(func() { _ = b.Detach() })
			return b
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)
			menu.Seed(store)
			s := New(store, fixedID("3"))

			v, err := s.Apply(AddItem{Item: types.MenuItem{
				DishName:    "Fudge Brownie",
				Description: "Warm, with vanilla ice cream.",
				Price:       5.25,
				Course:      types.CourseDessert,
			}})
			require.NoError(t, err)
			assert.Len(t, v.Items, 3)

			burger, ok := s.Get("1")
			require.True(t, ok)
			burger.Price = 14
			v, err = s.Apply(EditItem{Item: burger})
			require.NoError(t, err)
			require.Len(t, v.Items, 3)
			assert.Equal(t, 14.0, v.Items[0].Price)
			assert.Equal(t, 6.0, v.Items[1].Price, "only the burger changes")
			assert.Equal(t, 5.25, v.Items[2].Price)

			v, err = s.Apply(RemoveItem{ID: "2"})
			require.NoError(t, err)
			assert.Equal(t, []string{"The Chief Burger", "Fudge Brownie"}, names(v.Items))

			v, err = s.Apply(ApplyFilter{Courses: []types.Course{types.CourseMainDish}})
			require.NoError(t, err)
			require.Len(t, v.Items, 1)
			assert.Equal(t, burger, v.Items[0])
		})
	}
}
