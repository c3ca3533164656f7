package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/maestro/pkg/types"
)

func validInput() Input {
	return Input{
		ID:          "42",
		DishName:    "Chef Salad",
		Description: "A light and zesty starter.",
		Price:       "6.00",
		Course:      "Starter",
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *Input)
		wantField string
		wantErr   error
		check     func(t *testing.T, m types.MenuItem)
	}{
		{
			name:   "valid input",
			mutate: func(in *Input) {},
			check: func(t *testing.T, m types.MenuItem) {
				assert.Equal(t, types.MenuItem{
					ID:          "42",
					DishName:    "Chef Salad",
					Description: "A light and zesty starter.",
					Price:       6,
					Course:      types.CourseStarter,
				}, m)
			},
		},
		{
			name:   "fields are trimmed",
			mutate: func(in *Input) { in.DishName = "  Chef Salad  "; in.Price = " 6 " },
			check: func(t *testing.T, m types.MenuItem) {
				assert.Equal(t, "Chef Salad", m.DishName)
				assert.Equal(t, 6.0, m.Price)
			},
		},
		{
			name:   "empty course defaults to starter",
			mutate: func(in *Input) { in.Course = "" },
			check: func(t *testing.T, m types.MenuItem) {
				assert.Equal(t, types.CourseStarter, m.Course)
			},
		},
		{
			name:   "course alias",
			mutate: func(in *Input) { in.Course = "main" },
			check: func(t *testing.T, m types.MenuItem) {
				assert.Equal(t, types.CourseMainDish, m.Course)
			},
		},
		{
			name:   "dollar sign accepted",
			mutate: func(in *Input) { in.Price = "$12.50" },
			check: func(t *testing.T, m types.MenuItem) {
				assert.Equal(t, 12.5, m.Price)
			},
		},
		{
			name:   "zero price accepted",
			mutate: func(in *Input) { in.Price = "0" },
			check: func(t *testing.T, m types.MenuItem) {
				assert.Equal(t, 0.0, m.Price)
			},
		},
		{
			name:      "empty dish name",
			mutate:    func(in *Input) { in.DishName = "   " },
			wantField: FieldDishName,
			wantErr:   types.ErrInvalidName,
		},
		{
			name:      "empty description",
			mutate:    func(in *Input) { in.Description = "" },
			wantField: FieldDescription,
			wantErr:   types.ErrInvalidDescription,
		},
		{
			name:      "empty price",
			mutate:    func(in *Input) { in.Price = "" },
			wantField: FieldPrice,
			wantErr:   types.ErrInvalidPrice,
		},
		{
			name:      "unparseable price",
			mutate:    func(in *Input) { in.Price = "twelve" },
			wantField: FieldPrice,
			wantErr:   types.ErrInvalidPrice,
		},
		{
			name:      "negative price",
			mutate:    func(in *Input) { in.Price = "-1" },
			wantField: FieldPrice,
			wantErr:   types.ErrInvalidPrice,
		},
		{
			name:      "NaN price",
			mutate:    func(in *Input) { in.Price = "NaN" },
			wantField: FieldPrice,
			wantErr:   types.ErrInvalidPrice,
		},
		{
			name:      "infinite price",
			mutate:    func(in *Input) { in.Price = "+Inf" },
			wantField: FieldPrice,
			wantErr:   types.ErrInvalidPrice,
		},
		{
			name:      "unknown course",
			mutate:    func(in *Input) { in.Course = "Brunch" },
			wantField: FieldCourse,
			wantErr:   types.ErrInvalidCourse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			m, err := Parse(in)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)

				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantField, verr.Field)
				return
			}
			require.NoError(t, err)
			require.NoError(t, m.Validate())
			tt.check(t, m)
		})
	}
}

func TestMissingFieldsMessage(t *testing.T) {
	_, err := Parse(Input{})
	require.Error(t, err)
	assert.Equal(t, "dish name: Please fill out all fields.", err.Error())
}

func TestInvalidPriceMessage(t *testing.T) {
	_, err := ParsePrice("abc")
	require.Error(t, err)
	assert.Equal(t, "price: Please enter a valid price.", err.Error())
}

func TestFromItemRoundTrip(t *testing.T) {
	m := types.MenuItem{
		ID:          "1",
		DishName:    "The Chief Burger",
		Description: "Classic patty with all the fixings.",
		Price:       12.5,
		Course:      types.CourseMainDish,
	}

	in := FromItem(m)
	assert.Equal(t, "12.50", in.Price)
	assert.Equal(t, "Main Dish", in.Course)

	got, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "6.00", FormatPrice(6))
	assert.Equal(t, "9.25", FormatPrice(9.25))
	assert.Equal(t, "0.00", FormatPrice(0))
	assert.Equal(t, "3.33", FormatPrice(10.0/3.0))
}
