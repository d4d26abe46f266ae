package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pageza/recipe-catalog/internal/errors"
	"github.com/pageza/recipe-catalog/internal/model"
)

func validInput() Input {
	return Input{
		Title:       "  Tea ",
		Description: " A hot drink ",
		Ingredients: "Water\n\n  Tea leaves  \r\n",
		Steps:       "Boil",
		PrepTime:    "5",
		Difficulty:  "easy",
	}
}

func TestEvaluate_Valid(t *testing.T) {
	res := Evaluate(validInput())
	require.Equal(t, StateValid, res.State)
	assert.NoError(t, res.Err())

	d := res.Draft
	assert.Equal(t, "Tea", *d.Title)
	assert.Equal(t, "A hot drink", *d.Description)
	assert.Equal(t, "", *d.Image)
	assert.Equal(t, []string{"Water", "Tea leaves"}, d.Ingredients)
	assert.Equal(t, []string{"Boil"}, d.Steps)
	assert.Equal(t, 5.0, *d.PrepTime)
	assert.Equal(t, model.DifficultyEasy, *d.Difficulty)
	assert.Nil(t, d.Category)
}

func TestEvaluate_CategoryIsKeptWhenGiven(t *testing.T) {
	in := validInput()
	in.Category = " Drinks "
	res := Evaluate(in)
	require.Equal(t, StateValid, res.State)
	assert.Equal(t, "Drinks", *res.Draft.Category)
}

func TestEvaluate_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		field   string
		message string
	}{
		{"missing title", func(in *Input) { in.Title = "   " }, "title", MsgTitle},
		{"short title", func(in *Input) { in.Title = " T " }, "title", MsgTitle},
		{"title beats ingredients", func(in *Input) { in.Title = "T"; in.Ingredients = "" }, "title", MsgTitle},
		{"empty ingredients", func(in *Input) { in.Ingredients = "" }, "ingredients", MsgIngredients},
		{"blank ingredient lines", func(in *Input) { in.Ingredients = "\n  \n\t\n" }, "ingredients", MsgIngredients},
		{"ingredients beat steps", func(in *Input) { in.Ingredients = ""; in.Steps = "" }, "ingredients", MsgIngredients},
		{"empty steps", func(in *Input) { in.Steps = " \n " }, "steps", MsgSteps},
		{"prep not a number", func(in *Input) { in.PrepTime = "quick" }, "prep_time", MsgPrepTime},
		{"prep zero", func(in *Input) { in.PrepTime = "0" }, "prep_time", MsgPrepTime},
		{"prep negative", func(in *Input) { in.PrepTime = "-3" }, "prep_time", MsgPrepTime},
		{"prep NaN", func(in *Input) { in.PrepTime = "NaN" }, "prep_time", MsgPrepTime},
		{"prep beats difficulty", func(in *Input) { in.PrepTime = ""; in.Difficulty = "" }, "prep_time", MsgPrepTime},
		{"missing difficulty", func(in *Input) { in.Difficulty = "" }, "difficulty", MsgDifficulty},
		{"unknown difficulty", func(in *Input) { in.Difficulty = "Extreme" }, "difficulty", MsgDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			res := Evaluate(in)

			assert.Equal(t, StateInvalid, res.State)
			assert.Equal(t, tt.field, res.Field)
			assert.Equal(t, tt.message, res.Message)

			err := res.Err()
			assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
			assert.Equal(t, tt.message, apperrors.MessageOf(err))
		})
	}
}

func TestEvaluate_FractionalPrepTime(t *testing.T) {
	in := validInput()
	in.PrepTime = " 1.5 "
	res := Evaluate(in)
	require.Equal(t, StateValid, res.State)
	assert.Equal(t, 1.5, *res.Draft.PrepTime)
}

func TestInputState(t *testing.T) {
	assert.Equal(t, StateEmpty, Input{}.State())
	assert.Equal(t, StateEmpty, Input{Title: "  "}.State())
	assert.Equal(t, StateEditing, Input{Title: "T"}.State())
}

func TestFromRecipe_RoundTripsThroughEvaluate(t *testing.T) {
	r := model.Recipe{
		Title:       "Risotto",
		Description: "Creamy",
		Image:       "risotto.jpg",
		Ingredients: []string{"Rice", "Stock"},
		Steps:       []string{"Toast", "Stir"},
		PrepTime:    42.5,
		Difficulty:  model.DifficultyHard,
		Category:    "Mains",
	}

	in := FromRecipe(r)
	assert.Equal(t, "Rice\nStock", in.Ingredients)
	assert.Equal(t, "42.5", in.PrepTime)

	res := Evaluate(in)
	require.Equal(t, StateValid, res.State)

	var got model.Recipe
	res.Draft.ApplyTo(&got)
	assert.Equal(t, r, got)
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a", "b"}, Lines(" a \r\n\r\n b"))
}
