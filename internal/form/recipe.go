// Package form turns submitted recipe form fields into a draft.
package form

import (
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	apperrors "github.com/pageza/recipe-catalog/internal/errors"
	"github.com/pageza/recipe-catalog/internal/model"
)

// Messages shown for the first violated rule.
const (
	MsgTitle       = "Title must be at least 2 characters."
	MsgIngredients = "Please add at least one ingredient, one per line."
	MsgSteps       = "Please add at least one step, one per line."
	MsgPrepTime    = "Prep time must be a number of minutes greater than 0."
	MsgDifficulty  = "Difficulty must be Easy, Medium, or Hard."
)

// State is the position of a form in its validation lifecycle.
type State string

const (
	StateEmpty   State = "empty"
	StateEditing State = "editing"
	StateValid   State = "valid"
	StateInvalid State = "invalid"
)

// Input holds the raw form fields. Ingredients and Steps are multi-line text.
type Input struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Image       string `form:"image"`
	Ingredients string `form:"ingredients"`
	Steps       string `form:"steps"`
	PrepTime    string `form:"prep_time"`
	Difficulty  string `form:"difficulty"`
	Category    string `form:"category"`
}

// Result is the outcome of evaluating an Input.
type Result struct {
	State   State
	Draft   model.Draft
	Field   string
	Message string
}

// Err returns the validation failure as an AppError, or nil when valid.
func (r Result) Err() error {
	if r.State != StateInvalid {
		return nil
	}
	return apperrors.Validation(r.Field, r.Message)
}

// IsEmpty reports whether no field has been filled in.
func (in Input) IsEmpty() bool {
	for _, v := range []string{in.Title, in.Description, in.Image, in.Ingredients, in.Steps, in.PrepTime, in.Difficulty, in.Category} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// State reports the lifecycle state without producing a draft: empty when
// nothing is filled in, editing otherwise.
func (in Input) State() State {
	if in.IsEmpty() {
		return StateEmpty
	}
	return StateEditing
}

// Evaluate checks the rules in order and stops at the first failure. On
// success the Result carries a normalized draft with every field present.
func Evaluate(in Input) Result {
	title := strings.TrimSpace(in.Title)
	ingredients := Lines(in.Ingredients)
	steps := Lines(in.Steps)
	difficulty, _ := model.ParseDifficulty(in.Difficulty)

	rawPrep := strings.TrimSpace(in.PrepTime)
	prep, err := strconv.ParseFloat(rawPrep, 64)
	if err != nil || math.IsNaN(prep) || math.IsInf(prep, 0) {
		prep = 0
	}

	checks := []struct {
		field string
		value interface{}
		rules []validation.Rule
	}{
		{"title", title, []validation.Rule{
			validation.Required.Error(MsgTitle),
			validation.RuneLength(2, 0).Error(MsgTitle),
		}},
		{"ingredients", ingredients, []validation.Rule{
			validation.Required.Error(MsgIngredients),
		}},
		{"steps", steps, []validation.Rule{
			validation.Required.Error(MsgSteps),
		}},
		{"prep_time", prep, []validation.Rule{
			validation.Required.Error(MsgPrepTime),
			validation.Min(0.0).Exclusive().Error(MsgPrepTime),
		}},
		{"difficulty", difficulty, []validation.Rule{
			validation.Required.Error(MsgDifficulty),
			validation.In(model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard).Error(MsgDifficulty),
		}},
	}

	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			return Result{State: StateInvalid, Field: c.field, Message: err.Error()}
		}
	}

	category := strings.TrimSpace(in.Category)
	draft := model.Draft{
		Title:       &title,
		Description: model.Ref(strings.TrimSpace(in.Description)),
		Image:       model.Ref(strings.TrimSpace(in.Image)),
		Ingredients: ingredients,
		Steps:       steps,
		PrepTime:    &prep,
		Difficulty:  &difficulty,
	}
	// A blank category is left to the repository default.
	if category != "" {
		draft.Category = &category
	}
	return Result{State: StateValid, Draft: draft}
}

// Lines splits multi-line text, trims each line and drops blank ones.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// FromRecipe fills an Input for editing r.
func FromRecipe(r model.Recipe) Input {
	return Input{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Ingredients: strings.Join(r.Ingredients, "\n"),
		Steps:       strings.Join(r.Steps, "\n"),
		PrepTime:    strconv.FormatFloat(r.PrepTime, 'f', -1, 64),
		Difficulty:  string(r.Difficulty),
		Category:    r.Category,
	}
}
