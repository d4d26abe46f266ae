package model

import (
	"slices"
	"strings"
	"time"
)

// Difficulty is the enumerated effort level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// AllDifficulties is the filter value that disables difficulty filtering.
const AllDifficulties = "All"

// Difficulties lists the valid difficulties in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the enumerated difficulties.
func (d Difficulty) Valid() bool {
	return slices.Contains(Difficulties, d)
}

// ParseDifficulty matches s against the enumerated set, ignoring case and
// surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, bool) {
	s = strings.TrimSpace(s)
	for _, d := range Difficulties {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}
	return Difficulty(s), false
}

// Recipe is a persisted catalog record.
type Recipe struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image,omitempty"`
	Ingredients []string   `json:"ingredients"`
	Steps       []string   `json:"steps"`
	PrepTime    float64    `json:"prepTime"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Clone returns a deep copy so callers never share slices with the repository.
func (r Recipe) Clone() Recipe {
	c := r
	c.Ingredients = slices.Clone(r.Ingredients)
	c.Steps = slices.Clone(r.Steps)
	if r.UpdatedAt != nil {
		t := *r.UpdatedAt
		c.UpdatedAt = &t
	}
	return c
}

// Draft holds user-edited fields pending creation or update. A nil field is
// absent and leaves the stored value untouched on update.
type Draft struct {
	Title       *string
	Description *string
	Image       *string
	Ingredients []string
	Steps       []string
	PrepTime    *float64
	Difficulty  *Difficulty
	Category    *string
}

// ApplyTo merges the present draft fields into r.
func (d Draft) ApplyTo(r *Recipe) {
	if d.Title != nil {
		r.Title = *d.Title
	}
	if d.Description != nil {
		r.Description = *d.Description
	}
	if d.Image != nil {
		r.Image = *d.Image
	}
	if d.Ingredients != nil {
		r.Ingredients = slices.Clone(d.Ingredients)
	}
	if d.Steps != nil {
		r.Steps = slices.Clone(d.Steps)
	}
	if d.PrepTime != nil {
		r.PrepTime = *d.PrepTime
	}
	if d.Difficulty != nil {
		r.Difficulty = *d.Difficulty
	}
	if d.Category != nil {
		r.Category = *d.Category
	}
}

// Ref returns a pointer to v. It keeps draft literals short.
func Ref[T any](v T) *T {
	return &v
}

// Filter selects recipes for the list view.
type Filter struct {
	Search     string
	Difficulty string
	Category   string
}

// HasDifficulty reports whether a specific difficulty is selected.
func (f Filter) HasDifficulty() bool {
	d := strings.TrimSpace(f.Difficulty)
	return d != "" && !strings.EqualFold(d, AllDifficulties)
}
