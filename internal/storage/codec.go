package storage

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/pageza/recipe-catalog/internal/errors"
	"github.com/pageza/recipe-catalog/internal/model"
)

const (
	// DefaultCategory is given to records stored without one.
	DefaultCategory = "General"
	// DefaultPrepTime, in minutes, fills in records stored without a
	// positive prep time.
	DefaultPrepTime = 30.0
)

type shape int

const (
	shapeArray shape = iota
	shapeObject
)

// storedRecord accepts both the current record layout and the legacy one,
// where ids may be numbers and prep time, category, and timestamps are
// missing.
type storedRecord struct {
	ID          interface{} `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Ingredients []string    `json:"ingredients"`
	Steps       []string    `json:"steps"`
	PrepTime    interface{} `json:"prepTime"`
	Difficulty  string      `json:"difficulty"`
	Category    string      `json:"category"`
	CreatedAt   *time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time  `json:"updatedAt"`
}

var errNoArray = stderrors.New("value is neither an array nor an object holding an array")

// decode parses a stored value: a bare array of records, or an object whose
// "recipes" field (or, failing that, first array-valued field by name)
// holds the records.
func decode(raw string) ([]storedRecord, shape, error) {
	data := bytes.TrimSpace([]byte(raw))
	if len(data) == 0 {
		return nil, 0, apperrors.Wrap(apperrors.ErrCorruptData, "decode recipes", errNoArray)
	}

	switch data[0] {
	case '[':
		var records []storedRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, 0, apperrors.Wrap(apperrors.ErrCorruptData, "decode recipes", err)
		}
		return records, shapeArray, nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, 0, apperrors.Wrap(apperrors.ErrCorruptData, "decode recipes", err)
		}
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		if _, ok := fields["recipes"]; ok {
			names = append([]string{"recipes"}, names...)
		}
		for _, name := range names {
			field := bytes.TrimSpace(fields[name])
			if len(field) == 0 || field[0] != '[' {
				continue
			}
			var records []storedRecord
			if err := json.Unmarshal(field, &records); err != nil {
				return nil, 0, apperrors.Wrap(apperrors.ErrCorruptData, "decode recipes."+name, err)
			}
			return records, shapeObject, nil
		}
	}
	return nil, 0, apperrors.Wrap(apperrors.ErrCorruptData, "decode recipes", errNoArray)
}

// fromStored converts decoded records, filling defaults. Records without an
// id keep an empty one; Load assigns ids once every source is merged.
func (a *Adapter) fromStored(records []storedRecord, now time.Time, legacy bool) []model.Recipe {
	out := make([]model.Recipe, 0, len(records))
	for _, rec := range records {
		r := model.Recipe{
			ID:          idString(rec.ID),
			Title:       rec.Title,
			Description: rec.Description,
			Image:       rec.Image,
			Ingredients: dropBlank(rec.Ingredients),
			Steps:       dropBlank(rec.Steps),
			PrepTime:    prepTime(rec.PrepTime),
			Category:    rec.Category,
			UpdatedAt:   rec.UpdatedAt,
		}
		if d, ok := model.ParseDifficulty(rec.Difficulty); ok {
			r.Difficulty = d
		} else {
			r.Difficulty = model.DifficultyMedium
		}
		if r.Category == "" {
			r.Category = a.defaultCategory
		}
		if rec.CreatedAt != nil {
			r.CreatedAt = *rec.CreatedAt
		} else {
			r.CreatedAt = createdFromID(r.ID, now)
		}
		if len(r.Ingredients) == 0 || len(r.Steps) == 0 {
			log.Warn().
				Str("id", r.ID).
				Str("title", r.Title).
				Bool("legacy", legacy).
				Int("ingredients", len(r.Ingredients)).
				Int("steps", len(r.Steps)).
				Msg("Stored recipe is missing ingredients or steps")
		}
		out = append(out, r)
	}
	return out
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

func prepTime(v interface{}) float64 {
	var minutes float64
	switch p := v.(type) {
	case float64:
		minutes = p
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return DefaultPrepTime
		}
		minutes = parsed
	default:
		return DefaultPrepTime
	}
	if minutes <= 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return DefaultPrepTime
	}
	return minutes
}

// createdFromID recovers the creation time from a millisecond timestamp id.
func createdFromID(id string, fallback time.Time) time.Time {
	ms, err := strconv.ParseInt(id, 10, 64)
	// Anything before 2001 is not a millisecond timestamp.
	if err != nil || ms < 1e12 {
		return fallback
	}
	return time.UnixMilli(ms).UTC()
}

func dropBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
