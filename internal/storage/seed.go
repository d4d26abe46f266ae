package storage

import (
	"strconv"
	"time"

	"github.com/pageza/recipe-catalog/internal/model"
)

// Starters returns the recipes written on first run, newest first.
func Starters(now time.Time) []model.Recipe {
	ms := now.UnixMilli()
	return []model.Recipe{
		{
			ID:          strconv.FormatInt(ms+1, 10),
			Title:       "Masala Chai",
			Description: "Milky spiced tea brewed on the stove.",
			Ingredients: []string{
				"1 cup water",
				"1 cup milk",
				"2 tsp black tea leaves",
				"2 crushed cardamom pods",
				"1 thin slice of ginger",
				"Sugar to taste",
			},
			Steps: []string{
				"Bring the water, ginger, and cardamom to a boil.",
				"Add the tea leaves and simmer for 2 minutes.",
				"Pour in the milk and sugar and bring back to a boil.",
				"Strain into cups and serve hot.",
			},
			PrepTime:   10,
			Difficulty: model.DifficultyEasy,
			Category:   "Drinks",
			CreatedAt:  now,
		},
		{
			ID:          strconv.FormatInt(ms, 10),
			Title:       "Lemon Rice",
			Description: "Tangy South Indian rice tempered with mustard seeds and curry leaves.",
			Ingredients: []string{
				"2 cups cooked rice",
				"2 tbsp lemon juice",
				"1 tsp mustard seeds",
				"10 curry leaves",
				"1/4 tsp turmeric",
				"2 tbsp peanuts",
				"1 tbsp oil",
				"Salt to taste",
			},
			Steps: []string{
				"Heat the oil and fry the peanuts until golden.",
				"Add the mustard seeds and let them splutter.",
				"Add the curry leaves and turmeric.",
				"Fold in the rice, lemon juice, and salt.",
			},
			PrepTime:   20,
			Difficulty: model.DifficultyEasy,
			Category:   "Mains",
			CreatedAt:  now,
		},
	}
}
