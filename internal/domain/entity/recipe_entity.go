package entity

import (
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyMudah  Difficulty = "MUDAH"
	DifficultySedang Difficulty = "SEDANG"
	DifficultySulit  Difficulty = "SULIT"
)

// Valid reports whether d is one of the three known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyMudah, DifficultySedang, DifficultySulit:
		return true
	}
	return false
}

// AuthorSummary is the embedded author projection returned with recipes.
type AuthorSummary struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// Recipe is the aggregate root of the catalog.
//
// Category is a denormalized string matching a category's normalized name,
// not a foreign key: renaming or deleting a category leaves existing recipes
// untouched. Instructions holds the steps joined with "\n".
type Recipe struct {
	ID           string
	Title        string
	Description  string
	Ingredients  []string
	Instructions string
	ImageURL     string
	Difficulty   Difficulty
	Category     string
	IsFeatured   bool
	AuthorID     string
	Author       *AuthorSummary
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InstructionSteps splits Instructions back into steps, discarding blanks.
func (r *Recipe) InstructionSteps() []string {
	return SplitSteps(r.Instructions)
}

// SplitSteps parses a newline-joined step list, discarding blank lines.
func SplitSteps(s string) []string {
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinSteps joins step entries with "\n", the storage form of Instructions.
func JoinSteps(steps []string) string {
	return strings.Join(steps, "\n")
}

// NormalizeCategoryName converts a category display name to the form stored
// on recipes: uppercased with spaces replaced by underscores.
func NormalizeCategoryName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}
