package entity

import "time"

// SavedRecipe is one row of the bookmark ledger. The (UserID, RecipeID)
// pair is unique; the database constraint is the arbiter under concurrent
// saves.
type SavedRecipe struct {
	UserID    string
	RecipeID  string
	CreatedAt time.Time
}
