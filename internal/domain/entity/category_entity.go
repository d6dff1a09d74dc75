package entity

import "time"

// Category is an admin-managed taxonomy node. Icon is a symbolic name
// resolved by the presentation layer and not validated here.
type Category struct {
	ID        string
	Name      string
	Icon      string
	CreatedAt time.Time
}
