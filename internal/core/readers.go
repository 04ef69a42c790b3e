package core

import "context"

// Tastes is the slice of a user profile the pure engines need:
// what the user must avoid and which menu types they subscribe to.
type Tastes struct {
	PageID      int
	AllergyIDs  []int
	MenuTypeIDs []int
}

// ProfileReader lets the catalog, subscription and dailymenu services
// read a user's profile without importing the profile package.
type ProfileReader interface {
	Tastes(ctx context.Context, userID string) (*Tastes, error)
}
