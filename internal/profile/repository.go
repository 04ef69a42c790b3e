package profile

import (
	"context"
	"errors"
)

var ErrPageNotFound = errors.New("user page not found")

// Repository defines all database operations for user pages.
type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*UserPage, error)
	Create(ctx context.Context, page *UserPage) error

	SetAllergies(ctx context.Context, pageID int, tagIDs []int) error
	SetMenuTypes(ctx context.Context, pageID int, menuTypeIDs []int) error
	SetAvatar(ctx context.Context, pageID int, imageURL string) error

	// Like/Dislike keep the two reaction sets mutually exclusive.
	Like(ctx context.Context, pageID, recipeID int) error
	Dislike(ctx context.Context, pageID, recipeID int) error
}
