package dailymenu

import (
	"context"
	"errors"
)

var (
	ErrMenuNotFound   = errors.New("daily menu not found")
	ErrInvalidWeekday = errors.New("unknown weekday")
)

// Repository defines the database operations for daily menus.
type Repository interface {
	// GetByDay returns the menu for a weekday with its slot recipes
	// fully loaded, or ErrMenuNotFound.
	GetByDay(ctx context.Context, day Weekday) (*DailyMenu, error)

	// Create is a maintainer write; slot recipes are referenced by ID.
	Create(ctx context.Context, menu *DailyMenu) error
}
