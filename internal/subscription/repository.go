package subscription

import (
	"context"
	"errors"
)

var ErrNoActiveSubscription = errors.New("no active subscription")

// Repository defines all database operations for subscriptions.
type Repository interface {
	// ActiveForPage returns the page's current subscription or
	// ErrNoActiveSubscription.
	ActiveForPage(ctx context.Context, pageID int) (*Subscription, error)

	// Replace atomically deletes any prior subscription of the page,
	// inserts the new one with its menu-type links, mirrors the menu
	// types onto the page and sets its is_subscribed flag, all in one
	// transaction, so the page never ends up with zero or two
	// subscriptions.
	Replace(ctx context.Context, sub *Subscription) error
}

// PromoRepository is the optional promo-code capability. A nil
// repository on the service disables promo codes entirely.
type PromoRepository interface {
	// FindActiveByCode matches case-insensitively among active codes;
	// (nil, nil) when there is no match.
	FindActiveByCode(ctx context.Context, code string) (*PromoCode, error)

	Create(ctx context.Context, promo *PromoCode) error
}
