package subscription

import (
	"context"
	"strings"
)

type InMemoryRepository struct {
	byPage map[int]*Subscription
	// pages whose is_subscribed flag the Replace tx would have set
	subscribedPages map[int]bool
	nextID          int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byPage:          make(map[int]*Subscription),
		subscribedPages: make(map[int]bool),
		nextID:          1,
	}
}

func (r *InMemoryRepository) ActiveForPage(ctx context.Context, pageID int) (*Subscription, error) {
	sub, ok := r.byPage[pageID]
	if !ok {
		return nil, ErrNoActiveSubscription
	}
	return sub, nil
}

func (r *InMemoryRepository) Replace(ctx context.Context, sub *Subscription) error {
	sub.ID = r.nextID
	r.nextID++
	r.byPage[sub.UserPageID] = sub
	r.subscribedPages[sub.UserPageID] = true
	return nil
}

// PageSubscribed mirrors the is_subscribed flag for assertions.
func (r *InMemoryRepository) PageSubscribed(pageID int) bool {
	return r.subscribedPages[pageID]
}

// Count reports how many subscriptions exist in total.
func (r *InMemoryRepository) Count() int {
	return len(r.byPage)
}

type InMemoryPromoRepository struct {
	promos []*PromoCode
	nextID int
}

func NewInMemoryPromoRepository() *InMemoryPromoRepository {
	return &InMemoryPromoRepository{nextID: 1}
}

func (r *InMemoryPromoRepository) FindActiveByCode(ctx context.Context, code string) (*PromoCode, error) {
	for _, promo := range r.promos {
		if promo.IsActive && strings.EqualFold(promo.Code, code) {
			return promo, nil
		}
	}
	return nil, nil
}

func (r *InMemoryPromoRepository) Create(ctx context.Context, promo *PromoCode) error {
	promo.ID = r.nextID
	r.nextID++
	r.promos = append(r.promos, promo)
	return nil
}
