package dailymenu

import "context"

type InMemoryRepository struct {
	menus  map[Weekday]*DailyMenu
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		menus:  make(map[Weekday]*DailyMenu),
		nextID: 1,
	}
}

func (r *InMemoryRepository) GetByDay(ctx context.Context, day Weekday) (*DailyMenu, error) {
	menu, ok := r.menus[day]
	if !ok {
		return nil, ErrMenuNotFound
	}
	return menu, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, menu *DailyMenu) error {
	menu.ID = r.nextID
	r.nextID++
	r.menus[menu.Day] = menu
	return nil
}
