package profile

import "context"

type InMemoryRepository struct {
	pages  map[string]*UserPage // keyed by account user ID
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		pages:  make(map[string]*UserPage),
		nextID: 1,
	}
}

func (r *InMemoryRepository) FindByUserID(ctx context.Context, userID string) (*UserPage, error) {
	page, ok := r.pages[userID]
	if !ok {
		return nil, ErrPageNotFound
	}
	return page, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, page *UserPage) error {
	page.ID = r.nextID
	r.nextID++
	r.pages[page.UserID] = page
	return nil
}

func (r *InMemoryRepository) byID(pageID int) *UserPage {
	for _, page := range r.pages {
		if page.ID == pageID {
			return page
		}
	}
	return nil
}

func (r *InMemoryRepository) SetAllergies(ctx context.Context, pageID int, tagIDs []int) error {
	if page := r.byID(pageID); page != nil {
		page.AllergyIDs = append([]int(nil), tagIDs...)
	}
	return nil
}

func (r *InMemoryRepository) SetMenuTypes(ctx context.Context, pageID int, menuTypeIDs []int) error {
	if page := r.byID(pageID); page != nil {
		page.MenuTypeIDs = append([]int(nil), menuTypeIDs...)
	}
	return nil
}

func (r *InMemoryRepository) SetAvatar(ctx context.Context, pageID int, imageURL string) error {
	if page := r.byID(pageID); page != nil {
		page.Image = imageURL
	}
	return nil
}

func remove(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (r *InMemoryRepository) Like(ctx context.Context, pageID, recipeID int) error {
	if page := r.byID(pageID); page != nil {
		page.DislikedRecipeIDs = remove(page.DislikedRecipeIDs, recipeID)
		if !contains(page.LikedRecipeIDs, recipeID) {
			page.LikedRecipeIDs = append(page.LikedRecipeIDs, recipeID)
		}
	}
	return nil
}

func (r *InMemoryRepository) Dislike(ctx context.Context, pageID, recipeID int) error {
	if page := r.byID(pageID); page != nil {
		page.LikedRecipeIDs = remove(page.LikedRecipeIDs, recipeID)
		if !contains(page.DislikedRecipeIDs, recipeID) {
			page.DislikedRecipeIDs = append(page.DislikedRecipeIDs, recipeID)
		}
	}
	return nil
}
