package profile

import (
	"context"
	"testing"
)

type stubDirectory struct {
	names map[string]string
}

func (d *stubDirectory) DisplayName(ctx context.Context, userID string) (string, error) {
	return d.names[userID], nil
}

func newTestService() (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	dir := &stubDirectory{names: map[string]string{"acc-1": "masha"}}
	return NewService(repo, dir, nil), repo
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	service, _ := newTestService()

	first, err := service.GetOrCreate(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Username != "masha" {
		t.Errorf("expected account display name as default, got %q", first.Username)
	}

	second, err := service.GetOrCreate(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second call created a new page: %d != %d", second.ID, first.ID)
	}
}

func TestGetOrCreateFallbackName(t *testing.T) {
	service, _ := newTestService()

	page, err := service.GetOrCreate(context.Background(), "acc-unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Username != "user" {
		t.Errorf("expected fallback username, got %q", page.Username)
	}
}

func TestSetAllergiesCreatesPageOnFirstAccess(t *testing.T) {
	service, repo := newTestService()

	if err := service.SetAllergies(context.Background(), "acc-1", []int{1, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByUserID(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("page was not created: %v", err)
	}
	if len(stored.AllergyIDs) != 2 {
		t.Errorf("expected 2 allergies, got %d", len(stored.AllergyIDs))
	}
}

func TestLikeAndDislikeAreMutuallyExclusive(t *testing.T) {
	service, repo := newTestService()

	if err := service.LikeRecipe(context.Background(), "acc-1", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.DislikeRecipe(context.Background(), "acc-1", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page, _ := repo.FindByUserID(context.Background(), "acc-1")
	if len(page.LikedRecipeIDs) != 0 {
		t.Errorf("recipe still liked after dislike")
	}
	if len(page.DislikedRecipeIDs) != 1 || page.DislikedRecipeIDs[0] != 7 {
		t.Errorf("expected disliked [7], got %v", page.DislikedRecipeIDs)
	}
}

func TestTastesLazilyCreatesPage(t *testing.T) {
	service, repo := newTestService()

	tastes, err := service.Tastes(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tastes.PageID == 0 {
		t.Fatalf("expected a created page")
	}
	if _, err := repo.FindByUserID(context.Background(), "acc-1"); err != nil {
		t.Errorf("page was not persisted: %v", err)
	}
}
