package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestAddRecipeRejectsDuplicateTitle(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	first := &Recipe{Title: "Borscht", MealType: MealLunch}
	if _, err := service.AddRecipe(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := &Recipe{Title: "Borscht", MealType: MealDinner}
	if _, err := service.AddRecipe(context.Background(), dup); !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestAddMenuTypeRejectsDuplicateTitle(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	if _, err := service.AddMenuType(context.Background(), "vegan", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.AddMenuType(context.Background(), "vegan", "other.png"); !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestAddFoodTagRejectsDuplicateName(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	if _, err := service.AddFoodTag(context.Background(), "nuts"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.AddFoodTag(context.Background(), "nuts"); !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}
