package profile

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"foodplan/internal/core"

	"github.com/google/uuid"
)

// Storage uploads media files and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

// AccountDirectory resolves an account's display name, used as the
// default username when a page is created lazily.
type AccountDirectory interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

type Service struct {
	repo     Repository
	accounts AccountDirectory
	storage  Storage
}

func NewService(repo Repository, accounts AccountDirectory, storage Storage) *Service {
	return &Service{repo: repo, accounts: accounts, storage: storage}
}

// GetOrCreate looks the page up and creates it with default fields when
// absent. Idempotent: calling it twice for the same account yields the
// same page.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (*UserPage, error) {
	if userID == "" {
		return nil, errors.New("missing user id")
	}

	page, err := s.repo.FindByUserID(ctx, userID)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, ErrPageNotFound) {
		return nil, err
	}

	username := "user"
	if s.accounts != nil {
		if name, err := s.accounts.DisplayName(ctx, userID); err == nil && name != "" {
			username = name
		}
	}

	page = &UserPage{UserID: userID, Username: username}
	if err := s.repo.Create(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *Service) SetAllergies(ctx context.Context, userID string, tagIDs []int) error {
	page, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.repo.SetAllergies(ctx, page.ID, tagIDs); err != nil {
		return err
	}
	page.AllergyIDs = append([]int(nil), tagIDs...)
	return nil
}

func (s *Service) SetMenuTypes(ctx context.Context, userID string, menuTypeIDs []int) error {
	page, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.repo.SetMenuTypes(ctx, page.ID, menuTypeIDs); err != nil {
		return err
	}
	page.MenuTypeIDs = append([]int(nil), menuTypeIDs...)
	return nil
}

func (s *Service) LikeRecipe(ctx context.Context, userID string, recipeID int) error {
	page, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.Like(ctx, page.ID, recipeID)
}

func (s *Service) DislikeRecipe(ctx context.Context, userID string, recipeID int) error {
	page, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.Dislike(ctx, page.ID, recipeID)
}

// UploadAvatar stores the image and records its URL on the page.
func (s *Service) UploadAvatar(
	ctx context.Context,
	userID string,
	file multipart.File,
	filename string,
) (string, error) {

	if s.storage == nil {
		return "", errors.New("media storage not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	page, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/%d/%s%s", page.ID, uuid.New().String(), ext)
	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetAvatar(ctx, page.ID, url); err != nil {
		return "", err
	}
	return url, nil
}

// Tastes implements core.ProfileReader. First access creates the page.
func (s *Service) Tastes(ctx context.Context, userID string) (*core.Tastes, error) {
	page, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &core.Tastes{
		PageID:      page.ID,
		AllergyIDs:  page.AllergyIDs,
		MenuTypeIDs: page.MenuTypeIDs,
	}, nil
}
