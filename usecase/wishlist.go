package usecase

import (
	"context"
	"fmt"
	"time"

	"main/model"

	"github.com/google/uuid"
)

type WishlistRepository interface {
	Create(ctx context.Context, wish *model.Wishlist) error
	GetByID(ctx context.Context, wishID string) (*model.Wishlist, error)
	GetAll(ctx context.Context) ([]*model.Wishlist, error)
	Update(ctx context.Context, wish *model.Wishlist) error
	Delete(ctx context.Context, wishID string) (bool, error)
}

type WishlistService struct {
	repo WishlistRepository
}

func NewWishlistService(repo WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

func (svc *WishlistService) Create(ctx context.Context, wish *model.Wishlist) error {
	if wish.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if wish.WishlistID == "" {
		wish.WishlistID = uuid.New().String()
	}
	now := time.Now()
	wish.CreatedAt = now
	wish.UpdatedAt = now
	return svc.repo.Create(ctx, wish)
}

func (svc *WishlistService) Get(ctx context.Context, wishID string) (*model.Wishlist, error) {
	wish, err := svc.repo.GetByID(ctx, wishID)
	if err != nil {
		return nil, err
	}
	if wish == nil {
		return nil, fmt.Errorf("%w: wishlist entry %s", ErrNotFound, wishID)
	}
	return wish, nil
}

func (svc *WishlistService) List(ctx context.Context) ([]*model.Wishlist, error) {
	return svc.repo.GetAll(ctx)
}

func (svc *WishlistService) Update(ctx context.Context, wishID string, upd *model.WishlistUpdate) (*model.Wishlist, error) {
	existing, err := svc.Get(ctx, wishID)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		existing.Title = *upd.Title
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.IsCompleted != nil {
		existing.IsCompleted = *upd.IsCompleted
	}
	if err := svc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *WishlistService) Delete(ctx context.Context, wishID string) error {
	deleted, err := svc.repo.Delete(ctx, wishID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: wishlist entry %s", ErrNotFound, wishID)
	}
	return nil
}
