package usecase

import (
	"context"
	"fmt"

	"main/model"

	"github.com/google/uuid"
)

type AccountBookRepository interface {
	GetOrCreate(ctx context.Context) (*model.AccountBook, error)
	SetTotalAsset(ctx context.Context, total float64) (*model.AccountBook, error)
	AddWishItem(ctx context.Context, item model.AccountWishItem) (*model.AccountBook, error)
	UpdateWishItem(ctx context.Context, itemID string, upd model.AccountWishItemUpdate) (*model.AccountBook, error)
	RemoveWishItem(ctx context.Context, itemID string) (*model.AccountBook, error)
}

type AccountBookService struct {
	repo AccountBookRepository
}

func NewAccountBookService(repo AccountBookRepository) *AccountBookService {
	return &AccountBookService{repo: repo}
}

// Get returns the singleton account book, creating it on first read.
func (svc *AccountBookService) Get(ctx context.Context) (*model.AccountBook, error) {
	return svc.repo.GetOrCreate(ctx)
}

func (svc *AccountBookService) SetTotalAsset(ctx context.Context, total float64) (*model.AccountBook, error) {
	return svc.repo.SetTotalAsset(ctx, total)
}

func (svc *AccountBookService) AddWishItem(ctx context.Context, name string, price float64) (*model.AccountBook, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	item := model.AccountWishItem{
		ItemID: uuid.New().String(),
		Name:   name,
		Price:  price,
	}
	return svc.repo.AddWishItem(ctx, item)
}

func (svc *AccountBookService) UpdateWishItem(ctx context.Context, itemID string, upd model.AccountWishItemUpdate) (*model.AccountBook, error) {
	if upd.Name != nil && *upd.Name == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	book, err := svc.repo.UpdateWishItem(ctx, itemID, upd)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("%w: wish item %s", ErrNotFound, itemID)
	}
	return book, nil
}

func (svc *AccountBookService) RemoveWishItem(ctx context.Context, itemID string) (*model.AccountBook, error) {
	book, err := svc.repo.RemoveWishItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("%w: account book", ErrNotFound)
	}
	return book, nil
}
