package services

import (
	"errors"

	"littlelemon/entity"
	"littlelemon/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	ItemRepo *repository.MenuItemRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, ir *repository.MenuItemRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ItemRepo: ir}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// List returns only the caller's cart lines.
func (s *CartService) List(userID uint) ([]entity.Cart, error) {
	return s.CartRepo.ListForUser(s.DB, userID)
}

// Add upserts the caller's line for the menu item. The unit price is
// snapshotted from the catalog and price = unit price × quantity.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.Cart, error) {
	item, err := s.ItemRepo.FindByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	line := &entity.Cart{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   in.Quantity,
		UnitPrice:  item.Price,
		Price:      item.Price * float64(in.Quantity),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Upsert(tx, line)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// Clear deletes all of the caller's cart lines.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}
