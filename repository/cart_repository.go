package repository

import (
	"errors"

	"littlelemon/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser returns only the given user's cart lines.
func (r *CartRepository) ListForUser(tx *gorm.DB, userID uint) ([]entity.Cart, error) {
	var lines []entity.Cart
	err := tx.Preload("MenuItem").Where("user_id = ?", userID).Order("id").Find(&lines).Error
	return lines, err
}

// Upsert writes the (user, menu item) line, replacing the quantity and
// price if the line already exists.
func (r *CartRepository) Upsert(tx *gorm.DB, line *entity.Cart) error {
	var exist entity.Cart
	err := tx.Where("user_id = ? AND menu_item_id = ?", line.UserID, line.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity = line.Quantity
		exist.UnitPrice = line.UnitPrice
		exist.Price = line.Price
		if err := tx.Save(&exist).Error; err != nil {
			return err
		}
		*line = exist
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(line).Error
}

// Clear deletes all of the user's cart lines. The delete is unscoped:
// consumed lines must not linger as soft-deleted rows, or the unique
// (user, menu item) index would reject re-adding the same item later.
func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.Cart{}).Error
}
