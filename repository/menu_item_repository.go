package repository

import (
	"littlelemon/entity"

	"gorm.io/gorm"
)

type MenuItemRepository struct{ DB *gorm.DB }

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository { return &MenuItemRepository{DB: db} }

// MenuItemFilter narrows and orders a listing. Ordering column names are
// validated in the service before they get here.
type MenuItemFilter struct {
	CategoryTitle string
	OrderBy       string // e.g. "price ASC", "inventory DESC"
	Page          int
	PerPage       int
}

func (r *MenuItemRepository) List(f MenuItemFilter) ([]entity.MenuItem, error) {
	q := r.DB.Preload("Category").Joins("JOIN categories ON categories.id = menu_items.category_id")

	if f.CategoryTitle != "" {
		q = q.Where("categories.title = ?", f.CategoryTitle)
	}
	if f.OrderBy != "" {
		q = q.Order(f.OrderBy)
	} else {
		q = q.Order("menu_items.id")
	}
	if f.PerPage > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		q = q.Limit(f.PerPage).Offset((page - 1) * f.PerPage)
	}

	var items []entity.MenuItem
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Update(id uint, updates map[string]any) error {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuItemRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
