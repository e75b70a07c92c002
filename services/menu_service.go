package services

import (
	"errors"
	"fmt"
	"strings"

	"littlelemon/entity"
	"littlelemon/repository"

	"gorm.io/gorm"
)

// MenuService covers the catalog: categories, orderable menu items and the
// menu-page dishes.
type MenuService struct {
	CategoryRepo *repository.CategoryRepository
	ItemRepo     *repository.MenuItemRepository
	MenuRepo     *repository.MenuRepository
}

func NewMenuService(
	catRepo *repository.CategoryRepository,
	itemRepo *repository.MenuItemRepository,
	menuRepo *repository.MenuRepository,
) *MenuService {
	return &MenuService{CategoryRepo: catRepo, ItemRepo: itemRepo, MenuRepo: menuRepo}
}

// ----- Categories -----

type CategoryIn struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

func (s *MenuService) ListCategories() ([]entity.Category, error) {
	return s.CategoryRepo.List()
}

func (s *MenuService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	cat := &entity.Category{Slug: in.Slug, Title: in.Title}
	if err := s.CategoryRepo.Create(cat); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return cat, nil
}

// ----- Menu items -----

type MenuItemIn struct {
	Title      string  `json:"title" binding:"required"`
	Price      float64 `json:"price" binding:"min=0"`
	Featured   bool    `json:"featured"`
	Inventory  int     `json:"inventory" binding:"min=0"`
	CategoryID uint    `json:"categoryId" binding:"required"`
}

type MenuItemQuery struct {
	Category string
	Ordering string
	Page     int
	PerPage  int
}

// orderings maps the public ordering keys to SQL order clauses.
var orderings = map[string]string{
	"price":      "menu_items.price ASC",
	"-price":     "menu_items.price DESC",
	"inventory":  "menu_items.inventory ASC",
	"-inventory": "menu_items.inventory DESC",
}

func (s *MenuService) ListMenuItems(q MenuItemQuery) ([]entity.MenuItem, error) {
	filter := repository.MenuItemFilter{
		CategoryTitle: q.Category,
		Page:          q.Page,
		PerPage:       q.PerPage,
	}
	if q.Ordering != "" {
		clause, ok := orderings[strings.TrimSpace(q.Ordering)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown ordering %q", ErrValidation, q.Ordering)
		}
		filter.OrderBy = clause
	}
	return s.ItemRepo.List(filter)
}

func (s *MenuService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	item, err := s.ItemRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *MenuService) CreateMenuItem(in *MenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.CategoryRepo.FindByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	item := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		Inventory:  in.Inventory,
		CategoryID: in.CategoryID,
	}
	if err := s.ItemRepo.Create(item); err != nil {
		return nil, err
	}
	return s.ItemRepo.FindByID(item.ID)
}

// MenuItemPatch carries a partial update; nil fields are left alone.
type MenuItemPatch struct {
	Title      *string  `json:"title"`
	Price      *float64 `json:"price" binding:"omitempty,min=0"`
	Featured   *bool    `json:"featured"`
	Inventory  *int     `json:"inventory" binding:"omitempty,min=0"`
	CategoryID *uint    `json:"categoryId"`
}

func (s *MenuService) UpdateMenuItem(id uint, patch *MenuItemPatch) (*entity.MenuItem, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Featured != nil {
		updates["featured"] = *patch.Featured
	}
	if patch.Inventory != nil {
		updates["inventory"] = *patch.Inventory
	}
	if patch.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*patch.CategoryID); err != nil {
			return nil, ErrNotFound
		}
		updates["category_id"] = *patch.CategoryID
	}
	if len(updates) > 0 {
		if err := s.ItemRepo.Update(id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	return s.GetMenuItem(id)
}

func (s *MenuService) DeleteMenuItem(id uint) error {
	err := s.ItemRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ----- Menu-page dishes -----

type MenuIn struct {
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Inventory   int     `json:"inventory" binding:"min=0"`
	Description string  `json:"description"`
}

func (s *MenuService) ListMenus() ([]entity.Menu, error) {
	return s.MenuRepo.List()
}

func (s *MenuService) GetMenu(id uint) (*entity.Menu, error) {
	m, err := s.MenuRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return m, err
}

func (s *MenuService) CreateMenu(in *MenuIn) (*entity.Menu, error) {
	m := &entity.Menu{
		Title:       in.Title,
		Price:       in.Price,
		Inventory:   in.Inventory,
		Description: in.Description,
	}
	if err := s.MenuRepo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) UpdateMenu(id uint, in *MenuIn) (*entity.Menu, error) {
	updates := map[string]any{
		"title":       in.Title,
		"price":       in.Price,
		"inventory":   in.Inventory,
		"description": in.Description,
	}
	if err := s.MenuRepo.Update(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetMenu(id)
}

func (s *MenuService) DeleteMenu(id uint) error {
	err := s.MenuRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
