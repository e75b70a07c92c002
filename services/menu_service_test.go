package services

import (
	"testing"

	"littlelemon/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(
		repository.NewCategoryRepository(db),
		repository.NewMenuItemRepository(db),
		repository.NewMenuRepository(db),
	)
}

func TestMenuItemOrdering(t *testing.T) {
	db := newTestDB(t)
	cat := createCategory(t, db, "mains", "Mains")
	createMenuItem(t, db, "Pasta", 9.50, cat.ID)
	createMenuItem(t, db, "Greek salad", 12.99, cat.ID)
	createMenuItem(t, db, "Bruschetta", 5.25, cat.ID)
	svc := newMenuService(db)

	tests := []struct {
		name     string
		ordering string
		want     []string
	}{
		{"ascending price", "price", []string{"Bruschetta", "Pasta", "Greek salad"}},
		{"descending price", "-price", []string{"Greek salad", "Pasta", "Bruschetta"}},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			items, err := svc.ListMenuItems(MenuItemQuery{Ordering: testCase.ordering})
			require.NoError(t, err)
			titles := make([]string, 0, len(items))
			for _, it := range items {
				titles = append(titles, it.Title)
			}
			assert.Equal(t, testCase.want, titles)
		})
	}
}

func TestMenuItemUnknownOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)

	_, err := svc.ListMenuItems(MenuItemQuery{Ordering: "price; DROP TABLE menu_items"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMenuItemCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	mains := createCategory(t, db, "mains", "Mains")
	desserts := createCategory(t, db, "desserts", "Desserts")
	createMenuItem(t, db, "Pasta", 9.50, mains.ID)
	createMenuItem(t, db, "Baklava", 6.75, desserts.ID)
	svc := newMenuService(db)

	items, err := svc.ListMenuItems(MenuItemQuery{Category: "Desserts"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Baklava", items[0].Title)
	assert.Equal(t, "Desserts", items[0].Category.Title)
}

func TestMenuItemPagination(t *testing.T) {
	db := newTestDB(t)
	cat := createCategory(t, db, "mains", "Mains")
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		createMenuItem(t, db, title, 10, cat.ID)
	}
	svc := newMenuService(db)

	items, err := svc.ListMenuItems(MenuItemQuery{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "C", items[0].Title)
	assert.Equal(t, "D", items[1].Title)
}

func TestDuplicateCategorySlug(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)

	_, err := svc.CreateCategory(&CategoryIn{Slug: "mains", Title: "Mains"})
	require.NoError(t, err)
	_, err = svc.CreateCategory(&CategoryIn{Slug: "mains", Title: "Mains again"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMenuItemPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	cat := createCategory(t, db, "mains", "Mains")
	item := createMenuItem(t, db, "Pasta", 9.50, cat.ID)
	svc := newMenuService(db)

	featured := true
	got, err := svc.UpdateMenuItem(item.ID, &MenuItemPatch{Featured: &featured})
	require.NoError(t, err)
	assert.True(t, got.Featured)
	assert.Equal(t, "Pasta", got.Title, "untouched fields keep their value")
	assert.InDelta(t, 9.50, got.Price, 1e-9)
}

func TestMenuItemCreateUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)

	_, err := svc.CreateMenuItem(&MenuItemIn{Title: "Pasta", Price: 9.50, CategoryID: 42})
	assert.ErrorIs(t, err, ErrNotFound)
}
