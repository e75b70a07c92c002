package services

import (
	"fmt"
	"strings"
	"testing"

	"littlelemon/authz"
	"littlelemon/entity"
	"littlelemon/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory sqlite database named after the test
// so fixtures never leak between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.Menu{}, &entity.MenuItem{},
		&entity.Cart{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Booking{},
	))

	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		var g entity.Group
		require.NoError(t, db.Where("name = ?", name).FirstOrCreate(&g, entity.Group{Name: name}).Error)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, superuser bool, groups ...string) *entity.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &entity.User{Username: username, Password: string(hashed), IsSuperuser: superuser}
	require.NoError(t, db.Create(u).Error)

	for _, name := range groups {
		var g entity.Group
		require.NoError(t, db.Where("name = ?", name).First(&g).Error)
		require.NoError(t, db.Model(u).Association("Groups").Append(&g))
	}

	loaded, err := repository.NewUserRepository(db).FindByID(u.ID)
	require.NoError(t, err)
	return loaded
}

func callerFor(u *entity.User) *authz.Caller {
	return authz.CallerFromUser(u)
}

func createCategory(t *testing.T, db *gorm.DB, slug, title string) *entity.Category {
	t.Helper()
	c := &entity.Category{Slug: slug, Title: title}
	require.NoError(t, db.Create(c).Error)
	return c
}

func createMenuItem(t *testing.T, db *gorm.DB, title string, price float64, categoryID uint) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{Title: title, Price: price, Inventory: 100, CategoryID: categoryID}
	require.NoError(t, db.Create(item).Error)
	return item
}
