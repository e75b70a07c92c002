package services

import (
	"testing"

	"littlelemon/entity"
	"littlelemon/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestCheckoutConsumesCart(t *testing.T) {
	db := newTestDB(t)
	cat := createCategory(t, db, "mains", "Mains")
	salad := createMenuItem(t, db, "Greek salad", 12.99, cat.ID)
	pasta := createMenuItem(t, db, "Pasta", 9.50, cat.ID)
	user := createUser(t, db, "alice", false)
	carts := newCartService(db)
	orders := newOrderService(db)

	_, err := carts.Add(user.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = carts.Add(user.ID, &AddToCartIn{MenuItemID: pasta.ID, Quantity: 1})
	require.NoError(t, err)

	order, err := orders.Checkout(user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.False(t, order.Status, "new orders are pending")
	assert.Nil(t, order.DeliveryCrewID)
	assert.InDelta(t, 2*12.99+9.50, order.Total, 1e-9)
	require.Len(t, order.OrderItems, 2)

	var sum float64
	for _, oi := range order.OrderItems {
		sum += oi.Price
	}
	assert.InDelta(t, order.Total, sum, 1e-9, "total equals the sum of the item prices")

	lines, err := carts.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines, "cart is consumed by checkout")
}

func TestCheckoutCopiesCartSnapshot(t *testing.T) {
	db := newTestDB(t)
	cat := createCategory(t, db, "mains", "Mains")
	salad := createMenuItem(t, db, "Greek salad", 12.99, cat.ID)
	user := createUser(t, db, "alice", false)
	carts := newCartService(db)
	orders := newOrderService(db)

	_, err := carts.Add(user.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 2})
	require.NoError(t, err)

	order, err := orders.Checkout(user.ID)
	require.NoError(t, err)

	require.Len(t, order.OrderItems, 1)
	oi := order.OrderItems[0]
	assert.Equal(t, salad.ID, oi.MenuItemID)
	assert.Equal(t, 2, oi.Quantity)
	assert.InDelta(t, 12.99, oi.UnitPrice, 1e-9)
	assert.InDelta(t, 25.98, oi.Price, 1e-9)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", false)
	orders := newOrderService(db)

	_, err := orders.Checkout(user.ID)
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count, "no order row on an empty-cart checkout")
}

func TestCheckoutThenReAddSameItem(t *testing.T) {
	db := newTestDB(t)
	cat := createCategory(t, db, "mains", "Mains")
	salad := createMenuItem(t, db, "Greek salad", 12.99, cat.ID)
	user := createUser(t, db, "alice", false)
	carts := newCartService(db)
	orders := newOrderService(db)

	_, err := carts.Add(user.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = orders.Checkout(user.ID)
	require.NoError(t, err)

	// The consumed line must not block a fresh one for the same item.
	_, err = carts.Add(user.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 2})
	require.NoError(t, err)

	lines, err := carts.List(user.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestOrderListVisibility(t *testing.T) {
	db := newTestDB(t)
	cat := createCategory(t, db, "mains", "Mains")
	salad := createMenuItem(t, db, "Greek salad", 12.99, cat.ID)
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	manager := createUser(t, db, "mgr", false, entity.GroupManager)
	crew := createUser(t, db, "crew", false, entity.GroupDeliveryCrew)
	carts := newCartService(db)
	orders := newOrderService(db)

	for _, u := range []*entity.User{alice, bob} {
		_, err := carts.Add(u.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 1})
		require.NoError(t, err)
		_, err = orders.Checkout(u.ID)
		require.NoError(t, err)
	}

	// Assign alice's order to the crew member.
	var aliceOrder entity.Order
	require.NoError(t, db.Where("user_id = ?", alice.ID).First(&aliceOrder).Error)
	require.NoError(t, db.Model(&aliceOrder).Update("delivery_crew_id", crew.ID).Error)

	got, err := orders.List(callerFor(manager))
	require.NoError(t, err)
	assert.Len(t, got, 2, "manager sees all orders")

	got, err = orders.List(callerFor(crew))
	require.NoError(t, err)
	require.Len(t, got, 1, "crew sees only assigned orders")
	assert.Equal(t, aliceOrder.ID, got[0].ID)

	got, err = orders.List(callerFor(bob))
	require.NoError(t, err)
	require.Len(t, got, 1, "customer sees only their own orders")
	assert.Equal(t, bob.ID, got[0].UserID)
}

func TestOrderGetHidesForeignOrders(t *testing.T) {
	db := newTestDB(t)
	cat := createCategory(t, db, "mains", "Mains")
	salad := createMenuItem(t, db, "Greek salad", 12.99, cat.ID)
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	carts := newCartService(db)
	orders := newOrderService(db)

	_, err := carts.Add(alice.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 1})
	require.NoError(t, err)
	order, err := orders.Checkout(alice.ID)
	require.NoError(t, err)

	_, err = orders.Get(callerFor(bob), order.ID)
	assert.ErrorIs(t, err, ErrNotFound, "existence is not leaked to other customers")

	got, err := orders.Get(callerFor(alice), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderUpdateRoleRules(t *testing.T) {
	db := newTestDB(t)
	cat := createCategory(t, db, "mains", "Mains")
	salad := createMenuItem(t, db, "Greek salad", 12.99, cat.ID)
	alice := createUser(t, db, "alice", false)
	manager := createUser(t, db, "mgr", false, entity.GroupManager)
	crew := createUser(t, db, "crew", false, entity.GroupDeliveryCrew)
	otherCrew := createUser(t, db, "crew2", false, entity.GroupDeliveryCrew)
	carts := newCartService(db)
	orders := newOrderService(db)

	_, err := carts.Add(alice.ID, &AddToCartIn{MenuItemID: salad.ID, Quantity: 1})
	require.NoError(t, err)
	order, err := orders.Checkout(alice.ID)
	require.NoError(t, err)

	delivered := true
	crewName := "crew"

	t.Run("no group is rejected", func(t *testing.T) {
		_, err := orders.Update(callerFor(alice), order.ID, &UpdateOrderIn{Status: &delivered})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("manager assigns delivery crew", func(t *testing.T) {
		got, err := orders.Update(callerFor(manager), order.ID, &UpdateOrderIn{DeliveryCrew: &crewName})
		require.NoError(t, err)
		require.NotNil(t, got.DeliveryCrewID)
		assert.Equal(t, crew.ID, *got.DeliveryCrewID)
	})

	t.Run("crew cannot reassign", func(t *testing.T) {
		name := "crew2"
		_, err := orders.Update(callerFor(crew), order.ID, &UpdateOrderIn{DeliveryCrew: &name})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unassigned crew cannot flip status", func(t *testing.T) {
		_, err := orders.Update(callerFor(otherCrew), order.ID, &UpdateOrderIn{Status: &delivered})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("assigned crew flips status", func(t *testing.T) {
		got, err := orders.Update(callerFor(crew), order.ID, &UpdateOrderIn{Status: &delivered})
		require.NoError(t, err)
		assert.True(t, got.Status)
	})

	t.Run("manager cannot assign a non-crew user", func(t *testing.T) {
		name := "alice"
		_, err := orders.Update(callerFor(manager), order.ID, &UpdateOrderIn{DeliveryCrew: &name})
		assert.ErrorIs(t, err, ErrNotDeliveryCrew)
	})

	t.Run("missing assignee username", func(t *testing.T) {
		name := "ghost"
		_, err := orders.Update(callerFor(manager), order.ID, &UpdateOrderIn{DeliveryCrew: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
