package services

import (
	"errors"
	"time"

	"littlelemon/authz"
	"littlelemon/entity"
	"littlelemon/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	CartRepo  *repository.CartRepository
	UserRepo  *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	orderRepo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, OrderRepo: orderRepo, CartRepo: cartRepo, UserRepo: userRepo}
}

// Checkout converts the caller's cart into an order. The read-sum-write-
// clear sequence runs in one transaction; any failure rolls everything
// back, so an order can never exist without its items and the cart is
// never cleared without the items being copied.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	var created entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListForUser(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var total float64
		for _, line := range lines {
			total += line.Price
		}

		order := entity.Order{
			UserID: userID,
			Status: false,
			Total:  total,
			Date:   time.Now(),
		}
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, line := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				Price:      line.Price,
			}
			if err := s.OrderRepo.CreateOrderItem(tx, &oi); err != nil {
				if repository.IsUniqueViolation(err) {
					return ErrConflict
				}
				return err
			}
		}

		if err := s.CartRepo.Clear(tx, userID); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.OrderRepo.FindByID(created.ID)
}

// List applies role-based visibility: managers and superusers see every
// order, delivery crew see their assignments, everyone else sees their own.
func (s *OrderService) List(caller *authz.Caller) ([]entity.Order, error) {
	switch {
	case caller.IsSuperuser || caller.IsManager():
		return s.OrderRepo.ListAll()
	case caller.IsDeliveryCrew():
		return s.OrderRepo.ListForCrew(caller.ID)
	default:
		return s.OrderRepo.ListForUser(caller.ID)
	}
}

// Get enforces the same visibility as List. A caller who cannot see the
// order gets ErrNotFound rather than a hint that it exists.
func (s *OrderService) Get(caller *authz.Caller, orderID uint) (*entity.Order, error) {
	o, err := s.OrderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if caller.IsSuperuser || caller.IsManager() {
		return o, nil
	}
	if caller.IsDeliveryCrew() {
		if o.DeliveryCrewID != nil && *o.DeliveryCrewID == caller.ID {
			return o, nil
		}
		return nil, ErrNotFound
	}
	if o.UserID == caller.ID {
		return o, nil
	}
	return nil, ErrNotFound
}

// UpdateOrderIn is a partial update; nil fields are untouched.
type UpdateOrderIn struct {
	Status *bool `json:"status"`
	// Username of the crew member to assign; empty string unassigns.
	DeliveryCrew *string `json:"deliveryCrew"`
}

// Update applies per-role field rules: managers and superusers may set the
// status and (un)assign delivery crew; delivery crew may only flip the
// status of an order assigned to them; anyone else is rejected.
func (s *OrderService) Update(caller *authz.Caller, orderID uint, in *UpdateOrderIn) (*entity.Order, error) {
	if !caller.HasGroup() && !caller.IsSuperuser {
		return nil, ErrForbidden
	}

	o, err := s.OrderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]any{}
	manager := caller.IsSuperuser || caller.IsManager()

	if in.Status != nil {
		if !manager {
			// Delivery crew may only touch their own assignments.
			if o.DeliveryCrewID == nil || *o.DeliveryCrewID != caller.ID {
				return nil, ErrForbidden
			}
		}
		updates["status"] = *in.Status
	}

	if in.DeliveryCrew != nil {
		if !manager {
			return nil, ErrForbidden
		}
		if *in.DeliveryCrew == "" {
			updates["delivery_crew_id"] = nil
		} else {
			crew, err := s.UserRepo.FindByUsername(*in.DeliveryCrew)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrNotFound
				}
				return nil, err
			}
			inCrew := false
			for _, g := range crew.Groups {
				if g.Name == entity.GroupDeliveryCrew {
					inCrew = true
					break
				}
			}
			if !inCrew {
				return nil, ErrNotDeliveryCrew
			}
			updates["delivery_crew_id"] = crew.ID
		}
	}

	if len(updates) > 0 {
		if err := s.OrderRepo.Update(orderID, updates); err != nil {
			return nil, err
		}
	}
	return s.OrderRepo.FindByID(orderID)
}

// Delete removes an order; only reachable by managers via the route gate.
func (s *OrderService) Delete(orderID uint) error {
	err := s.OrderRepo.Delete(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
