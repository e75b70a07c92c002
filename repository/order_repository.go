package repository

import (
	"littlelemon/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").
		Where("user_id = ?", userID).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForCrew(crewID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").
		Where("delivery_crew_id = ?", crewID).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Update(id uint, updates map[string]any) error {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(id uint) error {
	res := r.DB.Select("OrderItems").Delete(&entity.Order{Model: gorm.Model{ID: id}})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
