package repository

import (
	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// OrderFilter has one optional field per supported filter dimension. Exactly
// one of UserID/RestaurantID is set, depending on the caller's kind.
type OrderFilter struct {
	UserID       *uint
	RestaurantID *uint
	Status       *entity.OrderStatus
	Page         int
	Limit        int
}

func (r *OrderRepository) MenuItemByID(id uint) (*entity.MenuItem, error) {
	var mi entity.MenuItem
	if err := r.DB.First(&mi, id).Error; err != nil {
		return nil, err
	}
	return &mi, nil
}

// MenuItemBelongsToRestaurant walks item -> category -> restaurant.
func (r *OrderRepository) MenuItemBelongsToRestaurant(item *entity.MenuItem, restaurantID uint) (bool, error) {
	var cat entity.Category
	if err := r.DB.Select("id", "restaurant_id").First(&cat, item.CategoryID).Error; err != nil {
		return false, err
	}
	return cat.RestaurantID == restaurantID, nil
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, int64, error) {
	q := r.DB.Model(&entity.Order{})

	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.RestaurantID != nil {
		q = q.Where("restaurant_id = ?", *f.RestaurantID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := q.Preload("OrderItems").Preload("OrderItems.MenuItem").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Find(&out).Error
	return out, total, err
}

// UpdateStatusesFrom writes the given fields only while the row still holds
// the expected prior values, so a transition validated against a stale read
// cannot land on top of a concurrent one. Returns false when another writer
// got there first.
func (r *OrderRepository) UpdateStatusesFrom(id uint, expect, updates map[string]any) (bool, error) {
	q := r.DB.Model(&entity.Order{}).Where("id = ?", id)
	for col, v := range expect {
		q = q.Where(col+" = ?", v)
	}
	res := q.Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
