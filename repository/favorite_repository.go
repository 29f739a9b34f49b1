package repository

import (
	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/entity"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

// Create relies on the (user, restaurant) unique index to settle races.
func (r *FavoriteRepository) Create(f *entity.FavoriteRestaurant) error {
	return r.DB.Create(f).Error
}

func (r *FavoriteRepository) ListByUser(userID uint) ([]entity.FavoriteRestaurant, error) {
	var out []entity.FavoriteRestaurant
	err := r.DB.Where("user_id = ?", userID).
		Preload("Restaurant").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *FavoriteRepository) FindByID(id uint) (*entity.FavoriteRestaurant, error) {
	var f entity.FavoriteRestaurant
	if err := r.DB.Preload("Restaurant").First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FavoriteRepository) ExistsFor(userID, restaurantID uint) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.FavoriteRestaurant{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&n).Error
	return n > 0, err
}

// Delete returns the number of rows removed so callers can report 404 when
// nothing was favorited.
func (r *FavoriteRepository) Delete(userID, restaurantID uint) (int64, error) {
	res := r.DB.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&entity.FavoriteRestaurant{})
	return res.RowsAffected, res.Error
}
