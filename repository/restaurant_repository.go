package repository

import (
	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/entity"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// RestaurantFilter has one optional field per supported filter dimension.
type RestaurantFilter struct {
	Cuisine  *string
	IsOpen   *bool
	Featured *bool
	Search   *string
	Page     int
	Limit    int
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByEmail(email string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("email = ?", email).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) CountByEmail(email string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Restaurant{}).Where("email = ?", email).Count(&n).Error
	return n, err
}

func (r *RestaurantRepository) List(f RestaurantFilter) ([]entity.Restaurant, int64, error) {
	q := r.DB.Model(&entity.Restaurant{})

	if f.Cuisine != nil {
		q = q.Where("cuisine = ?", *f.Cuisine)
	}
	if f.IsOpen != nil {
		q = q.Where("is_open = ?", *f.IsOpen)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Search != nil {
		like := "%" + *f.Search + "%"
		q = q.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(cuisine) LIKE LOWER(?)",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Restaurant
	err := q.Order("featured DESC").Order("rating DESC").Order("name ASC").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Find(&out).Error
	return out, total, err
}

// Detail loads the full venue page payload: active categories with their
// available items in menu order, the ten latest reviews with reviewer names,
// and the weekly hours.
func (r *RestaurantRepository) Detail(id uint) (*entity.Restaurant, []entity.Review, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Preload("Categories.MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("sort_order ASC")
		}).
		Preload("BusinessHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC")
		}).
		First(&rest, id).Error
	if err != nil {
		return nil, nil, err
	}

	var reviews []entity.Review
	err = r.DB.Where("restaurant_id = ?", id).
		Preload("User").
		Order("created_at DESC").Limit(10).
		Find(&reviews).Error
	if err != nil {
		return nil, nil, err
	}
	return &rest, reviews, nil
}

// RatingAgg is the derived rating for one restaurant.
type RatingAgg struct {
	RestaurantID uint
	Avg          float64
	Count        int64
}

func (r *RestaurantRepository) RatingsFor(ids []uint) (map[uint]RatingAgg, error) {
	out := make(map[uint]RatingAgg, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []RatingAgg
	err := r.DB.Model(&entity.Review{}).
		Select("restaurant_id, AVG(rating) AS avg, COUNT(*) AS count").
		Where("restaurant_id IN ?", ids).
		Group("restaurant_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RestaurantID] = row
	}
	return out, nil
}
