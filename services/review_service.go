package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/entity"
	"github.com/PremPrakashCodes/preplate/pkg/apperr"
	"github.com/PremPrakashCodes/preplate/repository"
	"github.com/PremPrakashCodes/preplate/utils"
)

type ReviewService struct {
	Repo        *repository.ReviewRepository
	Restaurants *repository.RestaurantRepository
	Orders      *repository.OrderRepository
}

func NewReviewService(repo *repository.ReviewRepository, restaurants *repository.RestaurantRepository, orders *repository.OrderRepository) *ReviewService {
	return &ReviewService{Repo: repo, Restaurants: restaurants, Orders: orders}
}

type CreateReviewReq struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
	OrderID      *uint  `json:"orderId"`
}

type ReviewListOut struct {
	Reviews    []entity.Review `json:"reviews"`
	Pagination Pagination      `json:"pagination"`
}

// Create allows one review per (user, restaurant). The pre-check gives the
// friendly conflict message; the unique index settles concurrent creates, so
// a duplicate-key error maps to the same conflict.
func (s *ReviewService) Create(userID uint, req *CreateReviewReq) (*entity.Review, error) {
	if _, err := s.Restaurants.FindByID(req.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}

	// A review may reference the visit it came from; the reference must be the
	// reviewer's own order at the reviewed venue.
	if req.OrderID != nil {
		o, err := s.Orders.GetByID(*req.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation("order not found")
			}
			return nil, err
		}
		if o.UserID != userID || o.RestaurantID != req.RestaurantID {
			return nil, apperr.Validation("order does not belong to you at this restaurant")
		}
	}

	exists, err := s.Repo.ExistsFor(userID, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("you have already reviewed this restaurant")
	}

	rev := &entity.Review{
		Rating:       req.Rating,
		Comment:      req.Comment,
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		OrderID:      req.OrderID,
	}
	if err := s.Repo.Create(rev); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("you have already reviewed this restaurant")
		}
		return nil, err
	}
	return rev, nil
}

// List scopes by caller kind: restaurant accounts only ever see their own
// restaurant's reviews; users may filter by restaurantId.
func (s *ReviewService) List(accountID uint, kind string, restaurantID *uint, page, limit int) (*ReviewListOut, error) {
	f := repository.ReviewFilter{Page: page, Limit: limit}
	if kind == utils.KindRestaurant {
		f.RestaurantID = &accountID
	} else {
		f.RestaurantID = restaurantID
	}

	reviews, total, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}
	return &ReviewListOut{Reviews: reviews, Pagination: NewPagination(page, limit, total)}, nil
}
