package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/entity"
	"github.com/PremPrakashCodes/preplate/pkg/apperr"
	"github.com/PremPrakashCodes/preplate/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

// RestaurantOut is a listing row: the venue plus its derived rating. Rating
// is the review average rounded to one decimal, falling back to the stored
// aggregate when the venue has no reviews yet.
type RestaurantOut struct {
	entity.Restaurant
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"reviewCount"`
}

type RestaurantListOut struct {
	Restaurants []RestaurantOut `json:"restaurants"`
	Pagination  Pagination      `json:"pagination"`
}

type ReviewOut struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UserName  string    `json:"userName"`
}

type BusinessHourOut struct {
	entity.BusinessHour
	DayName string `json:"dayName"`
}

type RestaurantDetailOut struct {
	RestaurantOut
	BusinessHours []BusinessHourOut `json:"businessHours"`
	Reviews       []ReviewOut       `json:"reviews"`
}

func (s *RestaurantService) List(f repository.RestaurantFilter) (*RestaurantListOut, error) {
	restaurants, total, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(restaurants))
	for _, r := range restaurants {
		ids = append(ids, r.ID)
	}
	ratings, err := s.Repo.RatingsFor(ids)
	if err != nil {
		return nil, err
	}

	out := make([]RestaurantOut, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, derivedRating(r, ratings[r.ID]))
	}
	return &RestaurantListOut{
		Restaurants: out,
		Pagination:  NewPagination(f.Page, f.Limit, total),
	}, nil
}

func (s *RestaurantService) Detail(id uint) (*RestaurantDetailOut, error) {
	rest, reviews, err := s.Repo.Detail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}

	ratings, err := s.Repo.RatingsFor([]uint{id})
	if err != nil {
		return nil, err
	}

	hours := make([]BusinessHourOut, 0, len(rest.BusinessHours))
	for _, h := range rest.BusinessHours {
		hours = append(hours, BusinessHourOut{BusinessHour: h, DayName: h.DayName()})
	}

	reviewsOut := make([]ReviewOut, 0, len(reviews))
	for _, rv := range reviews {
		reviewsOut = append(reviewsOut, ReviewOut{
			ID:        rv.ID,
			Rating:    rv.Rating,
			Comment:   rv.Comment,
			CreatedAt: rv.CreatedAt,
			UserName:  rv.User.Name,
		})
	}

	return &RestaurantDetailOut{
		RestaurantOut: derivedRating(*rest, ratings[id]),
		BusinessHours: hours,
		Reviews:       reviewsOut,
	}, nil
}

func derivedRating(r entity.Restaurant, agg repository.RatingAgg) RestaurantOut {
	rating := r.Rating
	if agg.Count > 0 {
		rating = agg.Avg
	}
	return RestaurantOut{
		Restaurant:  r,
		Rating:      math.Round(rating*10) / 10,
		ReviewCount: agg.Count,
	}
}
