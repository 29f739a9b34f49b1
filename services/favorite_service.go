package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/PremPrakashCodes/preplate/entity"
	"github.com/PremPrakashCodes/preplate/pkg/apperr"
	"github.com/PremPrakashCodes/preplate/repository"
)

type FavoriteService struct {
	Repo        *repository.FavoriteRepository
	Restaurants *repository.RestaurantRepository
}

func NewFavoriteService(repo *repository.FavoriteRepository, restaurants *repository.RestaurantRepository) *FavoriteService {
	return &FavoriteService{Repo: repo, Restaurants: restaurants}
}

func (s *FavoriteService) List(userID uint) ([]entity.FavoriteRestaurant, error) {
	return s.Repo.ListByUser(userID)
}

// Add favorites a restaurant for the user. Duplicates conflict; the unique
// index makes the second concurrent writer fail rather than duplicate.
func (s *FavoriteService) Add(userID, restaurantID uint) (*entity.FavoriteRestaurant, error) {
	if _, err := s.Restaurants.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}

	exists, err := s.Repo.ExistsFor(userID, restaurantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("restaurant is already in favorites")
	}

	fav := &entity.FavoriteRestaurant{UserID: userID, RestaurantID: restaurantID}
	if err := s.Repo.Create(fav); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("restaurant is already in favorites")
		}
		return nil, err
	}

	return s.Repo.FindByID(fav.ID)
}

func (s *FavoriteService) Remove(userID, restaurantID uint) error {
	n, err := s.Repo.Delete(userID, restaurantID)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("restaurant is not in favorites")
	}
	return nil
}
