package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/PremPrakashCodes/preplate/entity"
	"github.com/PremPrakashCodes/preplate/pkg/apperr"
	"github.com/PremPrakashCodes/preplate/repository"
	"github.com/PremPrakashCodes/preplate/utils"
)

// AuthService handles registration and login for both account kinds. The
// two kinds share one email namespace, so uniqueness is checked across both
// tables before insert.
type AuthService struct {
	Users       *repository.UserRepository
	Restaurants *repository.RestaurantRepository
	Secret      string
}

func NewAuthService(users *repository.UserRepository, restaurants *repository.RestaurantRepository, secret string) *AuthService {
	return &AuthService{Users: users, Restaurants: restaurants, Secret: secret}
}

type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Kind        string
	Phone       string
	Address     string
	Description string
	Cuisine     string
}

// AuthResult is the login/register payload: the token plus the account
// record (password is never serialized) and its kind tag.
type AuthResult struct {
	Token   string `json:"token"`
	Account any    `json:"account"`
	Kind    string `json:"type"`
}

func (s *AuthService) Register(in RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if !utils.ValidEmail(email) {
		return nil, apperr.Validation("invalid email format")
	}
	if ok, reason := utils.ValidatePassword(in.Password); !ok {
		return nil, apperr.Validation(reason)
	}
	if in.Kind != utils.KindUser && in.Kind != utils.KindRestaurant {
		return nil, apperr.Validation(`type must be either "user" or "restaurant"`)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("name is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, apperr.Validation("phone number is required for registration")
	}

	nUsers, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	nRestaurants, err := s.Restaurants.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if nUsers+nRestaurants > 0 {
		return nil, apperr.Conflict("an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if in.Kind == utils.KindUser {
		user := &entity.User{
			Email:    email,
			Password: string(hashed),
			Name:     strings.TrimSpace(in.Name),
			Phone:    strings.TrimSpace(in.Phone),
			Address:  strings.TrimSpace(in.Address),
		}
		if err := s.Users.Create(user); err != nil {
			return nil, err
		}
		token, err := utils.GenerateToken(user.ID, user.Email, utils.RoleUser, utils.KindUser, s.Secret)
		if err != nil {
			return nil, err
		}
		return &AuthResult{Token: token, Account: user, Kind: utils.KindUser}, nil
	}

	rest := &entity.Restaurant{
		Email:       email,
		Password:    string(hashed),
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     strings.TrimSpace(in.Address),
		Description: strings.TrimSpace(in.Description),
		Cuisine:     strings.TrimSpace(in.Cuisine),
		IsOpen:      true,
	}
	if err := s.Restaurants.Create(rest); err != nil {
		return nil, err
	}
	token, err := utils.GenerateToken(rest.ID, rest.Email, utils.RoleRestaurant, utils.KindRestaurant, s.Secret)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Account: rest, Kind: utils.KindRestaurant}, nil
}

func (s *AuthService) Login(email, password, kind string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if kind != utils.KindUser && kind != utils.KindRestaurant {
		return nil, apperr.Validation(`type must be either "user" or "restaurant"`)
	}

	if kind == utils.KindUser {
		user, err := s.Users.FindByEmail(email)
		if err != nil {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		token, err := utils.GenerateToken(user.ID, user.Email, utils.RoleUser, utils.KindUser, s.Secret)
		if err != nil {
			return nil, err
		}
		return &AuthResult{Token: token, Account: user, Kind: utils.KindUser}, nil
	}

	rest, err := s.Restaurants.FindByEmail(email)
	if err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(rest.Password), []byte(password)) != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	token, err := utils.GenerateToken(rest.ID, rest.Email, utils.RoleRestaurant, utils.KindRestaurant, s.Secret)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Account: rest, Kind: utils.KindRestaurant}, nil
}

// Profile returns the account behind a verified token subject.
func (s *AuthService) Profile(accountID uint, kind string) (any, error) {
	if kind == utils.KindUser {
		user, err := s.Users.FindByID(accountID)
		if err != nil {
			return nil, apperr.NotFound("account not found")
		}
		return user, nil
	}
	rest, err := s.Restaurants.FindByID(accountID)
	if err != nil {
		return nil, apperr.NotFound("account not found")
	}
	return rest, nil
}
