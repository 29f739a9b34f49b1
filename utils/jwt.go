package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser       = "USER"
	RoleRestaurant = "RESTAURANT"

	KindUser       = "user"
	KindRestaurant = "restaurant"
)

// TokenTTL is the fixed token lifetime. Tokens cannot be revoked
// individually; they expire or get superseded by reissuance.
const TokenTTL = 7 * 24 * time.Hour

// Claims identify one account of either kind.
type Claims struct {
	AccountID uint   `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Kind      string `json:"kind"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 token for the account, expiring in TokenTTL.
func GenerateToken(accountID uint, email, role, kind, secret string) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry. Any failure (malformed token,
// wrong algorithm, bad signature, expired) is an error; an expired but
// correctly signed token is invalid.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
