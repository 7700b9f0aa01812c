package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an access token. Subject is the user ID; name fields
// let clients greet the user without another round trip.
type Claims struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// NewToken signs an HS256 access token for the user.
func NewToken(signingKey string, user *domain.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(signingKey))
}

// ParseToken verifies the signature and expiry and returns the user ID the
// token was issued for.
func ParseToken(signingKey, tokenString string) (int64, *Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return 0, nil, err
	}
	if !token.Valid {
		return 0, nil, errors.New("invalid token")
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, nil, errors.New("malformed subject claim")
	}
	return id, &claims, nil
}
