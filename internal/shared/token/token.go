package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalid = errors.New("invalid token")
	ErrExpired = errors.New("token expired")
)

// Claims is what the API puts in access and refresh tokens. StartupID is
// empty for principals without an administrator binding.
type Claims struct {
	UserID      string
	IsSuperuser bool
	StartupID   string
	Kind        string
}

const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

func Sign(secret string, c Claims, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":      c.UserID,
		"is_superuser": c.IsSuperuser,
		"startup_id":   c.StartupID,
		"kind":         c.Kind,
		"iat":          time.Now().Unix(),
		"exp":          time.Now().Add(expiry).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func Parse(secret, raw string) (Claims, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !t.Valid {
		return Claims{}, ErrInvalid
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalid
	}

	userID, _ := mc["user_id"].(string)
	if userID == "" {
		return Claims{}, ErrInvalid
	}
	superuser, _ := mc["is_superuser"].(bool)
	startupID, _ := mc["startup_id"].(string)
	kind, _ := mc["kind"].(string)

	return Claims{
		UserID:      userID,
		IsSuperuser: superuser,
		StartupID:   startupID,
		Kind:        kind,
	}, nil
}
