package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nhle/project-tracker/internal/model"
)

const tokenIssuer = "project-tracker"

type sessionClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenAuthority issues and verifies HS256 session tokens carried as
// "Authorization: Bearer <token>".
type TokenAuthority struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var (
	_ Resolver    = (*TokenAuthority)(nil)
	_ TokenIssuer = (*TokenAuthority)(nil)
)

// NewTokenAuthority returns an authority signing with secret. Tokens expire
// after ttl.
func NewTokenAuthority(secret string, ttl time.Duration) (*TokenAuthority, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &TokenAuthority{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for userID.
func (a *TokenAuthority) Issue(userID int64) (string, error) {
	now := a.now()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Resolve implements Resolver.
func (a *TokenAuthority) Resolve(r *http.Request) (int64, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return 0, fmt.Errorf("%w: missing Authorization header", model.ErrAuthRequired)
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, fmt.Errorf("%w: Authorization header format must be Bearer {token}", model.ErrAuthRequired)
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(parts[1], claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrAuthRequired, err)
	}
	if claims.UserID <= 0 {
		return 0, fmt.Errorf("%w: token carries no user", model.ErrAuthRequired)
	}
	return claims.UserID, nil
}
