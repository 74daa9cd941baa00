package crypto

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authentication token")
)

// Claims represents the JWT claims binding a token to a user.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// TokenService issues and verifies signed bearer tokens. The signing secret
// comes from the configuration struct at construction; there is no lazy
// per-call environment read.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a TokenService with the given signing secret and
// token lifetime.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// Issue creates a signed token for the given user, expiring after the
// configured lifetime.
func (ts *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "taskboard",
			Audience:  jwt.ClaimStrings{"taskboard-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify parses and validates a token string, returning the embedded user ID.
// A bad signature, malformed token, missing user ID, or past expiry all
// surface as ErrInvalidToken.
func (ts *TokenService) Verify(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return ts.secret, nil
	}, jwt.WithIssuer("taskboard"), jwt.WithAudience("taskboard-api"))
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// IdentityFromHeader recovers the caller's user ID from an Authorization
// header value. The header must be exactly two space-separated parts with
// the first literally "Bearer"; anything else is ErrMissingToken. Token
// validity errors propagate from Verify.
func (ts *TokenService) IdentityFromHeader(header string) (int64, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return 0, ErrMissingToken
	}
	return ts.Verify(parts[1])
}
