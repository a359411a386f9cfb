package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTStrategy signs claims as HS256 JWTs.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

type jwtClaims struct {
	RestaurantID int64  `json:"restaurant_id"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed token for the subject.
func (s *JWTStrategy) IssueToken(claims Claims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		RestaurantID: claims.RestaurantID,
		Role:         claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(claims.SubjectID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// ParseToken validates the token signature and expiry and returns claims.
func (s *JWTStrategy) ParseToken(token string) (*Claims, error) {
	parsed := &jwtClaims{}
	tok, err := jwt.ParseWithClaims(token, parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	subjectID, err := strconv.ParseInt(parsed.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Claims{SubjectID: subjectID, RestaurantID: parsed.RestaurantID, Role: parsed.Role}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
