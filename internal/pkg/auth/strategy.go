package auth

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Subject roles carried inside issued tokens.
const (
	RoleWaiter     = "waiter"
	RoleRestaurant = "restaurant"
)

// Claims is the identity a token vouches for. Tokens are the only
// credential; no server-side session state exists.
type Claims struct {
	SubjectID    int64
	RestaurantID int64
	Role         string
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

// Options configures token issuance. A zero TTL falls back to 24 hours;
// any other value, including a negative one, is used as given.
type Options struct {
	TTL time.Duration
}
