package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HMACStrategy implements auth token creation/verification using HMAC signatures.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates signed auth token for the subject.
func (s *HMACStrategy) IssueToken(claims Claims) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%d:%d:%s:%d", claims.SubjectID, claims.RestaurantID, claims.Role, expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates token and returns the encoded claims.
func (s *HMACStrategy) ParseToken(token string) (*Claims, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 5 {
		return nil, ErrInvalidToken
	}

	payload := strings.Join(parts[:4], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[4])) {
		return nil, ErrInvalidToken
	}

	subjectID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	restaurantID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	role := parts[2]
	if role != RoleWaiter && role != RoleRestaurant {
		return nil, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return nil, ErrInvalidToken
	}

	return &Claims{SubjectID: subjectID, RestaurantID: restaurantID, Role: role}, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
