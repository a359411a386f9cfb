package auth

import (
	"testing"
	"time"
)

func strategies(ttl time.Duration) map[string]Strategy {
	opts := Options{TTL: ttl}
	return map[string]Strategy{
		"jwt":  NewJWTStrategy("secret", opts),
		"hmac": NewHMACStrategy("secret", opts),
	}
}

func TestStrategyRoundTrip(t *testing.T) {
	claims := Claims{SubjectID: 7, RestaurantID: 3, Role: RoleWaiter}
	for name, s := range strategies(time.Hour) {
		token, err := s.IssueToken(claims)
		if err != nil {
			t.Fatalf("%s: issue failed: %v", name, err)
		}
		parsed, err := s.ParseToken(token)
		if err != nil {
			t.Fatalf("%s: parse failed: %v", name, err)
		}
		if *parsed != claims {
			t.Fatalf("%s: claims mismatch: %+v", name, parsed)
		}
		if s.Name() != name {
			t.Fatalf("expected name %q, got %q", name, s.Name())
		}
	}
}

func TestStrategyRejectsGarbage(t *testing.T) {
	for name, s := range strategies(time.Hour) {
		for _, token := range []string{"", "garbage", "a.b.c"} {
			if _, err := s.ParseToken(token); err != ErrInvalidToken {
				t.Fatalf("%s: expected ErrInvalidToken for %q, got %v", name, token, err)
			}
		}
	}
}

func TestStrategyRejectsForeignSignature(t *testing.T) {
	claims := Claims{SubjectID: 7, RestaurantID: 3, Role: RoleRestaurant}
	for name, s := range strategies(time.Hour) {
		var other Strategy
		if name == "jwt" {
			other = NewJWTStrategy("different", Options{TTL: time.Hour})
		} else {
			other = NewHMACStrategy("different", Options{TTL: time.Hour})
		}
		token, err := other.IssueToken(claims)
		if err != nil {
			t.Fatalf("%s: issue failed: %v", name, err)
		}
		if _, err := s.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("%s: expected rejection of foreign signature, got %v", name, err)
		}
	}
}

func TestStrategyRejectsExpired(t *testing.T) {
	claims := Claims{SubjectID: 7, RestaurantID: 3, Role: RoleWaiter}
	for name, s := range strategies(-time.Minute) {
		token, err := s.IssueToken(claims)
		if err != nil {
			t.Fatalf("%s: issue failed: %v", name, err)
		}
		if _, err := s.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("%s: expected expired token rejection, got %v", name, err)
		}
	}
}

func TestHMACStrategyRejectsUnknownRole(t *testing.T) {
	s := NewHMACStrategy("secret", Options{TTL: time.Hour})
	token, err := s.IssueToken(Claims{SubjectID: 1, RestaurantID: 1, Role: "intruder"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := s.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected unknown role rejection, got %v", err)
	}
}
