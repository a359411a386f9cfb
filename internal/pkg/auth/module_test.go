package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vmesquit/mesapos/internal/config"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher()
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}
}

func TestNewTokenStrategyDefaultsToJWT(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{TokenSecret: "top-secret", TokenTTL: time.Hour}})
	jwtStrategy, ok := strategy.(*JWTStrategy)
	if !ok {
		t.Fatalf("expected *JWTStrategy, got %T", strategy)
	}
	if string(jwtStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(jwtStrategy.secret))
	}
	if jwtStrategy.ttl != time.Hour {
		t.Fatalf("unexpected ttl: %s", jwtStrategy.ttl)
	}
}

func TestNewTokenStrategySelectsHMAC(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{
		TokenSecret:  "top-secret",
		AuthStrategy: "hmac",
	}})
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if hmacStrategy.ttl != 24*time.Hour {
		t.Fatalf("expected fallback ttl, got %s", hmacStrategy.ttl)
	}
}
