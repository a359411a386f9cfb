package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envMap(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI": "postgres://localhost/mesapos",
	}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":8080" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.AuthStrategy != "jwt" {
		t.Fatalf("unexpected auth strategy %q", cfg.AuthStrategy)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.TokenTTL)
	}
	if cfg.WorkerPoolSize != 2 || cfg.MetricsQueueSize != 64 {
		t.Fatalf("unexpected worker defaults %d %d", cfg.WorkerPoolSize, cfg.MetricsQueueSize)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"RUN_ADDRESS":        ":9090",
		"DATABASE_URI":       "postgres://localhost/mesapos",
		"AMQP_URL":           "amqp://localhost:5672",
		"TOKEN_SECRET":       "env-secret",
		"TOKEN_TTL":          "1h",
		"AUTH_STRATEGY":      "hmac",
		"WORKER_POOL_SIZE":   "5",
		"METRICS_QUEUE_SIZE": "10",
		"SHUTDOWN_TIMEOUT":   "3s",
	}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":9090" || cfg.AMQPURL != "amqp://localhost:5672" {
		t.Fatalf("environment not applied: %+v", cfg)
	}
	if cfg.TokenSecret != "env-secret" || cfg.TokenTTL != time.Hour {
		t.Fatalf("token settings not applied: %+v", cfg)
	}
	if cfg.AuthStrategy != "hmac" {
		t.Fatalf("auth strategy not applied: %q", cfg.AuthStrategy)
	}
	if cfg.WorkerPoolSize != 5 || cfg.MetricsQueueSize != 10 || cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("worker settings not applied: %+v", cfg)
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	args := []string{
		"-a", ":7070",
		"-d", "postgres://flag/mesapos",
		"-auth-strategy", "hmac",
		"-worker-pool", "8",
		"-token-ttl", "30m",
	}
	cfg, err := load(args, envMap(map[string]string{
		"RUN_ADDRESS":  ":9090",
		"DATABASE_URI": "postgres://env/mesapos",
	}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":7070" || cfg.DatabaseURI != "postgres://flag/mesapos" {
		t.Fatalf("flags must win over environment: %+v", cfg)
	}
	if cfg.AuthStrategy != "hmac" || cfg.WorkerPoolSize != 8 || cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("flag values not applied: %+v", cfg)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, envMap(nil)); err == nil {
		t.Fatalf("expected error without database URI")
	}
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	_, err := load(nil, envMap(map[string]string{
		"DATABASE_URI":  "postgres://localhost/mesapos",
		"AUTH_STRATEGY": "plaintext",
	}))
	if err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestLoadTokenSecretFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI":      "postgres://localhost/mesapos",
		"TOKEN_SECRET":      "env-secret",
		"TOKEN_SECRET_FILE": path,
	}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.TokenSecret != "file-secret" {
		t.Fatalf("secret file must override env, got %q", cfg.TokenSecret)
	}
}

func TestLoadInvalidTokenTTL(t *testing.T) {
	_, err := load([]string{"-token-ttl", "soon"}, envMap(map[string]string{
		"DATABASE_URI": "postgres://localhost/mesapos",
	}))
	if err == nil {
		t.Fatalf("expected error for invalid ttl")
	}
}
