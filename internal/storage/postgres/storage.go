package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vmesquit/mesapos/internal/domain/repository"
)

// PgxPool is the subset of pgxpool.Pool the storage relies on; satisfied by
// pgxmock pools in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// querier covers what repositories need from either a pool or a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   PgxPool
	logger *slog.Logger
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (PgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Restaurants() repository.RestaurantRepository {
	return &restaurantRepository{storage: s}
}

func (s *Storage) Waiters() repository.WaiterRepository {
	return &waiterRepository{storage: s}
}

func (s *Storage) Tables() repository.TableRepository {
	return &tableRepository{storage: s}
}

func (s *Storage) Menu() repository.MenuRepository {
	return &menuRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Metrics() repository.MetricRepository {
	return &metricRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS waiters (
            id BIGSERIAL PRIMARY KEY,
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            pin_code TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            name TEXT NOT NULL,
            nickname TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (restaurant_id, pin_code)
        )`,
		`CREATE TABLE IF NOT EXISTS tables (
            id BIGSERIAL PRIMARY KEY,
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            number INT NOT NULL,
            status TEXT NOT NULL DEFAULT 'FREE',
            consumption DOUBLE PRECISION NOT NULL DEFAULT 0,
            capacity INT NOT NULL DEFAULT 4,
            waiter_id BIGINT REFERENCES waiters(id),
            UNIQUE (restaurant_id, number)
        )`,
		`CREATE TABLE IF NOT EXISTS menu_categories (
            id BIGSERIAL PRIMARY KEY,
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            name TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id BIGSERIAL PRIMARY KEY,
            category_id BIGINT NOT NULL REFERENCES menu_categories(id),
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            image TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            table_id BIGINT REFERENCES tables(id),
            waiter_id BIGINT REFERENCES waiters(id),
            customer_id BIGINT,
            temporary_customer_id TEXT,
            customer_name TEXT,
            transaction_id TEXT NOT NULL,
            code TEXT NOT NULL,
            status TEXT NOT NULL,
            total DOUBLE PRECISION NOT NULL DEFAULT 0,
            decision_time INT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (restaurant_id, transaction_id)
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            menu_item_id BIGINT NOT NULL REFERENCES menu_items(id),
            quantity INT NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            observation TEXT,
            is_suggestion BOOLEAN NOT NULL DEFAULT FALSE,
            suggestion_type TEXT,
            decision_time INT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS daily_metrics (
            id BIGSERIAL PRIMARY KEY,
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            date DATE NOT NULL,
            total_orders INT NOT NULL DEFAULT 0,
            total_revenue DOUBLE PRECISION NOT NULL DEFAULT 0,
            average_decision_time DOUBLE PRECISION NOT NULL DEFAULT 0,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (restaurant_id, date)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders(restaurant_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_code ON orders(restaurant_id, code)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_table ON orders(table_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Pool exposes raw connection pool for advanced use.
func (s *Storage) Pool() PgxPool {
	return s.pool
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
