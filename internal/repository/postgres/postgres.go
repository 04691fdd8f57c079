package postgres

import (
	"context"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/travelguide-web/internal/config"
	"github.com/travelguide-web/internal/pkg/errors"
	"go.uber.org/zap"
)

type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// Handle is the process-wide store handle. The pool is opened on first use
// and reused for the process lifetime; a missing DATABASE_URL surfaces as a
// configuration error on every acquisition instead of failing startup, so the
// site keeps serving while the admin runs degraded.
type Handle struct {
	cfg    *config.Config
	logger *zap.Logger

	mu sync.Mutex
	db *DB
}

func NewHandle(cfg *config.Config, logger *zap.Logger) *Handle {
	return &Handle{cfg: cfg, logger: logger}
}

// Get returns the shared pool, opening it on first call.
func (h *Handle) Get(ctx context.Context) (*DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		return h.db, nil
	}

	dsn := h.cfg.GetDatabaseDSN()
	if dsn == "" {
		return nil, errors.ErrStoreNotConfigured
	}

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(h.cfg.Database.MaxConns)
	db.SetMaxIdleConns(h.cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(h.cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(h.cfg.Database.ConnMaxIdleTime)

	h.logger.Info("PostgreSQL pool opened",
		zap.Bool("ssl", h.cfg.Database.SSL),
		zap.Int("max_conns", h.cfg.Database.MaxConns),
	)

	h.db = &DB{DB: db, logger: h.logger}
	return h.db, nil
}

// Close tears down the pool if it was ever opened.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return nil
	}
	h.logger.Info("Closing PostgreSQL connection")
	err := h.db.DB.Close()
	h.db = nil
	return err
}

// Health pings the store, opening the pool if needed.
func (h *Handle) Health(ctx context.Context) error {
	db, err := h.Get(ctx)
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// NewDBForTest creates a DB instance for testing with provided database and logger
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger,
	}
}

// NewHandleForTest wraps an already open DB in a Handle.
func NewHandleForTest(db *DB, cfg *config.Config) *Handle {
	return &Handle{cfg: cfg, logger: db.logger, db: db}
}
