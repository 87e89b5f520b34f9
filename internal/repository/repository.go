package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/finance-ledger/internal/models"
)

// Repository provides database operations
type Repository struct {
	db      *sql.DB
	dialect Dialect
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB, dialect Dialect) *Repository {
	return &Repository{db: db, dialect: dialect}
}

// Open connects to the store and verifies the connection
func Open(ctx context.Context, dialect Dialect, conn string) (*sql.DB, error) {
	dsn, err := dialect.dsn(conn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Ping reports whether the store is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// CreateProfile inserts a profile and sets its assigned ID
func (r *Repository) CreateProfile(ctx context.Context, p *models.Profile) error {
	query := r.dialect.rebind(`
		INSERT INTO profiles (name, username, password_hash)
		VALUES (?, ?, ?)
		RETURNING id`)
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Username, p.PasswordHash).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", classify(err))
	}
	return nil
}

// FindProfileByUsername retrieves a profile by its login identifier
func (r *Repository) FindProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	p := &models.Profile{}
	query := r.dialect.rebind(`
		SELECT id, name, username, password_hash
		FROM profiles
		WHERE username = ?`)
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&p.ID, &p.Name, &p.Username, &p.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return p, nil
}
