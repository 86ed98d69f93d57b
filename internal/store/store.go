package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admin-dashboard/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// pq code for insufficient_privilege
const pqInsufficientPrivilege = "42501"

// PermissionError is returned when the store rejects a read because the
// dashboard role lacks a grant on the table.
type PermissionError struct {
	Table string
	Err   error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("insufficient permissions reading %s: grant SELECT on %s to the dashboard role", e.Table, e.Table)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// wrapReadErr translates access-control rejections into a PermissionError
// with a remediation hint; everything else passes through wrapped.
func wrapReadErr(table string, err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqInsufficientPrivilege {
		return &PermissionError{Table: table, Err: err}
	}
	return fmt.Errorf("failed to read %s: %w", table, err)
}

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// GetProducts retrieves the full product catalog snapshot
func (s *Store) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products, `
		SELECT id, name, COALESCE(category, '') AS category, COALESCE(brand, '') AS brand,
		       price, stock, in_stock, COALESCE(image_url, '') AS image_url, created_at
		FROM products
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, wrapReadErr("products", err)
	}
	return products, nil
}

// GetUsers retrieves the full user snapshot. Accounts created before roles
// existed carry no role column value and default to "user".
func (s *Store) GetUsers(ctx context.Context) ([]models.UserProfile, error) {
	var users []models.UserProfile
	err := s.db.SelectContext(ctx, &users, `
		SELECT id, COALESCE(name, '') AS name, COALESCE(email, '') AS email,
		       COALESCE(phone, '') AS phone, COALESCE(role, '') AS role, created_at
		FROM users
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, wrapReadErr("users", err)
	}
	for i := range users {
		if users[i].Role == "" {
			users[i].Role = models.RoleUser
		}
	}
	return users, nil
}
