package postgres

import (
	"database/sql"
	"errors"

	"github.com/frizen94/ERPRO/internal/auth"
	"github.com/jmoiron/sqlx"
)

// Repository loads operator accounts with plain SQL; the accounts table is
// owned by the auth layer, not the domain storage abstraction.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) auth.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(email string) (*auth.UserRecord, error) {
	var record auth.UserRecord
	query := `SELECT id, email, name, password_hash, is_admin, is_active, created_at, updated_at
	          FROM users WHERE email = $1`
	if err := r.db.Get(&record, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *Repository) GetByID(id int64) (*auth.UserRecord, error) {
	var record auth.UserRecord
	query := `SELECT id, email, name, password_hash, is_admin, is_active, created_at, updated_at
	          FROM users WHERE id = $1`
	if err := r.db.Get(&record, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
