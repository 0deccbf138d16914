package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/models"
)

const userColumns = "id, name, email, password"

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	u.ID = 0
	saved, err := s.write(ctx, opCreate, &u, func(tx *sql.Tx) (models.Entity, error) {
		return scanUser(tx.QueryRowContext(ctx, `
			INSERT INTO users (name, email, password)
			VALUES ($1, $2, $3)
			RETURNING `+userColumns,
			u.Name, u.Email, u.Password))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.User), nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateUser re-validates the user, including email uniqueness against every
// other user, before writing.
func (s *Store) UpdateUser(ctx context.Context, u models.User) (*models.User, error) {
	saved, err := s.write(ctx, opUpdate, &u, func(tx *sql.Tx) (models.Entity, error) {
		return scanUser(tx.QueryRowContext(ctx, `
			UPDATE users
			SET name = $2, email = $3, password = $4
			WHERE id = $1
			RETURNING `+userColumns,
			u.ID, u.Name, u.Email, u.Password))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.User), nil
}
