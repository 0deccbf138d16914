package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/models"
)

const reviewColumns = "id, user_id, product_id, rating, comment"

func scanReview(row scanner) (*models.Review, error) {
	r := &models.Review{}
	if err := row.Scan(&r.ID, &r.UserID, &r.ProductID, &r.Rating, &r.Comment); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Store) CreateReview(ctx context.Context, r models.Review) (*models.Review, error) {
	r.ID = 0
	saved, err := s.write(ctx, opCreate, &r, func(tx *sql.Tx) (models.Entity, error) {
		return scanReview(tx.QueryRowContext(ctx, `
			INSERT INTO reviews (user_id, product_id, rating, comment)
			VALUES ($1, $2, $3, $4)
			RETURNING `+reviewColumns,
			r.UserID, r.ProductID, r.Rating, r.Comment))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.Review), nil
}

func (s *Store) GetReview(ctx context.Context, id int64) (*models.Review, error) {
	r, err := scanReview(s.db.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return r, nil
}

func (s *Store) UpdateReview(ctx context.Context, r models.Review) (*models.Review, error) {
	saved, err := s.write(ctx, opUpdate, &r, func(tx *sql.Tx) (models.Entity, error) {
		return scanReview(tx.QueryRowContext(ctx, `
			UPDATE reviews
			SET user_id = $2, product_id = $3, rating = $4, comment = $5
			WHERE id = $1
			RETURNING `+reviewColumns,
			r.ID, r.UserID, r.ProductID, r.Rating, r.Comment))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.Review), nil
}

func (s *Store) ListReviewsByProduct(ctx context.Context, productID int64) ([]models.Review, error) {
	reviews, err := listBy(ctx, s.db,
		`SELECT `+reviewColumns+` FROM reviews WHERE product_id = $1 ORDER BY id`,
		productID, scanReview)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *Store) ListReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	reviews, err := listBy(ctx, s.db,
		`SELECT `+reviewColumns+` FROM reviews WHERE user_id = $1 ORDER BY id`,
		userID, scanReview)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
