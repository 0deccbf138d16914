package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/integrity"
	"github.com/safar/loja/internal/models"
)

// Delete removes the row of kind with id together with everything the
// integrity policy cascades to. When any row in that set is protected by a
// Restrict relation it returns *integrity.Error and removes nothing.
func (s *Store) Delete(ctx context.Context, kind models.Kind, id int64) error {
	if _, err := tableFor(kind); err != nil {
		return err
	}

	var plan *integrity.Plan
	err := database.WithRetry(ctx, s.db, database.SerializableTxOptions(), func(tx *sql.Tx) error {
		lk := rowLookup{q: tx}

		exists, err := lk.Exists(ctx, kind, id)
		if err != nil {
			return err
		}
		if !exists {
			return database.NotFound(kind)
		}

		plan, err = integrity.BuildPlan(ctx, lk, kind, id)
		if err != nil {
			return err
		}

		for _, target := range plan.Deletes {
			query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pq.QuoteIdentifier(tables[target.Kind]))
			if _, err := tx.ExecContext(ctx, query, target.ID); err != nil {
				return translateDeleteError(kind, id, target, err)
			}
		}
		return nil
	})

	s.recordDelete(ctx, kind, id, plan, err)
	return err
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return s.Delete(ctx, models.KindUser, id)
}

func (s *Store) DeleteSupplier(ctx context.Context, id int64) error {
	return s.Delete(ctx, models.KindSupplier, id)
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	return s.Delete(ctx, models.KindProduct, id)
}

func (s *Store) DeleteProductVariant(ctx context.Context, id int64) error {
	return s.Delete(ctx, models.KindProductVariant, id)
}

func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	return s.Delete(ctx, models.KindOrder, id)
}

func (s *Store) DeleteOrderItem(ctx context.Context, id int64) error {
	return s.Delete(ctx, models.KindOrderItem, id)
}

func (s *Store) DeletePayment(ctx context.Context, id int64) error {
	return s.Delete(ctx, models.KindPayment, id)
}

func (s *Store) DeleteShippingService(ctx context.Context, id int64) error {
	return s.Delete(ctx, models.KindShippingService, id)
}

func (s *Store) DeleteOrderStatusHistory(ctx context.Context, id int64) error {
	return s.Delete(ctx, models.KindOrderStatusHistory, id)
}

func (s *Store) DeleteReview(ctx context.Context, id int64) error {
	return s.Delete(ctx, models.KindReview, id)
}
