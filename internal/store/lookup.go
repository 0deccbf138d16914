package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/safar/loja/internal/integrity"
	"github.com/safar/loja/internal/models"
)

// rowLookup answers the validator's and the delete planner's questions
// against one querier, normally the open transaction.
type rowLookup struct {
	q querier
}

func (l rowLookup) Exists(ctx context.Context, kind models.Kind, id int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", pq.QuoteIdentifier(table))
	if err := l.q.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s exists: %w", kind, err)
	}
	return exists, nil
}

func (l rowLookup) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var taken bool
	err := l.q.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)",
		email, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check email taken: %w", err)
	}
	return taken, nil
}

func (l rowLookup) DependentIDs(ctx context.Context, rel integrity.Relation, parentID int64) ([]int64, error) {
	table, err := tableFor(rel.Child)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT id FROM %s WHERE %s = $1 ORDER BY id",
		pq.QuoteIdentifier(table), pq.QuoteIdentifier(rel.Column))
	rows, err := l.q.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list %s dependents: %w", rel.Child, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s id: %w", rel.Child, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return ids, nil
}

// Exists reports whether a row of kind with id is stored.
func (s *Store) Exists(ctx context.Context, kind models.Kind, id int64) (bool, error) {
	return rowLookup{q: s.db}.Exists(ctx, kind, id)
}

// EmailTaken reports whether a user other than excludeID owns email.
func (s *Store) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	return rowLookup{q: s.db}.EmailTaken(ctx, email, excludeID)
}
