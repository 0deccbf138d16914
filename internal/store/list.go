package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/integrity"
	"github.com/safar/loja/internal/models"
)

// listBy runs a query filtered by one foreign key and scans every row.
func listBy[T any](ctx context.Context, q querier, query string, parentID int64, scan func(scanner) (*T, error)) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, *v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}

type entityScanner struct {
	columns string
	scan    func(scanner) (models.Entity, error)
}

func scanAs[T models.Entity](scan func(scanner) (T, error)) func(scanner) (models.Entity, error) {
	return func(row scanner) (models.Entity, error) {
		return wrap(scan(row))
	}
}

var entityScanners = map[models.Kind]entityScanner{
	models.KindUser:               {userColumns, scanAs(scanUser)},
	models.KindSupplier:           {supplierColumns, scanAs(scanSupplier)},
	models.KindProduct:            {productColumns, scanAs(scanProduct)},
	models.KindProductVariant:     {variantColumns, scanAs(scanVariant)},
	models.KindOrder:              {orderColumns, scanAs(scanOrder)},
	models.KindOrderItem:          {orderItemColumns, scanAs(scanOrderItem)},
	models.KindPayment:            {paymentColumns, scanAs(scanPayment)},
	models.KindShippingService:    {shippingColumns, scanAs(scanShipping)},
	models.KindOrderStatusHistory: {historyColumns, scanAs(scanHistory)},
	models.KindReview:             {reviewColumns, scanAs(scanReview)},
}

// ListChildren returns the rows of child that reference the parent row
// through a relation of the integrity policy table.
func (s *Store) ListChildren(ctx context.Context, parent models.Kind, parentID int64, child models.Kind) ([]models.Entity, error) {
	rel, ok := integrity.Lookup(parent, child)
	if !ok {
		return nil, fmt.Errorf("%s has no %s children: %w", parent, child, integrity.ErrNoRelation)
	}

	exists, err := s.Exists(ctx, parent, parentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, database.NotFound(parent)
	}

	es := entityScanners[child]
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY id",
		es.columns, pq.QuoteIdentifier(tables[child]), pq.QuoteIdentifier(rel.Column))

	out, err := listBy(ctx, s.db, query, parentID, func(row scanner) (*models.Entity, error) {
		e, err := es.scan(row)
		if err != nil {
			return nil, err
		}
		return &e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s of %s: %w", child, parent, err)
	}
	return out, nil
}
