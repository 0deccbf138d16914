package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/integrity"
	"github.com/safar/loja/internal/logger"
	"github.com/safar/loja/internal/metrics"
	"github.com/safar/loja/internal/models"
	"github.com/safar/loja/internal/validation"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// Store persists entities in PostgreSQL. Every create and update is validated
// inside the transaction that commits it; every delete follows the
// integrity policy table.
type Store struct {
	db        *sql.DB
	validator *validation.Validator
	metrics   *metrics.Metrics
}

type Option func(*Store)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

func WithValidator(v *validation.Validator) Option {
	return func(s *Store) { s.validator = v }
}

func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db, validator: validation.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type scanner interface {
	Scan(dest ...interface{}) error
}

var tables = map[models.Kind]string{
	models.KindUser:               "users",
	models.KindSupplier:           "suppliers",
	models.KindProduct:            "products",
	models.KindProductVariant:     "product_variants",
	models.KindOrder:              "orders",
	models.KindOrderItem:          "order_items",
	models.KindPayment:            "payments",
	models.KindShippingService:    "shipping_services",
	models.KindOrderStatusHistory: "order_status_history",
	models.KindReview:             "reviews",
}

func tableFor(kind models.Kind) (string, error) {
	t, ok := tables[kind]
	if !ok {
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}
	return t, nil
}

func kindForTable(table string) models.Kind {
	for kind, t := range tables {
		if t == table {
			return kind
		}
	}
	return models.Kind(table)
}

// write validates e and, when it passes, runs fn in the same transaction.
// For updates the row must already exist.
func (s *Store) write(ctx context.Context, op string, e models.Entity, fn func(tx *sql.Tx) (models.Entity, error)) (models.Entity, error) {
	var saved models.Entity

	err := database.WithTransaction(ctx, s.db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		lk := rowLookup{q: tx}

		if op == opUpdate {
			exists, err := lk.Exists(ctx, e.Kind(), e.Key())
			if err != nil {
				return err
			}
			if !exists {
				return database.NotFound(e.Kind())
			}
		}

		if err := s.validator.Validate(ctx, lk, e); err != nil {
			return err
		}

		var err error
		saved, err = fn(tx)
		if err != nil {
			if database.IsNoRows(err) {
				return database.NotFound(e.Kind())
			}
			return translateWriteError(op, e.Kind(), err)
		}
		return nil
	})

	s.recordWrite(ctx, op, e, saved, err)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// translateWriteError turns constraint violations that lost a race with the
// in-transaction checks into validation errors.
func translateWriteError(op string, kind models.Kind, err error) error {
	if pqErr, ok := database.PQError(err, database.CodeUniqueViolation); ok && pqErr.Constraint == "users_email_key" {
		return &validation.Error{Kind: kind, Violations: []validation.Violation{validation.UniqueEmailViolation()}}
	}
	if pqErr, ok := database.PQError(err, database.CodeForeignKeyViolation); ok {
		field := strings.TrimSuffix(strings.TrimPrefix(pqErr.Constraint, pqErr.Table+"_"), "_fkey")
		return &validation.Error{Kind: kind, Violations: []validation.Violation{{
			Field:   field,
			Rule:    validation.RuleExists,
			Message: "referenced row does not exist",
		}}}
	}
	return fmt.Errorf("%s %s: %w", op, kind, err)
}

// translateDeleteError maps a foreign key violation raised by the schema's
// ON DELETE RESTRICT into an integrity error.
func translateDeleteError(kind models.Kind, id int64, target integrity.Target, err error) error {
	pqErr, ok := database.PQError(err, database.CodeForeignKeyViolation)
	if !ok {
		return fmt.Errorf("delete %s %d: %w", target.Kind, target.ID, err)
	}
	child := kindForTable(pqErr.Table)
	column := ""
	if rel, found := integrity.Lookup(target.Kind, child); found {
		column = rel.Column
	}
	return &integrity.Error{
		Kind:     kind,
		ID:       id,
		Parent:   target.Kind,
		ParentID: target.ID,
		Child:    child,
		Column:   column,
		Count:    1,
	}
}

func (s *Store) recordWrite(ctx context.Context, op string, e, saved models.Entity, err error) {
	log := logger.FromContext(ctx).With(zap.String("kind", string(e.Kind())), zap.String("operation", op))

	var verr *validation.Error
	switch {
	case err == nil:
		s.metrics.Operation(string(e.Kind()), op)
		log.Info("entity committed", zap.Int64("id", saved.Key()))
	case errors.As(err, &verr):
		for _, v := range verr.Violations {
			s.metrics.Violation(string(e.Kind()), v.Rule)
		}
		log.Info("entity rejected", zap.Int64("id", e.Key()), zap.Any("violations", verr.Violations))
	case errors.Is(err, database.ErrNotFound):
		log.Info("entity not found", zap.Int64("id", e.Key()))
	default:
		log.Error("entity write failed", zap.Int64("id", e.Key()), zap.Error(err))
	}
}

func (s *Store) recordDelete(ctx context.Context, kind models.Kind, id int64, plan *integrity.Plan, err error) {
	log := logger.FromContext(ctx).With(zap.String("kind", string(kind)), zap.Int64("id", id))

	var ierr *integrity.Error
	switch {
	case err == nil:
		s.metrics.Operation(string(kind), opDelete)
		cascaded := 0
		for _, k := range models.Kinds {
			n := plan.Count(k)
			if k == kind {
				n--
			}
			s.metrics.Cascaded(string(k), n)
			cascaded += n
		}
		log.Info("entity deleted", zap.Int("cascaded", cascaded))
	case errors.As(err, &ierr):
		s.metrics.Rejection(string(ierr.Parent), string(ierr.Child))
		log.Warn("delete rejected",
			zap.String("blocking_child", string(ierr.Child)),
			zap.String("column", ierr.Column),
			zap.Int("count", ierr.Count))
	case errors.Is(err, database.ErrNotFound):
		log.Info("entity not found")
	default:
		log.Error("entity delete failed", zap.Error(err))
	}
}
