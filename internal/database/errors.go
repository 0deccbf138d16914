package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/safar/loja/internal/models"
)

type ErrorClass int

const (
	ErrorClassPermanent ErrorClass = iota
	ErrorClassTransient
	ErrorClassDeadlock
	ErrorClassSerialization
)

// PostgreSQL SQLSTATE codes the store reacts to.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
	CodeCheckViolation      = "23514"
	CodeSerialization       = "40001"
	CodeDeadlock            = "40P01"
	CodeLockNotAvailable    = "55P03"
)

func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ErrorClassPermanent
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case CodeSerialization:
			return ErrorClassSerialization
		case CodeDeadlock:
			return ErrorClassDeadlock
		case CodeLockNotAvailable:
			return ErrorClassTransient
		}
	}

	return ErrorClassPermanent
}

func IsRetryable(err error) bool {
	class := ClassifyError(err)
	return class == ErrorClassTransient ||
		class == ErrorClassDeadlock ||
		class == ErrorClassSerialization
}

// PQError returns the driver error carrying code, if err wraps one.
func PQError(err error, code pq.ErrorCode) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == code {
		return pqErr, true
	}
	return nil, false
}

var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound               = fmt.Errorf("user %w", ErrNotFound)
	ErrSupplierNotFound           = fmt.Errorf("supplier %w", ErrNotFound)
	ErrProductNotFound            = fmt.Errorf("product %w", ErrNotFound)
	ErrProductVariantNotFound     = fmt.Errorf("product variant %w", ErrNotFound)
	ErrOrderNotFound              = fmt.Errorf("order %w", ErrNotFound)
	ErrOrderItemNotFound          = fmt.Errorf("order item %w", ErrNotFound)
	ErrPaymentNotFound            = fmt.Errorf("payment %w", ErrNotFound)
	ErrShippingServiceNotFound    = fmt.Errorf("shipping service %w", ErrNotFound)
	ErrOrderStatusHistoryNotFound = fmt.Errorf("order status history %w", ErrNotFound)
	ErrReviewNotFound             = fmt.Errorf("review %w", ErrNotFound)
)

var notFoundByKind = map[models.Kind]error{
	models.KindUser:               ErrUserNotFound,
	models.KindSupplier:           ErrSupplierNotFound,
	models.KindProduct:            ErrProductNotFound,
	models.KindProductVariant:     ErrProductVariantNotFound,
	models.KindOrder:              ErrOrderNotFound,
	models.KindOrderItem:          ErrOrderItemNotFound,
	models.KindPayment:            ErrPaymentNotFound,
	models.KindShippingService:    ErrShippingServiceNotFound,
	models.KindOrderStatusHistory: ErrOrderStatusHistoryNotFound,
	models.KindReview:             ErrReviewNotFound,
}

// NotFound returns the not-found sentinel for kind. Every sentinel wraps
// ErrNotFound.
func NotFound(kind models.Kind) error {
	if err, ok := notFoundByKind[kind]; ok {
		return err
	}
	return fmt.Errorf("%s %w", kind, ErrNotFound)
}

// IsNoRows reports whether err is sql.ErrNoRows.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
