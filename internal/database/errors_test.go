package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/safar/loja/internal/models"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorClass
	}{
		{nil, ErrorClassPermanent},
		{&pq.Error{Code: CodeSerialization}, ErrorClassSerialization},
		{&pq.Error{Code: CodeDeadlock}, ErrorClassDeadlock},
		{&pq.Error{Code: CodeLockNotAvailable}, ErrorClassTransient},
		{&pq.Error{Code: CodeUniqueViolation}, ErrorClassPermanent},
		{&pq.Error{Code: CodeForeignKeyViolation}, ErrorClassPermanent},
		{fmt.Errorf("commit transaction: %w", &pq.Error{Code: CodeSerialization}), ErrorClassSerialization},
		{sql.ErrNoRows, ErrorClassPermanent},
		{errors.New("plain"), ErrorClassPermanent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyError(tt.err), "%v", tt.err)
	}

	assert.True(t, IsRetryable(&pq.Error{Code: CodeDeadlock}))
	assert.False(t, IsRetryable(&pq.Error{Code: CodeCheckViolation}))
}

func TestPQError(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pq.Error{Code: CodeUniqueViolation, Constraint: "users_email_key"})

	pqErr, ok := PQError(wrapped, CodeUniqueViolation)
	assert.True(t, ok)
	assert.Equal(t, "users_email_key", pqErr.Constraint)

	_, ok = PQError(wrapped, CodeForeignKeyViolation)
	assert.False(t, ok)
}

func TestNotFoundSentinels(t *testing.T) {
	for _, kind := range models.Kinds {
		err := NotFound(kind)
		assert.ErrorIs(t, err, ErrNotFound, kind)
	}
	assert.ErrorIs(t, NotFound("coupon"), ErrNotFound)
	assert.Equal(t, "order not found", ErrOrderNotFound.Error())
}

func TestMigrateRejectsDirection(t *testing.T) {
	_, err := Migrate(context.Background(), nil, nil, "sideways")
	assert.Error(t, err)
}
