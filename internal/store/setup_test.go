package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/models"
	"github.com/safar/loja/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres-backed test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgres, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := postgres.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := postgres.Host(ctx)
	require.NoError(t, err)
	port, err := postgres.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.PingContext(ctx))

	_, err = database.Migrate(ctx, db, migrations.FS, "up")
	require.NoError(t, err, "run migrations")

	return db
}

func newTestStore(t *testing.T) *Store {
	return New(setupTestDB(t))
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func mustCreateUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), models.User{
		Name:     "Test User",
		Email:    email,
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	return u
}

func mustCreateSupplier(t *testing.T, s *Store) *models.Supplier {
	t.Helper()
	sup, err := s.CreateSupplier(context.Background(), models.Supplier{
		Name:    "Fornecedor",
		Phone:   "11999990000",
		Email:   "vendas@fornecedor.com",
		Address: "Rua A, 1",
		TaxID:   "12345678000199",
	})
	require.NoError(t, err)
	return sup
}

func mustCreateProduct(t *testing.T, s *Store, supplierID int64) *models.Product {
	t.Helper()
	p, err := s.CreateProduct(context.Background(), models.Product{
		SupplierID:    supplierID,
		Name:          "Camiseta",
		Description:   "Algodao",
		Price:         decimal.RequireFromString("49.90"),
		StockQuantity: 10,
	})
	require.NoError(t, err)
	return p
}

func mustCreateOrder(t *testing.T, s *Store, userID int64) *models.Order {
	t.Helper()
	o, err := s.CreateOrder(context.Background(), models.Order{
		UserID:          userID,
		OrderDate:       models.NewDate(2024, time.March, 5),
		TotalValue:      decimal.RequireFromString("99.80"),
		Status:          "pending",
		DeliveryAddress: "Rua B, 2",
	})
	require.NoError(t, err)
	return o
}
