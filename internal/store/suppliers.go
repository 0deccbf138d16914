package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/models"
)

const supplierColumns = "id, name, phone, email, address, tax_id"

func scanSupplier(row scanner) (*models.Supplier, error) {
	s := &models.Supplier{}
	if err := row.Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.TaxID); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) CreateSupplier(ctx context.Context, sup models.Supplier) (*models.Supplier, error) {
	sup.ID = 0
	saved, err := s.write(ctx, opCreate, &sup, func(tx *sql.Tx) (models.Entity, error) {
		return scanSupplier(tx.QueryRowContext(ctx, `
			INSERT INTO suppliers (name, phone, email, address, tax_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+supplierColumns,
			sup.Name, sup.Phone, sup.Email, sup.Address, sup.TaxID))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.Supplier), nil
}

func (s *Store) GetSupplier(ctx context.Context, id int64) (*models.Supplier, error) {
	sup, err := scanSupplier(s.db.QueryRowContext(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return sup, nil
}

func (s *Store) UpdateSupplier(ctx context.Context, sup models.Supplier) (*models.Supplier, error) {
	saved, err := s.write(ctx, opUpdate, &sup, func(tx *sql.Tx) (models.Entity, error) {
		return scanSupplier(tx.QueryRowContext(ctx, `
			UPDATE suppliers
			SET name = $2, phone = $3, email = $4, address = $5, tax_id = $6
			WHERE id = $1
			RETURNING `+supplierColumns,
			sup.ID, sup.Name, sup.Phone, sup.Email, sup.Address, sup.TaxID))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.Supplier), nil
}
