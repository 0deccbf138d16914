package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/models"
)

const productColumns = "id, supplier_id, name, description, price, stock_quantity"

func scanProduct(row scanner) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(
		&p.ID,
		&p.SupplierID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.StockQuantity,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	p.ID = 0
	saved, err := s.write(ctx, opCreate, &p, func(tx *sql.Tx) (models.Entity, error) {
		return scanProduct(tx.QueryRowContext(ctx, `
			INSERT INTO products (supplier_id, name, description, price, stock_quantity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+productColumns,
			p.SupplierID, p.Name, p.Description, p.Price, p.StockQuantity))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.Product), nil
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	p, err := scanProduct(s.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	saved, err := s.write(ctx, opUpdate, &p, func(tx *sql.Tx) (models.Entity, error) {
		return scanProduct(tx.QueryRowContext(ctx, `
			UPDATE products
			SET supplier_id = $2, name = $3, description = $4, price = $5, stock_quantity = $6
			WHERE id = $1
			RETURNING `+productColumns,
			p.ID, p.SupplierID, p.Name, p.Description, p.Price, p.StockQuantity))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.Product), nil
}

func (s *Store) ListProductsBySupplier(ctx context.Context, supplierID int64) ([]models.Product, error) {
	products, err := listBy(ctx, s.db,
		`SELECT `+productColumns+` FROM products WHERE supplier_id = $1 ORDER BY id`,
		supplierID, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

const variantColumns = "id, product_id, size, color, customization, extra_price"

func scanVariant(row scanner) (*models.ProductVariant, error) {
	v := &models.ProductVariant{}
	err := row.Scan(
		&v.ID,
		&v.ProductID,
		&v.Size,
		&v.Color,
		&v.Customization,
		&v.ExtraPrice,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Store) CreateProductVariant(ctx context.Context, v models.ProductVariant) (*models.ProductVariant, error) {
	v.ID = 0
	saved, err := s.write(ctx, opCreate, &v, func(tx *sql.Tx) (models.Entity, error) {
		return scanVariant(tx.QueryRowContext(ctx, `
			INSERT INTO product_variants (product_id, size, color, customization, extra_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+variantColumns,
			v.ProductID, v.Size, v.Color, v.Customization, v.ExtraPrice))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.ProductVariant), nil
}

func (s *Store) GetProductVariant(ctx context.Context, id int64) (*models.ProductVariant, error) {
	v, err := scanVariant(s.db.QueryRowContext(ctx,
		`SELECT `+variantColumns+` FROM product_variants WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrProductVariantNotFound
		}
		return nil, fmt.Errorf("get product variant: %w", err)
	}
	return v, nil
}

func (s *Store) UpdateProductVariant(ctx context.Context, v models.ProductVariant) (*models.ProductVariant, error) {
	saved, err := s.write(ctx, opUpdate, &v, func(tx *sql.Tx) (models.Entity, error) {
		return scanVariant(tx.QueryRowContext(ctx, `
			UPDATE product_variants
			SET product_id = $2, size = $3, color = $4, customization = $5, extra_price = $6
			WHERE id = $1
			RETURNING `+variantColumns,
			v.ID, v.ProductID, v.Size, v.Color, v.Customization, v.ExtraPrice))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.ProductVariant), nil
}

func (s *Store) ListVariantsByProduct(ctx context.Context, productID int64) ([]models.ProductVariant, error) {
	variants, err := listBy(ctx, s.db,
		`SELECT `+variantColumns+` FROM product_variants WHERE product_id = $1 ORDER BY id`,
		productID, scanVariant)
	if err != nil {
		return nil, fmt.Errorf("list product variants: %w", err)
	}
	return variants, nil
}
