package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/models"
)

const orderColumns = "id, user_id, order_date, total_value, status, delivery_address"

func scanOrder(row scanner) (*models.Order, error) {
	o := &models.Order{}
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.OrderDate,
		&o.TotalValue,
		&o.Status,
		&o.DeliveryAddress,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Store) CreateOrder(ctx context.Context, o models.Order) (*models.Order, error) {
	o.ID = 0
	saved, err := s.write(ctx, opCreate, &o, func(tx *sql.Tx) (models.Entity, error) {
		return scanOrder(tx.QueryRowContext(ctx, `
			INSERT INTO orders (user_id, order_date, total_value, status, delivery_address)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+orderColumns,
			o.UserID, o.OrderDate, o.TotalValue, o.Status, o.DeliveryAddress))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.Order), nil
}

func (s *Store) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (s *Store) UpdateOrder(ctx context.Context, o models.Order) (*models.Order, error) {
	saved, err := s.write(ctx, opUpdate, &o, func(tx *sql.Tx) (models.Entity, error) {
		return scanOrder(tx.QueryRowContext(ctx, `
			UPDATE orders
			SET user_id = $2, order_date = $3, total_value = $4, status = $5, delivery_address = $6
			WHERE id = $1
			RETURNING `+orderColumns,
			o.ID, o.UserID, o.OrderDate, o.TotalValue, o.Status, o.DeliveryAddress))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.Order), nil
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	orders, err := listBy(ctx, s.db,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY order_date DESC, id DESC`,
		userID, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

const orderItemColumns = "id, order_id, product_id, variant_id, quantity, unit_price"

func scanOrderItem(row scanner) (*models.OrderItem, error) {
	item := &models.OrderItem{}
	err := row.Scan(
		&item.ID,
		&item.OrderID,
		&item.ProductID,
		&item.VariantID,
		&item.Quantity,
		&item.UnitPrice,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreateOrderItem stores a line item. A nil VariantID is stored as NULL and
// read back as nil.
func (s *Store) CreateOrderItem(ctx context.Context, item models.OrderItem) (*models.OrderItem, error) {
	item.ID = 0
	saved, err := s.write(ctx, opCreate, &item, func(tx *sql.Tx) (models.Entity, error) {
		return scanOrderItem(tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, variant_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+orderItemColumns,
			item.OrderID, item.ProductID, item.VariantID, item.Quantity, item.UnitPrice))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.OrderItem), nil
}

func (s *Store) GetOrderItem(ctx context.Context, id int64) (*models.OrderItem, error) {
	item, err := scanOrderItem(s.db.QueryRowContext(ctx,
		`SELECT `+orderItemColumns+` FROM order_items WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderItemNotFound
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return item, nil
}

func (s *Store) UpdateOrderItem(ctx context.Context, item models.OrderItem) (*models.OrderItem, error) {
	saved, err := s.write(ctx, opUpdate, &item, func(tx *sql.Tx) (models.Entity, error) {
		return scanOrderItem(tx.QueryRowContext(ctx, `
			UPDATE order_items
			SET order_id = $2, product_id = $3, variant_id = $4, quantity = $5, unit_price = $6
			WHERE id = $1
			RETURNING `+orderItemColumns,
			item.ID, item.OrderID, item.ProductID, item.VariantID, item.Quantity, item.UnitPrice))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.OrderItem), nil
}

func (s *Store) ListOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	items, err := listBy(ctx, s.db,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID, scanOrderItem)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	return items, nil
}
