package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/models"
)

const paymentColumns = "id, order_id, payment_method, payment_date, amount"

func scanPayment(row scanner) (*models.Payment, error) {
	p := &models.Payment{}
	if err := row.Scan(&p.ID, &p.OrderID, &p.Method, &p.PaymentDate, &p.Amount); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	p.ID = 0
	saved, err := s.write(ctx, opCreate, &p, func(tx *sql.Tx) (models.Entity, error) {
		return scanPayment(tx.QueryRowContext(ctx, `
			INSERT INTO payments (order_id, payment_method, payment_date, amount)
			VALUES ($1, $2, $3, $4)
			RETURNING `+paymentColumns,
			p.OrderID, p.Method, p.PaymentDate, p.Amount))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.Payment), nil
}

func (s *Store) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	p, err := scanPayment(s.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

func (s *Store) UpdatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	saved, err := s.write(ctx, opUpdate, &p, func(tx *sql.Tx) (models.Entity, error) {
		return scanPayment(tx.QueryRowContext(ctx, `
			UPDATE payments
			SET order_id = $2, payment_method = $3, payment_date = $4, amount = $5
			WHERE id = $1
			RETURNING `+paymentColumns,
			p.ID, p.OrderID, p.Method, p.PaymentDate, p.Amount))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.Payment), nil
}

func (s *Store) ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error) {
	payments, err := listBy(ctx, s.db,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1 ORDER BY id`,
		orderID, scanPayment)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

const shippingColumns = "id, order_id, carrier_name, shipping_price, service_type, delivery_days"

func scanShipping(row scanner) (*models.ShippingService, error) {
	sh := &models.ShippingService{}
	err := row.Scan(
		&sh.ID,
		&sh.OrderID,
		&sh.CarrierName,
		&sh.ShippingPrice,
		&sh.ServiceType,
		&sh.DeliveryDays,
	)
	if err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *Store) CreateShippingService(ctx context.Context, sh models.ShippingService) (*models.ShippingService, error) {
	sh.ID = 0
	saved, err := s.write(ctx, opCreate, &sh, func(tx *sql.Tx) (models.Entity, error) {
		return scanShipping(tx.QueryRowContext(ctx, `
			INSERT INTO shipping_services (order_id, carrier_name, shipping_price, service_type, delivery_days)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+shippingColumns,
			sh.OrderID, sh.CarrierName, sh.ShippingPrice, sh.ServiceType, sh.DeliveryDays))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.ShippingService), nil
}

func (s *Store) GetShippingService(ctx context.Context, id int64) (*models.ShippingService, error) {
	sh, err := scanShipping(s.db.QueryRowContext(ctx,
		`SELECT `+shippingColumns+` FROM shipping_services WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrShippingServiceNotFound
		}
		return nil, fmt.Errorf("get shipping service: %w", err)
	}
	return sh, nil
}

func (s *Store) UpdateShippingService(ctx context.Context, sh models.ShippingService) (*models.ShippingService, error) {
	saved, err := s.write(ctx, opUpdate, &sh, func(tx *sql.Tx) (models.Entity, error) {
		return scanShipping(tx.QueryRowContext(ctx, `
			UPDATE shipping_services
			SET order_id = $2, carrier_name = $3, shipping_price = $4, service_type = $5, delivery_days = $6
			WHERE id = $1
			RETURNING `+shippingColumns,
			sh.ID, sh.OrderID, sh.CarrierName, sh.ShippingPrice, sh.ServiceType, sh.DeliveryDays))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.ShippingService), nil
}

func (s *Store) ListShippingServices(ctx context.Context, orderID int64) ([]models.ShippingService, error) {
	services, err := listBy(ctx, s.db,
		`SELECT `+shippingColumns+` FROM shipping_services WHERE order_id = $1 ORDER BY id`,
		orderID, scanShipping)
	if err != nil {
		return nil, fmt.Errorf("list shipping services: %w", err)
	}
	return services, nil
}

const historyColumns = "id, order_id, change_date, previous_status, current_status"

func scanHistory(row scanner) (*models.OrderStatusHistory, error) {
	h := &models.OrderStatusHistory{}
	if err := row.Scan(&h.ID, &h.OrderID, &h.ChangeDate, &h.PreviousStatus, &h.CurrentStatus); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Store) CreateOrderStatusHistory(ctx context.Context, h models.OrderStatusHistory) (*models.OrderStatusHistory, error) {
	h.ID = 0
	saved, err := s.write(ctx, opCreate, &h, func(tx *sql.Tx) (models.Entity, error) {
		return scanHistory(tx.QueryRowContext(ctx, `
			INSERT INTO order_status_history (order_id, change_date, previous_status, current_status)
			VALUES ($1, $2, $3, $4)
			RETURNING `+historyColumns,
			h.OrderID, h.ChangeDate, h.PreviousStatus, h.CurrentStatus))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.OrderStatusHistory), nil
}

func (s *Store) GetOrderStatusHistory(ctx context.Context, id int64) (*models.OrderStatusHistory, error) {
	h, err := scanHistory(s.db.QueryRowContext(ctx,
		`SELECT `+historyColumns+` FROM order_status_history WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderStatusHistoryNotFound
		}
		return nil, fmt.Errorf("get order status history: %w", err)
	}
	return h, nil
}

func (s *Store) UpdateOrderStatusHistory(ctx context.Context, h models.OrderStatusHistory) (*models.OrderStatusHistory, error) {
	saved, err := s.write(ctx, opUpdate, &h, func(tx *sql.Tx) (models.Entity, error) {
		return scanHistory(tx.QueryRowContext(ctx, `
			UPDATE order_status_history
			SET order_id = $2, change_date = $3, previous_status = $4, current_status = $5
			WHERE id = $1
			RETURNING `+historyColumns,
			h.ID, h.OrderID, h.ChangeDate, h.PreviousStatus, h.CurrentStatus))
	})
	if err != nil {
		return nil, err
	}
	return saved.(*models.OrderStatusHistory), nil
}

func (s *Store) ListStatusHistory(ctx context.Context, orderID int64) ([]models.OrderStatusHistory, error) {
	history, err := listBy(ctx, s.db,
		`SELECT `+historyColumns+` FROM order_status_history WHERE order_id = $1 ORDER BY change_date, id`,
		orderID, scanHistory)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	return history, nil
}
