package store

import (
	"context"
	"fmt"

	"github.com/safar/loja/internal/models"
)

// wrap keeps a typed nil pointer from escaping as a non-nil Entity.
func wrap[T models.Entity](v T, err error) (models.Entity, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create stores e according to its concrete type.
func (s *Store) Create(ctx context.Context, e models.Entity) (models.Entity, error) {
	switch v := e.(type) {
	case *models.User:
		return wrap(s.CreateUser(ctx, *v))
	case *models.Supplier:
		return wrap(s.CreateSupplier(ctx, *v))
	case *models.Product:
		return wrap(s.CreateProduct(ctx, *v))
	case *models.ProductVariant:
		return wrap(s.CreateProductVariant(ctx, *v))
	case *models.Order:
		return wrap(s.CreateOrder(ctx, *v))
	case *models.OrderItem:
		return wrap(s.CreateOrderItem(ctx, *v))
	case *models.Payment:
		return wrap(s.CreatePayment(ctx, *v))
	case *models.ShippingService:
		return wrap(s.CreateShippingService(ctx, *v))
	case *models.OrderStatusHistory:
		return wrap(s.CreateOrderStatusHistory(ctx, *v))
	case *models.Review:
		return wrap(s.CreateReview(ctx, *v))
	default:
		return nil, fmt.Errorf("create: unsupported entity %T", e)
	}
}

// Update replaces the stored row identified by e.Key().
func (s *Store) Update(ctx context.Context, e models.Entity) (models.Entity, error) {
	switch v := e.(type) {
	case *models.User:
		return wrap(s.UpdateUser(ctx, *v))
	case *models.Supplier:
		return wrap(s.UpdateSupplier(ctx, *v))
	case *models.Product:
		return wrap(s.UpdateProduct(ctx, *v))
	case *models.ProductVariant:
		return wrap(s.UpdateProductVariant(ctx, *v))
	case *models.Order:
		return wrap(s.UpdateOrder(ctx, *v))
	case *models.OrderItem:
		return wrap(s.UpdateOrderItem(ctx, *v))
	case *models.Payment:
		return wrap(s.UpdatePayment(ctx, *v))
	case *models.ShippingService:
		return wrap(s.UpdateShippingService(ctx, *v))
	case *models.OrderStatusHistory:
		return wrap(s.UpdateOrderStatusHistory(ctx, *v))
	case *models.Review:
		return wrap(s.UpdateReview(ctx, *v))
	default:
		return nil, fmt.Errorf("update: unsupported entity %T", e)
	}
}

func (s *Store) Get(ctx context.Context, kind models.Kind, id int64) (models.Entity, error) {
	switch kind {
	case models.KindUser:
		return wrap(s.GetUser(ctx, id))
	case models.KindSupplier:
		return wrap(s.GetSupplier(ctx, id))
	case models.KindProduct:
		return wrap(s.GetProduct(ctx, id))
	case models.KindProductVariant:
		return wrap(s.GetProductVariant(ctx, id))
	case models.KindOrder:
		return wrap(s.GetOrder(ctx, id))
	case models.KindOrderItem:
		return wrap(s.GetOrderItem(ctx, id))
	case models.KindPayment:
		return wrap(s.GetPayment(ctx, id))
	case models.KindShippingService:
		return wrap(s.GetShippingService(ctx, id))
	case models.KindOrderStatusHistory:
		return wrap(s.GetOrderStatusHistory(ctx, id))
	case models.KindReview:
		return wrap(s.GetReview(ctx, id))
	default:
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
}
