package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/integrity"
	"github.com/safar/loja/internal/models"
	"github.com/safar/loja/internal/validation"
	"github.com/safar/loja/migrations"
)

func TestUserRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := mustCreateUser(t, s, "ana@example.com")
	assert.NotZero(t, u.ID)

	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got.Name = "Ana Maria"
	updated, err := s.UpdateUser(ctx, *got)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
}

func TestUserEmailUniqueness(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := mustCreateUser(t, s, "dup@example.com")

	_, err := s.CreateUser(ctx, models.User{Name: "Other", Email: "dup@example.com", Password: "password1"})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("email", validation.RuleUnique))

	second := mustCreateUser(t, s, "other@example.com")
	second.Email = first.Email
	_, err = s.UpdateUser(ctx, *second)
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("email", validation.RuleUnique))

	// Saving a user under its own email is not a conflict.
	_, err = s.UpdateUser(ctx, *first)
	assert.NoError(t, err)
}

func TestConcurrentEmailClaims(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const workers = 5
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreateUser(ctx, models.User{Name: "Racer", Email: "race@example.com", Password: "password1"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has("email", validation.RuleUnique))
	}
	assert.Equal(t, 1, succeeded)
}

func TestCreateProductUnknownSupplier(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateProduct(context.Background(), models.Product{
		SupplierID:    999,
		Name:          "Orphan",
		Price:         decimal.NewFromInt(1),
		StockQuantity: 1,
	})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("supplier_id", validation.RuleExists))
}

func TestOrderItemWithoutProductIsRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	order := mustCreateOrder(t, s, mustCreateUser(t, s, "buyer@example.com").ID)

	_, err := s.CreateOrderItem(ctx, models.OrderItem{
		OrderID:   order.ID,
		ProductID: 0,
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(10),
	})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("product_id", validation.RuleRequired))

	items, err := s.ListOrderItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderItemVariantIsOptional(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	product := mustCreateProduct(t, s, mustCreateSupplier(t, s).ID)
	order := mustCreateOrder(t, s, mustCreateUser(t, s, "buyer@example.com").ID)

	item, err := s.CreateOrderItem(ctx, models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  2,
		UnitPrice: decimal.RequireFromString("49.90"),
	})
	require.NoError(t, err)

	got, err := s.GetOrderItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.VariantID)
	assert.True(t, got.UnitPrice.Equal(decimal.RequireFromString("49.90")))

	variant, err := s.CreateProductVariant(ctx, models.ProductVariant{
		ProductID: product.ID,
		Size:      "M",
		Color:     "Azul",
	})
	require.NoError(t, err)
	assert.True(t, variant.ExtraPrice.IsZero())

	got.VariantID = int64Ptr(variant.ID)
	updated, err := s.UpdateOrderItem(ctx, *got)
	require.NoError(t, err)
	require.NotNil(t, updated.VariantID)
	assert.Equal(t, variant.ID, *updated.VariantID)

	got.VariantID = int64Ptr(variant.ID + 100)
	_, err = s.UpdateOrderItem(ctx, *got)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("variant_id", validation.RuleExists))
}

func TestUpdateMissingRow(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateUser(context.Background(), models.User{ID: 42, Name: "Ghost", Email: "ghost@example.com", Password: "password1"})
	assert.ErrorIs(t, err, database.ErrUserNotFound)
	assert.ErrorIs(t, err, database.ErrNotFound)

	_, err = s.GetReview(context.Background(), 42)
	assert.ErrorIs(t, err, database.ErrReviewNotFound)

	err = s.DeleteOrder(context.Background(), 42)
	assert.ErrorIs(t, err, database.ErrOrderNotFound)
}

func TestDeleteSupplierCascadesToProducts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sup := mustCreateSupplier(t, s)
	p1 := mustCreateProduct(t, s, sup.ID)
	p2 := mustCreateProduct(t, s, sup.ID)

	require.NoError(t, s.DeleteSupplier(ctx, sup.ID))

	for _, id := range []int64{p1.ID, p2.ID} {
		_, err := s.GetProduct(ctx, id)
		assert.ErrorIs(t, err, database.ErrProductNotFound)
	}
}

func TestDeleteProductCascadesToVariantsAndReviews(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sup := mustCreateSupplier(t, s)
	product := mustCreateProduct(t, s, sup.ID)
	variant, err := s.CreateProductVariant(ctx, models.ProductVariant{
		ProductID:     product.ID,
		Size:          "G",
		Color:         "Preto",
		Customization: strPtr("Nome nas costas"),
		ExtraPrice:    decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)
	user := mustCreateUser(t, s, "critic@example.com")
	review, err := s.CreateReview(ctx, models.Review{
		UserID:    user.ID,
		ProductID: product.ID,
		Rating:    5,
		Comment:   strPtr("Otimo"),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(ctx, product.ID))

	_, err = s.GetProductVariant(ctx, variant.ID)
	assert.ErrorIs(t, err, database.ErrProductVariantNotFound)
	_, err = s.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, database.ErrReviewNotFound)

	_, err = s.GetSupplier(ctx, sup.ID)
	assert.NoError(t, err)
	_, err = s.GetUser(ctx, user.ID)
	assert.NoError(t, err)
}

func TestDeleteOrderWithPaymentIsRestricted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	order := mustCreateOrder(t, s, mustCreateUser(t, s, "payer@example.com").ID)
	payment, err := s.CreatePayment(ctx, models.Payment{
		OrderID:     order.ID,
		Method:      "pix",
		PaymentDate: models.NewDate(2024, time.March, 6),
		Amount:      decimal.RequireFromString("99.80"),
	})
	require.NoError(t, err)

	err = s.DeleteOrder(ctx, order.ID)
	var ierr *integrity.Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, models.KindOrder, ierr.Parent)
	assert.Equal(t, models.KindPayment, ierr.Child)
	assert.Equal(t, 1, ierr.Count)

	_, err = s.GetOrder(ctx, order.ID)
	assert.NoError(t, err)
	got, err := s.GetPayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.PaymentDate, got.PaymentDate)

	require.NoError(t, s.DeletePayment(ctx, payment.ID))
	assert.NoError(t, s.DeleteOrder(ctx, order.ID))
}

func TestDeleteUserWithOrdersIsRestricted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := mustCreateUser(t, s, "loyal@example.com")
	mustCreateOrder(t, s, user.ID)

	err := s.DeleteUser(ctx, user.ID)
	var ierr *integrity.Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, models.KindOrder, ierr.Child)

	orders, err := s.ListOrdersByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestCascadeBlockedByRestrictRemovesNothing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sup := mustCreateSupplier(t, s)
	product := mustCreateProduct(t, s, sup.ID)
	order := mustCreateOrder(t, s, mustCreateUser(t, s, "buyer@example.com").ID)
	_, err := s.CreateOrderItem(ctx, models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  1,
		UnitPrice: product.Price,
	})
	require.NoError(t, err)

	err = s.DeleteSupplier(ctx, sup.ID)
	var ierr *integrity.Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, models.KindProduct, ierr.Parent)
	assert.Equal(t, models.KindOrderItem, ierr.Child)

	products, err := s.ListProductsBySupplier(ctx, sup.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestFulfilmentRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	order := mustCreateOrder(t, s, mustCreateUser(t, s, "ship@example.com").ID)

	sh, err := s.CreateShippingService(ctx, models.ShippingService{
		OrderID:       order.ID,
		CarrierName:   "Correios",
		ShippingPrice: decimal.RequireFromString("15.50"),
		ServiceType:   "SEDEX",
		DeliveryDays:  3,
	})
	require.NoError(t, err)

	_, err = s.CreateOrderStatusHistory(ctx, models.OrderStatusHistory{
		OrderID:        order.ID,
		ChangeDate:     models.NewDate(2024, time.March, 7),
		PreviousStatus: "pending",
		CurrentStatus:  "shipped",
	})
	require.NoError(t, err)

	services, err := s.ListShippingServices(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, sh.ID, services[0].ID)

	history, err := s.ListStatusHistory(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "shipped", history[0].CurrentStatus)

	_, err = s.CreateShippingService(ctx, models.ShippingService{
		OrderID:       order.ID,
		CarrierName:   "Correios",
		ShippingPrice: decimal.RequireFromString("-1"),
		ServiceType:   "PAC",
		DeliveryDays:  -2,
	})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("shipping_price", validation.RuleNonNegative))
	assert.True(t, verr.Has("delivery_days", validation.RuleNonNegative))
}

func TestGenericDispatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, &models.Supplier{
		Name:    "Generic",
		Phone:   "1133334444",
		Email:   "g@example.com",
		Address: "Rua C, 3",
		TaxID:   "11222333000144",
	})
	require.NoError(t, err)

	got, err := s.Get(ctx, models.KindSupplier, created.Key())
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.Get(ctx, models.KindSupplier, created.Key()+1)
	assert.True(t, errors.Is(err, database.ErrNotFound))

	require.NoError(t, s.Delete(ctx, models.KindSupplier, created.Key()))
	assert.Error(t, s.Delete(ctx, models.Kind("coupon"), 1))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	n, err := database.Migrate(ctx, db, migrations.FS, "up")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = database.Migrate(ctx, db, migrations.FS, "down")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = database.Migrate(ctx, db, migrations.FS, "up")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestListChildren(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sup := mustCreateSupplier(t, s)
	p := mustCreateProduct(t, s, sup.ID)

	children, err := s.ListChildren(ctx, models.KindSupplier, sup.ID, models.KindProduct)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, p.ID, children[0].Key())
	assert.IsType(t, &models.Product{}, children[0])

	_, err = s.ListChildren(ctx, models.KindSupplier, sup.ID+1, models.KindProduct)
	assert.ErrorIs(t, err, database.ErrSupplierNotFound)

	_, err = s.ListChildren(ctx, models.KindReview, 1, models.KindUser)
	assert.ErrorIs(t, err, integrity.ErrNoRelation)
}
