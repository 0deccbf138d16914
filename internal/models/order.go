package models

import "github.com/shopspring/decimal"

type Order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	OrderDate       Date            `json:"order_date"`
	TotalValue      decimal.Decimal `json:"total_value"`
	Status          string          `json:"status"`
	DeliveryAddress string          `json:"delivery_address"`
}

func (o *Order) Kind() Kind      { return KindOrder }
func (o *Order) Key() int64      { return o.ID }
func (o *Order) SetKey(id int64) { o.ID = id }

func (o *Order) References() []Reference {
	return []Reference{
		{Field: "user_id", Kind: KindUser, ID: o.UserID, Required: true},
	}
}

// OrderItem is a line of an order. VariantID is optional; nil means the item
// was ordered without a variant.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	VariantID *int64          `json:"variant_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (i *OrderItem) Kind() Kind      { return KindOrderItem }
func (i *OrderItem) Key() int64      { return i.ID }
func (i *OrderItem) SetKey(id int64) { i.ID = id }

func (i *OrderItem) References() []Reference {
	refs := []Reference{
		{Field: "order_id", Kind: KindOrder, ID: i.OrderID, Required: true},
		{Field: "product_id", Kind: KindProduct, ID: i.ProductID, Required: true},
	}
	if i.VariantID != nil {
		refs = append(refs, Reference{Field: "variant_id", Kind: KindProductVariant, ID: *i.VariantID})
	}
	return refs
}

type Payment struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	Method      string          `json:"payment_method"`
	PaymentDate Date            `json:"payment_date"`
	Amount      decimal.Decimal `json:"amount"`
}

func (p *Payment) Kind() Kind      { return KindPayment }
func (p *Payment) Key() int64      { return p.ID }
func (p *Payment) SetKey(id int64) { p.ID = id }

func (p *Payment) References() []Reference {
	return []Reference{
		{Field: "order_id", Kind: KindOrder, ID: p.OrderID, Required: true},
	}
}

type ShippingService struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	CarrierName   string          `json:"carrier_name"`
	ShippingPrice decimal.Decimal `json:"shipping_price"`
	ServiceType   string          `json:"service_type"`
	DeliveryDays  int             `json:"delivery_days"`
}

func (s *ShippingService) Kind() Kind      { return KindShippingService }
func (s *ShippingService) Key() int64      { return s.ID }
func (s *ShippingService) SetKey(id int64) { s.ID = id }

func (s *ShippingService) References() []Reference {
	return []Reference{
		{Field: "order_id", Kind: KindOrder, ID: s.OrderID, Required: true},
	}
}

type OrderStatusHistory struct {
	ID             int64  `json:"id"`
	OrderID        int64  `json:"order_id"`
	ChangeDate     Date   `json:"change_date"`
	PreviousStatus string `json:"previous_status"`
	CurrentStatus  string `json:"current_status"`
}

func (h *OrderStatusHistory) Kind() Kind      { return KindOrderStatusHistory }
func (h *OrderStatusHistory) Key() int64      { return h.ID }
func (h *OrderStatusHistory) SetKey(id int64) { h.ID = id }

func (h *OrderStatusHistory) References() []Reference {
	return []Reference{
		{Field: "order_id", Kind: KindOrder, ID: h.OrderID, Required: true},
	}
}
