package models

import "fmt"

// Kind tags an entity type. It is the key of the validation rule table and
// of the referential-integrity policy table.
type Kind string

const (
	KindUser               Kind = "user"
	KindSupplier           Kind = "supplier"
	KindProduct            Kind = "product"
	KindProductVariant     Kind = "product_variant"
	KindOrder              Kind = "order"
	KindOrderItem          Kind = "order_item"
	KindPayment            Kind = "payment"
	KindShippingService    Kind = "shipping_service"
	KindOrderStatusHistory Kind = "order_status_history"
	KindReview             Kind = "review"
)

// Kinds lists every entity kind, parents before children.
var Kinds = []Kind{
	KindUser,
	KindSupplier,
	KindProduct,
	KindProductVariant,
	KindOrder,
	KindOrderItem,
	KindPayment,
	KindShippingService,
	KindOrderStatusHistory,
	KindReview,
}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Entity is implemented by pointers to every persisted type.
type Entity interface {
	Kind() Kind
	Key() int64
	SetKey(id int64)
	References() []Reference
}

// Reference is a foreign key held by an entity. For a required reference ID
// zero means it is missing. Optional references are listed only when set, so
// a listed optional reference with ID zero points at no row.
type Reference struct {
	Field    string
	Kind     Kind
	ID       int64
	Required bool
}

// New returns a zero entity of the given kind.
func New(kind Kind) (Entity, error) {
	switch kind {
	case KindUser:
		return &User{}, nil
	case KindSupplier:
		return &Supplier{}, nil
	case KindProduct:
		return &Product{}, nil
	case KindProductVariant:
		return &ProductVariant{}, nil
	case KindOrder:
		return &Order{}, nil
	case KindOrderItem:
		return &OrderItem{}, nil
	case KindPayment:
		return &Payment{}, nil
	case KindShippingService:
		return &ShippingService{}, nil
	case KindOrderStatusHistory:
		return &OrderStatusHistory{}, nil
	case KindReview:
		return &Review{}, nil
	}
	return nil, fmt.Errorf("unknown entity kind %q", kind)
}
