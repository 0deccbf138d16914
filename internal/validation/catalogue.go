package validation

import "github.com/safar/loja/internal/models"

// fieldRules maps each entity kind to its ordered field rules.
var fieldRules = map[models.Kind][]Rule{
	models.KindUser: {
		typed(func(u *models.User) []Violation {
			return check(required("name", u.Name), maxLength("name", u.Name, 100))
		}),
		typed(func(u *models.User) []Violation {
			return check(required("email", u.Email), maxLength("email", u.Email, 254), email("email", u.Email))
		}),
		typed(func(u *models.User) []Violation {
			return check(minLength("password", u.Password, 8), maxLength("password", u.Password, 255))
		}),
	},
	models.KindSupplier: {
		typed(func(s *models.Supplier) []Violation {
			return check(required("name", s.Name), maxLength("name", s.Name, 100))
		}),
		typed(func(s *models.Supplier) []Violation {
			return check(required("phone", s.Phone), maxLength("phone", s.Phone, 15))
		}),
		typed(func(s *models.Supplier) []Violation {
			return check(required("email", s.Email), maxLength("email", s.Email, 254), email("email", s.Email))
		}),
		typed(func(s *models.Supplier) []Violation {
			return check(required("address", s.Address), maxLength("address", s.Address, 255))
		}),
		typed(func(s *models.Supplier) []Violation {
			return check(required("tax_id", s.TaxID), exactLength("tax_id", s.TaxID, 14))
		}),
	},
	models.KindProduct: {
		typed(func(p *models.Product) []Violation {
			return check(required("name", p.Name), maxLength("name", p.Name, 100))
		}),
		typed(func(p *models.Product) []Violation {
			return check(required("description", p.Description))
		}),
		typed(func(p *models.Product) []Violation {
			return check(nonNegative("price", p.Price), money("price", p.Price))
		}),
		typed(func(p *models.Product) []Violation {
			return check(nonNegativeInt("stock_quantity", p.StockQuantity))
		}),
	},
	models.KindProductVariant: {
		typed(func(v *models.ProductVariant) []Violation {
			return check(required("size", v.Size), maxLength("size", v.Size, 10))
		}),
		typed(func(v *models.ProductVariant) []Violation {
			return check(required("color", v.Color), maxLength("color", v.Color, 50))
		}),
		typed(func(v *models.ProductVariant) []Violation {
			return check(optionalMaxLength("customization", v.Customization, 255))
		}),
		typed(func(v *models.ProductVariant) []Violation {
			return check(money("extra_price", v.ExtraPrice))
		}),
	},
	models.KindOrder: {
		typed(func(o *models.Order) []Violation {
			return check(requiredDate("order_date", o.OrderDate))
		}),
		typed(func(o *models.Order) []Violation {
			return check(nonNegative("total_value", o.TotalValue), money("total_value", o.TotalValue))
		}),
		typed(func(o *models.Order) []Violation {
			return check(required("status", o.Status), maxLength("status", o.Status, 50))
		}),
		typed(func(o *models.Order) []Violation {
			return check(required("delivery_address", o.DeliveryAddress), maxLength("delivery_address", o.DeliveryAddress, 255))
		}),
	},
	models.KindOrderItem: {
		typed(func(i *models.OrderItem) []Violation {
			return check(nonNegativeInt("quantity", i.Quantity))
		}),
		typed(func(i *models.OrderItem) []Violation {
			return check(nonNegative("unit_price", i.UnitPrice), money("unit_price", i.UnitPrice))
		}),
	},
	models.KindPayment: {
		typed(func(p *models.Payment) []Violation {
			return check(required("payment_method", p.Method), maxLength("payment_method", p.Method, 50))
		}),
		typed(func(p *models.Payment) []Violation {
			return check(requiredDate("payment_date", p.PaymentDate))
		}),
		typed(func(p *models.Payment) []Violation {
			return check(nonNegative("amount", p.Amount), money("amount", p.Amount))
		}),
	},
	models.KindShippingService: {
		typed(func(s *models.ShippingService) []Violation {
			return check(required("carrier_name", s.CarrierName), maxLength("carrier_name", s.CarrierName, 100))
		}),
		typed(func(s *models.ShippingService) []Violation {
			return check(nonNegative("shipping_price", s.ShippingPrice), money("shipping_price", s.ShippingPrice))
		}),
		typed(func(s *models.ShippingService) []Violation {
			return check(required("service_type", s.ServiceType), maxLength("service_type", s.ServiceType, 50))
		}),
		typed(func(s *models.ShippingService) []Violation {
			return check(nonNegativeInt("delivery_days", s.DeliveryDays))
		}),
	},
	models.KindOrderStatusHistory: {
		typed(func(h *models.OrderStatusHistory) []Violation {
			return check(requiredDate("change_date", h.ChangeDate))
		}),
		typed(func(h *models.OrderStatusHistory) []Violation {
			return check(maxLength("previous_status", h.PreviousStatus, 50), maxLength("current_status", h.CurrentStatus, 50))
		}),
	},
	models.KindReview: {
		typed(func(r *models.Review) []Violation {
			return check(between("rating", r.Rating, 0, 5))
		}),
	},
}
