package httpapi

import (
	"sort"

	"github.com/safar/loja/internal/models"
)

// resources maps admin URL segments to entity kinds.
var resources = map[string]models.Kind{
	"users":             models.KindUser,
	"suppliers":         models.KindSupplier,
	"products":          models.KindProduct,
	"variants":          models.KindProductVariant,
	"orders":            models.KindOrder,
	"order-items":       models.KindOrderItem,
	"payments":          models.KindPayment,
	"shipping-services": models.KindShippingService,
	"status-history":    models.KindOrderStatusHistory,
	"reviews":           models.KindReview,
}

func resourceNames() []string {
	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
