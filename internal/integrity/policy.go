package integrity

import "github.com/safar/loja/internal/models"

// Policy says what deleting a parent does to its dependents.
type Policy int

const (
	// Cascade deletes dependents together with the parent.
	Cascade Policy = iota
	// Restrict refuses to delete the parent while any dependent exists.
	Restrict
)

func (p Policy) String() string {
	switch p {
	case Cascade:
		return "cascade"
	case Restrict:
		return "restrict"
	}
	return "unknown"
}

// Relation is one foreign key: Child.Column references Parent.
type Relation struct {
	Parent models.Kind
	Child  models.Kind
	Column string
	Policy Policy
}

// Relations is the deletion policy for every foreign key in the schema.
// Within a parent, entries are checked in table order.
var Relations = []Relation{
	{Parent: models.KindSupplier, Child: models.KindProduct, Column: "supplier_id", Policy: Cascade},
	{Parent: models.KindProduct, Child: models.KindProductVariant, Column: "product_id", Policy: Cascade},
	{Parent: models.KindProduct, Child: models.KindReview, Column: "product_id", Policy: Cascade},
	{Parent: models.KindProduct, Child: models.KindOrderItem, Column: "product_id", Policy: Restrict},
	{Parent: models.KindProductVariant, Child: models.KindOrderItem, Column: "variant_id", Policy: Restrict},
	{Parent: models.KindUser, Child: models.KindReview, Column: "user_id", Policy: Cascade},
	{Parent: models.KindUser, Child: models.KindOrder, Column: "user_id", Policy: Restrict},
	{Parent: models.KindOrder, Child: models.KindOrderItem, Column: "order_id", Policy: Restrict},
	{Parent: models.KindOrder, Child: models.KindPayment, Column: "order_id", Policy: Restrict},
	{Parent: models.KindOrder, Child: models.KindShippingService, Column: "order_id", Policy: Restrict},
	{Parent: models.KindOrder, Child: models.KindOrderStatusHistory, Column: "order_id", Policy: Restrict},
}

// ChildrenOf returns the relations whose parent is kind, in table order.
func ChildrenOf(kind models.Kind) []Relation {
	var out []Relation
	for _, rel := range Relations {
		if rel.Parent == kind {
			out = append(out, rel)
		}
	}
	return out
}

// Lookup returns the policy between parent and child.
func Lookup(parent, child models.Kind) (Relation, bool) {
	for _, rel := range Relations {
		if rel.Parent == parent && rel.Child == child {
			return rel, true
		}
	}
	return Relation{}, false
}
