package models

import "github.com/shopspring/decimal"

type Product struct {
	ID            int64           `json:"id"`
	SupplierID    int64           `json:"supplier_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}

func (p *Product) Kind() Kind      { return KindProduct }
func (p *Product) Key() int64      { return p.ID }
func (p *Product) SetKey(id int64) { p.ID = id }

func (p *Product) References() []Reference {
	return []Reference{
		{Field: "supplier_id", Kind: KindSupplier, ID: p.SupplierID, Required: true},
	}
}

// ProductVariant is a size and color option of a product. ExtraPrice is
// added on top of the product price and defaults to zero.
type ProductVariant struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"product_id"`
	Size          string          `json:"size"`
	Color         string          `json:"color"`
	Customization *string         `json:"customization"`
	ExtraPrice    decimal.Decimal `json:"extra_price"`
}

func (v *ProductVariant) Kind() Kind      { return KindProductVariant }
func (v *ProductVariant) Key() int64      { return v.ID }
func (v *ProductVariant) SetKey(id int64) { v.ID = id }

func (v *ProductVariant) References() []Reference {
	return []Reference{
		{Field: "product_id", Kind: KindProduct, ID: v.ProductID, Required: true},
	}
}
