package models

type Review struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	ProductID int64   `json:"product_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
}

func (r *Review) Kind() Kind      { return KindReview }
func (r *Review) Key() int64      { return r.ID }
func (r *Review) SetKey(id int64) { r.ID = id }

func (r *Review) References() []Reference {
	return []Reference{
		{Field: "user_id", Kind: KindUser, ID: r.UserID, Required: true},
		{Field: "product_id", Kind: KindProduct, ID: r.ProductID, Required: true},
	}
}
