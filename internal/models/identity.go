package models

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u *User) Kind() Kind              { return KindUser }
func (u *User) Key() int64              { return u.ID }
func (u *User) SetKey(id int64)         { u.ID = id }
func (u *User) References() []Reference { return nil }

type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
}

func (s *Supplier) Kind() Kind              { return KindSupplier }
func (s *Supplier) Key() int64              { return s.ID }
func (s *Supplier) SetKey(id int64)         { s.ID = id }
func (s *Supplier) References() []Reference { return nil }
