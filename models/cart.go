package models

// CartLine is one product-quantity pairing in a user's cart. The product is
// denormalized at add time so later catalog edits do not rewrite carts.
type CartLine struct {
	Meta
	ProductID string  `json:"productId"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"` // always > 0; zero removes the line
	UserID    string  `json:"userId"`
}

func (l *CartLine) LineTotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}
