package domain

import "time"

// Cart is the per-user singleton cart. It is created at registration and
// deleted with the account.
type Cart struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	Lines     []CartLine `json:"lines,omitempty"`
}

// CartLine holds one product in a cart. At most one line exists per
// (cart, product) pair; re-adding a product merges into the existing line.
type CartLine struct {
	ID        int64            `json:"id"`
	CartID    int64            `json:"cartId"`
	ProductID int64            `json:"productId"`
	Count     int              `json:"count"`
	Product   *Product         `json:"product,omitempty"`
	Options   []CartLineOption `json:"options,omitempty"`
}

// CartLineOption is one customization selection (clothes + color) on a cart
// line, with its own quantity. The merge identity is the full
// (line, clothes, color) triple: the same clothes in a different color is a
// separate row.
type CartLineOption struct {
	ID         int64  `json:"id"`
	CartLineID int64  `json:"cartLineId"`
	ClothesID  int64  `json:"clothesId"`
	Color      string `json:"color"`
	Count      int    `json:"count"`
}

// OptionSelection names one clothes+color choice in an add-to-cart request.
type OptionSelection struct {
	ClothesID int64
	Color     string
}
