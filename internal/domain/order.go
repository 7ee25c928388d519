package domain

import "time"

// PurchaseOrder is a snapshot of selected cart lines taken at checkout.
// State false means the order was received, true means it was processed.
type PurchaseOrder struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"userId"`
	PostalCode string      `json:"postalCode"`
	Address    string      `json:"address"`
	State      bool        `json:"state"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Lines      []OrderLine `json:"lines,omitempty"`
}

// OrderLine copies a cart line's product and count at order time. Counts are
// never merged or incremented after creation.
type OrderLine struct {
	ID        int64             `json:"id"`
	OrderID   int64             `json:"orderId"`
	ProductID int64             `json:"productId"`
	Count     int               `json:"count"`
	Product   *Product          `json:"product,omitempty"`
	Options   []OrderLineOption `json:"options,omitempty"`
}

// OrderLineOption is a verbatim copy of a cart line option at order time.
type OrderLineOption struct {
	ID          int64  `json:"id"`
	OrderLineID int64  `json:"orderLineId"`
	ClothesID   int64  `json:"clothesId"`
	Color       string `json:"color"`
	Count       int    `json:"count"`
}

// OrderItem names one product (and its count) in an order request.
type OrderItem struct {
	ProductID int64
	Count     int
}

// OrderItemOptions carries the option selections for one ordered product.
type OrderItemOptions struct {
	ProductID  int64
	ClothesIDs []int64
	Colors     []string
	Counts     []int
}
