package domain

import "time"

// Product is a sellable item. Price is an integral amount in the smallest
// currency unit. Gendered mirrors the catalog's boy/girl doll distinction.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Stock       int       `json:"stock"`
	Gendered    bool      `json:"gendered"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Clothes is a selectable product variant (doll clothing). The color chosen
// for it lives on the cart/order option row, not here.
type Clothes struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Name      string    `json:"name"`
	File      string    `json:"file,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductModel is a 3D model asset attached to a product for the companion app.
type ProductModel struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Name      string    `json:"name"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
