package models

import "github.com/shopspring/decimal"

// Product is a catalog item. Image is the generated filename of an
// uploaded picture, nil when the product has none.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	CategoryID  int64           `json:"categoria_id"`
	Image       *string         `json:"imagen"`
}

// ProductWithCategory is a product row joined with its category name,
// as returned by the list endpoints.
type ProductWithCategory struct {
	Product
	CategoryName string `json:"categoria_nombre"`
}
