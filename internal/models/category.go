// Package models defines the catalog entities persisted in PostgreSQL.
// JSON tags use the Spanish wire names the public API exposes.
package models

// Category groups products. Deleting a category with dependent products
// is rejected by the schema (ON DELETE RESTRICT).
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}
