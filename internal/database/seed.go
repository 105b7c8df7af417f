package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a couple of
// categories and sample products. It is a no-op when categories already
// exist.
func Seed(db *sql.DB) error {
	// Check if any categories exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categorias").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	seedCategories := []struct {
		name, description string
		products          []struct {
			name, description, price string
		}
	}{
		{
			name:        "Juguetes",
			description: "Juguetes para todas las edades",
			products: []struct{ name, description, price string }{
				{"Oso de peluche", "Oso de peluche suave de 40 cm", "19.99"},
				{"Rompecabezas 500 piezas", "Paisaje de montaña", "12.50"},
			},
		},
		{
			name:        "Electrónica",
			description: "Dispositivos y accesorios",
			products: []struct{ name, description, price string }{
				{"Auriculares inalámbricos", "Bluetooth 5.3, 30 h de batería", "49.90"},
			},
		},
	}

	for _, c := range seedCategories {
		var categoryID int64
		err := db.QueryRow(`
			INSERT INTO categorias (nombre, descripcion) VALUES ($1, $2) RETURNING id
		`, c.name, c.description).Scan(&categoryID)
		if err != nil {
			return fmt.Errorf("seed insert category: %w", err)
		}

		for _, p := range c.products {
			_, err := db.Exec(`
				INSERT INTO productos (nombre, descripcion, precio, categoria_id)
				VALUES ($1, $2, $3, $4)
			`, p.name, p.description, p.price, categoryID)
			if err != nil {
				return fmt.Errorf("seed insert product: %w", err)
			}
		}
	}

	slog.Info("database seeded with sample catalog data")
	return nil
}
