package store

import (
	"database/sql"
	"fmt"

	"tienda/internal/models"
)

// ProductStore manages products in the database. Writes validate the
// category reference inside the same transaction as the insert or
// update, so a concurrent category delete cannot leave a dangling
// reference.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, nombre, descripcion, precio, categoria_id, imagen`

const productJoinedQuery = `
	SELECT p.id, p.nombre, p.descripcion, p.precio, p.categoria_id, p.imagen,
	       c.nombre AS categoria_nombre
	FROM productos p
	JOIN categorias c ON c.id = p.categoria_id
`

// List returns all products joined with their category name, ordered by id.
func (s *ProductStore) List() ([]models.ProductWithCategory, error) {
	rows, err := s.db.Query(productJoinedQuery + ` ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectJoined(rows)
}

// ListByCategory returns the products of one category joined with the
// category name. An unknown or empty category yields an empty slice,
// not an error.
func (s *ProductStore) ListByCategory(categoryID int64) ([]models.ProductWithCategory, error) {
	rows, err := s.db.Query(productJoinedQuery+` WHERE p.categoria_id = $1 ORDER BY p.id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	return collectJoined(rows)
}

// collectJoined scans joined product rows into a slice.
func collectJoined(rows *sql.Rows) ([]models.ProductWithCategory, error) {
	var items []models.ProductWithCategory
	for rows.Next() {
		var p models.ProductWithCategory
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.Image,
			&p.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// FindByID retrieves a product by ID without the category join.
// Returns nil if not found.
func (s *ProductStore) FindByID(id int64) (*models.Product, error) {
	var p models.Product
	err := s.db.QueryRow(`SELECT `+productColumns+` FROM productos WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.Image)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return &p, nil
}

// Create inserts a new product after checking that its category exists.
// Both steps run in one transaction. Returns ErrCategoryNotFound when
// the reference is dangling.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create product: begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := categoryExists(tx, p.CategoryID); err != nil {
		return nil, err
	}

	var created models.Product
	err = tx.QueryRow(`
		INSERT INTO productos (nombre, descripcion, precio, categoria_id, imagen)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productColumns,
		p.Name, p.Description, p.Price, p.CategoryID, p.Image,
	).Scan(&created.ID, &created.Name, &created.Description, &created.Price, &created.CategoryID, &created.Image)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create product: commit: %w", err)
	}
	return &created, nil
}

// Update overwrites all fields of an existing product, re-validating
// the category reference in the same transaction. Returns
// ErrCategoryNotFound for a dangling reference and ErrNotFound when no
// row matches the id.
func (s *ProductStore) Update(p *models.Product) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("update product: begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := categoryExists(tx, p.CategoryID); err != nil {
		return err
	}

	res, err := tx.Exec(`
		UPDATE productos
		SET nombre = $1, descripcion = $2, precio = $3, categoria_id = $4, imagen = $5
		WHERE id = $6
	`, p.Name, p.Description, p.Price, p.CategoryID, p.Image, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("update product: commit: %w", err)
	}
	return nil
}

// Delete removes a product by ID. Returns ErrNotFound if no row matches.
func (s *ProductStore) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// categoryExists checks the referenced category inside the write
// transaction. The row share lock keeps a concurrent delete of the
// category from committing before this transaction does.
func categoryExists(tx *sql.Tx, categoryID int64) error {
	var id int64
	err := tx.QueryRow(`SELECT id FROM categorias WHERE id = $1 FOR SHARE`, categoryID).Scan(&id)
	if err == sql.ErrNoRows {
		return ErrCategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	return nil
}
