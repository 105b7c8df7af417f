package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"tienda/internal/models"
)

// ProductProvider is the store surface the product handlers need.
type ProductProvider interface {
	List() ([]models.ProductWithCategory, error)
	ListByCategory(categoryID int64) ([]models.ProductWithCategory, error)
	FindByID(id int64) (*models.Product, error)
	Create(p *models.Product) (*models.Product, error)
	Update(p *models.Product) error
	Delete(id int64) error
}

// Products groups the /api/productos handlers.
type Products struct {
	store  ProductProvider
	images *ImageStore
}

// NewProducts creates a new Products handler group.
func NewProducts(store ProductProvider, images *ImageStore) *Products {
	return &Products{store: store, images: images}
}

// productResponse carries a product on the wire with the price as a
// plain JSON number.
type productResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"nombre"`
	Description  string  `json:"descripcion"`
	Price        float64 `json:"precio"`
	CategoryID   int64   `json:"categoria_id"`
	Image        *string `json:"imagen"`
	CategoryName string  `json:"categoria_nombre,omitempty"`
}

// toResponse maps a product row to its wire form.
func toResponse(p models.Product, categoryName string) productResponse {
	return productResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price.InexactFloat64(),
		CategoryID:   p.CategoryID,
		Image:        p.Image,
		CategoryName: categoryName,
	}
}

// joinedResponses maps joined rows to wire form, never returning nil so
// empty results serialize as [].
func joinedResponses(items []models.ProductWithCategory) []productResponse {
	out := make([]productResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p.Product, p.CategoryName))
	}
	return out
}

// List handles GET /api/productos: all products with their category name.
func (h *Products) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, joinedResponses(items))
}

// ListByCategory handles GET /api/productos/categoria/{categoria_id}.
// An unknown or empty category yields an empty array.
func (h *Products) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := urlID(r, "categoria_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id de categoría inválido")
		return
	}

	items, err := h.store.ListByCategory(categoryID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, joinedResponses(items))
}

// Get handles GET /api/productos/{id}: the raw row, without the join.
func (h *Products) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}

	p, err := h.store.FindByID(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "producto no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*p, ""))
}

// Create handles POST /api/productos. The body is multipart form data
// with an optional image; the category reference is validated before
// the insert.
func (h *Products) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := h.parseProductForm(w, r)
	if !ok {
		return
	}

	created, err := h.store.Create(p)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": created.ID})
}

// Update handles PUT /api/productos/{id}. All fields are overwritten,
// including the image reference: sending no image clears it.
func (h *Products) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}

	p, ok := h.parseProductForm(w, r)
	if !ok {
		return
	}
	p.ID = id

	if err := h.store.Update(p); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "producto actualizado"})
}

// Delete handles DELETE /api/productos/{id}.
func (h *Products) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}

	if err := h.store.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "producto eliminado"})
}

// parseProductForm reads and validates the product write form, saving
// the uploaded image if one is present. On failure it writes the error
// response and returns ok=false.
func (h *Products) parseProductForm(w http.ResponseWriter, r *http.Request) (*models.Product, bool) {
	// Cap the body at the upload limit plus room for the text fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+64<<10)

	err := r.ParseMultipartForm(maxUploadSize)
	if err == http.ErrNotMultipart {
		// Plain form posts without an image are fine too.
		err = r.ParseForm()
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		writeError(w, http.StatusRequestEntityTooLarge, errImageTooLarge.Error())
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "formulario inválido")
		return nil, false
	}

	name := r.FormValue("nombre")
	description := r.FormValue("descripcion")
	if msg := validateProduct(name, description); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return nil, false
	}

	price, err := decimal.NewFromString(r.FormValue("precio"))
	if err != nil || price.IsNegative() {
		writeError(w, http.StatusBadRequest, "precio inválido")
		return nil, false
	}

	categoryID, err := strconv.ParseInt(r.FormValue("categoria_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID de categoría inválido")
		return nil, false
	}

	image, err := h.images.Save(r)
	switch {
	case err == errImageTooLarge:
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return nil, false
	case err == errImageType:
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	case err != nil:
		writeStoreError(w, err)
		return nil, false
	}

	return &models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		Image:       image,
	}, true
}
