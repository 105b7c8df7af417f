package handlers

import (
	"encoding/json"
	"net/http"

	"tienda/internal/models"
)

// CategoryProvider is the store surface the category handlers need.
type CategoryProvider interface {
	List() ([]models.Category, error)
	FindByID(id int64) (*models.Category, error)
	Create(c *models.Category) (*models.Category, error)
	Update(c *models.Category) error
	Delete(id int64) error
}

// Categories groups the /api/categorias handlers.
type Categories struct {
	store CategoryProvider
}

// NewCategories creates a new Categories handler group.
func NewCategories(store CategoryProvider) *Categories {
	return &Categories{store: store}
}

// categoryRequest is the JSON body for category writes.
type categoryRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// List handles GET /api/categorias.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/categorias/{id}.
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}

	c, err := h.store.FindByID(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "categoría no encontrada")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Create handles POST /api/categorias.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}
	if msg := validateCategory(req.Name, req.Description); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.store.Create(&models.Category{Name: req.Name, Description: req.Description})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": created.ID})
}

// Update handles PUT /api/categorias/{id}. All fields are overwritten.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}
	if msg := validateCategory(req.Name, req.Description); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	err = h.store.Update(&models.Category{ID: id, Name: req.Name, Description: req.Description})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "categoría actualizada"})
}

// Delete handles DELETE /api/categorias/{id}. Categories with dependent
// products cannot be deleted (409).
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}

	if err := h.store.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "categoría eliminada"})
}
