// Package handlers implements the JSON API endpoints for the catalog:
// productos, categorias and usuarios. Handler groups depend on small
// provider interfaces so tests can swap in mocks.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tienda/internal/store"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError writes a JSON error body with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps store sentinel errors to HTTP status codes.
// Unrecognized errors are logged and become 500s.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "no encontrado")
	case errors.Is(err, store.ErrCategoryNotFound):
		writeError(w, http.StatusBadRequest, "ID de categoría inválido")
	case errors.Is(err, store.ErrCategoryInUse):
		writeError(w, http.StatusConflict, "la categoría tiene productos asociados")
	case errors.Is(err, store.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, "el email ya está registrado")
	case errors.Is(err, store.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "email o contraseña incorrectos")
	default:
		slog.Error("storage failure", "error", err)
		writeError(w, http.StatusInternalServerError, "error interno del servidor")
	}
}

// urlID parses the {id} (or named) route parameter as an int64.
func urlID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
