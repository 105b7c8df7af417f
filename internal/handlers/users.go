package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"tienda/internal/middleware"
	"tienda/internal/models"
	"tienda/internal/token"
)

// UserProvider is the store surface the account handlers need.
type UserProvider interface {
	Register(name, email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	FindByID(id int64) (*models.User, error)
}

// Users groups the /api/usuarios handlers.
type Users struct {
	store     UserProvider
	jwtSecret string
}

// NewUsers creates a new Users handler group.
func NewUsers(store UserProvider, jwtSecret string) *Users {
	return &Users{store: store, jwtSecret: jwtSecret}
}

// registerRequest is the JSON body for POST /api/usuarios.
type registerRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"contrasena"`
}

// loginRequest is the JSON body for POST /api/usuarios/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"contrasena"`
}

// Register handles POST /api/usuarios.
func (h *Users) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}
	if msg := validateUser(req.Name, req.Email, req.Password); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	u, err := h.store.Register(req.Name, req.Email, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": u.ID})
}

// Login handles POST /api/usuarios/login. A successful credential check
// returns a bearer token valid for one hour.
func (h *Users) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	u, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	t, err := token.Issue(u.ID, u.Email, h.jwtSecret)
	if err != nil {
		slog.Error("token issue failed", "error", err)
		writeError(w, http.StatusInternalServerError, "error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": t})
}

// Me handles GET /api/usuarios/me: the profile behind the bearer token.
func (h *Users) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "no autenticado")
		return
	}

	u, err := h.store.FindByID(claims.UserID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if u == nil {
		// Account deleted after the token was issued.
		writeError(w, http.StatusUnauthorized, "cuenta no encontrada")
		return
	}
	writeJSON(w, http.StatusOK, u)
}
