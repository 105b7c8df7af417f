package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for catalog and account fields.
const (
	maxNameLen        = 200
	maxDescriptionLen = 2_000
	maxEmailLen       = 320
	maxPasswordLen    = 72 // bcrypt input limit
)

// validateCategory checks category inputs and returns the first error found.
func validateCategory(name, description string) string {
	if strings.TrimSpace(name) == "" {
		return "nombre es obligatorio"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "nombre demasiado largo (máximo 200 caracteres)"
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "descripcion demasiado larga (máximo 2000 caracteres)"
	}
	return ""
}

// validateProduct checks product inputs other than the price, which is
// validated while parsing. Returns the first error found.
func validateProduct(name, description string) string {
	if strings.TrimSpace(name) == "" {
		return "nombre es obligatorio"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "nombre demasiado largo (máximo 200 caracteres)"
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "descripcion demasiado larga (máximo 2000 caracteres)"
	}
	return ""
}

// validateUser checks registration inputs and returns the first error found.
func validateUser(name, email, password string) string {
	if strings.TrimSpace(name) == "" {
		return "nombre es obligatorio"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "nombre demasiado largo (máximo 200 caracteres)"
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "email es obligatorio"
	}
	if len(email) > maxEmailLen || !strings.Contains(email, "@") {
		return "email inválido"
	}
	if password == "" {
		return "contrasena es obligatoria"
	}
	if len(password) > maxPasswordLen {
		return "contrasena demasiado larga (máximo 72 bytes)"
	}
	return ""
}
