package apperr

import (
	"errors"
	"strings"
)

// Sentinel errors for the HTTP layer to map onto status codes.
var (
	// ErrInvalidID means a caller-supplied identifier is not a 24-hex ObjectId.
	ErrInvalidID = errors.New("ID inválido (esperado ObjectId de 24 hex)")
	// ErrNotFound means the lookup/update/delete target does not exist.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrDuplicateEmail means the unique index on usuarios.email rejected a write.
	ErrDuplicateEmail = errors.New("email já cadastrado")
)

// ValidationError carries the complete list of required fields that were
// absent or blank in an input, not just the first one.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "campos obrigatórios ausentes: " + strings.Join(e.Fields, ", ")
}

// NewValidation returns a ValidationError, or nil when no field is missing.
func NewValidation(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
