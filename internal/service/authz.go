package service

import (
	"github.com/Fenn3kk/smpp-backend/internal/model"

	"github.com/google/uuid"
)

// CanAccess is the single ownership predicate applied to every resource that
// carries an owning user: ADMIN acts on anything, COMUM only on its own.
// Violations surface as Forbidden, never as NotFound — the caller is already
// authenticated, so "exists but is not yours" is a deliberate signal.
func CanAccess(principal *model.Usuario, ownerID uuid.UUID) bool {
	if principal == nil {
		return false
	}
	return principal.IsAdmin() || principal.ID == ownerID
}
