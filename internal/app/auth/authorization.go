// Package auth holds the access-control predicates applied on top of JWT
// authentication. Authentication says who the caller is; these predicates say
// what the caller may touch.
package auth

import "github.com/adeolu/campusreg/internal/app/models"

// IsOwner reports whether the acting account owns a resource. Ownership is
// strict identity; admins get no implicit ownership here.
func IsOwner(actorID, ownerID int64) bool {
	return actorID > 0 && actorID == ownerID
}

// IsAdmin reports whether an account may perform admin-only operations
func IsAdmin(actor *models.User) bool {
	return actor != nil && actor.IsSuperuser
}
