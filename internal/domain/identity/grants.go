package identity

import (
	"github.com/google/uuid"
)

// Grants is what an authenticated caller is allowed to do. It is the single
// authorization predicate shared by HTTP middleware, services and navigation.
type Grants struct {
	UserID      uuid.UUID
	Username    string
	Permissions []string
	IsAdmin     bool
}

// HasAny reports whether the caller satisfies an any-of requirement.
// Anonymous grants never pass. Administrators pass every check and an empty
// requirement passes for any authenticated caller. The AdminSentinel entry is
// satisfied only by administrators.
func (g Grants) HasAny(required ...string) bool {
	if !g.Authenticated() {
		return false
	}
	if g.IsAdmin || len(required) == 0 {
		return true
	}
	for _, r := range required {
		if r == AdminSentinel {
			continue
		}
		for _, p := range g.Permissions {
			if p == r {
				return true
			}
		}
	}
	return false
}

// HasAll reports whether the caller holds every listed permission
func (g Grants) HasAll(required ...string) bool {
	if !g.Authenticated() {
		return false
	}
	if g.IsAdmin {
		return true
	}
	for _, r := range required {
		if !g.HasAny(r) {
			return false
		}
	}
	return true
}

// IsAdministrator is the admin-only check
func (g Grants) IsAdministrator() bool {
	return g.Authenticated() && g.IsAdmin
}

// Authenticated reports whether the grants belong to a real user
func (g Grants) Authenticated() bool {
	return g.UserID != uuid.Nil
}
