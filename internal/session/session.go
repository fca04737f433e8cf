package session

import "familyboard/internal/models"

// Capability names one thing a session is allowed to do. Authorization
// always goes through Authorize; role names are never string-matched.
type Capability string

const (
	CapViewBoard    Capability = "board:view"
	CapEditTasks    Capability = "tasks:edit"
	CapManageFamily Capability = "family:manage"
	CapSeedFamilies Capability = "admin:seed-families"
)

// Session carries the authenticated identity and its role. It is built
// once after login and injected into stores explicitly; nothing reads it
// from ambient storage.
type Session struct {
	UserID   string
	Username string
	FamilyID string
	Role     models.FamilyRole
	Token    string
}

// roleCapabilities is the single source of truth for what each role may do.
var roleCapabilities = map[models.FamilyRole]map[Capability]struct{}{
	models.RoleChild: {
		CapViewBoard: {},
		CapEditTasks: {},
	},
	models.RoleParent: {
		CapViewBoard:    {},
		CapEditTasks:    {},
		CapManageFamily: {},
	},
	models.RoleAdmin: {
		CapViewBoard:    {},
		CapEditTasks:    {},
		CapManageFamily: {},
		CapSeedFamilies: {},
	},
}

// Authorize reports whether the session's role grants the capability.
func Authorize(sess Session, cap Capability) bool {
	caps, ok := roleCapabilities[sess.Role]
	if !ok {
		return false
	}
	_, ok = caps[cap]
	return ok
}
