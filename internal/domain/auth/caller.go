package auth

import "strings"

// Role is the access tier carried by an authenticated caller.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// noBrand is the value the identity service stores for admins without a store.
const noBrand = "none"

// Caller is the already-validated identity of whoever issued a request.
type Caller struct {
	UserID string
	Role   Role
	Email  string
	// Brand scopes an admin to orders that contain products of one store chain.
	Brand string
}

// IsStaff reports whether the caller may drive the fulfillment state machine.
func (c Caller) IsStaff() bool {
	return c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}

// HasBrand reports whether an admin has a store chain assigned.
func (c Caller) HasBrand() bool {
	b := strings.TrimSpace(c.Brand)
	return b != "" && !strings.EqualFold(b, noBrand)
}

// ParseRole converts a raw claim into a Role. Unknown values map to RoleUser.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(s)) {
	case RoleAdmin:
		return RoleAdmin
	case RoleSuperAdmin:
		return RoleSuperAdmin
	default:
		return RoleUser
	}
}
