package domain

// Roles recognized by the ownership gate
const (
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
	RoleBuyer     = "buyer"
)

// Identity is what the token verifier hands to the business layer: who the
// caller is and what role their credential asserts. Nothing else from the
// token is trusted past this point.
type Identity struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanCreateEvents reports whether the identity's role allows publishing
// events. Buyers cannot create events for anyone.
func (i *Identity) CanCreateEvents() bool {
	return i.Role == RoleOrganizer || i.IsAdmin()
}

// CanManageEvent applies the ownership policy for event mutation: admins may
// touch anything, everyone else only events they created.
func (i *Identity) CanManageEvent(creatorUserID string) bool {
	if i.IsAdmin() {
		return true
	}
	return i.UserID != "" && i.UserID == creatorUserID
}
