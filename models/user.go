package models

// AuthUser is the signed-in staff member's identity, as returned by the
// auth endpoints. Its lifecycle is unrelated to customer table sessions.
type AuthUser struct {
	ID    uint     `json:"id" validate:"required"`
	Email string   `json:"email" validate:"required,email"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// HasRole reports membership in a staff role.
func (u *AuthUser) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
