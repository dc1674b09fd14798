package entities

// Role represents a staff member's role in the clinic
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDentist   Role = "dentist"
	RoleReception Role = "reception"
)

// Valid reports whether the role is one of the known clinic roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDentist, RoleReception:
		return true
	}
	return false
}

// User represents a clinic staff member
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// UserPatch lists the mutable fields of a User; nil fields are left untouched
type UserPatch struct {
	Name      *string `json:"name,omitempty"`
	Role      *Role   `json:"role,omitempty"`
	Email     *string `json:"email,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

// Apply merges the patch into the user
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Specialty != nil {
		u.Specialty = *p.Specialty
	}
	return u
}
