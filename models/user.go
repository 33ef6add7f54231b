package models

// Role defines allowed roles in the system
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	Meta
	Email    string `json:"email"`
	Password string `json:"password,omitempty"` // bcrypt hash, stripped before leaving the service layer
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Sanitized returns a copy safe to persist as a session or hand to clients.
func (u *User) Sanitized() *User {
	c := *u
	c.Password = ""
	return &c
}

// UserPatch is the explicit partial update for profile edits. Nil fields
// are left untouched; unknown JSON fields are rejected at the boundary.
type UserPatch struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
}
