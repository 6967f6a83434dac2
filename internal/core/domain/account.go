package domain

import "time"

type Role string

const (
	RoleOrphanage Role = "orphanage"
	RoleAdmin     Role = "admin"
)

// Account is an authenticated identity: either an orphanage organization
// or an administrator. The role never changes after registration.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
