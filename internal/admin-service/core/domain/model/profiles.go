package model

import "time"

const (
	RoleRider  = "rider"
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

// UserProfile is the typed projection of a row in the profiles table. Owned
// by the identity backend; read-mostly here, mutated only via role changes.
type UserProfile struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FullName  *string   `json:"full_name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleRider, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

// Account backs the credential exchange. It is distinct from UserProfile:
// the account authenticates, the profile carries the display identity.
type Account struct {
	Id             string
	Email          string
	PasswordHash   []byte
	EmailConfirmed bool
	CreatedAt      time.Time
}
