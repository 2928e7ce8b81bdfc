package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is an ordered account role. Authorization is rank-based everywhere:
// a role passes a gate iff its rank is at least the gate's minimum.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// Rank returns the hierarchy position of the role, or -1 for unknown roles so
// that they never pass any gate.
func (r Role) Rank() int {
	switch r {
	case RoleUser:
		return 0
	case RoleAdmin:
		return 1
	case RoleSuperadmin:
		return 2
	}
	return -1
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return r.Rank() >= 0 }

// AtLeast reports whether r is authorized against a gate requiring min.
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r.Rank() >= min.Rank()
}

// User is an account document. Superadmin accounts are never exposed through
// the management endpoints.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name"          json:"name"`
	Email        string             `bson:"email"         json:"email"`
	PasswordHash string             `bson:"passwordHash"  json:"-"`
	Role         Role               `bson:"role"          json:"role"`
	IsActive     bool               `bson:"isActive"      json:"isActive"`
	Avatar       string             `bson:"avatar"        json:"avatar"`
	LastLoginAt  *time.Time         `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	Timestamps   `bson:",inline"`
}
