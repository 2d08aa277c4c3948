package identity

import (
	"strings"

	"github.com/shop/backend/internal/domain/shared"
)

// Role represents a user's access level
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// User represents an account that can own carts and place orders
type User struct {
	shared.BaseEntity
	Username string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(50)"`
	Role     Role   `gorm:"type:varchar(20);not null;default:'USER'"`
	Active   bool   `gorm:"not null;default:true"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with the USER role
func NewUser(username, email, fullName string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Username cannot be empty")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Email cannot be empty")
	}

	return &User{
		BaseEntity: shared.NewBaseEntity(),
		Username:   username,
		Email:      email,
		FullName:   strings.TrimSpace(fullName),
		Role:       RoleUser,
		Active:     true,
	}, nil
}

// IsAdmin returns true if the user has the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
