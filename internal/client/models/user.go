// Package models defines the GameStore domain types exchanged with the
// backend REST API. Field names mirror the JSON produced by the server;
// the client passes most of them through opaquely.
package models

// Role classifies an account for authorization purposes.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AccountStatus reflects the moderation state of an account.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountBanned    AccountStatus = "BANNED"
	AccountInactive  AccountStatus = "INACTIVE"
)

// User is the authenticated identity returned by the auth endpoints.
// Customer- and admin-specific fields are optional and only present for
// the matching account type.
type User struct {
	ID               string        `json:"id"`
	Username         string        `json:"username"`
	Email            string        `json:"email"`
	Role             Role          `json:"role"`
	RegistrationDate string        `json:"registrationDate,omitempty"`
	LastLoginAt      string        `json:"lastLoginAt,omitempty"`
	AccountStatus    AccountStatus `json:"accountStatus,omitempty"`
	Balance          float64       `json:"balance,omitempty"`
	UserType         string        `json:"userType,omitempty"`

	// Customer fields.
	CustomerLevel string `json:"customerLevel,omitempty"`
	LoyaltyPoints int    `json:"loyaltyPoints,omitempty"`

	// Admin fields.
	AdminLevel  string   `json:"adminLevel,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// IsAdmin reports whether the account carries the admin role tag.
func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}
	return u.Role == RoleAdmin
}
