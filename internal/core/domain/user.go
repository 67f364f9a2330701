package domain

import "time"

// UserRole gates which parts of the back office a user may reach.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleStaff    UserRole = "STAFF"
	RoleCustomer UserRole = "CUSTOMER"
)

// User represents a user of the application in the domain.
type User struct {
	UserID string   `json:"userID"` // Primary Key (e.g., UUID)
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`

	// PasswordHash is empty for users created via an OAuth provider.
	PasswordHash string `json:"-"`

	// AuthProvider and ProviderUserID identify OAuth users
	// (e.g. "google" + Google's subject claim).
	AuthProvider   string `json:"authProvider,omitempty"`
	ProviderUserID string `json:"-"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GoogleUserInfo is the subset of Google's userinfo payload the app uses.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
