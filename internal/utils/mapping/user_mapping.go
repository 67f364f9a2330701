package mapping

import (
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:                 d.UserID,
		Name:                   d.Name,
		Email:                  d.Email,
		Role:                   string(d.Role),
		PasswordHash:           d.PasswordHash,
		AuthProvider:           d.AuthProvider,
		ProviderUserID:         d.ProviderUserID,
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		DeletedAt:              d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User. Rows written before
// roles existed are treated as staff accounts.
func ToDomainUser(m models.User) domain.User {
	role := domain.UserRole(m.Role)
	if role == "" {
		role = domain.RoleStaff
	}
	return domain.User{
		UserID:                 m.UserID,
		Name:                   m.Name,
		Email:                  m.Email,
		Role:                   role,
		PasswordHash:           m.PasswordHash,
		AuthProvider:           m.AuthProvider,
		ProviderUserID:         m.ProviderUserID,
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		DeletedAt:              m.DeletedAt,
	}
}

// ToDomainUsers converts a slice of model Users
func ToDomainUsers(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
