package viewmodels

import (
	"strings"

	"streetadmin/models"
)

type AdminUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	RoleLabel   string `json:"roleLabel"`
	Status      Status `json:"status"`
	LastLoginAt string `json:"lastLoginAt"`
	CreatedAt   string `json:"createdAt"`
}

func ToAdminUser(dto models.AdminUserDTO) AdminUser {
	name := DisplayName(dto.FirstName, dto.LastName)
	if name == "" {
		name = Unknown
	}

	lastLogin := FormatDateTime(dto.LastLoginAt)
	if dto.LastLoginAt == nil {
		lastLogin = "Never"
	}

	return AdminUser{
		ID:          dto.ID,
		Name:        name,
		Email:       textOr(dto.Email, NoEmail),
		Role:        strings.ToLower(text(dto.Role)),
		RoleLabel:   Humanize(dto.Role),
		Status:      accountStatus(dto.IsActive, nil),
		LastLoginAt: lastLogin,
		CreatedAt:   FormatDate(dto.CreatedAt),
	}
}
