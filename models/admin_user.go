package models

// AdminUserDTO is a staff account of the portal itself.
type AdminUserDTO struct {
	ID          string  `json:"id"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"isActive"`
	LastLoginAt *string `json:"lastLoginAt"`
	CreatedAt   *string `json:"createdAt"`
}

// LoginRequest is the POST /auth/admin/login payload.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	Admin       AdminUserDTO `json:"admin"`
}
