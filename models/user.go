package models

// UserDTO is a customer account as returned by GET /users and GET /users/{id}.
type UserDTO struct {
	ID              string       `json:"id"`
	FirstName       *string      `json:"firstName"`
	LastName        *string      `json:"lastName"`
	Email           *string      `json:"email"`
	Phone           *string      `json:"phone"`
	IsActive        *bool        `json:"isActive"`
	IsBlocked       *bool        `json:"isBlocked"`
	IsEmailVerified *bool        `json:"isEmailVerified"`
	ReferralCode    *string      `json:"referralCode"`
	WalletBalance   Amount       `json:"walletBalance"`
	TotalSpent      Amount       `json:"totalSpent"`
	OrdersCount     *int         `json:"ordersCount"`
	CreatedAt       *string      `json:"createdAt"`
	LastLoginAt     *string      `json:"lastLoginAt"`
	Addresses       []AddressDTO `json:"addresses"`
	Devices         []DeviceDTO  `json:"devices"`
}

// UserSummaryDTO is the reduced user shape embedded in orders and referral codes.
type UserSummaryDTO struct {
	ID        string  `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// UserPatch is the PATCH /users/{id} payload. Nil fields are left unchanged.
type UserPatch struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// AddressDTO is a saved delivery address. Also used for vendor locations and
// order shipping blobs.
type AddressDTO struct {
	ID        string  `json:"id"`
	Label     *string `json:"label"`
	Line1     *string `json:"line1"`
	Line2     *string `json:"line2"`
	City      *string `json:"city"`
	Postcode  *string `json:"postcode"`
	Country   *string `json:"country"`
	IsDefault *bool   `json:"isDefault"`
}

// DeviceDTO is a registered mobile device of a user.
type DeviceDTO struct {
	ID          string  `json:"id"`
	Platform    *string `json:"platform"`
	Model       *string `json:"model"`
	OSVersion   *string `json:"osVersion"`
	AppVersion  *string `json:"appVersion"`
	PushEnabled *bool   `json:"pushEnabled"`
	LastSeenAt  *string `json:"lastSeenAt"`
}
