package models

// VendorDTO is what the backend calls a vendor and the portal calls a retailer.
type VendorDTO struct {
	ID             string           `json:"id"`
	StoreName      *string          `json:"storeName"`
	OwnerFirstName *string          `json:"ownerFirstName"`
	OwnerLastName  *string          `json:"ownerLastName"`
	Email          *string          `json:"email"`
	Phone          *string          `json:"phone"`
	Category       *string          `json:"category"`
	IsActive       *bool            `json:"isActive"`
	IsOnline       *bool            `json:"isOnline"`
	Address        Blob[AddressDTO] `json:"address"`
	CommissionRate Amount           `json:"commissionRate"`
	Rating         Amount           `json:"rating"`
	TotalOrders    *int             `json:"totalOrders"`
	Balance        Amount           `json:"balance"`
	CreatedAt      *string          `json:"createdAt"`
}

// VendorSummaryDTO is the reduced vendor shape embedded in orders.
type VendorSummaryDTO struct {
	ID        string  `json:"id"`
	StoreName *string `json:"storeName"`
	Phone     *string `json:"phone"`
}

// VendorPatch is the PATCH /vendors/{id} payload.
type VendorPatch struct {
	StoreName *string `json:"storeName,omitempty" validate:"omitempty,min=2,max=120"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Category  *string `json:"category,omitempty" validate:"omitempty,max=60"`
	IsActive  *bool   `json:"isActive,omitempty"`
	IsOnline  *bool   `json:"isOnline,omitempty"`
}
