package models

// CourierDTO is a delivery rider account.
type CourierDTO struct {
	ID                  string  `json:"id"`
	FirstName           *string `json:"firstName"`
	LastName            *string `json:"lastName"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	IsActive            *bool   `json:"isActive"`
	IsOnline            *bool   `json:"isOnline"`
	VehicleType         *string `json:"vehicleType"`
	LicensePlate        *string `json:"licensePlate"`
	Rating              Amount  `json:"rating"`
	CompletedDeliveries *int    `json:"completedDeliveries"`
	Earnings            Amount  `json:"earnings"`
	CreatedAt           *string `json:"createdAt"`
	LastSeenAt          *string `json:"lastSeenAt"`
}

// CourierSummaryDTO is the reduced courier shape embedded in orders.
type CourierSummaryDTO struct {
	ID        string  `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

// CourierPatch is the PATCH /couriers/{id} payload.
type CourierPatch struct {
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	VehicleType  *string `json:"vehicleType,omitempty" validate:"omitempty,oneof=bicycle motorbike car van"`
	LicensePlate *string `json:"licensePlate,omitempty" validate:"omitempty,max=16"`
	IsActive     *bool   `json:"isActive,omitempty"`
}
