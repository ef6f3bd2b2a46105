package models

// OrderDTO is a marketplace order. DeliveryDetails, ShippingAddress and Pricing
// are JSON columns on the backend and may be missing or partial.
type OrderDTO struct {
	ID              string                   `json:"id"`
	OrderNumber     *string                  `json:"orderNumber"`
	Status          *string                  `json:"status"`
	PaymentStatus   *string                  `json:"paymentStatus"`
	PaymentMethod   *string                  `json:"paymentMethod"`
	Customer        *UserSummaryDTO          `json:"user"`
	Vendor          *VendorSummaryDTO        `json:"vendor"`
	Courier         *CourierSummaryDTO       `json:"courier"`
	TotalAmount     Amount                   `json:"totalAmount"`
	Items           []OrderItemDTO           `json:"items"`
	DeliveryDetails Blob[DeliveryDetailsDTO] `json:"deliveryDetails"`
	ShippingAddress Blob[AddressDTO]         `json:"shippingAddress"`
	Pricing         Blob[PricingDTO]         `json:"pricing"`
	Notes           *string                  `json:"notes"`
	CreatedAt       *string                  `json:"createdAt"`
	UpdatedAt       *string                  `json:"updatedAt"`
	DeliveredAt     *string                  `json:"deliveredAt"`
}

// OrderItemDTO is one line of an order.
type OrderItemDTO struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Quantity  *int    `json:"quantity"`
	UnitPrice Amount  `json:"unitPrice"`
	Total     Amount  `json:"total"`
	Notes     *string `json:"notes"`
}

// DeliveryDetailsDTO is the deliveryDetails blob of an order.
type DeliveryDetailsDTO struct {
	Type           *string `json:"type"`
	RecipientName  *string `json:"recipientName"`
	RecipientPhone *string `json:"recipientPhone"`
	Instructions   *string `json:"instructions"`
	ScheduledFor   *string `json:"scheduledFor"`
}

// PricingDTO is the pricing breakdown blob of an order.
type PricingDTO struct {
	Subtotal    Amount `json:"subtotal"`
	DeliveryFee Amount `json:"deliveryFee"`
	ServiceFee  Amount `json:"serviceFee"`
	Discount    Amount `json:"discount"`
	Tip         Amount `json:"tip"`
	Total       Amount `json:"total"`
}
