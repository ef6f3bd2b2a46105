package viewmodels

import (
	"strings"

	"streetadmin/models"
)

const unassigned = "Unassigned"

// Order is a row of the orders table.
type Order struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	StatusTone  string `json:"statusTone"`
	CustomerID  string `json:"customerId"`
	Customer    string `json:"customer"`
	RetailerID  string `json:"retailerId"`
	Retailer    string `json:"retailer"`
	CourierID   string `json:"courierId"`
	Courier     string `json:"courier"`
	Total       string `json:"total"`
	ItemCount   string `json:"itemCount"`
	PlacedAt    string `json:"placedAt"`
}

// OrderDetail is the order detail page. Delivery, ShippingAddress and Pricing
// are nil when the backend sent no blob at all.
type OrderDetail struct {
	Order
	PaymentStatus   string           `json:"paymentStatus"`
	PaymentMethod   string           `json:"paymentMethod"`
	Items           []OrderItem      `json:"items"`
	Delivery        *DeliveryDetails `json:"delivery"`
	ShippingAddress *Address         `json:"shippingAddress"`
	Pricing         *Pricing         `json:"pricing"`
	Notes           *string          `json:"notes"`
	UpdatedAt       string           `json:"updatedAt"`
	DeliveredAt     string           `json:"deliveredAt"`
}

type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  string  `json:"quantity"`
	UnitPrice string  `json:"unitPrice"`
	Total     string  `json:"total"`
	Notes     *string `json:"notes"`
}

type DeliveryDetails struct {
	Type           string  `json:"type"`
	RecipientName  string  `json:"recipientName"`
	RecipientPhone string  `json:"recipientPhone"`
	Instructions   *string `json:"instructions"`
	ScheduledFor   string  `json:"scheduledFor"`
}

type Pricing struct {
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"deliveryFee"`
	ServiceFee  string `json:"serviceFee"`
	Discount    string `json:"discount"`
	Tip         string `json:"tip"`
	Total       string `json:"total"`
}

func ToOrder(dto models.OrderDTO) Order {
	status := strings.ToLower(text(dto.Status))
	if status == "" {
		status = "unknown"
	}

	o := Order{
		ID:          dto.ID,
		Number:      orderNumber(dto),
		Status:      status,
		StatusLabel: Humanize(dto.Status),
		StatusTone:  orderTone(status),
		Customer:    Unknown,
		Retailer:    Unknown,
		Courier:     unassigned,
		Total:       orderTotal(dto),
		ItemCount:   FormatCount(itemCount(dto.Items)),
		PlacedAt:    FormatDateTime(dto.CreatedAt),
	}
	if c := dto.Customer; c != nil {
		o.CustomerID = c.ID
		o.Customer = summaryName(c.FirstName, c.LastName, c.Email)
	}
	if v := dto.Vendor; v != nil {
		o.RetailerID = v.ID
		o.Retailer = textOr(v.StoreName, Unknown)
	}
	if c := dto.Courier; c != nil {
		o.CourierID = c.ID
		o.Courier = summaryName(c.FirstName, c.LastName, c.Phone)
	}
	return o
}

func ToOrderDetail(dto models.OrderDTO) OrderDetail {
	items := make([]OrderItem, 0, len(dto.Items))
	for _, it := range dto.Items {
		items = append(items, toOrderItem(it))
	}

	return OrderDetail{
		Order:           ToOrder(dto),
		PaymentStatus:   Humanize(dto.PaymentStatus),
		PaymentMethod:   Humanize(dto.PaymentMethod),
		Items:           items,
		Delivery:        toDelivery(dto.DeliveryDetails),
		ShippingAddress: toAddressBlob(dto.ShippingAddress),
		Pricing:         toPricing(dto.Pricing),
		Notes:           optionalText(dto.Notes),
		UpdatedAt:       FormatDateTime(dto.UpdatedAt),
		DeliveredAt:     FormatDateTime(dto.DeliveredAt),
	}
}

func orderNumber(dto models.OrderDTO) string {
	if n := text(dto.OrderNumber); n != "" {
		return "#" + strings.TrimPrefix(n, "#")
	}
	id := strings.TrimSpace(dto.ID)
	if id == "" {
		return Placeholder
	}
	if r := []rune(id); len(r) > 8 {
		id = string(r[:8])
	}
	return "#" + strings.ToUpper(id)
}

// orderTotal prefers the top-level total and falls back to the pricing blob.
func orderTotal(dto models.OrderDTO) string {
	if _, ok := dto.TotalAmount.Float(); ok {
		return FormatCurrency(dto.TotalAmount)
	}
	if p := dto.Pricing.Value; p != nil {
		return FormatCurrency(p.Total)
	}
	return Placeholder
}

func itemCount(items []models.OrderItemDTO) *int {
	if items == nil {
		return nil
	}
	n := 0
	for _, it := range items {
		n += intOr(it.Quantity, 1)
	}
	return &n
}

func orderTone(status string) string {
	switch status {
	case "delivered", "completed":
		return "success"
	case "cancelled", "canceled", "rejected", "failed", "refunded":
		return "danger"
	case "pending", "placed", "unknown":
		return "muted"
	default:
		return "info"
	}
}

func toOrderItem(dto models.OrderItemDTO) OrderItem {
	total := FormatCurrency(dto.Total)
	if total == Placeholder && dto.Quantity != nil {
		if unit, ok := dto.UnitPrice.Float(); ok {
			total = formatGBP(unit * float64(*dto.Quantity))
		}
	}

	return OrderItem{
		Name:      textOr(dto.Name, Unknown),
		Quantity:  FormatCount(dto.Quantity),
		UnitPrice: FormatCurrency(dto.UnitPrice),
		Total:     total,
		Notes:     optionalText(dto.Notes),
	}
}

func toDelivery(b models.Blob[models.DeliveryDetailsDTO]) *DeliveryDetails {
	d := b.Value
	if d == nil {
		return nil
	}

	scheduled := FormatDateTime(d.ScheduledFor)
	if scheduled == Placeholder && strings.EqualFold(text(d.Type), "asap") {
		scheduled = "ASAP"
	}

	return &DeliveryDetails{
		Type:           Humanize(d.Type),
		RecipientName:  textOr(d.RecipientName, Unknown),
		RecipientPhone: textOr(d.RecipientPhone, NoPhone),
		Instructions:   optionalText(d.Instructions),
		ScheduledFor:   scheduled,
	}
}

func toPricing(b models.Blob[models.PricingDTO]) *Pricing {
	p := b.Value
	if p == nil {
		return nil
	}
	return &Pricing{
		Subtotal:    FormatCurrency(p.Subtotal),
		DeliveryFee: FormatCurrency(p.DeliveryFee),
		ServiceFee:  FormatCurrency(p.ServiceFee),
		Discount:    FormatCurrency(p.Discount),
		Tip:         FormatCurrency(p.Tip),
		Total:       FormatCurrency(p.Total),
	}
}
