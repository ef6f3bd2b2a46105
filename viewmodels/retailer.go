package viewmodels

import "streetadmin/models"

// Retailer is the portal's name for a backend vendor.
type Retailer struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	OwnerName   string   `json:"ownerName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Category    string   `json:"category"`
	Status      Status   `json:"status"`
	IsOpen      bool     `json:"isOpen"`
	Address     *Address `json:"address"`
	Location    string   `json:"location"`
	Commission  string   `json:"commission"`
	Rating      string   `json:"rating"`
	TotalOrders string   `json:"totalOrders"`
	Balance     string   `json:"balance"`
	JoinedAt    string   `json:"joinedAt"`
}

func ToRetailer(dto models.VendorDTO) Retailer {
	owner := DisplayName(dto.OwnerFirstName, dto.OwnerLastName)
	name := text(dto.StoreName)
	if name == "" {
		name = owner
	}
	if name == "" {
		name = Unknown
	}
	if owner == "" {
		owner = Unknown
	}

	address := toAddressBlob(dto.Address)
	location := Unknown
	if address != nil {
		location = address.Formatted
	}

	return Retailer{
		ID:          dto.ID,
		Name:        name,
		OwnerName:   owner,
		Email:       textOr(dto.Email, NoEmail),
		Phone:       textOr(dto.Phone, NoPhone),
		Category:    textOr(dto.Category, Unknown),
		Status:      DeriveStatus(dto.IsActive, dto.IsOnline),
		IsOpen:      flag(dto.IsActive) && flag(dto.IsOnline),
		Address:     address,
		Location:    location,
		Commission:  FormatPercent(dto.CommissionRate),
		Rating:      FormatRating(dto.Rating),
		TotalOrders: FormatCount(dto.TotalOrders),
		Balance:     FormatCurrency(dto.Balance),
		JoinedAt:    FormatDate(dto.CreatedAt),
	}
}
