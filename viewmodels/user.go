package viewmodels

import "streetadmin/models"

// User is a customer account as shown in the users table and detail page.
type User struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	DisplayName   string    `json:"displayName"`
	Initials      string    `json:"initials"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Status        Status    `json:"status"`
	EmailVerified bool      `json:"emailVerified"`
	ReferralCode  string    `json:"referralCode"`
	WalletBalance string    `json:"walletBalance"`
	TotalSpent    string    `json:"totalSpent"`
	OrdersCount   string    `json:"ordersCount"`
	JoinedAt      string    `json:"joinedAt"`
	LastLoginAt   string    `json:"lastLoginAt"`
	Addresses     []Address `json:"addresses"`
	Devices       []Device  `json:"devices"`
}

func ToUser(dto models.UserDTO) User {
	name := DisplayName(dto.FirstName, dto.LastName)
	if name == "" {
		name = Unknown
	}

	addresses := make([]Address, 0, len(dto.Addresses))
	for _, a := range dto.Addresses {
		addresses = append(addresses, ToAddress(a))
	}
	devices := make([]Device, 0, len(dto.Devices))
	for _, d := range dto.Devices {
		devices = append(devices, ToDevice(d))
	}

	return User{
		ID:            dto.ID,
		FirstName:     textOr(dto.FirstName, Unknown),
		LastName:      textOr(dto.LastName, Unknown),
		DisplayName:   name,
		Initials:      Initials(DisplayName(dto.FirstName, dto.LastName)),
		Email:         textOr(dto.Email, NoEmail),
		Phone:         textOr(dto.Phone, NoPhone),
		Status:        accountStatus(dto.IsActive, dto.IsBlocked),
		EmailVerified: flag(dto.IsEmailVerified),
		ReferralCode:  textOr(dto.ReferralCode, Placeholder),
		WalletBalance: FormatCurrency(dto.WalletBalance),
		TotalSpent:    FormatCurrency(dto.TotalSpent),
		OrdersCount:   FormatCount(dto.OrdersCount),
		JoinedAt:      FormatDate(dto.CreatedAt),
		LastLoginAt:   FormatDateTime(dto.LastLoginAt),
		Addresses:     addresses,
		Devices:       devices,
	}
}

// UserOption is a row of the user search picker. Unlike the users table, a
// nameless user is labelled by email so staff can still tell rows apart.
type UserOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Email string `json:"email"`
}

func ToUserOption(dto models.UserDTO) UserOption {
	return UserOption{
		ID:    dto.ID,
		Label: summaryName(dto.FirstName, dto.LastName, dto.Email),
		Email: textOr(dto.Email, NoEmail),
	}
}

// summaryName is the name rule for embedded people: name, then email, then Unknown.
func summaryName(first, last, email *string) string {
	if name := DisplayName(first, last); name != "" {
		return name
	}
	return textOr(email, Unknown)
}
