package viewmodels

import "streetadmin/models"

type Courier struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Status              Status `json:"status"`
	Vehicle             string `json:"vehicle"`
	LicensePlate        string `json:"licensePlate"`
	Rating              string `json:"rating"`
	CompletedDeliveries string `json:"completedDeliveries"`
	Earnings            string `json:"earnings"`
	JoinedAt            string `json:"joinedAt"`
	LastSeenAt          string `json:"lastSeenAt"`
}

func ToCourier(dto models.CourierDTO) Courier {
	name := DisplayName(dto.FirstName, dto.LastName)
	if name == "" {
		name = Unknown
	}

	return Courier{
		ID:                  dto.ID,
		Name:                name,
		Email:               textOr(dto.Email, NoEmail),
		Phone:               textOr(dto.Phone, NoPhone),
		Status:              DeriveStatus(dto.IsActive, dto.IsOnline),
		Vehicle:             Humanize(dto.VehicleType),
		LicensePlate:        textOr(dto.LicensePlate, Placeholder),
		Rating:              FormatRating(dto.Rating),
		CompletedDeliveries: FormatCount(dto.CompletedDeliveries),
		Earnings:            FormatCurrency(dto.Earnings),
		JoinedAt:            FormatDate(dto.CreatedAt),
		LastSeenAt:          FormatDateTime(dto.LastSeenAt),
	}
}
