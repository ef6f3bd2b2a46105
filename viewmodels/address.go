package viewmodels

import (
	"strings"

	"streetadmin/models"
)

type Address struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Line1     string  `json:"line1"`
	Line2     *string `json:"line2"`
	City      string  `json:"city"`
	Postcode  string  `json:"postcode"`
	Country   string  `json:"country"`
	IsDefault bool    `json:"isDefault"`
	Formatted string  `json:"formatted"`
}

func ToAddress(dto models.AddressDTO) Address {
	parts := make([]string, 0, 5)
	for _, p := range []*string{dto.Line1, dto.Line2, dto.City, dto.Postcode, dto.Country} {
		if v := text(p); v != "" {
			parts = append(parts, v)
		}
	}
	formatted := strings.Join(parts, ", ")
	if formatted == "" {
		formatted = Unknown
	}

	return Address{
		ID:        dto.ID,
		Label:     textOr(dto.Label, "Address"),
		Line1:     textOr(dto.Line1, Unknown),
		Line2:     optionalText(dto.Line2),
		City:      textOr(dto.City, Unknown),
		Postcode:  textOr(dto.Postcode, Unknown),
		Country:   textOr(dto.Country, Unknown),
		IsDefault: flag(dto.IsDefault),
		Formatted: formatted,
	}
}

// toAddressBlob maps an optional address blob; an absent blob stays nil.
func toAddressBlob(b models.Blob[models.AddressDTO]) *Address {
	if b.Value == nil {
		return nil
	}
	a := ToAddress(*b.Value)
	return &a
}

type Device struct {
	ID          string `json:"id"`
	Platform    string `json:"platform"`
	Model       string `json:"model"`
	OSVersion   string `json:"osVersion"`
	AppVersion  string `json:"appVersion"`
	PushEnabled bool   `json:"pushEnabled"`
	LastSeenAt  string `json:"lastSeenAt"`
}

func ToDevice(dto models.DeviceDTO) Device {
	return Device{
		ID:          dto.ID,
		Platform:    Humanize(dto.Platform),
		Model:       textOr(dto.Model, Unknown),
		OSVersion:   textOr(dto.OSVersion, Placeholder),
		AppVersion:  textOr(dto.AppVersion, Placeholder),
		PushEnabled: flag(dto.PushEnabled),
		LastSeenAt:  FormatDateTime(dto.LastSeenAt),
	}
}
