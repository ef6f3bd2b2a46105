package viewmodels

import (
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetadmin/models"
)

func ptr[T any](v T) *T { return &v }

func TestTransformsAreTotalOverEmptyDTOs(t *testing.T) {
	assert.NotPanics(t, func() {
		u := ToUser(models.UserDTO{})
		assert.Equal(t, Unknown, u.DisplayName)
		assert.Equal(t, Unknown, u.FirstName)
		assert.Equal(t, NoEmail, u.Email)
		assert.Equal(t, NoPhone, u.Phone)
		assert.Equal(t, Placeholder, u.WalletBalance)
		assert.Equal(t, Placeholder, u.OrdersCount)
		assert.Equal(t, Placeholder, u.JoinedAt)
		assert.Equal(t, StatusActive, u.Status)
		assert.Equal(t, "?", u.Initials)
		assert.NotNil(t, u.Addresses)
		assert.NotNil(t, u.Devices)

		r := ToRetailer(models.VendorDTO{})
		assert.Equal(t, Unknown, r.Name)
		assert.Equal(t, Unknown, r.OwnerName)
		assert.Equal(t, StatusBlocked, r.Status)
		assert.Nil(t, r.Address)
		assert.Equal(t, Unknown, r.Location)
		assert.Equal(t, Placeholder, r.Commission)

		c := ToCourier(models.CourierDTO{})
		assert.Equal(t, Unknown, c.Name)
		assert.Equal(t, Unknown, c.Vehicle)
		assert.Equal(t, Placeholder, c.Rating)

		o := ToOrderDetail(models.OrderDTO{})
		assert.Equal(t, Placeholder, o.Number)
		assert.Equal(t, "unknown", o.Status)
		assert.Equal(t, Unknown, o.StatusLabel)
		assert.Equal(t, Unknown, o.Customer)
		assert.Equal(t, Unknown, o.Retailer)
		assert.Equal(t, "Unassigned", o.Courier)
		assert.Equal(t, Placeholder, o.Total)
		assert.Nil(t, o.Delivery)
		assert.Nil(t, o.ShippingAddress)
		assert.Nil(t, o.Pricing)
		assert.Nil(t, o.Notes)
		assert.NotNil(t, o.Items)

		rc := ToReferralCode(models.ReferralCodeDTO{})
		assert.Equal(t, Placeholder, rc.Code)
		assert.Equal(t, Unknown, rc.OwnerName)
		assert.Equal(t, "0 / unlimited", rc.Usage)
		assert.Equal(t, "Never", rc.ExpiresAt)
		assert.Equal(t, StatusInactive, rc.Status)

		n := ToNote(models.NoteDTO{})
		assert.Equal(t, Placeholder, n.Content)
		assert.Equal(t, Unknown, n.AuthorName)
		assert.False(t, n.Edited)

		a := ToAdminUser(models.AdminUserDTO{})
		assert.Equal(t, Unknown, a.Name)
		assert.Equal(t, Unknown, a.RoleLabel)
		assert.Equal(t, "Never", a.LastLoginAt)

		opt := ToUserOption(models.UserDTO{})
		assert.Equal(t, Unknown, opt.Label)
	})
}

func TestTransformsAreTotalOverNullJSON(t *testing.T) {
	body := []byte(`{
		"id": "u1", "firstName": null, "lastName": null, "email": null, "phone": null,
		"isActive": null, "walletBalance": "n/a", "ordersCount": null,
		"addresses": [{"line1": null}], "devices": [{}]
	}`)
	var dto models.UserDTO
	require.NoError(t, json.Unmarshal(body, &dto))

	u := ToUser(dto)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, Placeholder, u.WalletBalance)
	require.Len(t, u.Addresses, 1)
	assert.Equal(t, Unknown, u.Addresses[0].Formatted)
	require.Len(t, u.Devices, 1)
	assert.Equal(t, Unknown, u.Devices[0].Platform)
}

func TestDisplayNameDerivation(t *testing.T) {
	u := ToUser(models.UserDTO{FirstName: ptr("Jane"), LastName: nil})
	assert.Equal(t, "Jane", u.DisplayName)
	assert.Equal(t, Unknown, u.LastName)

	u = ToUser(models.UserDTO{FirstName: ptr("  Jane "), LastName: ptr(" Doe")})
	assert.Equal(t, "Jane Doe", u.DisplayName)
	assert.Equal(t, "JD", u.Initials)

	nameless := models.UserDTO{Email: ptr("jane@x.com")}
	assert.Equal(t, Unknown, ToUser(nameless).DisplayName)
	assert.Equal(t, "jane@x.com", ToUserOption(nameless).Label)

	r := ToRetailer(models.VendorDTO{OwnerFirstName: ptr("Sam"), OwnerLastName: ptr("Khan")})
	assert.Equal(t, "Sam Khan", r.Name)
	assert.Equal(t, "Sam Khan", r.OwnerName)

	r = ToRetailer(models.VendorDTO{StoreName: ptr("Corner Shop")})
	assert.Equal(t, "Corner Shop", r.Name)
	assert.Equal(t, Unknown, r.OwnerName)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "£1,234.50", FormatCurrency(models.NewAmount(1234.5)))
	assert.Equal(t, "£1,234.50", FormatCurrency(models.Amount{Raw: "1234.5", Valid: true}))
	assert.Equal(t, "£1,234,567.89", FormatCurrency(models.NewAmount(1234567.891)))
	assert.Equal(t, "£0.00", FormatCurrency(models.NewAmount(0)))
	assert.Equal(t, "£0.00", FormatCurrency(models.NewAmount(-0.001)))
	assert.Equal(t, "-£3.00", FormatCurrency(models.NewAmount(-3)))

	assert.Equal(t, "--", FormatCurrency(models.Amount{}))
	assert.Equal(t, "--", FormatCurrency(models.Amount{Raw: "twelve", Valid: true}))
	assert.Equal(t, "--", FormatCurrency(models.Amount{Raw: "", Valid: true}))
}

func TestFormatCountKeepsZero(t *testing.T) {
	assert.Equal(t, "0", FormatCount(ptr(0)))
	assert.Equal(t, "12,000", FormatCount(ptr(12000)))
	assert.Equal(t, Placeholder, FormatCount(nil))
}

func TestStatusDerivationTable(t *testing.T) {
	cases := []struct {
		active, online *bool
		want           Status
	}{
		{ptr(false), ptr(true), StatusBlocked},
		{ptr(false), ptr(false), StatusBlocked},
		{ptr(true), ptr(true), StatusActive},
		{ptr(true), ptr(false), StatusInactive},
		{nil, ptr(true), StatusBlocked},
		{ptr(true), nil, StatusInactive},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DeriveStatus(c.active, c.online))
	}

	assert.Equal(t, "Blocked", StatusBlocked.Label())
	assert.Equal(t, "danger", StatusBlocked.Tone())
}

func TestUserStatus(t *testing.T) {
	assert.Equal(t, StatusBlocked, ToUser(models.UserDTO{IsActive: ptr(true), IsBlocked: ptr(true)}).Status)
	assert.Equal(t, StatusBlocked, ToUser(models.UserDTO{IsActive: ptr(false)}).Status)
	assert.Equal(t, StatusActive, ToUser(models.UserDTO{IsActive: ptr(true), IsBlocked: ptr(false)}).Status)
}

func TestDates(t *testing.T) {
	assert.Equal(t, "17 Oct 2026, 14:05", FormatDateTime(ptr("2026-10-17T14:05:09Z")))
	assert.Equal(t, "17 Oct 2026, 13:05", FormatDateTime(ptr("2026-10-17T14:05:09.123+01:00")))
	assert.Equal(t, "17 Oct 2026", FormatDate(ptr("2026-10-17")))
	assert.Equal(t, Placeholder, FormatDate(ptr("yesterday")))
	assert.Equal(t, Placeholder, FormatDateTime(nil))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Out for delivery", Humanize(ptr("OUT_FOR_DELIVERY")))
	assert.Equal(t, "Card on delivery", Humanize(ptr("card-on-delivery")))
	assert.Equal(t, Unknown, Humanize(ptr("  ")))
	assert.Equal(t, Unknown, Humanize(ptr("_")))
	assert.Equal(t, Unknown, Humanize(ptr("- -")))
}

func TestOrderNumberFromMultibyteID(t *testing.T) {
	o := ToOrder(models.OrderDTO{ID: "abcdefgé12", Status: ptr("_")})
	assert.Equal(t, "#ABCDEFGÉ", o.Number)
	assert.True(t, utf8.ValidString(o.Number))
	assert.Equal(t, Unknown, o.StatusLabel)
}

func TestOrderDetailPartialBlobs(t *testing.T) {
	body := []byte(`{
		"id": "5f0c2a9e-1111-2222-3333-444455556666",
		"status": "out_for_delivery",
		"user": {"id": "u1", "email": "jane@x.com"},
		"vendor": {"id": "v1", "storeName": "Corner Shop"},
		"items": [{"name": "Milk", "quantity": 2, "unitPrice": "1.25"}, {"quantity": 1}],
		"deliveryDetails": "{\"recipientName\": \"Jane\", \"type\": \"asap\"}",
		"shippingAddress": {"line1": "1 High St", "postcode": "E1 6AN"},
		"pricing": {"subtotal": 3.5, "total": "5.99"}
	}`)
	var dto models.OrderDTO
	require.NoError(t, json.Unmarshal(body, &dto))

	o := ToOrderDetail(dto)
	assert.Equal(t, "#5F0C2A9E", o.Number)
	assert.Equal(t, "Out for delivery", o.StatusLabel)
	assert.Equal(t, "info", o.StatusTone)
	assert.Equal(t, "jane@x.com", o.Customer)
	assert.Equal(t, "Corner Shop", o.Retailer)
	assert.Equal(t, "Unassigned", o.Courier)
	assert.Equal(t, "£5.99", o.Total)
	assert.Equal(t, "3", o.ItemCount)

	require.Len(t, o.Items, 2)
	assert.Equal(t, "£2.50", o.Items[0].Total)
	assert.Equal(t, Unknown, o.Items[1].Name)
	assert.Equal(t, Placeholder, o.Items[1].Total)

	require.NotNil(t, o.Delivery)
	assert.Equal(t, "Jane", o.Delivery.RecipientName)
	assert.Equal(t, NoPhone, o.Delivery.RecipientPhone)
	assert.Nil(t, o.Delivery.Instructions)
	assert.Equal(t, "ASAP", o.Delivery.ScheduledFor)

	require.NotNil(t, o.ShippingAddress)
	assert.Equal(t, "1 High St, E1 6AN", o.ShippingAddress.Formatted)
	assert.Equal(t, Unknown, o.ShippingAddress.City)

	require.NotNil(t, o.Pricing)
	assert.Equal(t, "£3.50", o.Pricing.Subtotal)
	assert.Equal(t, Placeholder, o.Pricing.DeliveryFee)
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	dto := models.UserDTO{FirstName: ptr("  Jane "), Email: ptr(" jane@x.com ")}
	_ = ToUser(dto)
	assert.Equal(t, "  Jane ", *dto.FirstName)
	assert.Equal(t, " jane@x.com ", *dto.Email)
}

func TestReferralCode(t *testing.T) {
	rc := ToReferralCode(models.ReferralCodeDTO{
		ID:           "r1",
		Code:         ptr("JANE10"),
		Owner:        &models.UserSummaryDTO{ID: "u1", FirstName: ptr("Jane")},
		UsageCount:   ptr(3),
		MaxUses:      ptr(10),
		RewardAmount: models.Amount{Raw: "5", Valid: true},
		IsActive:     ptr(true),
		ExpiresAt:    ptr("2027-01-31"),
	})
	assert.Equal(t, "u1", rc.OwnerID)
	assert.Equal(t, "Jane", rc.OwnerName)
	assert.Equal(t, "3 / 10", rc.Usage)
	assert.Equal(t, "£5.00", rc.Reward)
	assert.Equal(t, "31 Jan 2027", rc.ExpiresAt)
	assert.Equal(t, StatusActive, rc.Status)
}
