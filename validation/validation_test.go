package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetadmin/apperr"
	"streetadmin/models"
)

func TestStructReportsFieldsByJSONName(t *testing.T) {
	bad := "not-an-email"
	err := Struct(models.UserPatch{Email: &bad})
	require.Error(t, err)

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
	assert.Equal(t, "Enter a valid email address.", ae.Fields["email"])
}

func TestReferralCodeCreateRules(t *testing.T) {
	maxUses := 0
	err := Struct(models.ReferralCodeCreate{Code: "ab-", RewardAmount: 5, MaxUses: &maxUses})
	ae, ok := apperr.As(err)
	require.True(t, ok)

	assert.Contains(t, ae.Fields, "code")
	assert.Equal(t, "This field is required.", ae.Fields["ownerId"])
	assert.Equal(t, "Must be at least 1.", ae.Fields["maxUses"])

	assert.NoError(t, Struct(models.ReferralCodeCreate{Code: "ANN2024", OwnerID: "u1", RewardAmount: 5}))
}

func TestCourierVehicleOneOf(t *testing.T) {
	v := "rocket"
	ae, ok := apperr.As(Struct(models.CourierPatch{VehicleType: &v}))
	require.True(t, ok)
	assert.Equal(t, "Choose one of: bicycle, motorbike, car, van.", ae.Fields["vehicleType"])
}

func TestFromErrorOther(t *testing.T) {
	assert.Equal(t, FieldErrors{"_": "The submitted data is invalid."}, FromError(errors.New("bad body")))
}
