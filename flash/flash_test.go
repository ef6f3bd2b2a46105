package flash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	c := NewCodec([]byte("secret"), "street_flash", false)

	v, err := c.Encode(Flash{Kind: Success, Message: "Customer updated."})
	require.NoError(t, err)

	f, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, Flash{Kind: Success, Message: "Customer updated."}, *f)
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := NewCodec([]byte("secret"), "street_flash", false)
	v, err := c.Encode(Flash{Kind: Error, Message: "Nope"})
	require.NoError(t, err)

	other := NewCodec([]byte("other"), "street_flash", false)
	_, err = other.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = c.Decode("garbage")
	assert.ErrorIs(t, err, ErrInvalid)

	empty, err := c.Encode(Flash{Kind: Info, Message: "  "})
	require.NoError(t, err)
	_, err = c.Decode(empty)
	assert.ErrorIs(t, err, ErrInvalid)
}
