// Package flash encodes one-shot toast messages into a signed cookie value.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Flash is a message shown once on the next page.
type Flash struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var ErrInvalid = errors.New("invalid flash cookie")

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func NewCodec(secret []byte, cookieName string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: cookieName, Secure: secure}
}

// Encode returns base64(json) "." base64(hmac).
func (c *Codec) Encode(f Flash) (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (*Flash, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || !verify(c.Secret, payload, sig) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, ErrInvalid
	}
	if strings.TrimSpace(f.Message) == "" {
		return nil, ErrInvalid
	}
	if f.Kind == "" {
		f.Kind = Info
	}
	return &f, nil
}

// MaxAge is short: the cookie only has to survive one redirect.
func (c *Codec) MaxAge() time.Duration {
	return 2 * time.Minute
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
