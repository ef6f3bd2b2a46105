package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"streetadmin/flash"
)

// FlashMiddleware moves a pending flash from its cookie into c.Locals("flash")
// and clears the cookie, valid or not.
func FlashMiddleware(codec *flash.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v := c.Cookies(codec.CookieName); v != "" {
			if f, err := codec.Decode(v); err == nil {
				c.Locals("flash", f)
			}
			setFlashCookie(c, codec, "", time.Unix(0, 0))
		}
		return c.Next()
	}
}

func GetFlash(c *fiber.Ctx) *flash.Flash {
	f, _ := c.Locals("flash").(*flash.Flash)
	return f
}

// SetFlash queues a message for the next page.
func SetFlash(c *fiber.Ctx, codec *flash.Codec, kind flash.Kind, msg string) {
	val, err := codec.Encode(flash.Flash{Kind: kind, Message: msg})
	if err != nil {
		return
	}
	setFlashCookie(c, codec, val, time.Now().Add(codec.MaxAge()))
}

func setFlashCookie(c *fiber.Ctx, codec *flash.Codec, val string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     codec.CookieName,
		Value:    val,
		Path:     "/",
		Expires:  expires,
		Secure:   codec.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
