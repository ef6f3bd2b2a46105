package middleware

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"streetadmin/auth"
)

// SessionCookie holds the portal session token.
const SessionCookie = "street_session"

// JWTMiddleware verifies the session from the cookie or an
// "Authorization: Bearer" header. Page requests without a valid session are
// redirected to the login page; API requests get 401.
func JWTMiddleware(iss *auth.Issuer, secureCookie bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(SessionCookie)
		if tokenStr == "" {
			if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					tokenStr = parts[1]
				}
			}
		}

		if tokenStr == "" {
			return unauthenticated(c, "Missing or malformed session")
		}

		session, err := iss.Parse(tokenStr)
		if err != nil {
			ClearSessionCookie(c, secureCookie)
			return unauthenticated(c, "Invalid or expired session")
		}

		c.Locals("session", session)
		c.Locals("userID", session.AdminID)
		c.Locals("userRole", session.Role)

		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx, msg string) error {
	if WantsJSON(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": msg, "request_id": GetRequestID(c)})
	}
	if IsFragment(c) {
		return c.Status(fiber.StatusUnauthorized).SendString(msg)
	}
	return c.Redirect(LoginURL(c.OriginalURL()), fiber.StatusFound)
}

// LoginURL is the login page that returns to next after signing in.
func LoginURL(next string) string {
	if next == "" || next == "/" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}

// CurrentSession returns the verified session of the request, if any.
func CurrentSession(c *fiber.Ctx) *auth.Session {
	s, _ := c.Locals("session").(*auth.Session)
	return s
}

// BackendToken is the STREET API token of the signed-in admin.
func BackendToken(c *fiber.Ctx) string {
	if s := CurrentSession(c); s != nil {
		return s.BackendToken
	}
	return ""
}

func SetSessionCookie(c *fiber.Ctx, token string, expires time.Time, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		Secure:   secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearSessionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
