package middleware

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"streetadmin/apperr"
)

// WantsJSON reports whether the client expects JSON rather than a page.
func WantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/api/") {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

// IsFragment reports whether the request loads a partial page.
func IsFragment(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/x/")
}

// ErrorHandler renders errors returned by handlers: JSON for API clients,
// an inline error for fragments and the error page otherwise. A backend 401
// ends the session.
func ErrorHandler(log logrus.FieldLogger, secureCookie bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, msg := statusAndMessage(err)
		rid := GetRequestID(c)

		entry := log.WithFields(logrus.Fields{"request_id": rid, "status": status, "path": c.Path()})
		if status >= 500 {
			entry.WithError(err).Error("request_failed")
		} else {
			entry.WithError(err).Debug("request_failed")
		}

		if apperr.Is(err, apperr.Unauthorized) {
			ClearSessionCookie(c, secureCookie)
			if !WantsJSON(c) && !IsFragment(c) {
				return c.Redirect(LoginURL(c.OriginalURL()), fiber.StatusFound)
			}
		}

		if WantsJSON(c) {
			payload := fiber.Map{"status": "error", "message": msg, "request_id": rid}
			if ae, ok := apperr.As(err); ok && len(ae.Fields) > 0 {
				payload["fields"] = ae.Fields
			}
			return c.Status(status).JSON(payload)
		}

		c.Status(status)
		bind := fiber.Map{
			"Title":     http.StatusText(status),
			"Status":    status,
			"Message":   msg,
			"RequestID": rid,
		}
		if s := CurrentSession(c); s != nil && status != fiber.StatusUnauthorized {
			bind["Session"] = s
		}
		var rerr error
		if IsFragment(c) {
			rerr = c.Render("partials/error", bind)
		} else {
			rerr = c.Render("errors/error", bind, "layouts/main")
		}
		if rerr != nil {
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.SendString(fmt.Sprintf("<h1>%d %s</h1><p>%s</p><p>Request ID: %s</p>",
				status, http.StatusText(status), html.EscapeString(msg), html.EscapeString(rid)))
		}
		return nil
	}
}

func statusAndMessage(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		msg := fe.Message
		if fe.Code == fiber.StatusNotFound {
			msg = "We couldn't find that page."
		}
		return fe.Code, msg
	}
	return apperr.HTTPStatus(err), apperr.PublicMessage(err)
}
