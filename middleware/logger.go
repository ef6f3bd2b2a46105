package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GetRequestID returns the id set by the requestid middleware.
func GetRequestID(c *fiber.Ctx) string {
	rid, _ := c.Locals("requestid").(string)
	return rid
}

// RequestLogger logs one line per request. Errors from the chain are handed
// to the app's error handler first so the logged status is the one sent.
func RequestLogger(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		path := c.Path()
		if q := string(c.Request().URI().QueryString()); q != "" {
			path += "?" + q
		}

		entry := log.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"method":     c.Method(),
			"path":       path,
			"status":     status,
			"latency":    time.Since(start).String(),
			"bytes":      len(c.Response().Body()),
			"ip":         c.IP(),
		})
		if s := CurrentSession(c); s != nil {
			entry = entry.WithField("admin_id", s.AdminID)
		}
		if chainErr != nil {
			entry = entry.WithError(chainErr)
		}

		switch {
		case status >= 500:
			entry.Error("http_request")
		case status >= 400:
			entry.Warn("http_request")
		default:
			entry.Info("http_request")
		}
		return nil
	}
}
