package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetadmin/apperr"
	"streetadmin/auth"
	"streetadmin/flash"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler(quietLogger(), false)})
}

// Helper to create an app with a pre-local middleware that sets userRole
func makeAppWithRole(role string, check fiber.Handler) *fiber.App {
	app := newApp()

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		return c.Next()
	})

	app.Use(check)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(200).SendString("ok")
	})

	return app
}

func TestAdminRequired(t *testing.T) {
	cases := map[string]int{
		"super_admin": 200,
		"admin":       200,
		"support":     403,
		"":            403,
	}
	for role, want := range cases {
		app := makeAppWithRole(role, AdminRequired)
		resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "role %q", role)
	}
}

func TestRoleRequired(t *testing.T) {
	app := makeAppWithRole("Support", RoleRequired("support", "admin"))
	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	app = makeAppWithRole("support", RoleRequired("super_admin"))
	resp, err = app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func newAuthApp(iss *auth.Issuer) *fiber.App {
	app := newApp()
	app.Use(JWTMiddleware(iss, false))
	app.Get("/users", func(c *fiber.Ctx) error {
		return c.SendString("hello " + CurrentSession(c).Name)
	})
	app.Get("/api/v1/admin/users", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"token": BackendToken(c)})
	})
	return app
}

func TestJWTMiddlewareRedirectsPages(t *testing.T) {
	app := newAuthApp(auth.NewIssuer("0123456789abcdef", time.Hour))

	resp, err := app.Test(httptest.NewRequest("GET", "/users?page=2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fusers%3Fpage%3D2", resp.Header.Get("Location"))
}

func TestJWTMiddlewareRejectsAPI(t *testing.T) {
	app := newAuthApp(auth.NewIssuer("0123456789abcdef", time.Hour))

	req := httptest.NewRequest("GET", "/api/v1/admin/users", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareFragmentGets401(t *testing.T) {
	app := newAuthApp(auth.NewIssuer("0123456789abcdef", time.Hour))
	app.Get("/x/users", func(c *fiber.Ctx) error { return c.SendString("rows") })

	resp, err := app.Test(httptest.NewRequest("GET", "/x/users", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))
}

func TestJWTMiddlewareAcceptsCookieAndBearer(t *testing.T) {
	iss := auth.NewIssuer("0123456789abcdef", time.Hour)
	token, _, err := iss.Issue(auth.Session{AdminID: "a1", Name: "Sam", Role: "support", BackendToken: "bt"})
	require.NoError(t, err)
	app := newAuthApp(iss)

	req := httptest.NewRequest("GET", "/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "hello Sam", string(body))

	req = httptest.NewRequest("GET", "/api/v1/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"token":"bt"}`, string(body))
}

func TestErrorHandlerJSON(t *testing.T) {
	app := newApp()
	app.Get("/api/v1/thing", func(c *fiber.Ctx) error {
		return apperr.InvalidErr("Check the form.", map[string]string{"email": "must be a valid email"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/thing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"message":"Check the form."`)
	assert.Contains(t, string(body), `"email":"must be a valid email"`)
}

func TestErrorHandlerBackendUnauthorizedEndsSession(t *testing.T) {
	app := newApp()
	app.Get("/orders", func(c *fiber.Ctx) error {
		return apperr.UnauthorizedErr("Your session has expired.")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Forders", resp.Header.Get("Location"))
	assert.Contains(t, resp.Header.Get("Set-Cookie"), SessionCookie+"=;")
}

func TestErrorHandlerPlainFallback(t *testing.T) {
	app := newApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperr.UnavailableErr("The STREET service is unavailable.", nil)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "The STREET service is unavailable.")
}

func TestFlashIsReadOnce(t *testing.T) {
	codec := flash.NewCodec([]byte("secret"), "street_flash", false)
	app := newApp()
	app.Use(FlashMiddleware(codec))
	app.Post("/save", func(c *fiber.Ctx) error {
		SetFlash(c, codec, flash.Success, "Saved.")
		return c.Redirect("/done")
	})
	app.Get("/done", func(c *fiber.Ctx) error {
		if f := GetFlash(c); f != nil {
			return c.SendString(string(f.Kind) + ":" + f.Message)
		}
		return c.SendString("none")
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/save", nil))
	require.NoError(t, err)
	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "street_flash" {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)

	req := httptest.NewRequest("GET", "/done", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "success:Saved.", string(body))
	assert.True(t, strings.Contains(resp.Header.Get("Set-Cookie"), "street_flash=;"))
}

func TestRequestLoggerRecordsHandledStatus(t *testing.T) {
	log := logrus.New()
	var buf strings.Builder
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(quietLogger(), false)})
	app.Use(RequestLogger(log))
	app.Get("/api/v1/missing", func(c *fiber.Ctx) error {
		return apperr.NotFoundErr("Not here.")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/missing?x=1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"path":"/api/v1/missing?x=1"`)
	assert.Contains(t, buf.String(), `"level":"warning"`)
}
