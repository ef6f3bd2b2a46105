package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"streetadmin/auth"
	"streetadmin/handlers"
	"streetadmin/middleware"
	"streetadmin/utils"
)

// Options are the route settings taken from config.
type Options struct {
	CookieSecure         bool
	LoginRateLimitMax    int
	LoginRateLimitWindow time.Duration
}

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler, iss *auth.Issuer, opts Options) {
	app.Get("/healthz", h.HandleHealth)
	app.Get("/version", h.HandleVersion)

	// --- Authentication Routes ---
	app.Get("/login", h.HandleLoginForm)
	app.Post("/login", loginLimiter(opts), h.HandleLogin)
	app.Post("/logout", h.HandleLogout)

	authn := middleware.JWTMiddleware(iss, opts.CookieSecure)
	staff := middleware.RoleRequired(utils.RoleSuperAdmin, utils.RoleAdmin, utils.RoleSupport)

	// --- JSON API ---
	api := app.Group("/api/v1/admin", authn, staff)
	api.Get("/users/options", h.HandleAPIUserOptions) // Must be before /users/:userId
	api.Get("/users", h.HandleAPIListUsers)
	api.Get("/users/:userId", h.HandleAPIGetUser)
	api.Get("/retailers", h.HandleAPIListRetailers)
	api.Get("/retailers/:retailerId", h.HandleAPIGetRetailer)
	api.Get("/couriers", h.HandleAPIListCouriers)
	api.Get("/couriers/:courierId", h.HandleAPIGetCourier)
	api.Get("/orders", h.HandleAPIListOrders)
	api.Get("/orders/:orderId", h.HandleAPIGetOrder)
	api.Get("/referral-codes", h.HandleAPIListReferralCodes)
	api.Get("/admin-users", middleware.AdminRequired, h.HandleAPIListAdminUsers)
	api.Get("/admin-users/:adminId", middleware.AdminRequired, h.HandleAPIGetAdminUser)

	// --- Table fragments ---
	x := app.Group("/x", authn, staff)
	x.Get("/users", h.HandleUsersTable)
	x.Get("/retailers", h.HandleRetailersTable)
	x.Get("/couriers", h.HandleCouriersTable)
	x.Get("/orders", h.HandleOrdersTable)
	x.Get("/referral-codes", h.HandleReferralCodesTable)
	x.Get("/admin-users", middleware.AdminRequired, h.HandleAdminUsersTable)

	// --- Pages ---
	pages := app.Group("/", authn, staff)
	pages.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/users", fiber.StatusFound) })

	// Customers
	pages.Get("/users", h.HandleListUsers)
	pages.Get("/users/:userId", h.HandleGetUser)
	pages.Get("/users/:userId/edit", h.HandleEditUserForm)
	pages.Post("/users/:userId/edit", h.HandleUpdateUser)
	pages.Post("/users/:userId/status", h.HandleSetUserStatus)
	pages.Post("/users/:userId/notes", h.HandleAddUserNote)

	// Retailers
	pages.Get("/retailers", h.HandleListRetailers)
	pages.Get("/retailers/:retailerId", h.HandleGetRetailer)
	pages.Get("/retailers/:retailerId/edit", h.HandleEditRetailerForm)
	pages.Post("/retailers/:retailerId/edit", h.HandleUpdateRetailer)
	pages.Post("/retailers/:retailerId/open", h.HandleSetRetailerOpen)

	// Couriers
	pages.Get("/couriers", h.HandleListCouriers)
	pages.Get("/couriers/:courierId", h.HandleGetCourier)
	pages.Get("/couriers/:courierId/edit", h.HandleEditCourierForm)
	pages.Post("/couriers/:courierId/edit", h.HandleUpdateCourier)
	pages.Post("/couriers/:courierId/status", h.HandleSetCourierStatus)

	// Orders
	pages.Get("/orders", h.HandleListOrders)
	pages.Get("/orders/:orderId", h.HandleGetOrder)

	// Referral codes
	pages.Get("/referral-codes", h.HandleListReferralCodes)
	pages.Get("/referral-codes/new", h.HandleNewReferralCodeForm) // Must be before /referral-codes/:codeId
	pages.Post("/referral-codes", h.HandleCreateReferralCode)
	pages.Post("/referral-codes/:codeId/status", h.HandleSetReferralCodeStatus)

	// Admin users
	admins := pages.Group("/admin-users", middleware.AdminRequired)
	admins.Get("/", h.HandleListAdminUsers)
	admins.Get("/:adminId", h.HandleGetAdminUser)
}

// loginLimiter throttles sign-in attempts per client IP.
func loginLimiter(opts Options) fiber.Handler {
	if opts.LoginRateLimitMax <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        opts.LoginRateLimitMax,
		Expiration: opts.LoginRateLimitWindow,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many sign-in attempts. Please wait a minute and try again.")
		},
	})
}
