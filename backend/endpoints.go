package backend

import (
	"context"
	"net/http"
	"net/url"

	"streetadmin/models"
)

// Login exchanges admin credentials for an access token. It does not need a
// token of its own.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return send[models.LoginResponse](ctx, c, http.MethodPost, "/auth/admin/login", "", req)
}

// Me returns the admin the token belongs to.
func (c *Client) Me(ctx context.Context, token string) (models.AdminUserDTO, error) {
	return getOne[models.AdminUserDTO](ctx, c, "/auth/me", token)
}

// GET /users
func (c *Client) ListUsers(ctx context.Context, token string, q url.Values) (models.Page[models.UserDTO], error) {
	return getPage[models.UserDTO](ctx, c, "/users", q, token)
}

func (c *Client) GetUser(ctx context.Context, token, id string) (models.UserDTO, error) {
	return getOne[models.UserDTO](ctx, c, "/users/"+url.PathEscape(id), token)
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, patch models.UserPatch) (models.UserDTO, error) {
	return send[models.UserDTO](ctx, c, http.MethodPatch, "/users/"+url.PathEscape(id), token, patch)
}

// GET /users/{id}/notes
func (c *Client) ListUserNotes(ctx context.Context, token, userID string) ([]models.NoteDTO, error) {
	page, err := getPage[models.NoteDTO](ctx, c, "/users/"+url.PathEscape(userID)+"/notes", nil, token)
	return page.Data, err
}

func (c *Client) AddUserNote(ctx context.Context, token, userID string, note models.NoteCreate) (models.NoteDTO, error) {
	return send[models.NoteDTO](ctx, c, http.MethodPost, "/users/"+url.PathEscape(userID)+"/notes", token, note)
}

// GET /vendors. Vendors are searched with the "name" parameter.
func (c *Client) ListVendors(ctx context.Context, token string, q url.Values) (models.Page[models.VendorDTO], error) {
	return getPage[models.VendorDTO](ctx, c, "/vendors", q, token)
}

func (c *Client) GetVendor(ctx context.Context, token, id string) (models.VendorDTO, error) {
	return getOne[models.VendorDTO](ctx, c, "/vendors/"+url.PathEscape(id), token)
}

func (c *Client) UpdateVendor(ctx context.Context, token, id string, patch models.VendorPatch) (models.VendorDTO, error) {
	return send[models.VendorDTO](ctx, c, http.MethodPatch, "/vendors/"+url.PathEscape(id), token, patch)
}

func (c *Client) ListCouriers(ctx context.Context, token string, q url.Values) (models.Page[models.CourierDTO], error) {
	return getPage[models.CourierDTO](ctx, c, "/couriers", q, token)
}

func (c *Client) GetCourier(ctx context.Context, token, id string) (models.CourierDTO, error) {
	return getOne[models.CourierDTO](ctx, c, "/couriers/"+url.PathEscape(id), token)
}

func (c *Client) UpdateCourier(ctx context.Context, token, id string, patch models.CourierPatch) (models.CourierDTO, error) {
	return send[models.CourierDTO](ctx, c, http.MethodPatch, "/couriers/"+url.PathEscape(id), token, patch)
}

func (c *Client) ListOrders(ctx context.Context, token string, q url.Values) (models.Page[models.OrderDTO], error) {
	return getPage[models.OrderDTO](ctx, c, "/orders", q, token)
}

func (c *Client) GetOrder(ctx context.Context, token, id string) (models.OrderDTO, error) {
	return getOne[models.OrderDTO](ctx, c, "/orders/"+url.PathEscape(id), token)
}

func (c *Client) ListReferralCodes(ctx context.Context, token string, q url.Values) (models.Page[models.ReferralCodeDTO], error) {
	return getPage[models.ReferralCodeDTO](ctx, c, "/referral-codes", q, token)
}

func (c *Client) CreateReferralCode(ctx context.Context, token string, in models.ReferralCodeCreate) (models.ReferralCodeDTO, error) {
	return send[models.ReferralCodeDTO](ctx, c, http.MethodPost, "/referral-codes", token, in)
}

func (c *Client) UpdateReferralCode(ctx context.Context, token, id string, patch models.ReferralCodePatch) (models.ReferralCodeDTO, error) {
	return send[models.ReferralCodeDTO](ctx, c, http.MethodPatch, "/referral-codes/"+url.PathEscape(id), token, patch)
}

func (c *Client) ListAdminUsers(ctx context.Context, token string, q url.Values) (models.Page[models.AdminUserDTO], error) {
	return getPage[models.AdminUserDTO](ctx, c, "/admin-users", q, token)
}

func (c *Client) GetAdminUser(ctx context.Context, token, id string) (models.AdminUserDTO, error) {
	return getOne[models.AdminUserDTO](ctx, c, "/admin-users/"+url.PathEscape(id), token)
}
