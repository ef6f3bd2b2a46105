package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"streetadmin/apperr"
	"streetadmin/flash"
	"streetadmin/models"
	"streetadmin/utils"
	"streetadmin/validation"
	"streetadmin/viewmodels"
)

var referralStatusFilter = filter{Key: "status", Label: "Status", Options: []option{
	{Value: "", Label: "All codes"},
	{Value: "active", Label: "Active"},
	{Value: "inactive", Label: "Inactive"},
}}

func (h *Handler) referralListing() listing[viewmodels.ReferralCode] {
	return listing[viewmodels.ReferralCode]{
		Title:             "Referral codes",
		SearchPlaceholder: "Search by code",
		Filters:           []filter{referralStatusFilter},
		Actions:           []pageAction{{Label: "New code", Href: "/referral-codes/new"}},
		EmptyMessage:      "No referral codes yet.",
		EmptyIcon:         "ticket",
		Columns:           referralColumns(),
		RowHref: func(r viewmodels.ReferralCode) string {
			if r.OwnerID == "" {
				return ""
			}
			return "/users/" + r.OwnerID
		},
		Fetch: h.q.ReferralCodes,
	}
}

// GET /referral-codes
func (h *Handler) HandleListReferralCodes(c *fiber.Ctx) error {
	return servePage(h, c, h.referralListing())
}

// GET /x/referral-codes
func (h *Handler) HandleReferralCodesTable(c *fiber.Ctx) error {
	l := h.referralListing()
	l.Filters = append(l.Filters, filter{Key: "ownerId"})
	return serveFragment(h, c, l)
}

type referralForm struct {
	Code         string `form:"code"`
	OwnerID      string `form:"ownerId"`
	OwnerLabel   string `form:"ownerLabel"`
	RewardAmount string `form:"rewardAmount"`
	MaxUses      string `form:"maxUses"`
	ExpiresAt    string `form:"expiresAt"`
}

func (f referralForm) create() (models.ReferralCodeCreate, error) {
	in := models.ReferralCodeCreate{
		Code:      strings.TrimSpace(f.Code),
		OwnerID:   strings.TrimSpace(f.OwnerID),
		MaxUses:   utils.OptionalInt(f.MaxUses),
		ExpiresAt: utils.OptionalString(f.ExpiresAt),
	}
	if s := strings.TrimSpace(f.RewardAmount); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return in, apperr.InvalidErr("Please correct the highlighted fields.", map[string]string{"rewardAmount": "Enter an amount such as 5.00."})
		}
		in.RewardAmount = v
	}
	return in, nil
}

// HandleNewReferralCodeForm renders the create form. ?ownerId= preselects
// the owner, as linked from a customer page.
// GET /referral-codes/new
func (h *Handler) HandleNewReferralCodeForm(c *fiber.Ctx) error {
	form := referralForm{OwnerID: c.Query("ownerId")}
	if form.OwnerID != "" {
		if u, err := h.q.User(c.UserContext(), token(c), form.OwnerID); err == nil {
			form.OwnerLabel = u.DisplayName
		} else if apperr.Is(err, apperr.Unauthorized) {
			return err
		}
	}
	return h.render(c, "referral_codes/new", "New referral code", fiber.Map{"Form": form})
}

// HandleCreateReferralCode creates a code for a customer.
// POST /referral-codes
func (h *Handler) HandleCreateReferralCode(c *fiber.Ctx) error {
	var form referralForm
	if err := c.BodyParser(&form); err != nil {
		return apperr.InvalidErr("The submitted form could not be read.", nil)
	}

	in, err := form.create()
	if err == nil {
		err = validation.Struct(in)
	}
	if err == nil {
		_, err = h.q.CreateReferralCode(c.UserContext(), token(c), in)
	}
	if err != nil {
		ae, ok := apperr.As(err)
		if ok && (ae.Kind == apperr.Invalid || ae.Kind == apperr.Conflict) {
			status := fiber.StatusConflict
			if ae.Kind == apperr.Invalid {
				status = fiber.StatusUnprocessableEntity
			}
			c.Status(status)
			return h.render(c, "referral_codes/new", "New referral code", fiber.Map{
				"Form": form, "Errors": ae.Fields, "Error": ae.PublicMsg,
			})
		}
		return err
	}

	return h.redirectWithFlash(c, "/users/"+in.OwnerID, flash.Success, "Referral code "+strings.ToUpper(in.Code)+" created.")
}

// HandleSetReferralCodeStatus activates or deactivates a code and returns
// to the page the request came from.
// POST /referral-codes/:codeId/status
func (h *Handler) HandleSetReferralCodeStatus(c *fiber.Ctx) error {
	id := c.Params("codeId")
	back := utils.SafeRedirect(c.FormValue("back"), "/referral-codes")
	active := c.Query("active", c.FormValue("active")) == "true"

	rc, err := h.q.SetReferralCodeActive(c.UserContext(), token(c), id, active)
	if err != nil {
		if apperr.Is(err, apperr.Unauthorized) {
			return err
		}
		return h.redirectWithFlash(c, back, flash.Error, apperr.PublicMessage(err))
	}

	msg := "Referral code " + rc.Code + " deactivated."
	if active {
		msg = "Referral code " + rc.Code + " activated."
	}
	return h.redirectWithFlash(c, back, flash.Success, msg)
}
