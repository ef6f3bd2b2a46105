package viewmodels

import (
	"strconv"

	"streetadmin/models"
)

type ReferralCode struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	OwnerID    string `json:"ownerId"`
	OwnerName  string `json:"ownerName"`
	Status     Status `json:"status"`
	IsActive   bool   `json:"isActive"`
	UsageCount int    `json:"usageCount"`
	Usage      string `json:"usage"`
	Reward     string `json:"reward"`
	ExpiresAt  string `json:"expiresAt"`
	CreatedAt  string `json:"createdAt"`
}

func ToReferralCode(dto models.ReferralCodeDTO) ReferralCode {
	ownerID := text(dto.OwnerID)
	owner := Unknown
	if o := dto.Owner; o != nil {
		if ownerID == "" {
			ownerID = o.ID
		}
		owner = summaryName(o.FirstName, o.LastName, o.Email)
	}

	status := StatusInactive
	if flag(dto.IsActive) {
		status = StatusActive
	}

	used := intOr(dto.UsageCount, 0)
	usage := strconv.Itoa(used) + " / unlimited"
	if dto.MaxUses != nil {
		usage = strconv.Itoa(used) + " / " + strconv.Itoa(*dto.MaxUses)
	}

	expires := FormatDate(dto.ExpiresAt)
	if dto.ExpiresAt == nil {
		expires = "Never"
	}

	return ReferralCode{
		ID:         dto.ID,
		Code:       textOr(dto.Code, Placeholder),
		OwnerID:    ownerID,
		OwnerName:  owner,
		Status:     status,
		IsActive:   flag(dto.IsActive),
		UsageCount: used,
		Usage:      usage,
		Reward:     FormatCurrency(dto.RewardAmount),
		ExpiresAt:  expires,
		CreatedAt:  FormatDate(dto.CreatedAt),
	}
}
