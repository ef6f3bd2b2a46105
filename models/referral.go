package models

// ReferralCodeDTO is a referral code owned by a user.
type ReferralCodeDTO struct {
	ID           string          `json:"id"`
	Code         *string         `json:"code"`
	OwnerID      *string         `json:"ownerId"`
	Owner        *UserSummaryDTO `json:"owner"`
	UsageCount   *int            `json:"usageCount"`
	MaxUses      *int            `json:"maxUses"`
	RewardAmount Amount          `json:"rewardAmount"`
	IsActive     *bool           `json:"isActive"`
	ExpiresAt    *string         `json:"expiresAt"`
	CreatedAt    *string         `json:"createdAt"`
}

// ReferralCodeCreate is the POST /referral-codes payload.
type ReferralCodeCreate struct {
	Code         string  `json:"code" validate:"required,alphanum,min=4,max=20"`
	OwnerID      string  `json:"ownerId" validate:"required"`
	RewardAmount float64 `json:"rewardAmount" validate:"gte=0,lte=1000"`
	MaxUses      *int    `json:"maxUses,omitempty" validate:"omitempty,gte=1"`
	ExpiresAt    *string `json:"expiresAt,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ReferralCodePatch is the PATCH /referral-codes/{id} payload.
type ReferralCodePatch struct {
	IsActive  *bool   `json:"isActive,omitempty"`
	MaxUses   *int    `json:"maxUses,omitempty" validate:"omitempty,gte=1"`
	ExpiresAt *string `json:"expiresAt,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
