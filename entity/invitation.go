package entity

import (
	"net/http"
	"time"

	"enbminer/lib/validate"
)

// InvitationUsage is the append-only record of one invitation-code
// redemption. Immutable once written; it backs both the "one redemption
// per code per wallet" rule and the usage report endpoint.
type InvitationUsage struct {
	InvitationCode string    `json:"invitation_code" bson:"invitation_code"`
	UsedBy         string    `json:"used_by" bson:"used_by"`
	InviterWallet  string    `json:"inviter_wallet" bson:"inviter_wallet"`
	UsedAt         time.Time `json:"used_at" bson:"used_at"`
}

type ActivateRequest struct {
	WalletAddress  string `json:"wallet_address" validate:"required,min=4"`
	InvitationCode string `json:"invitation_code" validate:"required,min=4"`
}

func (r *ActivateRequest) Bind(_ *http.Request) error {
	return validate.Struct(r)
}

// ActivationResult is returned to a freshly activated account.
type ActivationResult struct {
	MembershipLevel MembershipLevel `json:"membership_level"`
	InviterWallet   string          `json:"inviter_wallet"`
	RemainingUses   int             `json:"remaining_uses"`
}

// InvitationUsageReport describes one code's consumption.
type InvitationUsageReport struct {
	InvitationCode string            `json:"invitation_code"`
	InviterWallet  string            `json:"inviter_wallet"`
	MaxUses        int               `json:"max_uses"`
	CurrentUses    int               `json:"current_uses"`
	Usages         []InvitationUsage `json:"usages"`
}
