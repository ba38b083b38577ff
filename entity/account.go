package entity

import (
	"net/http"
	"time"

	"enbminer/lib/validate"
)

const (
	// DefaultMaxInvitationUses caps how many activations a regular
	// account's invitation code can serve.
	DefaultMaxInvitationUses = 5
)

// Account represents a miner account keyed by its wallet address.
// An account starts unactivated with a zero balance; redeeming another
// account's invitation code activates it and makes daily claims available.
type Account struct {
	WalletAddress         string          `json:"wallet_address" bson:"wallet_address" validate:"required"`
	MembershipLevel       MembershipLevel `json:"membership_level" bson:"membership_level"`
	EnbBalance            int64           `json:"enb_balance" bson:"enb_balance"`
	TotalEarned           int64           `json:"total_earned" bson:"total_earned"`
	InvitationCode        string          `json:"invitation_code" bson:"invitation_code"`
	MaxInvitationUses     int             `json:"max_invitation_uses" bson:"max_invitation_uses"`
	CurrentInvitationUses int             `json:"current_invitation_uses" bson:"current_invitation_uses"`
	IsActivated           bool            `json:"is_activated" bson:"is_activated"`
	InviterWallet         string          `json:"inviter_wallet,omitempty" bson:"inviter_wallet,omitempty"`
	LastDailyClaimTime    *time.Time      `json:"last_daily_claim_time,omitempty" bson:"last_daily_claim_time,omitempty"`
	ConsecutiveDays       int             `json:"consecutive_days" bson:"consecutive_days"`
	CreatedAt             time.Time       `json:"created_at" bson:"created_at"`
	ActivatedAt           *time.Time      `json:"activated_at,omitempty" bson:"activated_at,omitempty"`
	CreationTxHash        string          `json:"creation_tx_hash,omitempty" bson:"creation_tx_hash,omitempty"`
}

func (a *Account) RemainingInvitationUses() int {
	r := a.MaxInvitationUses - a.CurrentInvitationUses
	if r < 0 {
		return 0
	}
	return r
}

// CreateAccountRequest registers a new unactivated account; the transaction
// hash of the on-chain account creation is stored verbatim for audit.
type CreateAccountRequest struct {
	WalletAddress   string `json:"wallet_address" validate:"required,min=4"`
	TransactionHash string `json:"transaction_hash" validate:"omitempty"`
}

func (r *CreateAccountRequest) Bind(_ *http.Request) error {
	return validate.Struct(r)
}

// DefaultAccountRequest seeds an operator account with a fixed invitation
// code and a raised usage ceiling, used to bootstrap the invitation graph.
type DefaultAccountRequest struct {
	WalletAddress  string `json:"wallet_address" validate:"required,min=4"`
	InvitationCode string `json:"invitation_code" validate:"required,min=4"`
	MaxUses        int    `json:"max_uses" validate:"omitempty,gt=0"`
}

func (r *DefaultAccountRequest) Bind(_ *http.Request) error {
	return validate.Struct(r)
}

type MembershipUpdateRequest struct {
	WalletAddress   string          `json:"wallet_address" validate:"required,min=4"`
	MembershipLevel MembershipLevel `json:"membership_level" validate:"required"`
	TransactionHash string          `json:"transaction_hash" validate:"omitempty"`
}

func (r *MembershipUpdateRequest) Bind(_ *http.Request) error {
	return validate.Struct(r)
}

// AccountFilter narrows the /users listing.
type AccountFilter struct {
	MembershipLevel MembershipLevel
	IsActivated     *bool
	Limit           int
	Offset          int
}
