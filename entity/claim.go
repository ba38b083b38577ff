package entity

import (
	"net/http"

	"enbminer/lib/validate"
)

type ClaimRequest struct {
	WalletAddress   string `json:"wallet_address" validate:"required,min=4"`
	TransactionHash string `json:"transaction_hash" validate:"omitempty"`
}

func (r *ClaimRequest) Bind(_ *http.Request) error {
	return validate.Struct(r)
}

type ClaimResult struct {
	Reward          int64 `json:"reward"`
	ConsecutiveDays int   `json:"consecutive_days"`
	NewBalance      int64 `json:"new_balance"`
}

// ClaimStatus answers "can this wallet claim right now".
type ClaimStatus struct {
	CanClaim        bool `json:"can_claim"`
	LastClaimToday  bool `json:"last_claim_today"`
	ConsecutiveDays int  `json:"consecutive_days"`
}
