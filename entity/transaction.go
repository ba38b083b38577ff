package entity

import (
	"net/http"
	"time"

	"enbminer/lib/validate"
)

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

func (t TransactionType) Valid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

// TokenTransaction is one entry of the append-only balance audit trail.
type TokenTransaction struct {
	Id            string          `json:"id" bson:"id"`
	WalletAddress string          `json:"wallet_address" bson:"wallet_address"`
	Amount        int64           `json:"amount" bson:"amount"`
	Type          TransactionType `json:"type" bson:"type"`
	BalanceBefore int64           `json:"balance_before" bson:"balance_before"`
	BalanceAfter  int64           `json:"balance_after" bson:"balance_after"`
	Description   string          `json:"description,omitempty" bson:"description,omitempty"`
	Timestamp     time.Time       `json:"timestamp" bson:"timestamp"`
}

type BalanceUpdateRequest struct {
	WalletAddress string          `json:"wallet_address" validate:"required,min=4"`
	Amount        int64           `json:"amount" validate:"required,gt=0"`
	Type          TransactionType `json:"type" validate:"required,oneof=credit debit"`
	Description   string          `json:"description" validate:"omitempty"`
}

func (r *BalanceUpdateRequest) Bind(_ *http.Request) error {
	return validate.Struct(r)
}

// BalanceUpdateResult reports the applied mutation and its audit record id.
type BalanceUpdateResult struct {
	NewBalance    int64  `json:"new_balance"`
	TransactionId string `json:"transaction_id"`
}
