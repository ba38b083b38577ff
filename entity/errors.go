package entity

import "errors"

// Domain-rule violations surfaced to API callers. Handlers map these to
// 400/404; anything else coming out of the store is a 500.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountExists       = errors.New("account already exists")
	ErrAlreadyActivated    = errors.New("account already activated")
	ErrInvalidCode         = errors.New("invitation code not found")
	ErrInviterNotActivated = errors.New("inviter account not activated")
	ErrUsageLimitExceeded  = errors.New("invitation usage limit exceeded")
	ErrDuplicateUsage      = errors.New("invitation code already used by this wallet")
	ErrAlreadyClaimedToday = errors.New("already claimed today")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotActivated        = errors.New("account not activated")
	ErrInvalidFilter       = errors.New("invalid request parameter")
	ErrTooManyAttempts     = errors.New("too many activation attempts")
)
