package core

import (
	"context"
	"fmt"

	"enbminer/entity"
	"enbminer/lib/sl"
)

// Activate redeems an invitation code for an unactivated account. The
// store applies the three resulting writes transactionally; checks done
// here are re-verified inside that transaction where races matter (the
// inviter's usage cap).
func (c *Core) Activate(ctx context.Context, req *entity.ActivateRequest) (*entity.ActivationResult, error) {
	if c.limiter != nil {
		allowed, err := c.limiter.Allow(ctx, req.WalletAddress)
		if err != nil {
			// throttling must not take activation down with it
			c.log.Warn("activation limiter unavailable", sl.Err(err))
		} else if !allowed {
			return nil, entity.ErrTooManyAttempts
		}
	}

	account, err := c.store.GetAccount(req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if account == nil {
		return nil, entity.ErrAccountNotFound
	}
	if account.IsActivated {
		return nil, entity.ErrAlreadyActivated
	}

	inviter, err := c.store.GetAccountByInvitationCode(req.InvitationCode)
	if err != nil {
		return nil, fmt.Errorf("lookup invitation code: %w", err)
	}
	if inviter == nil || inviter.WalletAddress == account.WalletAddress {
		return nil, entity.ErrInvalidCode
	}
	if !inviter.IsActivated {
		return nil, entity.ErrInviterNotActivated
	}
	if inviter.CurrentInvitationUses >= inviter.MaxInvitationUses {
		return nil, entity.ErrUsageLimitExceeded
	}

	used, err := c.store.HasInvitationUsage(req.InvitationCode, req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup invitation usage: %w", err)
	}
	if used {
		return nil, entity.ErrDuplicateUsage
	}

	if err = c.store.ActivateAccount(account.WalletAddress, inviter, c.now()); err != nil {
		return nil, err
	}

	remaining := inviter.MaxInvitationUses - inviter.CurrentInvitationUses - 1
	if remaining < 0 {
		remaining = 0
	}
	c.log.Info("account activated",
		sl.Wallet(account.WalletAddress),
		"code", req.InvitationCode,
		"remaining_uses", remaining,
	)
	return &entity.ActivationResult{
		MembershipLevel: account.MembershipLevel,
		InviterWallet:   inviter.WalletAddress,
		RemainingUses:   remaining,
	}, nil
}

// InvitationUsage reports how one code has been consumed.
func (c *Core) InvitationUsage(code string) (*entity.InvitationUsageReport, error) {
	inviter, err := c.store.GetAccountByInvitationCode(code)
	if err != nil {
		return nil, fmt.Errorf("lookup invitation code: %w", err)
	}
	if inviter == nil {
		return nil, entity.ErrInvalidCode
	}
	usages, err := c.store.ListInvitationUsages(code)
	if err != nil {
		return nil, fmt.Errorf("list invitation usages: %w", err)
	}
	if usages == nil {
		usages = []entity.InvitationUsage{}
	}
	return &entity.InvitationUsageReport{
		InvitationCode: code,
		InviterWallet:  inviter.WalletAddress,
		MaxUses:        inviter.MaxInvitationUses,
		CurrentUses:    inviter.CurrentInvitationUses,
		Usages:         usages,
	}, nil
}
