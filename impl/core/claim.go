package core

import (
	"fmt"

	"enbminer/entity"
	"enbminer/impl/reward"
	"enbminer/lib/clock"
	"enbminer/lib/sl"

	"github.com/google/uuid"
)

// DailyClaim pays out the daily reward. The persisted update pins the
// claim timestamp read here, so of two concurrent claims exactly one is
// applied; the other reports AlreadyClaimedToday.
func (c *Core) DailyClaim(req *entity.ClaimRequest) (*entity.ClaimResult, error) {
	account, err := c.store.GetAccount(req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if account == nil {
		return nil, entity.ErrAccountNotFound
	}
	if !account.IsActivated {
		return nil, entity.ErrNotActivated
	}

	now := c.now()
	claim, err := reward.Calculate(account.LastDailyClaimTime, account.ConsecutiveDays, account.MembershipLevel, now)
	if err != nil {
		return nil, err
	}

	description := "daily claim"
	if req.TransactionHash != "" {
		description = "daily claim " + req.TransactionHash
	}
	audit := &entity.TokenTransaction{
		Id:            uuid.NewString(),
		WalletAddress: account.WalletAddress,
		Amount:        claim.Reward,
		Type:          entity.TransactionCredit,
		BalanceBefore: account.EnbBalance,
		BalanceAfter:  account.EnbBalance + claim.Reward,
		Description:   description,
		Timestamp:     now,
	}

	applied, err := c.store.ApplyClaim(account.WalletAddress, account.LastDailyClaimTime, claim.ConsecutiveDays, claim.Reward, now, audit)
	if err != nil {
		return nil, fmt.Errorf("apply claim: %w", err)
	}
	if !applied {
		// a concurrent claim won the race since our read
		return nil, entity.ErrAlreadyClaimedToday
	}

	c.log.Info("daily claim",
		sl.Wallet(account.WalletAddress),
		"reward", claim.Reward,
		"streak", claim.ConsecutiveDays,
	)
	return &entity.ClaimResult{
		Reward:          claim.Reward,
		ConsecutiveDays: claim.ConsecutiveDays,
		NewBalance:      account.EnbBalance + claim.Reward,
	}, nil
}

func (c *Core) ClaimStatus(walletAddress string) (*entity.ClaimStatus, error) {
	account, err := c.store.GetAccount(walletAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if account == nil {
		return nil, entity.ErrAccountNotFound
	}

	now := c.now()
	claimedToday := account.LastDailyClaimTime != nil && clock.SameDay(*account.LastDailyClaimTime, now)
	return &entity.ClaimStatus{
		CanClaim:        account.IsActivated && reward.CanClaim(account.LastDailyClaimTime, now),
		LastClaimToday:  claimedToday,
		ConsecutiveDays: account.ConsecutiveDays,
	}, nil
}
