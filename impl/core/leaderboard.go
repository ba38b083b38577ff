package core

import (
	"fmt"

	"enbminer/entity"
)

const defaultLeaderboardLimit = 10

func boardValue(kind entity.LeaderboardKind, account *entity.Account) int64 {
	switch kind {
	case entity.BoardEarnings:
		return account.TotalEarned
	case entity.BoardStreaks:
		return int64(account.ConsecutiveDays)
	default:
		return account.EnbBalance
	}
}

// Leaderboard returns activated accounts ordered descending by the
// board's field. Rank 1 is the highest value.
func (c *Core) Leaderboard(kind entity.LeaderboardKind, limit int) ([]entity.LeaderboardEntry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown leaderboard %q", entity.ErrInvalidFilter, kind)
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > c.leaderboardMax {
		limit = c.leaderboardMax
	}

	accounts, err := c.store.TopAccounts(kind, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard query: %w", err)
	}

	entries := make([]entity.LeaderboardEntry, 0, len(accounts))
	for i, account := range accounts {
		entries = append(entries, entity.LeaderboardEntry{
			Rank:            i + 1,
			WalletAddress:   account.WalletAddress,
			MembershipLevel: account.MembershipLevel,
			Value:           boardValue(kind, account),
		})
	}
	return entries, nil
}

// Rankings reports one wallet's rank on every board: the number of
// activated accounts with a strictly greater value, plus one.
func (c *Core) Rankings(walletAddress string) (*entity.Rankings, error) {
	account, err := c.store.GetAccount(walletAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if account == nil {
		return nil, entity.ErrAccountNotFound
	}

	result := &entity.Rankings{WalletAddress: walletAddress}
	for _, board := range []struct {
		kind entity.LeaderboardKind
		rank *int
	}{
		{entity.BoardBalance, &result.BalanceRank},
		{entity.BoardEarnings, &result.EarningsRank},
		{entity.BoardStreaks, &result.StreakRank},
	} {
		greater, err := c.store.CountGreater(board.kind, boardValue(board.kind, account))
		if err != nil {
			return nil, fmt.Errorf("ranking query: %w", err)
		}
		*board.rank = greater + 1
	}
	return result, nil
}
