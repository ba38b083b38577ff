package core

import (
	"errors"
	"testing"

	"enbminer/entity"
)

func seedBoard(store *fakeStore) {
	a := seedAccount(store, "0xA", "ENB-AAAAAAAA", true)
	a.EnbBalance, a.TotalEarned, a.ConsecutiveDays = 300, 500, 2
	b := seedAccount(store, "0xB", "ENB-BBBBBBBB", true)
	b.EnbBalance, b.TotalEarned, b.ConsecutiveDays = 200, 900, 7
	c := seedAccount(store, "0xC", "ENB-CCCCCCCC", false)
	c.EnbBalance, c.TotalEarned, c.ConsecutiveDays = 999, 999, 99
}

func TestLeaderboardBalance(t *testing.T) {
	store := newFakeStore()
	seedBoard(store)
	c := newTestCore(store)

	entries, err := c.Leaderboard(entity.BoardBalance, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2 (unactivated excluded)", len(entries))
	}
	if entries[0].WalletAddress != "0xA" || entries[0].Rank != 1 || entries[0].Value != 300 {
		t.Errorf("top entry = %+v, want 0xA rank 1 value 300", entries[0])
	}
	if entries[1].WalletAddress != "0xB" || entries[1].Rank != 2 {
		t.Errorf("second entry = %+v, want 0xB rank 2", entries[1])
	}
}

func TestLeaderboardEarningsAndStreaks(t *testing.T) {
	store := newFakeStore()
	seedBoard(store)
	c := newTestCore(store)

	earnings, err := c.Leaderboard(entity.BoardEarnings, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if earnings[0].WalletAddress != "0xB" || earnings[0].Value != 900 {
		t.Errorf("earnings top = %+v, want 0xB value 900", earnings[0])
	}

	streaks, err := c.Leaderboard(entity.BoardStreaks, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streaks[0].WalletAddress != "0xB" || streaks[0].Value != 7 {
		t.Errorf("streaks top = %+v, want 0xB value 7", streaks[0])
	}
}

func TestLeaderboardUnknownKind(t *testing.T) {
	c := newTestCore(newFakeStore())
	if _, err := c.Leaderboard("fame", 10); err == nil {
		t.Fatal("expected error for unknown board kind")
	}
}

func TestLeaderboardLimitClamped(t *testing.T) {
	store := newFakeStore()
	seedBoard(store)
	c := newTestCore(store)
	c.SetLeaderboardMax(1)

	entries, err := c.Leaderboard(entity.BoardBalance, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len = %d, want clamp to 1", len(entries))
	}
}

func TestRankings(t *testing.T) {
	store := newFakeStore()
	seedBoard(store)
	c := newTestCore(store)

	rankings, err := c.Rankings("0xB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rankings.BalanceRank != 2 {
		t.Errorf("balance rank = %d, want 2", rankings.BalanceRank)
	}
	if rankings.EarningsRank != 1 {
		t.Errorf("earnings rank = %d, want 1", rankings.EarningsRank)
	}
	if rankings.StreakRank != 1 {
		t.Errorf("streak rank = %d, want 1", rankings.StreakRank)
	}

	if _, err = c.Rankings("0xGHOST"); !errors.Is(err, entity.ErrAccountNotFound) {
		t.Errorf("unknown wallet err = %v, want ErrAccountNotFound", err)
	}
}

func TestListAccountsFilter(t *testing.T) {
	store := newFakeStore()
	seedBoard(store)
	c := newTestCore(store)

	activated := true
	accounts, err := c.ListAccounts(entity.AccountFilter{IsActivated: &activated, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Errorf("len = %d, want 2 activated accounts", len(accounts))
	}

	if _, err = c.ListAccounts(entity.AccountFilter{MembershipLevel: "Mythic"}); err == nil {
		t.Error("expected error for unknown membership filter")
	}
}
