package reward

import (
	"errors"
	"testing"
	"time"

	"enbminer/entity"
)

func ts(day, hour int) time.Time {
	return time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC)
}

func TestFirstClaim(t *testing.T) {
	c, err := Calculate(nil, 0, entity.LevelBased, ts(10, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Reward != 10 {
		t.Errorf("reward = %d, want 10", c.Reward)
	}
	if c.ConsecutiveDays != 1 {
		t.Errorf("streak = %d, want 1", c.ConsecutiveDays)
	}
}

func TestSameDayRejected(t *testing.T) {
	last := ts(10, 8)
	_, err := Calculate(&last, 1, entity.LevelBased, ts(10, 20))
	if !errors.Is(err, entity.ErrAlreadyClaimedToday) {
		t.Fatalf("err = %v, want entity.ErrAlreadyClaimedToday", err)
	}
}

func TestConsecutiveDayExtendsStreak(t *testing.T) {
	last := ts(10, 23)
	c, err := Calculate(&last, 1, entity.LevelBased, ts(11, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ConsecutiveDays != 2 {
		t.Errorf("streak = %d, want 2", c.ConsecutiveDays)
	}
	if c.Reward != 20 {
		t.Errorf("reward = %d, want 20", c.Reward)
	}
}

func TestGapResetsStreak(t *testing.T) {
	last := ts(10, 12)
	c, err := Calculate(&last, 4, entity.LevelBased, ts(13, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ConsecutiveDays != 1 {
		t.Errorf("streak = %d, want 1", c.ConsecutiveDays)
	}
	if c.Reward != 10 {
		t.Errorf("reward = %d, want 10", c.Reward)
	}
}

func TestStreakMultiplierCapped(t *testing.T) {
	last := ts(10, 12)
	c, err := Calculate(&last, 9, entity.LevelBased, ts(11, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ConsecutiveDays != 10 {
		t.Errorf("streak = %d, want 10 (streak itself is uncapped)", c.ConsecutiveDays)
	}
	if c.Reward != 50 {
		t.Errorf("reward = %d, want 50 (multiplier capped at %d)", c.Reward, StreakCap)
	}
}

func TestMembershipMultipliers(t *testing.T) {
	cases := []struct {
		level entity.MembershipLevel
		// streak 3, base 30
		want int64
	}{
		{entity.LevelBased, 30},
		{entity.LevelSuperBased, 45},
		{entity.LevelLegendary, 60},
	}
	for _, tc := range cases {
		last := ts(10, 12)
		c, err := Calculate(&last, 2, tc.level, ts(11, 12))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.level, err)
		}
		if c.Reward != tc.want {
			t.Errorf("%s: reward = %d, want %d", tc.level, c.Reward, tc.want)
		}
	}
}

func TestFractionalRewardFloored(t *testing.T) {
	// streak 1, SuperBased: 10 * 1.5 = 15, no fraction; streak 1 with an
	// odd base exercises the floor through the multiplier table instead.
	last := ts(10, 12)
	c, err := Calculate(&last, 0, entity.LevelSuperBased, ts(11, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Reward != 15 {
		t.Errorf("reward = %d, want 15", c.Reward)
	}
}

func TestScenarioBasedWallet(t *testing.T) {
	// First claim: 10, streak 1. Next calendar day: 20, streak 2.
	// Same day again: rejected.
	c1, err := Calculate(nil, 0, entity.LevelBased, ts(10, 9))
	if err != nil || c1.Reward != 10 || c1.ConsecutiveDays != 1 {
		t.Fatalf("first claim = %+v, %v; want reward 10, streak 1", c1, err)
	}
	first := ts(10, 9)
	c2, err := Calculate(&first, c1.ConsecutiveDays, entity.LevelBased, ts(11, 9))
	if err != nil || c2.Reward != 20 || c2.ConsecutiveDays != 2 {
		t.Fatalf("second claim = %+v, %v; want reward 20, streak 2", c2, err)
	}
	second := ts(11, 9)
	if _, err = Calculate(&second, c2.ConsecutiveDays, entity.LevelBased, ts(11, 22)); !errors.Is(err, entity.ErrAlreadyClaimedToday) {
		t.Fatalf("third claim err = %v, want entity.ErrAlreadyClaimedToday", err)
	}
}

func TestCanClaim(t *testing.T) {
	if !CanClaim(nil, ts(10, 12)) {
		t.Error("fresh account must be able to claim")
	}
	today := ts(10, 8)
	if CanClaim(&today, ts(10, 20)) {
		t.Error("same-day claim must be blocked")
	}
	yesterday := ts(9, 23)
	if !CanClaim(&yesterday, ts(10, 0)) {
		t.Error("next-day claim must be allowed")
	}
}
