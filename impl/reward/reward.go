// Package reward holds the daily-claim yield rules. It is pure: callers
// read the account, call Calculate, and persist the result themselves.
package reward

import (
	"time"

	"enbminer/entity"
	"enbminer/lib/clock"

	"github.com/shopspring/decimal"
)

const (
	// BaseReward is the per-day payout before multipliers.
	BaseReward = 10
	// StreakCap bounds the streak multiplier; longer streaks keep
	// counting but no longer raise the payout.
	StreakCap = 5
)

// Claim is the outcome of a successful daily claim.
type Claim struct {
	Reward          int64
	ConsecutiveDays int
}

// Calculate applies the calendar-day claim rules in UTC. A claim on the
// same day as the previous one is rejected. A claim on the day after the
// previous one extends the streak; any larger gap, or a first claim,
// resets it to 1. The payout is BaseReward scaled by min(streak, StreakCap)
// and then by the membership multiplier, floored to a whole token.
func Calculate(lastClaim *time.Time, consecutiveDays int, level entity.MembershipLevel, now time.Time) (Claim, error) {
	streak := 1
	if lastClaim != nil {
		if clock.SameDay(*lastClaim, now) {
			return Claim{}, entity.ErrAlreadyClaimedToday
		}
		if clock.IsPreviousDay(*lastClaim, now) {
			streak = consecutiveDays + 1
		}
	}

	multiplier := streak
	if multiplier > StreakCap {
		multiplier = StreakCap
	}

	base := decimal.NewFromInt(int64(BaseReward * multiplier))
	final := base.Mul(level.Multiplier()).Floor()

	return Claim{
		Reward:          final.IntPart(),
		ConsecutiveDays: streak,
	}, nil
}

// CanClaim reports whether a claim attempted at `now` would be accepted.
func CanClaim(lastClaim *time.Time, now time.Time) bool {
	return lastClaim == nil || !clock.SameDay(*lastClaim, now)
}
