package entity

import "github.com/shopspring/decimal"

// MembershipLevel controls the daily reward multiplier.
// Levels are upgraded through the mirror contract; the API records the
// resulting level together with the upgrade transaction hash.
type MembershipLevel string

const (
	LevelBased      MembershipLevel = "Based"
	LevelSuperBased MembershipLevel = "SuperBased"
	LevelLegendary  MembershipLevel = "Legendary"
)

var membershipMultipliers = map[MembershipLevel]decimal.Decimal{
	LevelBased:      decimal.NewFromInt(1),
	LevelSuperBased: decimal.RequireFromString("1.5"),
	LevelLegendary:  decimal.NewFromInt(2),
}

func (l MembershipLevel) Valid() bool {
	_, ok := membershipMultipliers[l]
	return ok
}

// Multiplier returns the reward multiplier for the level.
// Unknown levels fall back to the Based multiplier.
func (l MembershipLevel) Multiplier() decimal.Decimal {
	if m, ok := membershipMultipliers[l]; ok {
		return m
	}
	return membershipMultipliers[LevelBased]
}
