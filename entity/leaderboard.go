package entity

// LeaderboardKind selects the numeric field a board is sorted by.
type LeaderboardKind string

const (
	BoardBalance  LeaderboardKind = "balance"
	BoardEarnings LeaderboardKind = "earnings"
	BoardStreaks  LeaderboardKind = "streaks"
)

func (k LeaderboardKind) Valid() bool {
	return k == BoardBalance || k == BoardEarnings || k == BoardStreaks
}

type LeaderboardEntry struct {
	Rank            int             `json:"rank"`
	WalletAddress   string          `json:"wallet_address"`
	MembershipLevel MembershipLevel `json:"membership_level"`
	Value           int64           `json:"value"`
}

// Rankings reports one wallet's position on every board.
type Rankings struct {
	WalletAddress string `json:"wallet_address"`
	BalanceRank   int    `json:"balance_rank"`
	EarningsRank  int    `json:"earnings_rank"`
	StreakRank    int    `json:"streak_rank"`
}
