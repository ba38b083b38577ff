// Package core implements the business rules of the miner API. It owns no
// I/O: storage and throttling arrive as injected interfaces, constructed
// in main and passed down.
package core

import (
	"log/slog"
	"time"

	"enbminer/entity"
	"enbminer/internal/rate"
	"enbminer/lib/sl"
)

// Store is the document-store surface the core depends on.
// Implemented by internal/database.MongoDB.
type Store interface {
	CreateAccount(account *entity.Account) error
	GetAccount(walletAddress string) (*entity.Account, error)
	GetAccountByInvitationCode(code string) (*entity.Account, error)
	ActivateAccount(walletAddress string, inviter *entity.Account, usedAt time.Time) error
	HasInvitationUsage(code, walletAddress string) (bool, error)
	ListInvitationUsages(code string) ([]entity.InvitationUsage, error)
	ApplyClaim(walletAddress string, prevClaim *time.Time, consecutiveDays int, reward int64, claimedAt time.Time, audit *entity.TokenTransaction) (bool, error)
	SaveBalanceUpdate(audit *entity.TokenTransaction) (*entity.Account, error)
	SetMembershipLevel(walletAddress string, level entity.MembershipLevel, txHash string) error
	GetTransactions(walletAddress string, limit int) ([]entity.TokenTransaction, error)
	TopAccounts(kind entity.LeaderboardKind, limit int) ([]*entity.Account, error)
	CountGreater(kind entity.LeaderboardKind, value int64) (int, error)
	ListAccounts(filter entity.AccountFilter) ([]*entity.Account, error)
}

type Core struct {
	store          Store
	limiter        rate.Limiter
	operatorToken  string
	leaderboardMax int
	now            func() time.Time
	log            *slog.Logger
}

func New(store Store, log *slog.Logger) *Core {
	if store == nil {
		panic("store is nil")
	}
	return &Core{
		store:          store,
		leaderboardMax: 100,
		now:            func() time.Time { return time.Now().UTC() },
		log:            log.With(sl.Module("core")),
	}
}

// SetActivationLimiter throttles activation attempts per wallet.
// Without a limiter activation is unthrottled.
func (c *Core) SetActivationLimiter(limiter rate.Limiter) {
	c.limiter = limiter
}

func (c *Core) SetOperatorToken(token string) {
	c.operatorToken = token
}

func (c *Core) SetLeaderboardMax(max int) {
	if max > 0 {
		c.leaderboardMax = max
	}
}

// AuthenticateOperator guards the seeding and mutation endpoints. An empty
// configured token rejects everything.
func (c *Core) AuthenticateOperator(token string) bool {
	return c.operatorToken != "" && token == c.operatorToken
}
