package core

import (
	"fmt"
	"strings"

	"enbminer/entity"
	"enbminer/lib/sl"

	"github.com/google/uuid"
)

// SeededMaxInvitationUses is the usage ceiling for operator-seeded
// accounts that bootstrap the invitation graph.
const SeededMaxInvitationUses = 105

// newInvitationCode derives a short unique code from a random uuid.
func newInvitationCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ENB-" + raw[:8]
}

// CreateAccount registers a new unactivated account with a fresh
// invitation code. The code stays unusable by others until this account is
// itself activated.
func (c *Core) CreateAccount(req *entity.CreateAccountRequest) (*entity.Account, error) {
	existing, err := c.store.GetAccount(req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrAccountExists
	}

	account := &entity.Account{
		WalletAddress:     req.WalletAddress,
		MembershipLevel:   entity.LevelBased,
		InvitationCode:    newInvitationCode(),
		MaxInvitationUses: entity.DefaultMaxInvitationUses,
		CreatedAt:         c.now(),
		CreationTxHash:    req.TransactionHash,
	}
	if err = c.store.CreateAccount(account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	c.log.Info("account created", sl.Wallet(account.WalletAddress))
	return account, nil
}

// CreateDefaultAccount seeds a pre-activated operator account with a fixed
// invitation code and a raised usage ceiling.
func (c *Core) CreateDefaultAccount(req *entity.DefaultAccountRequest) (*entity.Account, error) {
	existing, err := c.store.GetAccount(req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrAccountExists
	}

	maxUses := req.MaxUses
	if maxUses <= 0 {
		maxUses = SeededMaxInvitationUses
	}
	now := c.now()
	account := &entity.Account{
		WalletAddress:     req.WalletAddress,
		MembershipLevel:   entity.LevelBased,
		InvitationCode:    req.InvitationCode,
		MaxInvitationUses: maxUses,
		IsActivated:       true,
		CreatedAt:         now,
		ActivatedAt:       &now,
	}
	if err = c.store.CreateAccount(account); err != nil {
		return nil, fmt.Errorf("create default account: %w", err)
	}
	c.log.Info("default account seeded",
		sl.Wallet(account.WalletAddress),
	)
	return account, nil
}

func (c *Core) Profile(walletAddress string) (*entity.Account, error) {
	account, err := c.store.GetAccount(walletAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if account == nil {
		return nil, entity.ErrAccountNotFound
	}
	return account, nil
}

func (c *Core) ListAccounts(filter entity.AccountFilter) ([]*entity.Account, error) {
	if filter.MembershipLevel != "" && !filter.MembershipLevel.Valid() {
		return nil, fmt.Errorf("%w: unknown membership level %q", entity.ErrInvalidFilter, filter.MembershipLevel)
	}
	if filter.Limit <= 0 || filter.Limit > c.leaderboardMax {
		filter.Limit = c.leaderboardMax
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return c.store.ListAccounts(filter)
}

// UpdateMembership records a level change confirmed by the mirror
// contract; the transaction hash is stored for audit only.
func (c *Core) UpdateMembership(req *entity.MembershipUpdateRequest) (*entity.Account, error) {
	if !req.MembershipLevel.Valid() {
		return nil, fmt.Errorf("%w: unknown membership level %q", entity.ErrInvalidFilter, req.MembershipLevel)
	}
	if err := c.store.SetMembershipLevel(req.WalletAddress, req.MembershipLevel, req.TransactionHash); err != nil {
		return nil, err
	}
	c.log.Info("membership updated",
		sl.Wallet(req.WalletAddress),
		"level", string(req.MembershipLevel),
	)
	return c.Profile(req.WalletAddress)
}
