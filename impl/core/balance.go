package core

import (
	"fmt"

	"enbminer/entity"
	"enbminer/lib/sl"

	"github.com/google/uuid"
)

const defaultTransactionsLimit = 50

// UpdateBalance applies an operator credit or debit. The store's
// conditional increment guarantees a debit never overdraws, whatever
// other writes race with it.
func (c *Core) UpdateBalance(req *entity.BalanceUpdateRequest) (*entity.BalanceUpdateResult, error) {
	account, err := c.store.GetAccount(req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if account == nil {
		return nil, entity.ErrAccountNotFound
	}
	if req.Type == entity.TransactionDebit && account.EnbBalance < req.Amount {
		return nil, entity.ErrInsufficientBalance
	}

	audit := &entity.TokenTransaction{
		Id:            uuid.NewString(),
		WalletAddress: req.WalletAddress,
		Amount:        req.Amount,
		Type:          req.Type,
		Description:   req.Description,
		Timestamp:     c.now(),
	}
	updated, err := c.store.SaveBalanceUpdate(audit)
	if err != nil {
		return nil, err
	}

	c.log.Info("balance updated",
		sl.Wallet(req.WalletAddress),
		"type", string(req.Type),
		"amount", req.Amount,
		"balance", updated.EnbBalance,
	)
	return &entity.BalanceUpdateResult{
		NewBalance:    updated.EnbBalance,
		TransactionId: audit.Id,
	}, nil
}

func (c *Core) Transactions(walletAddress string, limit int) ([]entity.TokenTransaction, error) {
	account, err := c.store.GetAccount(walletAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if account == nil {
		return nil, entity.ErrAccountNotFound
	}
	if limit <= 0 || limit > c.leaderboardMax {
		limit = defaultTransactionsLimit
	}
	transactions, err := c.store.GetTransactions(walletAddress, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if transactions == nil {
		transactions = []entity.TokenTransaction{}
	}
	return transactions, nil
}
