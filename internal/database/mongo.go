package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"enbminer/entity"
	"enbminer/internal/config"
)

const (
	collectionAccounts        = "accounts"
	collectionInvitationUsage = "invitation_usage"
	collectionTransactions    = "transactions"
)

// leaderboard field names per board kind
var boardFields = map[entity.LeaderboardKind]string{
	entity.BoardBalance:  "enb_balance",
	entity.BoardEarnings: "total_earned",
	entity.BoardStreaks:  "consecutive_days",
}

type MongoDB struct {
	ctx           context.Context
	clientOptions *options.ClientOptions
	database      string
}

func NewMongoClient(conf *config.Config) *MongoDB {
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	client := &MongoDB{
		ctx:           context.Background(),
		clientOptions: clientOptions,
		database:      conf.Mongo.Database,
	}
	return client
}

func (m *MongoDB) connect() (*mongo.Client, error) {
	connection, err := mongo.Connect(m.ctx, m.clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	return connection, nil
}

func (m *MongoDB) disconnect(connection *mongo.Client) {
	_ = connection.Disconnect(m.ctx)
}

func (m *MongoDB) accounts(connection *mongo.Client) *mongo.Collection {
	return connection.Database(m.database).Collection(collectionAccounts)
}

func (m *MongoDB) CreateAccount(account *entity.Account) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	_, err = m.accounts(connection).InsertOne(m.ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return entity.ErrAccountExists
	}
	return err
}

// GetAccount returns (nil, nil) when the wallet is unregistered.
func (m *MongoDB) GetAccount(walletAddress string) (*entity.Account, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	filter := bson.D{{Key: "wallet_address", Value: walletAddress}}
	var account entity.Account
	err = m.accounts(connection).FindOne(m.ctx, filter).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongodb find: %w", err)
	}
	return &account, nil
}

func (m *MongoDB) GetAccountByInvitationCode(code string) (*entity.Account, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	filter := bson.D{{Key: "invitation_code", Value: code}}
	var account entity.Account
	err = m.accounts(connection).FindOne(m.ctx, filter).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongodb find: %w", err)
	}
	return &account, nil
}

// ActivateAccount applies the three activation writes in one transaction:
// flip the account to activated, consume one use on the inviter, append the
// usage record. The inviter update re-checks the usage cap inside the
// transaction so the cap holds under concurrent redemptions.
func (m *MongoDB) ActivateAccount(walletAddress string, inviter *entity.Account, usedAt time.Time) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	session, err := connection.StartSession()
	if err != nil {
		return fmt.Errorf("mongodb session: %w", err)
	}
	defer session.EndSession(m.ctx)

	accounts := m.accounts(connection)
	usages := connection.Database(m.database).Collection(collectionInvitationUsage)

	_, err = session.WithTransaction(m.ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := accounts.UpdateOne(sc,
			bson.D{{Key: "wallet_address", Value: walletAddress}, {Key: "is_activated", Value: false}},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "is_activated", Value: true},
				{Key: "activated_at", Value: usedAt},
				{Key: "inviter_wallet", Value: inviter.WalletAddress},
			}}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, entity.ErrAlreadyActivated
		}

		res, err = accounts.UpdateOne(sc,
			bson.D{
				{Key: "wallet_address", Value: inviter.WalletAddress},
				{Key: "$expr", Value: bson.D{{Key: "$lt", Value: bson.A{"$current_invitation_uses", "$max_invitation_uses"}}}},
			},
			bson.D{{Key: "$inc", Value: bson.D{{Key: "current_invitation_uses", Value: 1}}}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, entity.ErrUsageLimitExceeded
		}

		_, err = usages.InsertOne(sc, entity.InvitationUsage{
			InvitationCode: inviter.InvitationCode,
			UsedBy:         walletAddress,
			InviterWallet:  inviter.WalletAddress,
			UsedAt:         usedAt,
		})
		return nil, err
	})
	return err
}

func (m *MongoDB) HasInvitationUsage(code, walletAddress string) (bool, error) {
	connection, err := m.connect()
	if err != nil {
		return false, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(collectionInvitationUsage)
	filter := bson.D{{Key: "invitation_code", Value: code}, {Key: "used_by", Value: walletAddress}}
	count, err := collection.CountDocuments(m.ctx, filter)
	if err != nil {
		return false, fmt.Errorf("mongodb count: %w", err)
	}
	return count > 0, nil
}

func (m *MongoDB) ListInvitationUsages(code string) ([]entity.InvitationUsage, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(collectionInvitationUsage)
	filter := bson.D{{Key: "invitation_code", Value: code}}
	opts := options.Find().SetSort(bson.D{{Key: "used_at", Value: 1}})
	cursor, err := collection.Find(m.ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find: %w", err)
	}
	defer cursor.Close(m.ctx)

	var usages []entity.InvitationUsage
	if err = cursor.All(m.ctx, &usages); err != nil {
		return nil, err
	}
	return usages, nil
}

// ApplyClaim persists a successful daily claim. The update filter pins the
// claim timestamp the caller read, so of two concurrent claims only one can
// match; the loser reports false. The audit record is written in the same
// transaction.
func (m *MongoDB) ApplyClaim(walletAddress string, prevClaim *time.Time, consecutiveDays int, reward int64, claimedAt time.Time, audit *entity.TokenTransaction) (bool, error) {
	connection, err := m.connect()
	if err != nil {
		return false, err
	}
	defer m.disconnect(connection)

	session, err := connection.StartSession()
	if err != nil {
		return false, fmt.Errorf("mongodb session: %w", err)
	}
	defer session.EndSession(m.ctx)

	var prevFilter interface{} = bson.D{{Key: "$exists", Value: false}}
	if prevClaim != nil {
		prevFilter = *prevClaim
	}
	filter := bson.D{
		{Key: "wallet_address", Value: walletAddress},
		{Key: "last_daily_claim_time", Value: prevFilter},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "last_daily_claim_time", Value: claimedAt},
			{Key: "consecutive_days", Value: consecutiveDays},
		}},
		{Key: "$inc", Value: bson.D{
			{Key: "enb_balance", Value: reward},
			{Key: "total_earned", Value: reward},
		}},
	}

	accounts := m.accounts(connection)
	transactions := connection.Database(m.database).Collection(collectionTransactions)

	applied := false
	_, err = session.WithTransaction(m.ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := accounts.UpdateOne(sc, filter, update)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, nil
		}
		applied = true
		_, err = transactions.InsertOne(sc, audit)
		return nil, err
	})
	return applied, err
}

// SaveBalanceUpdate applies a credit or debit together with its audit
// record. Debits are filtered on a sufficient balance so the account can
// never be driven negative, whatever races with it.
func (m *MongoDB) SaveBalanceUpdate(audit *entity.TokenTransaction) (*entity.Account, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	session, err := connection.StartSession()
	if err != nil {
		return nil, fmt.Errorf("mongodb session: %w", err)
	}
	defer session.EndSession(m.ctx)

	delta := audit.Amount
	filter := bson.D{{Key: "wallet_address", Value: audit.WalletAddress}}
	if audit.Type == entity.TransactionDebit {
		delta = -delta
		filter = append(filter, bson.E{Key: "enb_balance", Value: bson.D{{Key: "$gte", Value: audit.Amount}}})
	}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "enb_balance", Value: delta}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	accounts := m.accounts(connection)
	transactions := connection.Database(m.database).Collection(collectionTransactions)

	var updated entity.Account
	_, err = session.WithTransaction(m.ctx, func(sc mongo.SessionContext) (interface{}, error) {
		err := accounts.FindOneAndUpdate(sc, filter, update, opts).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrInsufficientBalance
		}
		if err != nil {
			return nil, err
		}
		audit.BalanceAfter = updated.EnbBalance
		audit.BalanceBefore = updated.EnbBalance - delta
		_, err = transactions.InsertOne(sc, audit)
		return nil, err
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (m *MongoDB) SetMembershipLevel(walletAddress string, level entity.MembershipLevel, txHash string) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "membership_level", Value: level},
		{Key: "membership_tx_hash", Value: txHash},
	}}}
	res, err := m.accounts(connection).UpdateOne(m.ctx, bson.D{{Key: "wallet_address", Value: walletAddress}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrAccountNotFound
	}
	return nil
}

func (m *MongoDB) GetTransactions(walletAddress string, limit int) ([]entity.TokenTransaction, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(collectionTransactions)
	filter := bson.D{{Key: "wallet_address", Value: walletAddress}}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))
	cursor, err := collection.Find(m.ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find: %w", err)
	}
	defer cursor.Close(m.ctx)

	var transactions []entity.TokenTransaction
	if err = cursor.All(m.ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// TopAccounts returns activated accounts sorted descending by the board's
// field. Recomputed per request, no caching.
func (m *MongoDB) TopAccounts(kind entity.LeaderboardKind, limit int) ([]*entity.Account, error) {
	field, ok := boardFields[kind]
	if !ok {
		return nil, fmt.Errorf("unknown leaderboard kind: %s", kind)
	}
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	filter := bson.D{{Key: "is_activated", Value: true}}
	opts := options.Find().SetSort(bson.D{{Key: field, Value: -1}}).SetLimit(int64(limit))
	cursor, err := m.accounts(connection).Find(m.ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find: %w", err)
	}
	defer cursor.Close(m.ctx)

	var accounts []*entity.Account
	if err = cursor.All(m.ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CountGreater counts activated accounts whose board field strictly
// exceeds the given value; rank = count + 1.
func (m *MongoDB) CountGreater(kind entity.LeaderboardKind, value int64) (int, error) {
	field, ok := boardFields[kind]
	if !ok {
		return 0, fmt.Errorf("unknown leaderboard kind: %s", kind)
	}
	connection, err := m.connect()
	if err != nil {
		return 0, err
	}
	defer m.disconnect(connection)

	filter := bson.D{{Key: "is_activated", Value: true}, {Key: field, Value: bson.D{{Key: "$gt", Value: value}}}}
	count, err := m.accounts(connection).CountDocuments(m.ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("mongodb count: %w", err)
	}
	return int(count), nil
}

func (m *MongoDB) ListAccounts(filter entity.AccountFilter) ([]*entity.Account, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	query := bson.D{}
	if filter.MembershipLevel != "" {
		query = append(query, bson.E{Key: "membership_level", Value: filter.MembershipLevel})
	}
	if filter.IsActivated != nil {
		query = append(query, bson.E{Key: "is_activated", Value: *filter.IsActivated})
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))
	cursor, err := m.accounts(connection).Find(m.ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find: %w", err)
	}
	defer cursor.Close(m.ctx)

	var accounts []*entity.Account
	if err = cursor.All(m.ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
