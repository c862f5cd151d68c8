package postgres

import (
	"context"
	"errors"
	"fmt"

	"bidding-engine/internal/model"
	"bidding-engine/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.BidRepository = (*BidRepositoryImpl)(nil)

// BidRepositoryImpl is the PostgreSQL implementation of BidRepository
type BidRepositoryImpl struct {
	*TransactionManager
}

func NewBidRepository(pool *pgxpool.Pool) repository.BidRepository {
	return &BidRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *BidRepositoryImpl) Insert(ctx context.Context, bid *model.Bid, tx pgx.Tx) error {
	query := `
        INSERT INTO bids (id, auction_id, user_id, amount, status, placed_at)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query, bid.ID, bid.AuctionID, bid.UserID, bid.Amount, bid.Status, bid.PlacedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// partial unique index: at most one active bid per auction
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrOptimisticConflict
		}
		return fmt.Errorf("failed to insert bid: %w", err)
	}
	return nil
}

// GetActive retrieves the single active bid for an auction
func (r *BidRepositoryImpl) GetActive(ctx context.Context, auctionID string) (*model.Bid, error) {
	query := `
        SELECT id, auction_id, user_id, amount, status, placed_at
        FROM bids WHERE auction_id = $1 AND status = 'active'`

	bid := &model.Bid{}
	err := r.pool.QueryRow(ctx, query, auctionID).
		Scan(&bid.ID, &bid.AuctionID, &bid.UserID, &bid.Amount, &bid.Status, &bid.PlacedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBidNotFound
		}
		return nil, fmt.Errorf("failed to get active bid: %w", err)
	}
	return bid, nil
}

// UpdateStatus transitions a bid iff its current status matches from
func (r *BidRepositoryImpl) UpdateStatus(ctx context.Context, bidID string, from, to model.BidStatus, tx pgx.Tx) (bool, error) {
	query := `UPDATE bids SET status = $1 WHERE id = $2 AND status = $3`

	commandTag, err := tx.Exec(ctx, query, to, bidID, from)
	if err != nil {
		return false, fmt.Errorf("failed to update bid status: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// FinalizeOutbid moves every outbid bid of an auction to a terminal status
func (r *BidRepositoryImpl) FinalizeOutbid(ctx context.Context, auctionID string, to model.BidStatus, tx pgx.Tx) (int64, error) {
	query := `UPDATE bids SET status = $1 WHERE auction_id = $2 AND status = 'outbid'`

	commandTag, err := tx.Exec(ctx, query, to, auctionID)
	if err != nil {
		return 0, fmt.Errorf("failed to finalize outbid bids: %w", err)
	}
	return commandTag.RowsAffected(), nil
}
