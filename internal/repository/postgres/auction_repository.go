package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bidding-engine/internal/model"
	"bidding-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.AuctionRepository = (*AuctionRepositoryImpl)(nil)

// AuctionRepositoryImpl is the PostgreSQL implementation of AuctionRepository
type AuctionRepositoryImpl struct {
	*TransactionManager
}

func NewAuctionRepository(pool *pgxpool.Pool) repository.AuctionRepository {
	return &AuctionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const auctionColumns = `id, product_id, seller_id, start_time, end_time, status, starting_bid, min_increment,
       current_bid, highest_bidder_id, total_bids, extensions_used, max_extensions, version, created_at, updated_at`

func scanAuction(row pgx.Row) (*model.Auction, error) {
	a := &model.Auction{}
	err := row.Scan(&a.ID, &a.ProductID, &a.SellerID, &a.StartTime, &a.EndTime, &a.Status,
		&a.StartingBid, &a.MinIncrement, &a.CurrentBid, &a.HighestBidderID, &a.TotalBids,
		&a.ExtensionsUsed, &a.MaxExtensions, &a.Version, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AuctionRepositoryImpl) Insert(ctx context.Context, auction *model.Auction) error {
	query := `
        INSERT INTO auctions (id, product_id, seller_id, start_time, end_time, status, starting_bid,
                              min_increment, current_bid, highest_bidder_id, total_bids, extensions_used,
                              max_extensions, version)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, auction.ID, auction.ProductID, auction.SellerID,
		auction.StartTime, auction.EndTime, auction.Status, auction.StartingBid, auction.MinIncrement,
		auction.CurrentBid, auction.HighestBidderID, auction.TotalBids, auction.ExtensionsUsed,
		auction.MaxExtensions, auction.Version).
		Scan(&auction.CreatedAt, &auction.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert auction: %w", err)
	}
	return nil
}

func (r *AuctionRepositoryImpl) Get(ctx context.Context, id string) (*model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1`

	auction, err := scanAuction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuctionNotFound
		}
		return nil, fmt.Errorf("failed to get auction: %w", err)
	}
	return auction, nil
}

// UpdatePointer writes the highest-bid pointer guarded by the version column
func (r *AuctionRepositoryImpl) UpdatePointer(ctx context.Context, auction *model.Auction, expectedVersion int, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE auctions
        SET current_bid = $1, highest_bidder_id = $2, total_bids = $3, extensions_used = $4,
            end_time = $5, status = $6, version = version + 1, updated_at = NOW()
        WHERE id = $7 AND version = $8`

	commandTag, err := tx.Exec(ctx, query, auction.CurrentBid, auction.HighestBidderID,
		auction.TotalBids, auction.ExtensionsUsed, auction.EndTime, auction.Status,
		auction.ID, expectedVersion)
	if err != nil {
		return false, fmt.Errorf("failed to update auction pointer: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// UpdateStatus transitions status iff the current status is in from
func (r *AuctionRepositoryImpl) UpdateStatus(ctx context.Context, id string, from []model.AuctionStatus, to model.AuctionStatus) (bool, error) {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = string(s)
	}

	query := `
        UPDATE auctions
        SET status = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2 AND status = ANY($3)`

	commandTag, err := r.pool.Exec(ctx, query, to, id, fromStrs)
	if err != nil {
		return false, fmt.Errorf("failed to update auction status: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// CancelIfNoBids transitions an open auction to cancelled iff no bid was admitted
func (r *AuctionRepositoryImpl) CancelIfNoBids(ctx context.Context, id string) (bool, error) {
	query := `
        UPDATE auctions
        SET status = 'cancelled', version = version + 1, updated_at = NOW()
        WHERE id = $1 AND total_bids = 0 AND status IN ('scheduled', 'live', 'ending_soon')`

	commandTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to cancel auction: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// ActivateDue flips scheduled auctions whose start time has passed to live
func (r *AuctionRepositoryImpl) ActivateDue(ctx context.Context, now time.Time, limit int) (int64, error) {
	query := `
        UPDATE auctions
        SET status = 'live', version = version + 1, updated_at = NOW()
        WHERE id IN (
            SELECT id FROM auctions
            WHERE status = 'scheduled' AND start_time <= $1
            ORDER BY start_time
            LIMIT $2
        )`

	commandTag, err := r.pool.Exec(ctx, query, now, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to activate due auctions: %w", err)
	}
	return commandTag.RowsAffected(), nil
}

// ListExpired retrieves open auctions whose end time has passed
func (r *AuctionRepositoryImpl) ListExpired(ctx context.Context, now time.Time, limit int) ([]*model.Auction, error) {
	query := `
        SELECT ` + auctionColumns + `
        FROM auctions
        WHERE status IN ('live', 'ending_soon', 'ended') AND end_time <= $1
        ORDER BY end_time
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired auctions: %w", err)
	}
	defer rows.Close()

	var auctions []*model.Auction
	for rows.Next() {
		auction, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan auction: %w", err)
		}
		auctions = append(auctions, auction)
	}
	return auctions, nil
}
