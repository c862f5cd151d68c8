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
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const entryColumns = `id, entry_id, user_id, entry_type, amount, auction_id, bid_id, reference, note, created_by, balance_after, created_at`

func scanEntry(row pgx.Row) (*model.LedgerEntry, error) {
	entry := &model.LedgerEntry{}
	err := row.Scan(&entry.ID, &entry.EntryID, &entry.UserID, &entry.Type, &entry.Amount,
		&entry.AuctionID, &entry.BidID, &entry.Reference, &entry.Note, &entry.CreatedBy, &entry.BalanceAfter, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Insert appends a ledger entry
func (r *LedgerRepositoryImpl) Insert(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error {
	query := `
        INSERT INTO ledger_entries (entry_id, user_id, entry_type, amount, auction_id, bid_id, reference, note, created_by, balance_after)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, entry.EntryID, entry.UserID, entry.Type, entry.Amount,
		entry.AuctionID, entry.BidID, entry.Reference, entry.Note, entry.CreatedBy, entry.BalanceAfter).
		Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

// GetByReference retrieves the entry committed under an idempotency reference
func (r *LedgerRepositoryImpl) GetByReference(ctx context.Context, reference string) (*model.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE reference = $1`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry by reference: %w", err)
	}
	return entry, nil
}

// ListByUser retrieves paginated entries for a user, newest first
func (r *LedgerRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM ledger_entries WHERE user_id = $1
        ORDER BY id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.LedgerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
