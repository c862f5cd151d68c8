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
var _ repository.AccountRepository = (*AccountRepositoryImpl)(nil)

// AccountRepositoryImpl is the PostgreSQL implementation of AccountRepository
type AccountRepositoryImpl struct {
	*TransactionManager
}

func NewAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return &AccountRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const accountColumns = `user_id, available_balance, escrow_balance, is_blocked, has_unpaid_obligation, needs_reconciliation, created_at, updated_at`

func scanAccount(row pgx.Row) (*model.Account, error) {
	acct := &model.Account{}
	err := row.Scan(&acct.UserID, &acct.Available, &acct.Escrow, &acct.IsBlocked,
		&acct.HasUnpaidObligation, &acct.NeedsReconciliation, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return acct, nil
}

// CreateIfAbsent provisions an account row with zero balances
func (r *AccountRepositoryImpl) CreateIfAbsent(ctx context.Context, userID int64, tx pgx.Tx) error {
	query := `
        INSERT INTO accounts (user_id, available_balance, escrow_balance)
        VALUES ($1, 0, 0)
        ON CONFLICT (user_id) DO NOTHING`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetForUpdate retrieves an account with a row-level lock
func (r *AccountRepositoryImpl) GetForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 FOR UPDATE`
	return scanAccount(tx.QueryRow(ctx, query, userID))
}

// Get retrieves an account without locking
func (r *AccountRepositoryImpl) Get(ctx context.Context, userID int64) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1`
	return scanAccount(r.pool.QueryRow(ctx, query, userID))
}

// UpdateBalances writes both balances of one account
func (r *AccountRepositoryImpl) UpdateBalances(ctx context.Context, userID int64, available, escrow int64, tx pgx.Tx) error {
	query := `
        UPDATE accounts
        SET available_balance = $1, escrow_balance = $2, updated_at = NOW()
        WHERE user_id = $3`

	commandTag, err := tx.Exec(ctx, query, available, escrow, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT available_non_negative / escrow_non_negative CHECK (... >= 0)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to update balances: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

// SetBlocked flips the block flag
func (r *AccountRepositoryImpl) SetBlocked(ctx context.Context, userID int64, blocked bool) error {
	query := `UPDATE accounts SET is_blocked = $1, updated_at = NOW() WHERE user_id = $2`

	commandTag, err := r.pool.Exec(ctx, query, blocked, userID)
	if err != nil {
		return fmt.Errorf("failed to set blocked flag: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

// SetUnpaidObligation marks the winner's purchase obligation
func (r *AccountRepositoryImpl) SetUnpaidObligation(ctx context.Context, userID int64, tx pgx.Tx) error {
	query := `UPDATE accounts SET has_unpaid_obligation = TRUE, updated_at = NOW() WHERE user_id = $1`

	commandTag, err := tx.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to set unpaid obligation: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

// SetNeedsReconciliation flags an account for manual review
func (r *AccountRepositoryImpl) SetNeedsReconciliation(ctx context.Context, userID int64) error {
	query := `UPDATE accounts SET needs_reconciliation = TRUE, updated_at = NOW() WHERE user_id = $1`

	commandTag, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to flag account for reconciliation: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}
