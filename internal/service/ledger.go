package service

import (
	"context"
	"errors"
	"fmt"

	"bidding-engine/internal/fraud"
	"bidding-engine/internal/metrics"
	"bidding-engine/internal/model"
	"bidding-engine/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const systemActor = "system"

type LedgerServiceImpl struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	dbManager   repository.DBManager
	fraud       FraudPublisher
	metrics     *metrics.Collector
	logger      zerolog.Logger
}

func NewLedgerService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	fraudPublisher FraudPublisher,
	collector *metrics.Collector,
	logger zerolog.Logger,
) LedgerService {
	return &LedgerServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		dbManager:   dbManager,
		fraud:       fraudPublisher,
		metrics:     collector,
		logger:      logger,
	}
}

// entryOp describes one single-account ledger mutation. availDelta and
// escrowDelta are applied to the locked account row; the entry is
// appended in the same store transaction.
type entryOp struct {
	userID         int64
	entryType      model.EntryType
	amount         int64
	availDelta     int64
	escrowDelta    int64
	auctionID      *string
	bidID          *string
	reference      string
	note           string
	createdBy      string
	provision      bool
	markObligation bool
	guard          func(*model.Account) error
}

// append runs one ledger mutation atomically. A duplicate reference
// collapses onto the originally committed entry, which makes every
// referenced operation safe to retry.
func (s *LedgerServiceImpl) append(ctx context.Context, op entryOp) (string, error) {
	entryID := uuid.New().String()

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if op.provision {
			if err := s.accountRepo.CreateIfAbsent(ctx, op.userID, tx); err != nil {
				return fmt.Errorf("provision account: %w", err)
			}
		}

		acct, err := s.accountRepo.GetForUpdate(ctx, op.userID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}

		if op.guard != nil {
			if err := op.guard(acct); err != nil {
				return err
			}
		}

		newAvailable := acct.Available + op.availDelta
		newEscrow := acct.Escrow + op.escrowDelta
		if newAvailable < 0 {
			return model.ErrInsufficientFunds
		}
		if newEscrow < 0 {
			return model.ErrEscrowUnderflow
		}

		if err := s.accountRepo.UpdateBalances(ctx, op.userID, newAvailable, newEscrow, tx); err != nil {
			return fmt.Errorf("update balances: %w", err)
		}

		entry := &model.LedgerEntry{
			EntryID:      entryID,
			UserID:       op.userID,
			Type:         op.entryType,
			Amount:       op.amount,
			AuctionID:    op.auctionID,
			BidID:        op.bidID,
			Reference:    op.reference,
			Note:         op.note,
			CreatedBy:    op.createdBy,
			BalanceAfter: newAvailable + newEscrow,
		}
		if err := s.ledgerRepo.Insert(ctx, entry, tx); err != nil {
			return err
		}

		if op.markObligation {
			if err := s.accountRepo.SetUnpaidObligation(ctx, op.userID, tx); err != nil {
				return fmt.Errorf("set unpaid obligation: %w", err)
			}
		}
		return nil
	})

	if errors.Is(err, model.ErrDuplicateEntry) && op.reference != "" {
		existing, getErr := s.ledgerRepo.GetByReference(ctx, op.reference)
		if getErr != nil {
			return "", fmt.Errorf("get entry after duplicate: %w", getErr)
		}
		s.logger.Info().
			Str("reference", op.reference).
			Int64("user_id", op.userID).
			Str("type", op.entryType.String()).
			Msg("ledger entry already recorded")
		return existing.EntryID, nil
	}
	if err != nil {
		return "", err
	}

	s.metrics.LedgerEntry(op.entryType.String())
	s.logger.Info().
		Str("entry_id", entryID).
		Int64("user_id", op.userID).
		Str("type", op.entryType.String()).
		Int64("amount", op.amount).
		Msg("ledger entry recorded")
	return entryID, nil
}

func (s *LedgerServiceImpl) Hold(ctx context.Context, userID, amount int64, auctionID, bidID, reference string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: hold amount must be positive", model.ErrInvalidAmount)
	}

	return s.append(ctx, entryOp{
		userID:      userID,
		entryType:   model.EntryEscrowHold,
		amount:      amount,
		availDelta:  -amount,
		escrowDelta: amount,
		auctionID:   &auctionID,
		bidID:       &bidID,
		reference:   reference,
		createdBy:   systemActor,
		guard: func(acct *model.Account) error {
			if acct.IsBlocked {
				return model.ErrAccountBlocked
			}
			if acct.Available < amount {
				return model.ErrInsufficientFunds
			}
			return nil
		},
	})
}

func (s *LedgerServiceImpl) Release(ctx context.Context, userID, amount int64, auctionID, bidID, reference string) (string, error) {
	return s.releaseEscrow(ctx, model.EntryEscrowRelease, userID, amount, auctionID, bidID, reference)
}

func (s *LedgerServiceImpl) Refund(ctx context.Context, userID, amount int64, auctionID, bidID, reference string) (string, error) {
	return s.releaseEscrow(ctx, model.EntryRefund, userID, amount, auctionID, bidID, reference)
}

func (s *LedgerServiceImpl) releaseEscrow(ctx context.Context, entryType model.EntryType, userID, amount int64, auctionID, bidID, reference string) (string, error) {
	entryID, err := s.append(ctx, entryOp{
		userID:      userID,
		entryType:   entryType,
		amount:      amount,
		availDelta:  amount,
		escrowDelta: -amount,
		auctionID:   &auctionID,
		bidID:       &bidID,
		reference:   reference,
		createdBy:   systemActor,
		guard: func(acct *model.Account) error {
			if acct.Escrow < amount {
				return model.ErrEscrowUnderflow
			}
			return nil
		},
	})

	if errors.Is(err, model.ErrEscrowUnderflow) {
		// a logic bug upstream, not a user error
		s.logger.Error().
			Int64("user_id", userID).
			Int64("amount", amount).
			Str("auction_id", auctionID).
			Str("bid_id", bidID).
			Msg("ledger integrity violation: escrow release exceeds escrow balance")
	}
	return entryID, err
}

func (s *LedgerServiceImpl) Capture(ctx context.Context, userID, amount int64, auctionID, bidID, reference string) (string, error) {
	entryID, err := s.append(ctx, entryOp{
		userID:         userID,
		entryType:      model.EntryEscrowCapture,
		amount:         amount,
		escrowDelta:    -amount,
		auctionID:      &auctionID,
		bidID:          &bidID,
		reference:      reference,
		createdBy:      systemActor,
		markObligation: true,
		guard: func(acct *model.Account) error {
			if acct.Escrow < amount {
				return model.ErrEscrowUnderflow
			}
			return nil
		},
	})

	if errors.Is(err, model.ErrEscrowUnderflow) {
		s.logger.Error().
			Int64("user_id", userID).
			Int64("amount", amount).
			Str("auction_id", auctionID).
			Msg("ledger integrity violation: escrow capture exceeds escrow balance")
	}
	return entryID, err
}

func (s *LedgerServiceImpl) Adjust(ctx context.Context, userID, delta int64, actorID, note string) (string, error) {
	if delta == 0 {
		return "", fmt.Errorf("%w: adjustment delta must be non-zero", model.ErrInvalidAmount)
	}

	return s.append(ctx, entryOp{
		userID:     userID,
		entryType:  model.EntryAdminAdjustment,
		amount:     delta,
		availDelta: delta,
		note:       note,
		createdBy:  actorID,
		guard: func(acct *model.Account) error {
			// available floors at zero; escrow is untouchable here
			if acct.Available+delta < 0 {
				return model.ErrInsufficientFunds
			}
			return nil
		},
	})
}

func (s *LedgerServiceImpl) Deposit(ctx context.Context, userID, amount int64, sourceRef string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: deposit amount must be positive", model.ErrInvalidAmount)
	}

	entryID, err := s.append(ctx, entryOp{
		userID:     userID,
		entryType:  model.EntryDeposit,
		amount:     amount,
		availDelta: amount,
		reference:  "deposit:" + sourceRef,
		createdBy:  "payment-gateway",
		provision:  true,
	})
	if err != nil {
		return "", err
	}

	if s.fraud != nil {
		s.fraud.Publish(fraud.Event{Type: fraud.EventDepositMade, UserID: userID, Amount: amount})
	}
	return entryID, nil
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	acct, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return &model.BalanceResponse{
		UserID:    acct.UserID,
		Available: acct.Available,
		Escrow:    acct.Escrow,
		IsBlocked: acct.IsBlocked,
	}, nil
}

func (s *LedgerServiceImpl) ListEntries(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return entries, nil
}

func (s *LedgerServiceImpl) FlagForReconciliation(ctx context.Context, userID int64, note string) error {
	if err := s.accountRepo.SetNeedsReconciliation(ctx, userID); err != nil {
		return fmt.Errorf("flag account for reconciliation: %w", err)
	}

	s.metrics.ReconciliationIncident()
	s.logger.Error().
		Int64("user_id", userID).
		Str("note", note).
		Msg("reconciliation incident: account flagged for manual review")
	return nil
}
