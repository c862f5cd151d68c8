package service

import (
	"context"
	"testing"
	"time"

	"bidding-engine/internal/config"
	"bidding-engine/internal/locker"
	"bidding-engine/internal/metrics"
	"bidding-engine/internal/model"
	"bidding-engine/mocks/repository"
	mockservice "bidding-engine/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testAuctionConfig() config.AuctionConfig {
	return config.AuctionConfig{
		AntiSnipeWindow:      time.Minute,
		DefaultMaxExtensions: 5,
		LockTimeout:          time.Second,
		AdmissionRetries:     3,
		CompensationRetries:  2,
	}
}

func liveAuction() *model.Auction {
	return &model.Auction{
		ID:            "auc-1",
		ProductID:     "prod-1",
		SellerID:      1,
		StartTime:     testNow.Add(-time.Hour),
		EndTime:       testNow.Add(time.Hour),
		Status:        model.AuctionLive,
		StartingBid:   100,
		MinIncrement:  10,
		CurrentBid:    100,
		MaxExtensions: 5,
		Version:       1,
	}
}

func newBiddingService(t *testing.T, ledger *mockservice.LedgerService, auctionRepo *mocks.AuctionRepository, bidRepo *mocks.BidRepository, dbManager *mocks.DBManager) *BiddingServiceImpl {
	t.Helper()
	svc := NewBiddingService(ledger, auctionRepo, bidRepo, dbManager, locker.New(), nil, metrics.NewCollector(), testAuctionConfig(), zerolog.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestPlaceBid_FirstBid(t *testing.T) {
	ctx := context.Background()

	mockLedger := mockservice.NewLedgerService(t)
	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockBidRepo := mocks.NewBidRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passthroughTx(mockDBManager, ctx)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(liveAuction(), nil)
	mockLedger.On("Hold", ctx, int64(7), int64(100), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("entry-1", nil)
	mockAuctionRepo.On("UpdatePointer", ctx, mock.MatchedBy(func(a *model.Auction) bool {
		return a.CurrentBid == 100 && a.TotalBids == 1 && a.HighestBidderID != nil && *a.HighestBidderID == 7
	}), 1, mock.Anything).Return(true, nil)
	mockBidRepo.On("Insert", ctx, mock.MatchedBy(func(b *model.Bid) bool {
		return b.AuctionID == "auc-1" && b.UserID == 7 && b.Amount == 100 && b.Status == model.BidActive
	}), mock.Anything).Return(nil)

	svc := newBiddingService(t, mockLedger, mockAuctionRepo, mockBidRepo, mockDBManager)

	result, err := svc.PlaceBid(ctx, "auc-1", 7, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(100), result.CurrentBid)
	assert.Equal(t, 1, result.TotalBids)
	assert.False(t, result.Extended)
	assert.NotEmpty(t, result.BidID)
}

func TestPlaceBid_OutbidsPreviousHighest(t *testing.T) {
	ctx := context.Background()

	mockLedger := mockservice.NewLedgerService(t)
	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockBidRepo := mocks.NewBidRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	bidder1 := int64(7)
	auction := liveAuction()
	auction.CurrentBid = 110
	auction.HighestBidderID = &bidder1
	auction.TotalBids = 1
	auction.Version = 3

	prev := &model.Bid{ID: "prev-1", AuctionID: "auc-1", UserID: 7, Amount: 110, Status: model.BidActive}

	passthroughTx(mockDBManager, ctx)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(auction, nil)
	mockBidRepo.On("GetActive", ctx, "auc-1").Return(prev, nil)
	mockLedger.On("Hold", ctx, int64(8), int64(125), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("entry-new", nil)
	mockLedger.On("Release", ctx, int64(7), int64(110), "auc-1", "prev-1", "release:prev-1").Return("entry-rel", nil)
	mockAuctionRepo.On("UpdatePointer", ctx, mock.MatchedBy(func(a *model.Auction) bool {
		return a.CurrentBid == 125 && a.TotalBids == 2 && *a.HighestBidderID == 8
	}), 3, mock.Anything).Return(true, nil)
	mockBidRepo.On("UpdateStatus", ctx, "prev-1", model.BidActive, model.BidOutbid, mock.Anything).Return(true, nil)
	mockBidRepo.On("Insert", ctx, mock.MatchedBy(func(b *model.Bid) bool {
		return b.UserID == 8 && b.Amount == 125 && b.Status == model.BidActive
	}), mock.Anything).Return(nil)

	svc := newBiddingService(t, mockLedger, mockAuctionRepo, mockBidRepo, mockDBManager)

	result, err := svc.PlaceBid(ctx, "auc-1", 8, 125)

	require.NoError(t, err)
	assert.Equal(t, int64(125), result.CurrentBid)
	assert.Equal(t, 2, result.TotalBids)
}

func TestPlaceBid_BelowMinimumIncrement(t *testing.T) {
	ctx := context.Background()

	mockAuctionRepo := mocks.NewAuctionRepository(t)

	bidder1 := int64(7)
	auction := liveAuction()
	auction.CurrentBid = 110
	auction.HighestBidderID = &bidder1
	auction.TotalBids = 1

	mockAuctionRepo.On("Get", ctx, "auc-1").Return(auction, nil)

	svc := newBiddingService(t, mockservice.NewLedgerService(t), mockAuctionRepo, mocks.NewBidRepository(t), mocks.NewDBManager(t))

	// current bid 110, increment 10: 115 is too low, 120 is the floor
	_, err := svc.PlaceBid(ctx, "auc-1", 8, 115)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrBidTooLow)
	assert.Contains(t, err.Error(), "minimum next bid 120")
}

func TestPlaceBid_FirstBidMayEqualStartingBid(t *testing.T) {
	ctx := context.Background()

	mockLedger := mockservice.NewLedgerService(t)
	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockBidRepo := mocks.NewBidRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passthroughTx(mockDBManager, ctx)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(liveAuction(), nil)
	mockLedger.On("Hold", ctx, int64(7), int64(100), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("entry-1", nil)
	mockAuctionRepo.On("UpdatePointer", ctx, mock.Anything, 1, mock.Anything).Return(true, nil)
	mockBidRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)

	svc := newBiddingService(t, mockLedger, mockAuctionRepo, mockBidRepo, mockDBManager)

	// no bids yet: the starting bid itself is admissible, no increment on top
	_, err := svc.PlaceBid(ctx, "auc-1", 7, 100)

	require.NoError(t, err)
}

func TestPlaceBid_SellerCannotBid(t *testing.T) {
	ctx := context.Background()

	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(liveAuction(), nil)

	svc := newBiddingService(t, mockservice.NewLedgerService(t), mockAuctionRepo, mocks.NewBidRepository(t), mocks.NewDBManager(t))

	_, err := svc.PlaceBid(ctx, "auc-1", 1, 200)

	assert.ErrorIs(t, err, model.ErrSelfBid)
}

func TestPlaceBid_AuctionNotStarted(t *testing.T) {
	ctx := context.Background()

	auction := liveAuction()
	auction.StartTime = testNow.Add(time.Hour)
	auction.EndTime = testNow.Add(2 * time.Hour)
	auction.Status = model.AuctionScheduled

	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(auction, nil)

	svc := newBiddingService(t, mockservice.NewLedgerService(t), mockAuctionRepo, mocks.NewBidRepository(t), mocks.NewDBManager(t))

	_, err := svc.PlaceBid(ctx, "auc-1", 7, 100)

	assert.ErrorIs(t, err, model.ErrAuctionNotLive)
}

func TestPlaceBid_AuctionPastEnd(t *testing.T) {
	ctx := context.Background()

	// the sweeper has not flipped the row yet, but the clock says ended
	auction := liveAuction()
	auction.EndTime = testNow.Add(-time.Second)

	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(auction, nil)

	svc := newBiddingService(t, mockservice.NewLedgerService(t), mockAuctionRepo, mocks.NewBidRepository(t), mocks.NewDBManager(t))

	_, err := svc.PlaceBid(ctx, "auc-1", 7, 100)

	assert.ErrorIs(t, err, model.ErrAuctionNotLive)
}

func TestPlaceBid_InvalidAmount(t *testing.T) {
	svc := newBiddingService(t, mockservice.NewLedgerService(t), mocks.NewAuctionRepository(t), mocks.NewBidRepository(t), mocks.NewDBManager(t))

	_, err := svc.PlaceBid(context.Background(), "auc-1", 7, 0)

	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestPlaceBid_LateBidExtendsEndTime(t *testing.T) {
	ctx := context.Background()

	auction := liveAuction()
	auction.EndTime = testNow.Add(30 * time.Second)

	mockLedger := mockservice.NewLedgerService(t)
	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockBidRepo := mocks.NewBidRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passthroughTx(mockDBManager, ctx)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(auction, nil)
	mockLedger.On("Hold", ctx, int64(7), int64(100), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("entry-1", nil)
	mockAuctionRepo.On("UpdatePointer", ctx, mock.MatchedBy(func(a *model.Auction) bool {
		return a.EndTime.Equal(auction.EndTime.Add(time.Minute)) && a.ExtensionsUsed == 1
	}), 1, mock.Anything).Return(true, nil)
	mockBidRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)

	svc := newBiddingService(t, mockLedger, mockAuctionRepo, mockBidRepo, mockDBManager)

	result, err := svc.PlaceBid(ctx, "auc-1", 7, 100)

	require.NoError(t, err)
	assert.True(t, result.Extended)
	assert.Equal(t, auction.EndTime.Add(time.Minute), result.EndTime)
}

func TestPlaceBid_ExtensionCapReached(t *testing.T) {
	ctx := context.Background()

	auction := liveAuction()
	auction.EndTime = testNow.Add(30 * time.Second)
	auction.ExtensionsUsed = 5

	mockLedger := mockservice.NewLedgerService(t)
	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockBidRepo := mocks.NewBidRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passthroughTx(mockDBManager, ctx)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(auction, nil)
	mockLedger.On("Hold", ctx, int64(7), int64(100), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("entry-1", nil)
	mockAuctionRepo.On("UpdatePointer", ctx, mock.MatchedBy(func(a *model.Auction) bool {
		return a.EndTime.Equal(auction.EndTime) && a.ExtensionsUsed == 5
	}), 1, mock.Anything).Return(true, nil)
	mockBidRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)

	svc := newBiddingService(t, mockLedger, mockAuctionRepo, mockBidRepo, mockDBManager)

	result, err := svc.PlaceBid(ctx, "auc-1", 7, 100)

	require.NoError(t, err)
	assert.False(t, result.Extended)
}

func TestPlaceBid_RetriesOnVersionConflict(t *testing.T) {
	ctx := context.Background()

	mockLedger := mockservice.NewLedgerService(t)
	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockBidRepo := mocks.NewBidRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passthroughTx(mockDBManager, ctx)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(liveAuction(), nil)
	mockLedger.On("Hold", ctx, int64(7), int64(100), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("entry-1", nil)
	// first attempt loses the version race, compensation returns the hold
	mockAuctionRepo.On("UpdatePointer", ctx, mock.Anything, 1, mock.Anything).Return(false, nil).Once()
	mockLedger.On("Release", ctx, int64(7), int64(100), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("entry-comp", nil).Once()
	// second attempt wins
	mockAuctionRepo.On("UpdatePointer", ctx, mock.Anything, 1, mock.Anything).Return(true, nil).Once()
	mockBidRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)

	svc := newBiddingService(t, mockLedger, mockAuctionRepo, mockBidRepo, mockDBManager)

	result, err := svc.PlaceBid(ctx, "auc-1", 7, 100)

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalBids)
}

func TestPlaceBid_ConflictRetriesExhaustedSurfaceAsBusy(t *testing.T) {
	ctx := context.Background()

	mockLedger := mockservice.NewLedgerService(t)
	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockBidRepo := mocks.NewBidRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	passthroughTx(mockDBManager, ctx)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(liveAuction(), nil)
	mockLedger.On("Hold", ctx, int64(7), int64(100), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("entry-1", nil)
	mockAuctionRepo.On("UpdatePointer", ctx, mock.Anything, 1, mock.Anything).Return(false, nil)
	mockLedger.On("Release", ctx, int64(7), int64(100), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("entry-comp", nil)

	svc := newBiddingService(t, mockLedger, mockAuctionRepo, mockBidRepo, mockDBManager)

	_, err := svc.PlaceBid(ctx, "auc-1", 7, 100)

	assert.ErrorIs(t, err, model.ErrBusy)
}

func TestPlaceBid_InsufficientFundsSurfaces(t *testing.T) {
	ctx := context.Background()

	mockLedger := mockservice.NewLedgerService(t)
	mockAuctionRepo := mocks.NewAuctionRepository(t)

	mockAuctionRepo.On("Get", ctx, "auc-1").Return(liveAuction(), nil)
	mockLedger.On("Hold", ctx, int64(7), int64(100), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("", model.ErrInsufficientFunds)

	svc := newBiddingService(t, mockLedger, mockAuctionRepo, mocks.NewBidRepository(t), mocks.NewDBManager(t))

	_, err := svc.PlaceBid(ctx, "auc-1", 7, 100)

	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
}

func TestPlaceBid_CommitFailureRestoresPreviousBidderEscrow(t *testing.T) {
	ctx := context.Background()

	mockLedger := mockservice.NewLedgerService(t)
	mockAuctionRepo := mocks.NewAuctionRepository(t)
	mockBidRepo := mocks.NewBidRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	bidder1 := int64(7)
	auction := liveAuction()
	auction.CurrentBid = 110
	auction.HighestBidderID = &bidder1
	auction.TotalBids = 1

	prev := &model.Bid{ID: "prev-1", AuctionID: "auc-1", UserID: 7, Amount: 110, Status: model.BidActive}

	passthroughTx(mockDBManager, ctx)
	mockAuctionRepo.On("Get", ctx, "auc-1").Return(auction, nil)
	mockBidRepo.On("GetActive", ctx, "auc-1").Return(prev, nil)
	mockLedger.On("Hold", ctx, int64(8), int64(125), "auc-1", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("entry-new", nil)
	mockLedger.On("Release", ctx, int64(7), int64(110), "auc-1", "prev-1", "release:prev-1").Return("entry-rel", nil)
	mockAuctionRepo.On("UpdatePointer", ctx, mock.Anything, 1, mock.Anything).Return(false, assert.AnError)
	// compensation: re-escrow the previous bidder, then return the new hold
	mockLedger.On("Hold", ctx, int64(7), int64(110), "auc-1", "prev-1", mock.MatchedBy(func(ref string) bool {
		return len(ref) > 7 && ref[:7] == "rehold:"
	})).Return("entry-rehold", nil)
	mockLedger.On("Release", ctx, int64(8), int64(125), "auc-1", mock.AnythingOfType("string"), mock.MatchedBy(func(ref string) bool {
		return len(ref) > 13 && ref[:13] == "comp-release:"
	})).Return("entry-comp", nil)

	svc := newBiddingService(t, mockLedger, mockAuctionRepo, mockBidRepo, mockDBManager)

	_, err := svc.PlaceBid(ctx, "auc-1", 8, 125)

	require.Error(t, err)
}
