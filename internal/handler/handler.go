package handler

import (
	"errors"
	"net/http"

	"bidding-engine/internal/model"
	"bidding-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	bidding        service.BiddingService
	auctions       service.AuctionService
	ledger         service.LedgerService
	metricsHandler http.Handler
	logger         zerolog.Logger
}

func NewHandler(
	bidding service.BiddingService,
	auctions service.AuctionService,
	ledger service.LedgerService,
	metricsHandler http.Handler,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		bidding:        bidding,
		auctions:       auctions,
		ledger:         ledger,
		metricsHandler: metricsHandler,
		logger:         logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if h.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(h.metricsHandler))
	}

	// API routes
	v1 := router.Group("/api/v1")

	auctions := v1.Group("/auctions")
	auctions.POST("", h.CreateAuction)
	auctions.GET("/:id", h.GetAuction)
	auctions.POST("/:id/bids", h.PlaceBid)
	auctions.POST("/:id/cancel", h.CancelAuction)

	users := v1.Group("/users")
	users.GET("/:id/balance", h.GetBalance)
	users.POST("/:id/deposits", h.Deposit)
	users.POST("/:id/adjustments", h.AdjustBalance)
	users.GET("/:id/transactions", h.ListTransactions)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrBidTooLow):
		status = http.StatusBadRequest
		code = "BID_TOO_LOW"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrSelfBid):
		status = http.StatusBadRequest
		code = "SELF_BID"
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrAccountBlocked):
		status = http.StatusForbidden
		code = "ACCOUNT_BLOCKED"
	case errors.Is(err, model.ErrAuctionNotLive):
		status = http.StatusConflict
		code = "AUCTION_NOT_LIVE"
	case errors.Is(err, model.ErrAuctionNotEnded):
		status = http.StatusConflict
		code = "AUCTION_NOT_ENDED"
	case errors.Is(err, model.ErrOptimisticConflict):
		status = http.StatusConflict
		code = "CONFLICT_RETRY"
		resp.Details = "The auction changed concurrently; retry the request"
	case errors.Is(err, model.ErrAuctionNotFound):
		status = http.StatusNotFound
		code = "AUCTION_NOT_FOUND"
	case errors.Is(err, model.ErrAccountNotFound):
		status = http.StatusNotFound
		code = "ACCOUNT_NOT_FOUND"
	case errors.Is(err, model.ErrBusy):
		status = http.StatusServiceUnavailable
		code = "BUSY"
		resp.Details = "The auction is under contention; retry shortly"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
