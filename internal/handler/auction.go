package handler

import (
	"net/http"

	"bidding-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateAuction
// @Summary Create an auction listing
// @Description Registers a new auction for a product; bidding opens at start_time
// @Tags auctions
// @Accept json
// @Produce json
// @Param auction body model.CreateAuctionRequest true "Auction details"
// @Success 201 {object} model.Auction
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /auctions [post]
func (h *Handler) CreateAuction(c *gin.Context) {
	var req model.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	auction, err := h.auctions.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, auction)
}

// GetAuction
// @Summary Get an auction snapshot
// @Description Returns the auction with its wall-clock effective status
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID"
// @Success 200 {object} model.Auction
// @Failure 404 {object} model.ErrorResponse "Auction not found"
// @Router /auctions/{id} [get]
func (h *Handler) GetAuction(c *gin.Context) {
	auction, err := h.auctions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, auction)
}

// PlaceBid
// @Summary Place a bid
// @Description Admits a bid on a live auction, escrowing the bidder's funds
// @Tags auctions
// @Accept json
// @Produce json
// @Param id path string true "Auction ID"
// @Param bid body model.PlaceBidRequest true "Bid details (amount in minor units)"
// @Success 201 {object} model.BidResult
// @Failure 400 {object} model.ErrorResponse "Bid rejected"
// @Failure 409 {object} model.ErrorResponse "Auction not live"
// @Failure 503 {object} model.ErrorResponse "Contention, retry"
// @Router /auctions/{id}/bids [post]
func (h *Handler) PlaceBid(c *gin.Context) {
	var req model.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	result, err := h.bidding.PlaceBid(c.Request.Context(), c.Param("id"), req.UserID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// CancelAuction
// @Summary Cancel an auction
// @Description Cancels an auction; once bids exist the active hold is refunded via settlement
// @Tags auctions
// @Accept json
// @Produce json
// @Param id path string true "Auction ID"
// @Param cancellation body model.CancelAuctionRequest true "Acting seller/admin"
// @Success 200 {object} map[string]string
// @Failure 404 {object} model.ErrorResponse "Auction not found"
// @Failure 409 {object} model.ErrorResponse "Concurrent change, retry"
// @Router /auctions/{id}/cancel [post]
func (h *Handler) CancelAuction(c *gin.Context) {
	var req model.CancelAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if err := h.auctions.Cancel(c.Request.Context(), c.Param("id"), req.ActorID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
