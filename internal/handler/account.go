package handler

import (
	"net/http"
	"strconv"

	"bidding-engine/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *Handler) userIDParam(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return userID, true
}

// GetBalance
// @Summary Get account balance
// @Description Returns available and escrowed balances in minor units
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /users/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	resp, err := h.ledger.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Deposit
// @Summary Fund an account
// @Description Credits a confirmed payment-gateway capture; amount is in major units ("10.50"). Replays of the same source_ref are idempotent.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param deposit body model.DepositRequest true "Deposit details"
// @Success 201 {object} model.EntryResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /users/{id}/deposits [post]
func (h *Handler) Deposit(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	// gateways report major units; the ledger only ever sees minor units
	major, err := decimal.NewFromString(req.Amount)
	if err != nil || !major.IsPositive() {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "amount must be a positive decimal string",
			Code:  "INVALID_AMOUNT",
		})
		return
	}
	minor := major.Shift(2)
	if !minor.IsInteger() {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "amount has more than two fractional digits",
			Code:  "INVALID_AMOUNT",
		})
		return
	}

	entryID, err := h.ledger.Deposit(c.Request.Context(), userID, minor.IntPart(), req.SourceRef)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.EntryResponse{EntryID: entryID, Status: "recorded"})
}

// AdjustBalance
// @Summary Adjust an account balance
// @Description Admin-only signed adjustment of the available balance, floored at zero
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param adjustment body model.AdjustBalanceRequest true "Adjustment details (delta in minor units)"
// @Success 201 {object} model.EntryResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /users/{id}/adjustments [post]
func (h *Handler) AdjustBalance(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	var req model.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	entryID, err := h.ledger.Adjust(c.Request.Context(), userID, req.Delta, req.ActorID, req.Note)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.EntryResponse{EntryID: entryID, Status: "recorded"})
}

// ListTransactions
// @Summary List ledger entries
// @Description Returns a paginated audit view of a user's ledger, newest first
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.EntryListResponse
// @Router /users/{id}/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.ledger.ListEntries(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.EntryListResponse{
		Entries: entries,
		Total:   len(entries),
		Limit:   limit,
		Offset:  offset,
	})
}
