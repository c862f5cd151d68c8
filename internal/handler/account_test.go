package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bidding-engine/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandler_GetBalance_Success(t *testing.T) {
	h, _, _, mockLedger := setupHandler(t)

	router := gin.New()
	router.GET("/users/:id/balance", h.GetBalance)

	mockLedger.On("GetBalance", mock.Anything, int64(42)).Return(&model.BalanceResponse{
		UserID:    42,
		Available: 87500,
		Escrow:    12500,
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/users/42/balance", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.BalanceResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(87500), resp.Available)
	assert.Equal(t, int64(12500), resp.Escrow)
}

func TestHandler_GetBalance_InvalidUserID(t *testing.T) {
	h, _, _, _ := setupHandler(t)

	router := gin.New()
	router.GET("/users/:id/balance", h.GetBalance)

	for _, id := range []string{"abc", "0", "-5"} {
		req, _ := http.NewRequest(http.MethodGet, "/users/"+id+"/balance", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp model.ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "INVALID_REQUEST", resp.Code)
	}
}

func TestHandler_GetBalance_NotFound(t *testing.T) {
	h, _, _, mockLedger := setupHandler(t)

	router := gin.New()
	router.GET("/users/:id/balance", h.GetBalance)

	mockLedger.On("GetBalance", mock.Anything, int64(99)).Return(nil, model.ErrAccountNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/users/99/balance", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", resp.Code)
}

func TestHandler_Deposit_ConvertsMajorUnits(t *testing.T) {
	h, _, _, mockLedger := setupHandler(t)

	router := gin.New()
	router.POST("/users/:id/deposits", h.Deposit)

	mockLedger.On("Deposit", mock.Anything, int64(42), int64(1050), "pay_2qX9f1").Return("entry-1", nil)

	body, _ := json.Marshal(model.DepositRequest{Amount: "10.50", SourceRef: "pay_2qX9f1"})
	req, _ := http.NewRequest(http.MethodPost, "/users/42/deposits", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.EntryResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "entry-1", resp.EntryID)
	assert.Equal(t, "recorded", resp.Status)
}

func TestHandler_Deposit_InvalidAmount(t *testing.T) {
	h, _, _, _ := setupHandler(t)

	router := gin.New()
	router.POST("/users/:id/deposits", h.Deposit)

	for _, amount := range []string{"ten", "0", "-10.50", "10.505"} {
		body, _ := json.Marshal(model.DepositRequest{Amount: amount, SourceRef: "pay_1"})
		req, _ := http.NewRequest(http.MethodPost, "/users/42/deposits", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "amount %q", amount)
		var resp model.ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "INVALID_AMOUNT", resp.Code, "amount %q", amount)
	}
}

func TestHandler_Deposit_MissingSourceRef(t *testing.T) {
	h, _, _, _ := setupHandler(t)

	router := gin.New()
	router.POST("/users/:id/deposits", h.Deposit)

	req, _ := http.NewRequest(http.MethodPost, "/users/42/deposits", bytes.NewBufferString(`{"amount":"10.50"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}

func TestHandler_AdjustBalance_Success(t *testing.T) {
	h, _, _, mockLedger := setupHandler(t)

	router := gin.New()
	router.POST("/users/:id/adjustments", h.AdjustBalance)

	mockLedger.On("Adjust", mock.Anything, int64(42), int64(-500), "admin:7", "chargeback corr.").Return("entry-2", nil)

	body, _ := json.Marshal(model.AdjustBalanceRequest{Delta: -500, ActorID: "admin:7", Note: "chargeback corr."})
	req, _ := http.NewRequest(http.MethodPost, "/users/42/adjustments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.EntryResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "entry-2", resp.EntryID)
}

func TestHandler_AdjustBalance_BlockedAccount(t *testing.T) {
	h, _, _, mockLedger := setupHandler(t)

	router := gin.New()
	router.POST("/users/:id/adjustments", h.AdjustBalance)

	mockLedger.On("Adjust", mock.Anything, int64(42), int64(100), "admin:7", "goodwill").Return("", model.ErrAccountBlocked)

	body, _ := json.Marshal(model.AdjustBalanceRequest{Delta: 100, ActorID: "admin:7", Note: "goodwill"})
	req, _ := http.NewRequest(http.MethodPost, "/users/42/adjustments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "ACCOUNT_BLOCKED", resp.Code)
}

func TestHandler_ListTransactions_Defaults(t *testing.T) {
	h, _, _, mockLedger := setupHandler(t)

	router := gin.New()
	router.GET("/users/:id/transactions", h.ListTransactions)

	entries := []*model.LedgerEntry{
		{EntryID: "entry-2", Type: model.EntryEscrowHold, Amount: 12500},
		{EntryID: "entry-1", Type: model.EntryDeposit, Amount: 100000},
	}
	mockLedger.On("ListEntries", mock.Anything, int64(42), 10, 0).Return(entries, nil)

	req, _ := http.NewRequest(http.MethodGet, "/users/42/transactions", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.EntryListResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp.Entries, 2)
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, 0, resp.Offset)
	assert.Equal(t, "entry-2", resp.Entries[0].EntryID)
}

func TestHandler_ListTransactions_Pagination(t *testing.T) {
	h, _, _, mockLedger := setupHandler(t)

	router := gin.New()
	router.GET("/users/:id/transactions", h.ListTransactions)

	mockLedger.On("ListEntries", mock.Anything, int64(42), 5, 20).Return([]*model.LedgerEntry{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/users/42/transactions?limit=5&offset=20", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.EntryListResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 5, resp.Limit)
	assert.Equal(t, 20, resp.Offset)
	assert.Equal(t, 0, resp.Total)
}
