package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/interfaces/http/dto"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &BaseHandler{}
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		h.HandleDomainError(c, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleDomainError_NotFound(t *testing.T) {
	w := performWithError(t, shared.NewDomainError("NOT_FOUND", "Order not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Order not found", resp.Error.Message)
}

func TestHandleDomainError_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("cancel order: %w", shared.ErrConcurrencyConflict)
	w := performWithError(t, wrapped)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeConcurrencyConflict, resp.Error.Code)
}

func TestHandleDomainError_InsufficientStock(t *testing.T) {
	w := performWithError(t, shared.NewInsufficientStockError("Widget", 2, 5))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInsufficientStock, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Widget")
}

func TestHandleDomainError_UnknownError(t *testing.T) {
	w := performWithError(t, fmt.Errorf("driver: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	// Internal details must never leak to clients
	assert.NotContains(t, resp.Error.Message, "driver")
}
