package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrocha/aquagas-api/internal/adapter/api/dto"
	"github.com/vrocha/aquagas-api/internal/domain/ledger"
	"github.com/vrocha/aquagas-api/internal/domain/order"
	"github.com/vrocha/aquagas-api/pkg/logger"
)

func newOrderTestServer(t *testing.T) (*gin.Engine, *fakeOrderRepo, *fakeLedgerRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderRepo := newFakeOrderRepo()
	ledgerRepo := newFakeLedgerRepo()
	controller := NewOrderController(orderRepo, ledgerRepo, logger.NewLogger())

	router := gin.New()
	router.POST("/orders", controller.Create)
	router.POST("/orders/status", controller.BulkStatus)

	return router, orderRepo, ledgerRepo
}

func seedOrder(t *testing.T, repo *fakeOrderRepo, name, phone string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		[]order.CartItem{{ProductID: "p1", Name: "Botijão 13kg", Quantity: 1, UnitPrice: decimal.NewFromInt(110)}},
		order.CustomerSnapshot{Name: name, Phone: phone},
		"Carlos",
		"Pix",
	)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderRecordsSale(t *testing.T) {
	router, orderRepo, ledgerRepo := newOrderTestServer(t)

	w := postJSON(t, router, "/orders", dto.OrderRequest{
		Items: []dto.CartItemRequest{
			{ProductID: "p1", Name: "Botijão 13kg", Quantity: 2, UnitPrice: decimal.NewFromInt(110)},
		},
		CustomerName:  "Maria",
		CustomerPhone: "11988887777",
		PaymentMethod: "Pix",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, orderRepo.orders, 1)

	require.Len(t, ledgerRepo.entries, 1)
	entry := ledgerRepo.entries[0]
	assert.Equal(t, ledger.TypeInflow, entry.Type)
	assert.Equal(t, "Venda: Maria", entry.Description)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(220)))
}

func TestCreateOrderOnCreditRecordsReceivable(t *testing.T) {
	router, _, ledgerRepo := newOrderTestServer(t)

	w := postJSON(t, router, "/orders", dto.OrderRequest{
		Items: []dto.CartItemRequest{
			{ProductID: "p1", Name: "Galão 20L", Quantity: 1, UnitPrice: decimal.NewFromInt(15)},
		},
		CustomerName:  "João",
		PaymentMethod: "Fiado",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, ledgerRepo.entries, 1)
	assert.Equal(t, ledger.TypeReceivable, ledgerRepo.entries[0].Type)
	assert.Equal(t, "Venda a prazo: João", ledgerRepo.entries[0].Description)
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	router, orderRepo, _ := newOrderTestServer(t)

	w := postJSON(t, router, "/orders", gin.H{
		"items":          []any{},
		"customer_name":  "Maria",
		"payment_method": "Pix",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, orderRepo.orders)
}

func TestBulkStatusReturnsNotifications(t *testing.T) {
	router, orderRepo, _ := newOrderTestServer(t)
	withPhone := seedOrder(t, orderRepo, "Maria", "11 98888-7777")
	withoutPhone := seedOrder(t, orderRepo, "João", "")

	w := postJSON(t, router, "/orders/status", dto.BulkStatusRequest{
		OrderIDs: []string{withPhone.ID, withoutPhone.ID},
		Status:   "Saiu para Entrega",
		ETA:      "40 minutos",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.BulkStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Updated)
	assert.Equal(t, order.StatusOutForDelivery, orderRepo.orders[withPhone.ID].Status)
	assert.Equal(t, order.StatusOutForDelivery, orderRepo.orders[withoutPhone.ID].Status)

	// Só o pedido com telefone gera aviso, já com link wa.me montado
	require.Len(t, resp.Notifications, 1)
	n := resp.Notifications[0]
	assert.Equal(t, withPhone.ID, n.OrderID)
	assert.Contains(t, n.Message, "Previsão de chegada: 40 minutos.")
	assert.Contains(t, n.Link, "https://wa.me/5511988887777?text=")
}

func TestBulkStatusRejectsLeavingFinalState(t *testing.T) {
	router, orderRepo, _ := newOrderTestServer(t)
	delivered := seedOrder(t, orderRepo, "Maria", "")
	delivered.Status = order.StatusDelivered

	w := postJSON(t, router, "/orders/status", dto.BulkStatusRequest{
		OrderIDs: []string{delivered.ID},
		Status:   "Saiu para Entrega",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, order.StatusDelivered, orderRepo.orders[delivered.ID].Status)
}

func TestBulkStatusIdempotent(t *testing.T) {
	router, orderRepo, _ := newOrderTestServer(t)
	delivered := seedOrder(t, orderRepo, "Maria", "")
	delivered.Status = order.StatusDelivered

	w := postJSON(t, router, "/orders/status", dto.BulkStatusRequest{
		OrderIDs: []string{delivered.ID},
		Status:   "Entregue",
	})

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestBulkStatusUnknownOrder(t *testing.T) {
	router, _, _ := newOrderTestServer(t)

	w := postJSON(t, router, "/orders/status", dto.BulkStatusRequest{
		OrderIDs: []string{"nao-existe"},
		Status:   "Entregue",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
