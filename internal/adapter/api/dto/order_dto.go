package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vrocha/aquagas-api/internal/domain/order"
)

// CartItemRequest representa uma linha do carrinho no fechamento do pedido
type CartItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// OrderRequest representa a requisição de fechamento de pedido
type OrderRequest struct {
	Items           []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName    string            `json:"customer_name" binding:"required"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerAddress string            `json:"customer_address"`
	AgentName       string            `json:"agent_name"`
	PaymentMethod   string            `json:"payment_method" binding:"required"`
}

// BulkStatusRequest representa a transição de status em lote
type BulkStatusRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required,min=1"`
	Status   string   `json:"status" binding:"required"`
	ETA      string   `json:"eta"`
}

// OrderItemResponse representa uma linha gravada do pedido
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse representa a resposta de pedido
type OrderResponse struct {
	ID              string              `json:"id"`
	CreatedAt       time.Time           `json:"created_at"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerAddress string              `json:"customer_address"`
	Items           []OrderItemResponse `json:"items"`
	Total           decimal.Decimal     `json:"total"`
	AgentName       string              `json:"agent_name"`
	Status          order.Status        `json:"status"`
	PaymentMethod   string              `json:"payment_method"`
}

// OrderListResponse representa a resposta de lista de pedidos
type OrderListResponse struct {
	Items      []OrderResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalPages int             `json:"total_pages"`
}

// NotificationResponse representa um aviso de entrega pendente de envio
type NotificationResponse struct {
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
	Link         string `json:"link"`
}

// BulkStatusResponse representa o resultado de uma transição em lote
type BulkStatusResponse struct {
	Updated       int                    `json:"updated"`
	Status        order.Status           `json:"status"`
	Notifications []NotificationResponse `json:"notifications"`
}

// TrackingResponse representa a projeção pública de acompanhamento
type TrackingResponse struct {
	OrderID      string               `json:"order_id"`
	CreatedAt    time.Time            `json:"created_at"`
	CustomerName string               `json:"customer_name"`
	Address      string               `json:"address"`
	AgentName    string               `json:"agent_name"`
	Status       order.Status         `json:"status"`
	Steps        []order.TrackingStep `json:"steps"`
	Cancelled    bool                 `json:"cancelled"`
}

// ToOrderResponse converte a entidade Order para o DTO de resposta
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	return OrderResponse{
		ID:              o.ID,
		CreatedAt:       o.CreatedAt,
		CustomerName:    o.Customer.Name,
		CustomerPhone:   o.Customer.Phone,
		CustomerAddress: o.Customer.Address,
		Items:           items,
		Total:           o.Total,
		AgentName:       o.AgentName,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
	}
}

// ToOrderListResponse converte uma lista de pedidos para o DTO de lista
func ToOrderListResponse(orders []*order.Order, total, page, size int) OrderListResponse {
	items := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, ToOrderResponse(o))
	}

	return OrderListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}

// ToTrackingResponse converte a projeção de acompanhamento para o DTO
func ToTrackingResponse(t order.Tracking) TrackingResponse {
	return TrackingResponse{
		OrderID:      t.OrderID,
		CreatedAt:    t.CreatedAt,
		CustomerName: t.CustomerName,
		Address:      t.Address,
		AgentName:    t.AgentName,
		Status:       t.Status,
		Steps:        t.Steps,
		Cancelled:    t.Cancelled,
	}
}
