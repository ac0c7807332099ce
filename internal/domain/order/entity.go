package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart         = errors.New("carrinho não pode ser vazio")
	ErrBlankCustomerName = errors.New("nome do cliente não pode ser vazio")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrFinalStatus       = errors.New("pedido já está em um estado final")
	ErrInvalidTransition = errors.New("transição de status inválida")
)

// DefaultAgentName é usado quando o pedido sai sem entregador atribuído
const DefaultAgentName = "Logística"

// Status representa o estado do pedido no ciclo de entrega
type Status string

const (
	StatusPending        Status = "Pendente"
	StatusOutForDelivery Status = "Saiu para Entrega"
	StatusDelivered      Status = "Entregue"
	StatusCancelled      Status = "Cancelado"
)

// ParseStatus valida um status vindo da borda da API
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.TrimSpace(raw)) {
	case StatusPending:
		return StatusPending, nil
	case StatusOutForDelivery:
		return StatusOutForDelivery, nil
	case StatusDelivered:
		return StatusDelivered, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", errors.New("status de pedido inválido: " + raw)
}

// IsFinal informa se o status é terminal
func (s Status) IsFinal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo informa se a transição para o status alvo é válida.
// Reaplicar o status atual é sempre permitido (a atualização em lote é
// idempotente); nenhum estado sai de Entregue ou Cancelado.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	if s.IsFinal() {
		return false
	}
	// Pendente e Saiu para Entrega avançam ou cancelam livremente
	return target == StatusOutForDelivery || target == StatusDelivered || target == StatusCancelled
}

// CartItem é a linha efêmera do carrinho durante a montagem do pedido.
// Nome e preço unitário são capturas do produto no momento da inclusão.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Item é a linha imutável gravada no pedido
type Item struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CustomerSnapshot é a cópia dos dados do cliente gravada no pedido.
// É uma captura do momento da venda, não uma referência viva ao
// cadastro: alterações posteriores no cliente não se propagam.
type CustomerSnapshot struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order representa um pedido de entrega
type Order struct {
	ID            string           `json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	Customer      CustomerSnapshot `json:"customer"`
	Items         []Item           `json:"items"`
	Total         decimal.Decimal  `json:"total"`
	AgentName     string           `json:"agent_name"`
	Status        Status           `json:"status"`
	PaymentMethod string           `json:"payment_method"`
}

// CartTotal calcula o total de um carrinho: Σ(quantidade × preço unitário)
func CartTotal(cart []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// NewOrder cria um pedido em estado Pendente a partir do carrinho. O
// total é congelado no fechamento: mudanças de preço posteriores não o
// recalculam.
func NewOrder(cart []CartItem, customer CustomerSnapshot, agentName, paymentMethod string) (*Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	if strings.TrimSpace(customer.Name) == "" {
		return nil, ErrBlankCustomerName
	}

	items := make([]Item, 0, len(cart))
	for _, row := range cart {
		if row.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		items = append(items, Item{
			ProductID: row.ProductID,
			Name:      row.Name,
			Quantity:  row.Quantity,
			UnitPrice: row.UnitPrice,
			Subtotal:  row.UnitPrice.Mul(decimal.NewFromInt(int64(row.Quantity))),
		})
	}

	if strings.TrimSpace(agentName) == "" {
		agentName = DefaultAgentName
	}

	return &Order{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now(),
		Customer:      customer,
		Items:         items,
		Total:         CartTotal(cart),
		AgentName:     agentName,
		Status:        StatusPending,
		PaymentMethod: paymentMethod,
	}, nil
}

// Transition aplica uma mudança de status ao pedido
func (o *Order) Transition(target Status) error {
	if !o.Status.CanTransitionTo(target) {
		if o.Status.IsFinal() {
			return ErrFinalStatus
		}
		return ErrInvalidTransition
	}
	o.Status = target
	return nil
}
