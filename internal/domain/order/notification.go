package order

import (
	"fmt"
	"strings"
)

// Notification é a intenção de aviso de saída para entrega de um
// pedido. A transição em lote devolve uma por pedido afetado que tenha
// telefone; o disparo (abrir o link de composição) é decisão do
// chamador, nunca efeito colateral da operação de domínio.
type Notification struct {
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
}

// DeliveryNotification monta o aviso de saída para entrega de um
// pedido. Retorna false quando o pedido não tem telefone conhecido.
func DeliveryNotification(o *Order, eta string) (Notification, bool) {
	if strings.TrimSpace(o.Customer.Phone) == "" {
		return Notification{}, false
	}

	agent := o.AgentName
	if strings.TrimSpace(agent) == "" {
		agent = DefaultAgentName
	}

	message := fmt.Sprintf("Olá, %s! Seu pedido saiu para entrega com %s.", o.Customer.Name, agent)
	if strings.TrimSpace(eta) != "" {
		message += fmt.Sprintf(" Previsão de chegada: %s.", eta)
	}

	return Notification{
		OrderID:      o.ID,
		CustomerName: o.Customer.Name,
		Phone:        o.Customer.Phone,
		Message:      message,
	}, true
}

// DeliveryNotifications monta os avisos de uma transição em lote,
// na ordem dos pedidos informados. Pedidos sem telefone ficam de fora.
func DeliveryNotifications(orders []*Order, eta string) []Notification {
	notifications := make([]Notification, 0, len(orders))
	for _, o := range orders {
		if n, ok := DeliveryNotification(o, eta); ok {
			notifications = append(notifications, n)
		}
	}
	return notifications
}
