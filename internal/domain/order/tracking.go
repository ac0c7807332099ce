package order

import "time"

// TrackingStep é um passo da linha do tempo pública de acompanhamento
type TrackingStep struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// Tracking é a projeção pública e somente-leitura de um pedido,
// renderizada pela página acessada via QR code. O status do pedido é
// mapeado sobre uma sequência fixa de três passos; Cancelado aparece
// como um aviso terminal fora da sequência.
type Tracking struct {
	OrderID      string          `json:"order_id"`
	CreatedAt    time.Time       `json:"created_at"`
	CustomerName string          `json:"customer_name"`
	Address      string          `json:"address"`
	AgentName    string          `json:"agent_name"`
	Status       Status          `json:"status"`
	Steps        []TrackingStep  `json:"steps"`
	Cancelled    bool            `json:"cancelled"`
}

var trackingLabels = []string{"Confirmado", "Saiu para Entrega", "Entregue"}

func stepIndex(s Status) int {
	switch s {
	case StatusOutForDelivery:
		return 1
	case StatusDelivered:
		return 2
	default:
		// Pendente conta como Confirmado no acompanhamento público
		return 0
	}
}

// Track projeta um pedido na visão pública de acompanhamento
func Track(o *Order) Tracking {
	current := stepIndex(o.Status)

	steps := make([]TrackingStep, len(trackingLabels))
	for i, label := range trackingLabels {
		steps[i] = TrackingStep{Label: label, Done: i <= current}
	}

	cancelled := o.Status == StatusCancelled
	if cancelled {
		// Nenhum passo concluído além da confirmação original
		for i := 1; i < len(steps); i++ {
			steps[i].Done = false
		}
	}

	return Tracking{
		OrderID:      o.ID,
		CreatedAt:    o.CreatedAt,
		CustomerName: o.Customer.Name,
		Address:      o.Customer.Address,
		AgentName:    o.AgentName,
		Status:       o.Status,
		Steps:        steps,
		Cancelled:    cancelled,
	}
}
