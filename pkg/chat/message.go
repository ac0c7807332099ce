package chat

import "time"

// Message representa uma mensagem no histórico do compositor de
// marketing (o briefing do operador e o texto gerado)
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
