package dto

import (
	"time"

	"github.com/vrocha/aquagas-api/pkg/chat"
)

// ComposeRequest representa o briefing do compositor de marketing
type ComposeRequest struct {
	Product   string `json:"product" binding:"required"`
	Promotion string `json:"promotion"`
	Audience  string `json:"audience"`
	Tone      string `json:"tone"`
}

// ComposeResponse representa o texto promocional gerado
type ComposeResponse struct {
	Text string `json:"text"`
}

// ComposerMessageResponse representa uma mensagem do histórico do compositor
type ComposerMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ComposerHistoryResponse representa o histórico de composições
type ComposerHistoryResponse struct {
	Messages []ComposerMessageResponse `json:"messages"`
}

// ToComposerHistoryResponse converte o histórico para o DTO de resposta
func ToComposerHistoryResponse(messages []chat.Message) ComposerHistoryResponse {
	items := make([]ComposerMessageResponse, 0, len(messages))
	for _, m := range messages {
		items = append(items, ComposerMessageResponse{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return ComposerHistoryResponse{Messages: items}
}
