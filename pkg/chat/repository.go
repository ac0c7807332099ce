package chat

import (
	"context"
)

// Repository define a interface para operações de repositório do
// histórico do compositor de marketing
type Repository interface {
	// SaveMessage salva uma nova mensagem no histórico
	SaveMessage(ctx context.Context, message *Message) error

	// GetUserHistory retorna o histórico de mensagens de um operador,
	// mais recentes primeiro
	GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]Message, error)

	// DeleteUserHistory deleta todo o histórico de um operador
	DeleteUserHistory(ctx context.Context, userID string) error
}
