package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vrocha/aquagas-api/pkg/chat"
)

// ChatRepository implementa a interface chat.Repository sobre a tabela
// de histórico do compositor de marketing
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository cria uma nova instância de ChatRepository
func NewChatRepository(db *pgxpool.Pool) chat.Repository {
	return &ChatRepository{
		db: db,
	}
}

// SaveMessage implementa chat.Repository.SaveMessage
func (r *ChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO mensagens_marketing (id, user_id, role, conteudo, criada_em)
		VALUES ($1, $2, $3, $4, $5)`,
		message.ID, message.UserID, message.Role, message.Content, message.Timestamp)

	if err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}

	return nil
}

// GetUserHistory implementa chat.Repository.GetUserHistory
func (r *ChatRepository) GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]chat.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, role, conteudo, criada_em
		FROM mensagens_marketing
		WHERE user_id = $1
		ORDER BY criada_em DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	defer rows.Close()

	messages := []chat.Message{}
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer mensagens: %w", err)
	}

	return messages, nil
}

// DeleteUserHistory implementa chat.Repository.DeleteUserHistory
func (r *ChatRepository) DeleteUserHistory(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM mensagens_marketing WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("erro ao apagar histórico: %w", err)
	}
	return nil
}
