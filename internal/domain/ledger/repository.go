package ledger

import (
	"context"
)

// Repository define a interface para operações de repositório do livro-caixa
type Repository interface {
	// Create insere um novo lançamento
	Create(ctx context.Context, e *Entry) error

	// FindByID busca um lançamento pelo ID
	FindByID(ctx context.Context, id string) (*Entry, error)

	// FindByIDs busca um conjunto de lançamentos pelos IDs
	FindByIDs(ctx context.Context, ids []string) ([]*Entry, error)

	// List retorna todos os lançamentos, mais recentes primeiro
	List(ctx context.Context) ([]*Entry, error)

	// UpdateType altera a classificação de um lançamento (usado pela
	// quitação para marcar a conta a receber original como Quitado)
	UpdateType(ctx context.Context, id string, t Type) error
}
