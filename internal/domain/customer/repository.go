package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// CreateBatch grava os clientes de uma importação de planilha
	CreateBatch(ctx context.Context, customers []*Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// FindByName busca um cliente pelo nome de exibição, sem diferenciar
	// maiúsculas e com espaços nas bordas ignorados (usado pela cobrança
	// para localizar o telefone do devedor)
	FindByName(ctx context.Context, name string) (*Customer, error)

	// List lista os clientes com paginação, em ordem alfabética
	List(ctx context.Context, limit, offset int) ([]*Customer, error)

	// Search busca clientes por trecho do nome
	Search(ctx context.Context, term string, limit, offset int) ([]*Customer, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// CountAll conta os clientes cadastrados
	CountAll(ctx context.Context) (int, error)
}
