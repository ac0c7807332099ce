package agent

import (
	"context"
)

// Repository define a interface para operações de repositório de entregadores
type Repository interface {
	// Create cria um novo entregador
	Create(ctx context.Context, a *Agent) error

	// FindByID busca um entregador pelo ID
	FindByID(ctx context.Context, id string) (*Agent, error)

	// List lista todos os entregadores
	List(ctx context.Context, limit, offset int) ([]*Agent, error)

	// ListActive lista apenas os entregadores ativos (oferecidos na
	// atribuição de pedidos)
	ListActive(ctx context.Context) ([]*Agent, error)

	// Update atualiza os dados de um entregador existente
	Update(ctx context.Context, a *Agent) error

	// UpdateStatus atualiza o status de um entregador
	UpdateStatus(ctx context.Context, id string, status Status) error
}
