package order

import (
	"context"
)

// Repository define a interface para operações de repositório de pedidos
type Repository interface {
	// Create grava um novo pedido
	Create(ctx context.Context, o *Order) error

	// FindByID busca um pedido pelo ID
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindByIDs busca um conjunto de pedidos pelos IDs
	FindByIDs(ctx context.Context, ids []string) ([]*Order, error)

	// List lista os pedidos com paginação, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Order, error)

	// ListByStatus lista os pedidos em um determinado status
	ListByStatus(ctx context.Context, status Status, limit, offset int) ([]*Order, error)

	// UpdateStatusBulk aplica um status a todos os pedidos informados em
	// uma única escrita. Sem relatório parcial: ou a escrita toda vale,
	// ou o chamador recebe um único erro agregado.
	UpdateStatusBulk(ctx context.Context, ids []string, status Status) error

	// CountAll conta os pedidos registrados
	CountAll(ctx context.Context) (int, error)
}
