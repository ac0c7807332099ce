package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// List lista os produtos com paginação, em ordem alfabética
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// ListLowStock lista os produtos abaixo do limite de estoque
	ListLowStock(ctx context.Context, threshold int) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// CountAll conta os produtos cadastrados
	CountAll(ctx context.Context) (int, error)
}
