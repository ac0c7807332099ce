package user

import (
	"context"
)

// Repository define a interface para operações de repositório de operadores
type Repository interface {
	// Create cria um novo operador
	Create(ctx context.Context, u *User) error

	// FindByID busca um operador pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um operador pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpdateLastLogin atualiza o timestamp de último login
	UpdateLastLogin(ctx context.Context, id string) error

	// CountAll conta os operadores cadastrados
	CountAll(ctx context.Context) (int, error)
}
