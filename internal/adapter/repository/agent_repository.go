package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vrocha/aquagas-api/internal/domain/agent"
)

// Erros específicos do repositório
var (
	ErrAgentNotFound = errors.New("entregador não encontrado")
)

// AgentRepository implementa a interface agent.Repository
type AgentRepository struct {
	db *pgxpool.Pool
}

// NewAgentRepository cria uma nova instância de AgentRepository
func NewAgentRepository(db *pgxpool.Pool) agent.Repository {
	return &AgentRepository{
		db: db,
	}
}

const agentColumns = `id, nome, telefone, veiculo, status, created_at, updated_at`

// Create implementa agent.Repository.Create
func (r *AgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO entregadores (id, nome, telefone, veiculo, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Name, a.Phone, a.Vehicle, a.Status, a.CreatedAt, a.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar entregador: %w", err)
	}

	return nil
}

// FindByID implementa agent.Repository.FindByID
func (r *AgentRepository) FindByID(ctx context.Context, id string) (*agent.Agent, error) {
	var a agent.Agent
	err := r.db.QueryRow(ctx,
		`SELECT `+agentColumns+` FROM entregadores WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Phone, &a.Vehicle, &a.Status, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("erro ao buscar entregador: %w", err)
	}

	return &a, nil
}

func (r *AgentRepository) scanAgentRows(rows pgx.Rows) ([]*agent.Agent, error) {
	agents := []*agent.Agent{}
	for rows.Next() {
		var a agent.Agent
		err := rows.Scan(&a.ID, &a.Name, &a.Phone, &a.Vehicle, &a.Status, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler entregador: %w", err)
		}
		agents = append(agents, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer entregadores: %w", err)
	}

	return agents, nil
}

// List implementa agent.Repository.List
func (r *AgentRepository) List(ctx context.Context, limit, offset int) ([]*agent.Agent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+agentColumns+` FROM entregadores ORDER BY nome ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar entregadores: %w", err)
	}
	defer rows.Close()

	return r.scanAgentRows(rows)
}

// ListActive implementa agent.Repository.ListActive
func (r *AgentRepository) ListActive(ctx context.Context) ([]*agent.Agent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+agentColumns+` FROM entregadores WHERE status = $1 ORDER BY nome ASC`,
		agent.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar entregadores ativos: %w", err)
	}
	defer rows.Close()

	return r.scanAgentRows(rows)
}

// Update implementa agent.Repository.Update
func (r *AgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE entregadores SET nome = $2, telefone = $3, veiculo = $4, updated_at = $5
		WHERE id = $1`,
		a.ID, a.Name, a.Phone, a.Vehicle, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar entregador: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAgentNotFound
	}

	return nil
}

// UpdateStatus implementa agent.Repository.UpdateStatus
func (r *AgentRepository) UpdateStatus(ctx context.Context, id string, status agent.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE entregadores SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do entregador: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAgentNotFound
	}

	return nil
}
