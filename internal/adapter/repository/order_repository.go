package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vrocha/aquagas-api/internal/domain/order"
)

// Erros específicos do repositório
var (
	ErrOrderNotFound = errors.New("pedido não encontrado")
)

// OrderRepository implementa a interface order.Repository
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool) order.Repository {
	return &OrderRepository{
		db: db,
	}
}

const orderColumns = `id, created_at, cliente_nome, cliente_telefone, cliente_endereco, itens, total, entregador_nome, status, forma_pagamento`

// Create implementa order.Repository.Create
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	// Itens do pedido são uma captura imutável; vão para uma coluna jsonb
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO pedidos (
			id, created_at, cliente_nome, cliente_telefone, cliente_endereco,
			itens, total, entregador_nome, status, forma_pagamento
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID, o.CreatedAt, o.Customer.Name, o.Customer.Phone, o.Customer.Address,
		items, o.Total, o.AgentName, o.Status, o.PaymentMethod)

	if err != nil {
		return fmt.Errorf("erro ao criar pedido: %w", err)
	}

	return nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order
	var itemsJSON []byte

	err := row.Scan(
		&o.ID, &o.CreatedAt, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Address,
		&itemsJSON, &o.Total, &o.AgentName, &o.Status, &o.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("erro ao converter itens do pedido: %w", err)
	}

	return &o, nil
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM pedidos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) scanOrderRows(rows pgx.Rows) ([]*order.Order, error) {
	orders := []*order.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler pedido: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer pedidos: %w", err)
	}

	return orders, nil
}

// FindByIDs implementa order.Repository.FindByIDs
func (r *OrderRepository) FindByIDs(ctx context.Context, ids []string) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM pedidos WHERE id = ANY($1) ORDER BY created_at DESC`,
		ids)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos: %w", err)
	}
	defer rows.Close()

	return r.scanOrderRows(rows)
}

// List implementa order.Repository.List
func (r *OrderRepository) List(ctx context.Context, limit, offset int) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM pedidos ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	defer rows.Close()

	return r.scanOrderRows(rows)
}

// ListByStatus implementa order.Repository.ListByStatus
func (r *OrderRepository) ListByStatus(ctx context.Context, status order.Status, limit, offset int) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM pedidos WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos por status: %w", err)
	}
	defer rows.Close()

	return r.scanOrderRows(rows)
}

// UpdateStatusBulk implementa order.Repository.UpdateStatusBulk. É uma
// única escrita agregada: reaplicar o mesmo status é inócuo e não há
// resultado por pedido.
func (r *OrderRepository) UpdateStatusBulk(ctx context.Context, ids []string, status order.Status) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx,
		`UPDATE pedidos SET status = $2 WHERE id = ANY($1)`,
		ids, status)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status dos pedidos: %w", err)
	}

	return nil
}

// CountAll implementa order.Repository.CountAll
func (r *OrderRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pedidos`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}
	return count, nil
}
