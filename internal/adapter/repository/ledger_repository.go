package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vrocha/aquagas-api/internal/domain/ledger"
)

// Erros específicos do repositório
var (
	ErrEntryNotFound = errors.New("lançamento não encontrado")
)

// LedgerRepository implementa a interface ledger.Repository
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository cria uma nova instância de LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) ledger.Repository {
	return &LedgerRepository{
		db: db,
	}
}

const entryColumns = `id, data, tipo, descricao, valor, categoria, forma_pagamento, detalhe`

// Create implementa ledger.Repository.Create
func (r *LedgerRepository) Create(ctx context.Context, e *ledger.Entry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO financeiro (id, data, tipo, descricao, valor, categoria, forma_pagamento, detalhe)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Date, e.RawType, e.Description, e.Amount, e.Category, e.PaymentMethod, e.Detail)

	if err != nil {
		return fmt.Errorf("erro ao criar lançamento: %w", err)
	}

	return nil
}

func scanEntry(row pgx.Row) (*ledger.Entry, error) {
	var e ledger.Entry
	err := row.Scan(&e.ID, &e.Date, &e.RawType, &e.Description, &e.Amount, &e.Category, &e.PaymentMethod, &e.Detail)
	if err != nil {
		return nil, err
	}

	// Normalização acontece uma única vez, aqui na borda de ingestão
	e.Type = ledger.ParseType(e.RawType)
	return &e, nil
}

// FindByID implementa ledger.Repository.FindByID
func (r *LedgerRepository) FindByID(ctx context.Context, id string) (*ledger.Entry, error) {
	e, err := scanEntry(r.db.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM financeiro WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar lançamento: %w", err)
	}
	return e, nil
}

func (r *LedgerRepository) scanEntryRows(rows pgx.Rows) ([]*ledger.Entry, error) {
	entries := []*ledger.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler lançamento: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer lançamentos: %w", err)
	}

	return entries, nil
}

// FindByIDs implementa ledger.Repository.FindByIDs
func (r *LedgerRepository) FindByIDs(ctx context.Context, ids []string) ([]*ledger.Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+entryColumns+` FROM financeiro WHERE id = ANY($1) ORDER BY data DESC`,
		ids)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lançamentos: %w", err)
	}
	defer rows.Close()

	return r.scanEntryRows(rows)
}

// List implementa ledger.Repository.List
func (r *LedgerRepository) List(ctx context.Context) ([]*ledger.Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+entryColumns+` FROM financeiro ORDER BY data DESC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lançamentos: %w", err)
	}
	defer rows.Close()

	return r.scanEntryRows(rows)
}

// UpdateType implementa ledger.Repository.UpdateType
func (r *LedgerRepository) UpdateType(ctx context.Context, id string, t ledger.Type) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE financeiro SET tipo = $2 WHERE id = $1`,
		id, string(t))
	if err != nil {
		return fmt.Errorf("erro ao atualizar tipo do lançamento: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}
