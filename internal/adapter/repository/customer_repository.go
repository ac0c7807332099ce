package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vrocha/aquagas-api/internal/domain/customer"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound      = errors.New("cliente não encontrado")
	ErrCustomerDatabaseError = errors.New("erro de banco de dados")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

const customerColumns = `id, nome, telefone, endereco, bairro, referencia, created_at, updated_at`

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO clientes (id, nome, telefone, endereco, bairro, referencia, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Phone, c.Address, c.Neighborhood, c.Reference, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// CreateBatch implementa customer.Repository.CreateBatch
func (r *CustomerRepository) CreateBatch(ctx context.Context, customers []*customer.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, c := range customers {
		batch.Queue(
			`INSERT INTO clientes (id, nome, telefone, endereco, bairro, referencia, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.ID, c.Name, c.Phone, c.Address, c.Neighborhood, c.Reference, c.CreatedAt, c.UpdatedAt)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range customers {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("erro ao importar clientes: %w", err)
		}
	}

	return nil
}

func (r *CustomerRepository) scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Neighborhood, &c.Reference, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return &c, nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM clientes WHERE id = $1`, id)
	return r.scanCustomer(row)
}

// FindByName implementa customer.Repository.FindByName
func (r *CustomerRepository) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM clientes WHERE LOWER(TRIM(nome)) = LOWER(TRIM($1)) LIMIT 1`, name)
	return r.scanCustomer(row)
}

func (r *CustomerRepository) scanCustomerRows(rows pgx.Rows) ([]*customer.Customer, error) {
	customers := []*customer.Customer{}
	for rows.Next() {
		var c customer.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Neighborhood, &c.Reference, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer clientes: %w", err)
	}

	return customers, nil
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM clientes ORDER BY nome ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// Search implementa customer.Repository.Search
func (r *CustomerRepository) Search(ctx context.Context, term string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM clientes
		WHERE nome ILIKE '%' || $1 || '%'
		ORDER BY nome ASC
		LIMIT $2 OFFSET $3`,
		term, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clientes SET nome = $2, telefone = $3, endereco = $4, bairro = $5, referencia = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, c.Name, c.Phone, c.Address, c.Neighborhood, c.Reference, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// CountAll implementa customer.Repository.CountAll
func (r *CustomerRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clientes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return count, nil
}
