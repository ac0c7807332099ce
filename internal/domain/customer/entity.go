package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// Customer representa um cliente da distribuidora
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Neighborhood string    `json:"neighborhood"`
	Reference    string    `json:"reference"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewCustomer cria um novo cliente
func NewCustomer(name, phone, address, neighborhood, reference string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Customer{
		ID:           uuid.New().String(),
		Name:         name,
		Phone:        phone,
		Address:      address,
		Neighborhood: neighborhood,
		Reference:    reference,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Update atualiza os dados do cliente
func (c *Customer) Update(name, phone, address, neighborhood, reference string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.Phone = phone
	c.Address = address
	c.Neighborhood = neighborhood
	c.Reference = reference
	c.UpdatedAt = time.Now()

	return nil
}

// Snapshot devolve as cópias de nome, telefone e endereço gravadas em
// um pedido no momento da venda
func (c *Customer) Snapshot() (name, phone, address string) {
	address = c.Address
	if c.Neighborhood != "" {
		address = strings.TrimSpace(c.Address + " - " + c.Neighborhood)
	}
	return c.Name, c.Phone, address
}
