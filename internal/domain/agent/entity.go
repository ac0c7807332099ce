package agent

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrInvalidStatus = errors.New("status de entregador inválido")
)

// Status representa a disponibilidade do entregador
type Status string

const (
	StatusActive   Status = "Ativo"
	StatusInactive Status = "Inativo"
)

// ParseStatus valida a string de status vinda da borda HTTP
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.TrimSpace(raw)) {
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Agent representa um entregador da distribuidora. Apenas entregadores
// ativos são oferecidos na atribuição de novos pedidos.
type Agent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Vehicle   string    `json:"vehicle"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAgent cria um novo entregador ativo
func NewAgent(name, phone, vehicle string) (*Agent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Agent{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Vehicle:   vehicle,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do entregador
func (a *Agent) Update(name, phone, vehicle string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	a.Name = name
	a.Phone = phone
	a.Vehicle = vehicle
	a.UpdatedAt = time.Now()

	return nil
}

// IsActive informa se o entregador está disponível para atribuição
func (a *Agent) IsActive() bool {
	return a.Status == StatusActive
}
