package dto

import (
	"time"

	"github.com/vrocha/aquagas-api/internal/domain/agent"
)

// AgentRequest representa a requisição de entregador
type AgentRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
}

// AgentStatusRequest representa a requisição de mudança de status do entregador
type AgentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AgentResponse representa a resposta de entregador
type AgentResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Phone     string       `json:"phone"`
	Vehicle   string       `json:"vehicle"`
	Status    agent.Status `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// AgentListResponse representa a resposta de lista de entregadores
type AgentListResponse struct {
	Items []AgentResponse `json:"items"`
	Total int             `json:"total"`
}

// ToAgentResponse converte a entidade Agent para o DTO de resposta
func ToAgentResponse(a *agent.Agent) AgentResponse {
	return AgentResponse{
		ID:        a.ID,
		Name:      a.Name,
		Phone:     a.Phone,
		Vehicle:   a.Vehicle,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToAgentListResponse converte uma lista de entregadores para o DTO de lista
func ToAgentListResponse(agents []*agent.Agent) AgentListResponse {
	items := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		items = append(items, ToAgentResponse(a))
	}

	return AgentListResponse{
		Items: items,
		Total: len(items),
	}
}
