package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/dto"
	"github.com/vrocha/aquagas-api/internal/adapter/repository"
	agentdomain "github.com/vrocha/aquagas-api/internal/domain/agent"
	"github.com/vrocha/aquagas-api/pkg/logger"
)

// AgentController gerencia as requisições relacionadas a entregadores
type AgentController struct {
	agentRepo agentdomain.Repository
	logger    logger.Logger
}

// NewAgentController cria uma nova instância de AgentController
func NewAgentController(agentRepo agentdomain.Repository, logger logger.Logger) *AgentController {
	return &AgentController{
		agentRepo: agentRepo,
		logger:    logger,
	}
}

// Create cria um novo entregador
// @Summary Criar entregador
// @Description Cadastra um novo entregador
// @Tags agents
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param agent body dto.AgentRequest true "Dados do entregador"
// @Success 201 {object} dto.AgentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /agents [post]
func (c *AgentController) Create(ctx *gin.Context) {
	var req dto.AgentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	agent, err := agentdomain.NewAgent(req.Name, req.Phone, req.Vehicle)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar entregador", err.Error()))
		return
	}

	if err := c.agentRepo.Create(ctx, agent); err != nil {
		c.logger.Error("erro ao criar entregador no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar entregador", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAgentResponse(agent))
}

// Get retorna um entregador pelo ID
// @Summary Buscar entregador
// @Description Retorna os dados de um entregador pelo ID
// @Tags agents
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do entregador"
// @Success 200 {object} dto.AgentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /agents/{id} [get]
func (c *AgentController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	agent, err := c.agentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "entregador não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar entregador", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar entregador", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAgentResponse(agent))
}

// List lista os entregadores
// @Summary Listar entregadores
// @Description Lista os entregadores cadastrados
// @Tags agents
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.AgentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /agents [get]
func (c *AgentController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "50"))
	pagination := dto.GetPagination(page, size)

	offset := (pagination.Page - 1) * pagination.PageSize

	agents, err := c.agentRepo.List(ctx, pagination.PageSize, offset)
	if err != nil {
		c.logger.Error("erro ao listar entregadores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar entregadores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAgentListResponse(agents))
}

// Active lista apenas os entregadores ativos
// @Summary Listar entregadores ativos
// @Description Lista os entregadores disponíveis para atribuição de pedidos
// @Tags agents
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.AgentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /agents/active [get]
func (c *AgentController) Active(ctx *gin.Context) {
	agents, err := c.agentRepo.ListActive(ctx)
	if err != nil {
		c.logger.Error("erro ao listar entregadores ativos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar entregadores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAgentListResponse(agents))
}

// Update atualiza os dados de um entregador
// @Summary Atualizar entregador
// @Description Atualiza os dados de um entregador existente
// @Tags agents
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do entregador"
// @Param agent body dto.AgentRequest true "Dados do entregador"
// @Success 200 {object} dto.AgentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /agents/{id} [put]
func (c *AgentController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.AgentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	agent, err := c.agentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "entregador não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar entregador", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar entregador", err.Error()))
		return
	}

	if err := agent.Update(req.Name, req.Phone, req.Vehicle); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar entregador", err.Error()))
		return
	}

	if err := c.agentRepo.Update(ctx, agent); err != nil {
		c.logger.Error("erro ao atualizar entregador no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar entregador", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAgentResponse(agent))
}

// UpdateStatus alterna o status de um entregador entre ativo e inativo
// @Summary Atualizar status do entregador
// @Description Define o status do entregador como Ativo ou Inativo
// @Tags agents
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do entregador"
// @Param status body dto.AgentStatusRequest true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /agents/{id}/status [patch]
func (c *AgentController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.AgentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	status, err := agentdomain.ParseStatus(req.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", err.Error()))
		return
	}

	if err := c.agentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "entregador não encontrado", ""))
			return
		}
		c.logger.Error("erro ao atualizar status do entregador", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status atualizado", gin.H{"id": id, "status": status}))
}
