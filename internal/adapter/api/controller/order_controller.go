package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/dto"
	"github.com/vrocha/aquagas-api/internal/adapter/repository"
	"github.com/vrocha/aquagas-api/internal/domain/ledger"
	"github.com/vrocha/aquagas-api/internal/domain/order"
	"github.com/vrocha/aquagas-api/pkg/logger"
	"github.com/vrocha/aquagas-api/pkg/whatsapp"
)

// PaymentMethodOnCredit identifica a venda a prazo ("fiado"): o pedido
// gera uma conta a receber em vez de uma entrada imediata no caixa.
const PaymentMethodOnCredit = "Fiado"

// OrderController gerencia as requisições relacionadas a pedidos
type OrderController struct {
	orderRepo  order.Repository
	ledgerRepo ledger.Repository
	logger     logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(orderRepo order.Repository, ledgerRepo ledger.Repository, logger logger.Logger) *OrderController {
	return &OrderController{
		orderRepo:  orderRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// Create fecha um novo pedido e lança a venda no livro-caixa
// @Summary Fechar pedido
// @Description Fecha um pedido a partir do carrinho e registra o lançamento financeiro da venda
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param order body dto.OrderRequest true "Dados do pedido"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cart := make([]order.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		cart = append(cart, order.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	snapshot := order.CustomerSnapshot{
		Name:    req.CustomerName,
		Phone:   req.CustomerPhone,
		Address: req.CustomerAddress,
	}

	o, err := order.NewOrder(cart, snapshot, req.AgentName, req.PaymentMethod)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao fechar pedido", err.Error()))
		return
	}

	if err := c.orderRepo.Create(ctx, o); err != nil {
		c.logger.Error("erro ao gravar pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar pedido", err.Error()))
		return
	}

	// A venda entra no livro-caixa junto com o pedido: à vista como
	// Entrada, fiado como A Receber. Falha no lançamento não desfaz o
	// pedido já gravado; fica no log para ajuste manual.
	if err := c.recordSale(ctx, o); err != nil {
		c.logger.Error("erro ao lançar venda no livro-caixa", "order_id", o.ID, "error", err)
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o))
}

func (c *OrderController) recordSale(ctx *gin.Context, o *order.Order) error {
	rawType := string(ledger.TypeInflow)
	description := "Venda: " + o.Customer.Name
	if o.PaymentMethod == PaymentMethodOnCredit {
		rawType = string(ledger.TypeReceivable)
		description = "Venda a prazo: " + o.Customer.Name
	}

	entry, err := ledger.NewEntry(rawType, description, o.Total, "Venda", o.PaymentMethod, o.ID)
	if err != nil {
		return err
	}

	return c.ledgerRepo.Create(ctx, entry)
}

// Get retorna um pedido pelo ID
// @Summary Buscar pedido
// @Description Retorna os dados de um pedido pelo ID
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	o, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// List lista os pedidos, mais recentes primeiro
// @Summary Listar pedidos
// @Description Lista os pedidos com paginação, opcionalmente filtrados por status
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param size query int false "Tamanho da página"
// @Param status query string false "Filtrar por status"
// @Success 200 {object} dto.OrderListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	offset := (pagination.Page - 1) * pagination.PageSize

	var (
		orders []*order.Order
		err    error
	)

	if raw := ctx.Query("status"); raw != "" {
		status, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", parseErr.Error()))
			return
		}
		orders, err = c.orderRepo.ListByStatus(ctx, status, pagination.PageSize, offset)
	} else {
		orders, err = c.orderRepo.List(ctx, pagination.PageSize, offset)
	}

	if err != nil {
		c.logger.Error("erro ao listar pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar pedidos", err.Error()))
		return
	}

	total, err := c.orderRepo.CountAll(ctx)
	if err != nil {
		c.logger.Error("erro ao contar pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders, total, pagination.Page, pagination.PageSize))
}

// BulkStatus aplica uma transição de status a um lote de pedidos
// @Summary Atualizar status em lote
// @Description Aplica um status a um conjunto de pedidos e retorna os avisos de entrega a enviar
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param transition body dto.BulkStatusRequest true "Pedidos e status alvo"
// @Success 200 {object} dto.BulkStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/status [post]
func (c *OrderController) BulkStatus(ctx *gin.Context) {
	var req dto.BulkStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", err.Error()))
		return
	}

	orders, err := c.orderRepo.FindByIDs(ctx, req.OrderIDs)
	if err != nil {
		c.logger.Error("erro ao buscar pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar pedidos", err.Error()))
		return
	}

	if len(orders) != len(req.OrderIDs) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "um ou mais pedidos não foram encontrados", ""))
		return
	}

	// A transição só é gravada se valer para o lote inteiro. Reaplicar
	// o status atual é permitido; sair de Entregue ou Cancelado, não.
	for _, o := range orders {
		if err := o.Transition(status); err != nil {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "transição inválida para o pedido "+o.ID, err.Error()))
			return
		}
	}

	if err := c.orderRepo.UpdateStatusBulk(ctx, req.OrderIDs, status); err != nil {
		c.logger.Error("erro ao atualizar status dos pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar status", err.Error()))
		return
	}

	response := dto.BulkStatusResponse{
		Updated:       len(orders),
		Status:        status,
		Notifications: []dto.NotificationResponse{},
	}

	if status == order.StatusOutForDelivery {
		for _, n := range order.DeliveryNotifications(orders, req.ETA) {
			link, linkErr := whatsapp.ComposeLink(n.Phone, n.Message)
			if linkErr != nil {
				c.logger.Warn("telefone inválido para aviso de entrega", "order_id", n.OrderID, "error", linkErr)
				continue
			}
			response.Notifications = append(response.Notifications, dto.NotificationResponse{
				OrderID:      n.OrderID,
				CustomerName: n.CustomerName,
				Phone:        n.Phone,
				Message:      n.Message,
				Link:         link,
			})
		}
	}

	ctx.JSON(http.StatusOK, response)
}
