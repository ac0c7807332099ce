package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/dto"
	"github.com/vrocha/aquagas-api/internal/adapter/repository"
	"github.com/vrocha/aquagas-api/internal/domain/order"
	"github.com/vrocha/aquagas-api/pkg/logger"
)

// TrackingController serve a página pública de acompanhamento de
// pedido. Não exige autenticação: o ID do pedido funciona como token
// de acesso, e a projeção expõe apenas o necessário para o cliente.
type TrackingController struct {
	orderRepo order.Repository
	logger    logger.Logger
}

// NewTrackingController cria uma nova instância de TrackingController
func NewTrackingController(orderRepo order.Repository, logger logger.Logger) *TrackingController {
	return &TrackingController{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Track retorna a projeção pública de acompanhamento de um pedido
// @Summary Acompanhar pedido
// @Description Retorna a linha do tempo pública de um pedido pelo ID
// @Tags tracking
// @Accept json
// @Produce json
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.TrackingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tracking/{id} [get]
func (c *TrackingController) Track(ctx *gin.Context) {
	id := ctx.Param("id")

	o, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido não encontrado", "confira o link de acompanhamento recebido"))
			return
		}
		c.logger.Error("erro ao buscar pedido para acompanhamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrackingResponse(order.Track(o)))
}
