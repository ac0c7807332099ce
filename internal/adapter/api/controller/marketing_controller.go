package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/dto"
	"github.com/vrocha/aquagas-api/pkg/logger"
	"github.com/vrocha/aquagas-api/pkg/marketing"
)

// MarketingController gerencia o compositor de mensagens promocionais
type MarketingController struct {
	composer *marketing.Composer
	logger   logger.Logger
}

// NewMarketingController cria uma nova instância de MarketingController
func NewMarketingController(composer *marketing.Composer, logger logger.Logger) *MarketingController {
	return &MarketingController{
		composer: composer,
		logger:   logger,
	}
}

// Compose gera um texto promocional a partir de um briefing
// @Summary Compor mensagem promocional
// @Description Gera um texto promocional curto a partir do briefing informado
// @Tags marketing
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param briefing body dto.ComposeRequest true "Briefing da campanha"
// @Success 200 {object} dto.ComposeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /marketing/compose [post]
func (c *MarketingController) Compose(ctx *gin.Context) {
	if c.composer == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "compositor de marketing não configurado", "defina ANTHROPIC_API_KEY"))
		return
	}

	var req dto.ComposeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	userID, _ := ctx.Get("user_id")
	userIDStr, _ := userID.(string)

	briefing := marketing.Briefing{
		Product:   req.Product,
		Promotion: req.Promotion,
		Audience:  req.Audience,
		Tone:      req.Tone,
	}

	text, err := c.composer.Compose(ctx, briefing, userIDStr)
	if err != nil {
		c.logger.Error("erro ao compor mensagem promocional", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao compor mensagem", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ComposeResponse{Text: text})
}

// History retorna o histórico de composições do usuário
// @Summary Histórico de composições
// @Description Retorna as mensagens trocadas com o compositor pelo usuário autenticado
// @Tags marketing
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ComposerHistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /marketing/history [get]
func (c *MarketingController) History(ctx *gin.Context) {
	if c.composer == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "compositor de marketing não configurado", "defina ANTHROPIC_API_KEY"))
		return
	}

	userID, _ := ctx.Get("user_id")
	userIDStr, _ := userID.(string)

	messages, err := c.composer.GetHistory(ctx, userIDStr)
	if err != nil {
		c.logger.Error("erro ao carregar histórico do compositor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar histórico", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComposerHistoryResponse(messages))
}
