package controller

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/dto"
	"github.com/vrocha/aquagas-api/internal/adapter/repository"
	"github.com/vrocha/aquagas-api/internal/domain/customer"
	"github.com/vrocha/aquagas-api/internal/domain/ledger"
	"github.com/vrocha/aquagas-api/pkg/logger"
	"github.com/vrocha/aquagas-api/pkg/spreadsheet"
	"github.com/vrocha/aquagas-api/pkg/whatsapp"
)

// summaryDateLayout é o formato aceito nos filtros de período do resumo
const summaryDateLayout = "2006-01-02"

// LedgerController gerencia as requisições do livro-caixa
type LedgerController struct {
	ledgerRepo   ledger.Repository
	customerRepo customer.Repository
	logger       logger.Logger
}

// NewLedgerController cria uma nova instância de LedgerController
func NewLedgerController(ledgerRepo ledger.Repository, customerRepo customer.Repository, logger logger.Logger) *LedgerController {
	return &LedgerController{
		ledgerRepo:   ledgerRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// CreateEntry insere um lançamento manual no livro-caixa
// @Summary Criar lançamento
// @Description Insere um lançamento manual (Entrada, Saída ou A Receber) no livro-caixa
// @Tags financial
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param entry body dto.EntryRequest true "Dados do lançamento"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/entries [post]
func (c *LedgerController) CreateEntry(ctx *gin.Context) {
	var req dto.EntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	entry, err := ledger.NewEntry(req.Type, req.Description, req.Amount, req.Category, req.PaymentMethod, req.Detail)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar lançamento", err.Error()))
		return
	}

	if err := c.ledgerRepo.Create(ctx, entry); err != nil {
		c.logger.Error("erro ao gravar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// ListEntries lista os lançamentos, mais recentes primeiro
// @Summary Listar lançamentos
// @Description Lista todos os lançamentos do livro-caixa
// @Tags financial
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.EntryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/entries [get]
func (c *LedgerController) ListEntries(ctx *gin.Context) {
	entries, err := c.ledgerRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar lançamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lançamentos", err.Error()))
		return
	}

	responses := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, dto.ToEntryResponse(e))
	}

	ctx.JSON(http.StatusOK, responses)
}

// Summary retorna o resumo financeiro de um período
// @Summary Resumo financeiro
// @Description Retorna totais de entrada, saída, contas a receber e saldo, com a série diária do período
// @Tags financial
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start query string false "Data inicial (YYYY-MM-DD)"
// @Param end query string false "Data final (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/summary [get]
func (c *LedgerController) Summary(ctx *gin.Context) {
	var start, end time.Time

	if raw := ctx.Query("start"); raw != "" {
		parsed, err := time.Parse(summaryDateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inicial inválida", err.Error()))
			return
		}
		start = parsed
	}

	if raw := ctx.Query("end"); raw != "" {
		parsed, err := time.Parse(summaryDateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data final inválida", err.Error()))
			return
		}
		end = parsed
	}

	entries, err := c.ledgerRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar lançamentos para o resumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar lançamentos", err.Error()))
		return
	}

	summary := ledger.Summarize(entries, start, end)

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// Settle quita uma conta a receber
// @Summary Quitar conta a receber
// @Description Gera o lançamento de entrada correspondente e marca a conta original como Quitado
// @Tags financial
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento a receber"
// @Param settle body dto.SettleRequest true "Forma de pagamento do recebimento"
// @Success 200 {object} dto.SettleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/entries/{id}/settle [post]
func (c *LedgerController) Settle(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.SettleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	receivable, err := c.ledgerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	inflow, err := ledger.NewSettlement(receivable, req.PaymentMethod)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "lançamento não pode ser quitado", err.Error()))
		return
	}

	if err := c.ledgerRepo.Create(ctx, inflow); err != nil {
		c.logger.Error("erro ao gravar recebimento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar recebimento", err.Error()))
		return
	}

	if err := c.ledgerRepo.UpdateType(ctx, receivable.ID, ledger.TypeSettled); err != nil {
		c.logger.Error("erro ao marcar conta como quitada", "entry_id", receivable.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao marcar conta como quitada", err.Error()))
		return
	}

	receivable.RawType = string(ledger.TypeSettled)
	receivable.Type = ledger.TypeSettled

	ctx.JSON(http.StatusOK, dto.SettleResponse{
		Settled: dto.ToEntryResponse(receivable),
		Inflow:  dto.ToEntryResponse(inflow),
	})
}

// Export exporta os lançamentos selecionados em CSV
// @Summary Exportar lançamentos
// @Description Exporta os lançamentos selecionados como um arquivo CSV
// @Tags financial
// @Accept json
// @Produce text/csv
// @Param Authorization header string true "Bearer token"
// @Param selection body dto.ExportRequest true "IDs dos lançamentos"
// @Success 200 {string} string "arquivo CSV"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/export [post]
func (c *LedgerController) Export(ctx *gin.Context) {
	var req dto.ExportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	entries, err := c.ledgerRepo.FindByIDs(ctx, req.EntryIDs)
	if err != nil {
		c.logger.Error("erro ao buscar lançamentos para exportação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamentos", err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := spreadsheet.ExportEntries(&buf, entries); err != nil {
		c.logger.Error("erro ao gerar arquivo de exportação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar exportação", err.Error()))
		return
	}

	filename := fmt.Sprintf("financeiro-%s.csv", time.Now().Format("20060102-150405"))
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Reminder monta o lembrete de cobrança de uma conta a receber
// @Summary Lembrete de cobrança
// @Description Monta a mensagem de cobrança e o link de WhatsApp para uma conta a receber
// @Tags financial
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento a receber"
// @Success 200 {object} dto.ReminderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/entries/{id}/reminder [get]
func (c *LedgerController) Reminder(ctx *gin.Context) {
	id := ctx.Param("id")

	entry, err := c.ledgerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	if entry.Type != ledger.TypeReceivable {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "lançamento não é uma conta a receber", ""))
		return
	}

	name := ledger.DebtorName(entry.Description)
	if name == "" {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "não foi possível identificar o cliente na descrição", ""))
		return
	}

	debtor, err := c.customerRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "cliente \""+name+"\" não encontrado no cadastro", ""))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	message := fmt.Sprintf("Olá, %s! Passando para lembrar do valor em aberto de R$ %s. Qualquer dúvida, estamos à disposição.",
		debtor.Name, entry.Amount.StringFixed(2))

	link, err := whatsapp.ComposeLink(debtor.Phone, message)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "cliente não possui telefone válido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ReminderResponse{
		CustomerName: debtor.Name,
		Phone:        debtor.Phone,
		Message:      message,
		Link:         link,
	})
}
