package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vrocha/aquagas-api/internal/domain/ledger"
)

// EntryRequest representa a requisição de lançamento manual
type EntryRequest struct {
	Type          string          `json:"type" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	Detail        string          `json:"detail"`
}

// SettleRequest representa a requisição de quitação de conta a receber
type SettleRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// ExportRequest representa a seleção de lançamentos para exportação
type ExportRequest struct {
	EntryIDs []string `json:"entry_ids" binding:"required,min=1"`
}

// EntryResponse representa a resposta de lançamento
type EntryResponse struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Type          ledger.Type     `json:"type"`
	RawType       string          `json:"raw_type"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Detail        string          `json:"detail,omitempty"`
}

// DailyFlowResponse representa um dia da série de fluxo de caixa
type DailyFlowResponse struct {
	Day     string          `json:"day"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Balance decimal.Decimal `json:"balance"`
}

// SummaryResponse representa o resumo financeiro de um período
type SummaryResponse struct {
	TotalInflow     decimal.Decimal     `json:"total_inflow"`
	TotalOutflow    decimal.Decimal     `json:"total_outflow"`
	TotalReceivable decimal.Decimal     `json:"total_receivable"`
	Balance         decimal.Decimal     `json:"balance"`
	Entries         []EntryResponse     `json:"entries"`
	Daily           []DailyFlowResponse `json:"daily"`
}

// SettleResponse representa o resultado de uma quitação
type SettleResponse struct {
	Settled EntryResponse `json:"settled"`
	Inflow  EntryResponse `json:"inflow"`
}

// ReminderResponse representa o lembrete de cobrança de uma conta a receber
type ReminderResponse struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
	Link         string `json:"link"`
}

// ToEntryResponse converte a entidade Entry para o DTO de resposta
func ToEntryResponse(e *ledger.Entry) EntryResponse {
	return EntryResponse{
		ID:            e.ID,
		Date:          e.Date,
		Type:          e.Type,
		RawType:       e.RawType,
		Description:   e.Description,
		Amount:        e.Amount,
		Category:      e.Category,
		PaymentMethod: e.PaymentMethod,
		Detail:        e.Detail,
	}
}

// ToSummaryResponse converte o resumo financeiro para o DTO de resposta
func ToSummaryResponse(s ledger.Summary) SummaryResponse {
	entries := make([]EntryResponse, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, ToEntryResponse(e))
	}

	daily := make([]DailyFlowResponse, 0, len(s.Daily))
	for _, d := range s.Daily {
		daily = append(daily, DailyFlowResponse{
			Day:     d.Day.Format("2006-01-02"),
			Inflow:  d.Inflow,
			Outflow: d.Outflow,
			Balance: d.Balance,
		})
	}

	return SummaryResponse{
		TotalInflow:     s.TotalInflow,
		TotalOutflow:    s.TotalOutflow,
		TotalReceivable: s.TotalReceivable,
		Balance:         s.Balance,
		Entries:         entries,
		Daily:           daily,
	}
}
