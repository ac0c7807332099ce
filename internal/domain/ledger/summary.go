package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DailyFlow agrega as entradas e saídas de um dia do período filtrado.
// O saldo do dia é independente do acumulado dos dias anteriores.
type DailyFlow struct {
	Day     time.Time       `json:"day"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Balance decimal.Decimal `json:"balance"`
}

// Summary é o resumo financeiro derivado do livro-caixa. Não é
// persistido; é recalculado a cada consulta.
type Summary struct {
	TotalInflow     decimal.Decimal `json:"total_inflow"`
	TotalOutflow    decimal.Decimal `json:"total_outflow"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	Balance         decimal.Decimal `json:"balance"`
	Entries         []*Entry        `json:"entries"`
	Daily           []DailyFlow     `json:"daily"`
}

// day trunca um instante para a meia-noite do dia-calendário local.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// InPeriod informa se o lançamento cai dentro do intervalo fechado
// [start, end], com granularidade de dia-calendário. Um limite zerado
// deixa aquele lado do intervalo aberto.
func (e *Entry) InPeriod(start, end time.Time) bool {
	d := day(e.Date)
	if !start.IsZero() && d.Before(day(start)) {
		return false
	}
	if !end.IsZero() && d.After(day(end)) {
		return false
	}
	return true
}

// Summarize produz o resumo financeiro de um conjunto de lançamentos
// dentro do intervalo de datas informado. Apenas os tipos do enum
// alimentam os totais; lançamentos de tipo desconhecido seguem na lista
// de recentes mas fora de qualquer soma. Saldo = entradas − saídas.
func Summarize(entries []*Entry, start, end time.Time) Summary {
	s := Summary{
		TotalInflow:     decimal.Zero,
		TotalOutflow:    decimal.Zero,
		TotalReceivable: decimal.Zero,
		Balance:         decimal.Zero,
		Entries:         []*Entry{},
		Daily:           []DailyFlow{},
	}

	byDay := make(map[time.Time]*DailyFlow)

	for _, e := range entries {
		if !e.InPeriod(start, end) {
			continue
		}

		s.Entries = append(s.Entries, e)

		d := day(e.Date)
		flow, ok := byDay[d]
		if !ok {
			flow = &DailyFlow{Day: d, Inflow: decimal.Zero, Outflow: decimal.Zero, Balance: decimal.Zero}
			byDay[d] = flow
		}

		switch e.Type {
		case TypeInflow:
			s.TotalInflow = s.TotalInflow.Add(e.Amount)
			flow.Inflow = flow.Inflow.Add(e.Amount)
		case TypeOutflow:
			s.TotalOutflow = s.TotalOutflow.Add(e.Amount)
			flow.Outflow = flow.Outflow.Add(e.Amount)
		case TypeReceivable:
			s.TotalReceivable = s.TotalReceivable.Add(e.Amount)
		}
	}

	s.Balance = s.TotalInflow.Sub(s.TotalOutflow)

	// Lista de recentes: mais novos primeiro
	sort.SliceStable(s.Entries, func(i, j int) bool {
		return s.Entries[i].Date.After(s.Entries[j].Date)
	})

	for _, flow := range byDay {
		flow.Balance = flow.Inflow.Sub(flow.Outflow)
		s.Daily = append(s.Daily, *flow)
	}

	// Série diária: dia mais recente primeiro
	sort.Slice(s.Daily, func(i, j int) bool {
		return s.Daily[i].Day.After(s.Daily[j].Day)
	})

	return s
}
