package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(t *testing.T, rawType, description string, amount float64, date time.Time) *Entry {
	t.Helper()
	e, err := NewEntry(rawType, description, decimal.NewFromFloat(amount), "", "", "")
	require.NoError(t, err)
	e.Date = date
	return e
}

func TestSummarizeTotals(t *testing.T) {
	now := time.Now()
	entries := []*Entry{
		entryAt(t, "Entrada", "Venda: Maria", 100, now),
		entryAt(t, "Saída", "Combustível", 30, now),
		entryAt(t, "A Receber", "Venda a prazo: João", 50, now),
	}

	s := Summarize(entries, time.Time{}, time.Time{})

	assert.True(t, s.TotalInflow.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.TotalOutflow.Equal(decimal.NewFromInt(30)))
	assert.True(t, s.TotalReceivable.Equal(decimal.NewFromInt(50)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(70)))
}

func TestSummarizeOrderIndependent(t *testing.T) {
	now := time.Now()
	a := entryAt(t, "Entrada", "Venda: Maria", 100, now)
	b := entryAt(t, "Saída", "Combustível", 30, now)
	c := entryAt(t, "A Receber", "Venda a prazo: João", 50, now)

	s1 := Summarize([]*Entry{a, b, c}, time.Time{}, time.Time{})
	s2 := Summarize([]*Entry{c, a, b}, time.Time{}, time.Time{})

	assert.True(t, s1.Balance.Equal(s2.Balance))
	assert.True(t, s1.TotalInflow.Equal(s2.TotalInflow))
	assert.True(t, s1.TotalOutflow.Equal(s2.TotalOutflow))
	assert.True(t, s1.TotalReceivable.Equal(s2.TotalReceivable))
}

func TestSummarizeAccentVariants(t *testing.T) {
	now := time.Now()
	entries := []*Entry{
		entryAt(t, "Saída", "Combustível", 30, now),
		entryAt(t, "Saida", "Manutenção", 20, now),
	}

	s := Summarize(entries, time.Time{}, time.Time{})
	assert.True(t, s.TotalOutflow.Equal(decimal.NewFromInt(50)))
}

func TestSummarizeIgnoresUnknownTypes(t *testing.T) {
	now := time.Now()
	entries := []*Entry{
		entryAt(t, "Entrada", "Venda: Maria", 100, now),
		entryAt(t, "Transferência", "Ajuste", 999, now),
	}

	s := Summarize(entries, time.Time{}, time.Time{})

	assert.True(t, s.Balance.Equal(decimal.NewFromInt(100)))
	// O lançamento desconhecido segue visível na lista de recentes
	assert.Len(t, s.Entries, 2)
}

func TestSummarizeDateBounds(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	entries := []*Entry{
		entryAt(t, "Entrada", "Venda: A", 10, base.AddDate(0, 0, -2)),
		entryAt(t, "Entrada", "Venda: B", 20, base),
		entryAt(t, "Entrada", "Venda: C", 40, base.AddDate(0, 0, 2)),
	}

	// Limites inclusivos nas duas pontas, com granularidade de dia
	s := Summarize(entries, base.AddDate(0, 0, -2), base)
	assert.True(t, s.TotalInflow.Equal(decimal.NewFromInt(30)))
	assert.Len(t, s.Entries, 2)

	// Limite aberto de um lado
	s = Summarize(entries, time.Time{}, base)
	assert.True(t, s.TotalInflow.Equal(decimal.NewFromInt(30)))

	s = Summarize(entries, base, time.Time{})
	assert.True(t, s.TotalInflow.Equal(decimal.NewFromInt(60)))
}

func TestSummarizeDailySeries(t *testing.T) {
	d1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	d2 := time.Date(2026, 3, 11, 15, 0, 0, 0, time.Local)
	entries := []*Entry{
		entryAt(t, "Entrada", "Venda: A", 100, d1),
		entryAt(t, "Saída", "Combustível", 40, d1),
		entryAt(t, "Entrada", "Venda: B", 25, d2),
	}

	s := Summarize(entries, time.Time{}, time.Time{})

	require.Len(t, s.Daily, 2)
	// Dia mais recente primeiro
	assert.Equal(t, 11, s.Daily[0].Day.Day())
	assert.Equal(t, 10, s.Daily[1].Day.Day())
	assert.True(t, s.Daily[1].Balance.Equal(decimal.NewFromInt(60)))

	// A soma dos saldos diários fecha com o saldo do período
	sum := decimal.Zero
	for _, d := range s.Daily {
		sum = sum.Add(d.Balance)
	}
	assert.True(t, sum.Equal(s.Balance))
}

func TestSummarizeRecentFirst(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	entries := []*Entry{
		entryAt(t, "Entrada", "antiga", 10, base.AddDate(0, 0, -1)),
		entryAt(t, "Entrada", "nova", 10, base.AddDate(0, 0, 1)),
		entryAt(t, "Entrada", "média", 10, base),
	}

	s := Summarize(entries, time.Time{}, time.Time{})

	require.Len(t, s.Entries, 3)
	assert.Equal(t, "nova", s.Entries[0].Description)
	assert.Equal(t, "média", s.Entries[1].Description)
	assert.Equal(t, "antiga", s.Entries[2].Description)
}
