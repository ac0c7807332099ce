package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		raw  string
		want Type
	}{
		{"Entrada", TypeInflow},
		{"Saída", TypeOutflow},
		{"Saida", TypeOutflow},
		{"A Receber", TypeReceivable},
		{"Quitado", TypeSettled},
		{"  Entrada  ", TypeInflow},
		{"entrada", TypeUnknown},
		{"Transferência", TypeUnknown},
		{"", TypeUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseType(tc.raw), "raw=%q", tc.raw)
	}
}

func TestNewEntryValidation(t *testing.T) {
	_, err := NewEntry("Entrada", "   ", decimal.NewFromInt(10), "", "", "")
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = NewEntry("Entrada", "Venda: Maria", decimal.Zero, "", "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewEntry("Entrada", "Venda: Maria", decimal.NewFromInt(-5), "", "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	e, err := NewEntry("Saída", "Combustível", decimal.NewFromFloat(45.90), "Operacional", "Pix", "")
	require.NoError(t, err)
	assert.Equal(t, TypeOutflow, e.Type)
	assert.Equal(t, "Saída", e.RawType)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Date.IsZero())
}

func TestNewEntryKeepsUnknownRawType(t *testing.T) {
	e, err := NewEntry("Transferência", "Ajuste de caixa", decimal.NewFromInt(100), "", "", "")
	require.NoError(t, err)

	// O tipo original é preservado para exibição e exportação mesmo
	// quando não entra em nenhum total
	assert.Equal(t, "Transferência", e.RawType)
	assert.Equal(t, TypeUnknown, e.Type)
}

func TestDebtorName(t *testing.T) {
	assert.Equal(t, "Maria Souza", DebtorName("Venda a prazo: Maria Souza"))
	assert.Equal(t, "João", DebtorName("Fiado: João"))
	assert.Equal(t, "", DebtorName("Compra de botijões"))
	assert.Equal(t, "Loja: Centro", DebtorName("Venda a prazo: Loja: Centro"))
}

func TestNewSettlement(t *testing.T) {
	receivable, err := NewEntry("A Receber", "Venda a prazo: Maria Souza", decimal.NewFromInt(120), "Venda", "Fiado", "")
	require.NoError(t, err)

	inflow, err := NewSettlement(receivable, "Pix")
	require.NoError(t, err)

	assert.Equal(t, TypeInflow, inflow.Type)
	assert.Equal(t, string(TypeInflow), inflow.RawType)
	assert.True(t, inflow.Amount.Equal(receivable.Amount))
	assert.Equal(t, "Recebimento: Maria Souza", inflow.Description)
	assert.Equal(t, "Pix", inflow.PaymentMethod)
	assert.NotEqual(t, receivable.ID, inflow.ID)
	assert.Contains(t, inflow.Detail, receivable.ID)

	// A conta original não é tocada pela geração do recebimento
	assert.Equal(t, TypeReceivable, receivable.Type)
}

func TestNewSettlementRejectsNonReceivable(t *testing.T) {
	entry, err := NewEntry("Entrada", "Venda: Maria", decimal.NewFromInt(50), "", "", "")
	require.NoError(t, err)

	_, err = NewSettlement(entry, "Dinheiro")
	assert.ErrorIs(t, err, ErrNotReceivable)
}
