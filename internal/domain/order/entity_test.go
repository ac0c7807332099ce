package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCart() []CartItem {
	return []CartItem{
		{ProductID: "p1", Name: "Botijão 13kg", Quantity: 2, UnitPrice: decimal.NewFromInt(25)},
		{ProductID: "p2", Name: "Galão 20L", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
	}
}

func TestCartTotal(t *testing.T) {
	total := CartTotal(testCart())
	assert.True(t, total.Equal(decimal.NewFromInt(60)), "got %s", total)

	assert.True(t, CartTotal(nil).Equal(decimal.Zero))
}

func TestNewOrder(t *testing.T) {
	o, err := NewOrder(testCart(), CustomerSnapshot{Name: "Maria", Phone: "11 99999-0000", Address: "Rua A, 10"}, "Carlos", "Pix")
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "Carlos", o.AgentName)
	assert.True(t, o.Total.Equal(decimal.NewFromInt(60)))
	require.Len(t, o.Items, 2)
	assert.True(t, o.Items[0].Subtotal.Equal(decimal.NewFromInt(50)))
}

func TestNewOrderValidation(t *testing.T) {
	_, err := NewOrder(nil, CustomerSnapshot{Name: "Maria"}, "", "Pix")
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = NewOrder(testCart(), CustomerSnapshot{Name: "   "}, "", "Pix")
	assert.ErrorIs(t, err, ErrBlankCustomerName)

	cart := testCart()
	cart[0].Quantity = 0
	_, err = NewOrder(cart, CustomerSnapshot{Name: "Maria"}, "", "Pix")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestNewOrderDefaultAgent(t *testing.T) {
	o, err := NewOrder(testCart(), CustomerSnapshot{Name: "Maria"}, "  ", "Dinheiro")
	require.NoError(t, err)
	assert.Equal(t, DefaultAgentName, o.AgentName)
}

func TestOrderTotalIsFrozen(t *testing.T) {
	cart := testCart()
	o, err := NewOrder(cart, CustomerSnapshot{Name: "Maria"}, "", "Pix")
	require.NoError(t, err)

	// Mudança de preço depois do fechamento não mexe no total gravado
	cart[0].UnitPrice = decimal.NewFromInt(100)
	assert.True(t, o.Total.Equal(decimal.NewFromInt(60)))
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusOutForDelivery, true},
		{StatusPending, StatusDelivered, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, true},
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusOutForDelivery, StatusCancelled, true},
		{StatusOutForDelivery, StatusOutForDelivery, true},
		{StatusOutForDelivery, StatusPending, false},
		{StatusDelivered, StatusDelivered, true},
		{StatusDelivered, StatusOutForDelivery, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusCancelled, true},
		{StatusCancelled, StatusDelivered, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionIdempotent(t *testing.T) {
	o, err := NewOrder(testCart(), CustomerSnapshot{Name: "Maria"}, "", "Pix")
	require.NoError(t, err)

	require.NoError(t, o.Transition(StatusDelivered))
	// Reaplicar o mesmo status final não é erro
	require.NoError(t, o.Transition(StatusDelivered))
	assert.Equal(t, StatusDelivered, o.Status)

	err = o.Transition(StatusOutForDelivery)
	assert.ErrorIs(t, err, ErrFinalStatus)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" Saiu para Entrega ")
	require.NoError(t, err)
	assert.Equal(t, StatusOutForDelivery, s)

	_, err = ParseStatus("Em Rota")
	assert.Error(t, err)
}
