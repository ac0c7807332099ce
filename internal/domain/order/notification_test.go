package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryNotification(t *testing.T) {
	o, err := NewOrder(testCart(), CustomerSnapshot{Name: "Maria", Phone: "11 98888-7777"}, "Carlos", "Pix")
	require.NoError(t, err)

	n, ok := DeliveryNotification(o, "")
	require.True(t, ok)
	assert.Equal(t, o.ID, n.OrderID)
	assert.Equal(t, "11 98888-7777", n.Phone)
	assert.Equal(t, "Olá, Maria! Seu pedido saiu para entrega com Carlos.", n.Message)
}

func TestDeliveryNotificationWithETA(t *testing.T) {
	o, err := NewOrder(testCart(), CustomerSnapshot{Name: "Maria", Phone: "11 98888-7777"}, "Carlos", "Pix")
	require.NoError(t, err)

	n, ok := DeliveryNotification(o, "40 minutos")
	require.True(t, ok)
	assert.Contains(t, n.Message, "Previsão de chegada: 40 minutos.")
}

func TestDeliveryNotificationSkipsWithoutPhone(t *testing.T) {
	o, err := NewOrder(testCart(), CustomerSnapshot{Name: "Maria"}, "", "Pix")
	require.NoError(t, err)

	_, ok := DeliveryNotification(o, "")
	assert.False(t, ok)
}

func TestDeliveryNotifications(t *testing.T) {
	withPhone, err := NewOrder(testCart(), CustomerSnapshot{Name: "Maria", Phone: "11 98888-7777"}, "", "Pix")
	require.NoError(t, err)
	withoutPhone, err := NewOrder(testCart(), CustomerSnapshot{Name: "João"}, "", "Pix")
	require.NoError(t, err)

	notifications := DeliveryNotifications([]*Order{withPhone, withoutPhone}, "")
	require.Len(t, notifications, 1)
	assert.Equal(t, withPhone.ID, notifications[0].OrderID)
}
