package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus_LinearPath(t *testing.T) {
	next, ok := NextStatus(OrderStatusPending)
	assert.True(t, ok)
	assert.Equal(t, OrderStatusConfirmed, next)

	next, ok = NextStatus(OrderStatusConfirmed)
	assert.True(t, ok)
	assert.Equal(t, OrderStatusPacked, next)

	next, ok = NextStatus(OrderStatusPacked)
	assert.True(t, ok)
	assert.Equal(t, OrderStatusShipped, next)
}

func TestNextStatus_TerminalStatesHaveNoSuccessor(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusShipped, OrderStatusCancelled, OrderStatusReturned} {
		_, ok := NextStatus(status)
		assert.False(t, ok, "status %q should have no successor", status)
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		terminal bool
	}{
		{OrderStatusPending, false},
		{OrderStatusConfirmed, false},
		{OrderStatusPacked, false},
		{OrderStatusShipped, true},
		{OrderStatusCancelled, true},
		{OrderStatusReturned, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.terminal, tt.status.IsTerminal(), "status %q", tt.status)
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPacked,
		OrderStatusShipped, OrderStatusCancelled, OrderStatusReturned,
	} {
		assert.True(t, status.IsValid(), "status %q", status)
	}

	assert.False(t, OrderStatus("delivered").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
