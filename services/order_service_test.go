package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

func TestOrderService_IsValidStatusTransition(t *testing.T) {
	os := &OrderService{}

	statuses := []tables.OrderStatus{
		tables.OrderStatusReceived,
		tables.OrderStatusPreparing,
		tables.OrderStatusReady,
		tables.OrderStatusDelivered,
		tables.OrderStatusCancelled,
	}

	allowed := map[tables.OrderStatus][]tables.OrderStatus{
		tables.OrderStatusReceived:  {tables.OrderStatusPreparing, tables.OrderStatusCancelled},
		tables.OrderStatusPreparing: {tables.OrderStatusReady, tables.OrderStatusCancelled},
		tables.OrderStatusReady:     {tables.OrderStatusDelivered, tables.OrderStatusCancelled},
		tables.OrderStatusDelivered: {},
		tables.OrderStatusCancelled: {},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			expected := false
			for _, next := range allowed[from] {
				if next == to {
					expected = true
				}
			}
			assert.Equal(t, expected, os.isValidStatusTransition(from, to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestOrderService_IsValidStatusTransition_UnknownStatus(t *testing.T) {
	os := &OrderService{}

	assert.False(t, os.isValidStatusTransition(tables.OrderStatus("pendente"), tables.OrderStatusPreparing))
	assert.False(t, os.isValidStatusTransition(tables.OrderStatusReceived, tables.OrderStatus("finalizado")))
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, tables.OrderStatusDelivered.IsTerminal())
	assert.True(t, tables.OrderStatusCancelled.IsTerminal())
	assert.False(t, tables.OrderStatusReceived.IsTerminal())
	assert.False(t, tables.OrderStatusPreparing.IsTerminal())
	assert.False(t, tables.OrderStatusReady.IsTerminal())
}

func TestScrubOrderTarget(t *testing.T) {
	tableId := uuid.New()

	t.Run("table order drops delivery details", func(t *testing.T) {
		order := &tables.Order{
			Type:            tables.OrderTypeTable,
			TableId:         &tableId,
			DeliveryPhone:   "11999990000",
			DeliveryAddress: "Rua das Flores, 10",
		}

		scrubOrderTarget(order)

		assert.Equal(t, &tableId, order.TableId)
		assert.Empty(t, order.DeliveryPhone)
		assert.Empty(t, order.DeliveryAddress)
	})

	t.Run("delivery order drops the table", func(t *testing.T) {
		order := &tables.Order{
			Type:            tables.OrderTypeDelivery,
			TableId:         &tableId,
			DeliveryPhone:   "11999990000",
			DeliveryAddress: "Rua das Flores, 10",
		}

		scrubOrderTarget(order)

		assert.Nil(t, order.TableId)
		assert.Equal(t, "11999990000", order.DeliveryPhone)
		assert.Equal(t, "Rua das Flores, 10", order.DeliveryAddress)
	})
}
