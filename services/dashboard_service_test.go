package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

func makeOrder(status tables.OrderStatus, total uint64, createdAt time.Time, tableId *uuid.UUID) tables.Order {
	return tables.Order{
		Id:        uuid.New(),
		Status:    status,
		Total:     total,
		CreatedAt: createdAt,
		TableId:   tableId,
	}
}

func TestComputeStats_EmptySlice(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	stats := ComputeStats(nil, now)

	assert.Zero(t, stats.MonthlyRevenue)
	assert.Zero(t, stats.OrdersToday)
	assert.Zero(t, stats.AverageTicket)
	assert.Zero(t, stats.ActiveTables)
	assert.Equal(t, now, stats.ComputedAt)
}

func TestComputeStats_CancelledOrdersCountedButNotBilled(t *testing.T) {
	now := time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	orders := []tables.Order{
		makeOrder(tables.OrderStatusDelivered, 3000, today, nil),
		makeOrder(tables.OrderStatusDelivered, 5000, today, nil),
		makeOrder(tables.OrderStatusCancelled, 9999, today, nil),
	}

	stats := ComputeStats(orders, now)

	assert.Equal(t, 3, stats.OrdersToday)
	assert.Equal(t, uint64(8000), stats.MonthlyRevenue)
	assert.Equal(t, uint64(4000), stats.AverageTicket)
}

func TestComputeStats_AverageTicketZeroWhenOnlyCancellations(t *testing.T) {
	now := time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	orders := []tables.Order{
		makeOrder(tables.OrderStatusCancelled, 4200, today, nil),
	}

	stats := ComputeStats(orders, now)

	assert.Equal(t, 1, stats.OrdersToday)
	assert.Zero(t, stats.AverageTicket)
	assert.Zero(t, stats.MonthlyRevenue)
}

func TestComputeStats_ActiveTablesAreDistinct(t *testing.T) {
	now := time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	tableA := uuid.New()
	tableB := uuid.New()
	tableC := uuid.New()

	orders := []tables.Order{
		// two open orders on the same table count once
		makeOrder(tables.OrderStatusReceived, 1000, today, &tableA),
		makeOrder(tables.OrderStatusPreparing, 1500, today, &tableA),
		makeOrder(tables.OrderStatusReady, 2000, today, &tableB),
		// terminal orders free their table
		makeOrder(tables.OrderStatusDelivered, 2500, today, &tableC),
		makeOrder(tables.OrderStatusCancelled, 500, today, &tableC),
		// delivery order, no table
		makeOrder(tables.OrderStatusReceived, 700, today, nil),
	}

	stats := ComputeStats(orders, now)

	assert.Equal(t, 2, stats.ActiveTables)
}

func TestComputeStats_OpenPriorMonthOrderStillOccupiesItsTable(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 30, 0, 0, time.UTC)
	// placed before midnight on the last day of February, still in the kitchen
	lastMonth := time.Date(2026, time.February, 28, 23, 45, 0, 0, time.UTC)

	tableA := uuid.New()
	orders := []tables.Order{
		makeOrder(tables.OrderStatusPreparing, 3000, lastMonth, &tableA),
	}

	stats := ComputeStats(orders, now)

	// the table stays active across the month boundary even though the
	// order contributes nothing to this month's revenue
	assert.Equal(t, 1, stats.ActiveTables)
	assert.Zero(t, stats.MonthlyRevenue)
	assert.Zero(t, stats.OrdersToday)
}

func TestComputeStats_DayAndMonthBoundaries(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	yesterday := time.Date(2026, time.March, 14, 23, 59, 0, 0, time.UTC)
	earlierThisMonth := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.February, 28, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 15, 0, 0, 1, 0, time.UTC)

	orders := []tables.Order{
		makeOrder(tables.OrderStatusDelivered, 1000, yesterday, nil),
		makeOrder(tables.OrderStatusDelivered, 2000, earlierThisMonth, nil),
		makeOrder(tables.OrderStatusDelivered, 4000, lastMonth, nil),
		makeOrder(tables.OrderStatusDelivered, 8000, today, nil),
	}

	stats := ComputeStats(orders, now)

	// last month's order is excluded from the monthly figure
	assert.Equal(t, uint64(11000), stats.MonthlyRevenue)
	assert.Equal(t, 1, stats.OrdersToday)
	assert.Equal(t, uint64(8000), stats.AverageTicket)
}
