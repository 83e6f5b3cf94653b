package services

import (
	"context"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/structs"
	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

// DashboardService derives the overview figures for the owner dashboard.
// Nothing is precomputed or stored: every call aggregates the current order
// rows, so the numbers can never drift from the orders they describe.
type DashboardService struct {
	logger       *gecho.Logger
	orderService *OrderService
}

func NewDashboardService(logger *gecho.Logger, orderService *OrderService) *DashboardService {
	return &DashboardService{
		logger:       logger,
		orderService: orderService,
	}
}

// GetStats loads the current calendar month's orders, plus older orders that
// are still open, and aggregates them. The month window bounds the revenue
// figures; occupancy has to see every open order regardless of age.
func (ds *DashboardService) GetStats(ctx context.Context, establishmentId uuid.UUID) (*structs.DashboardStats, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	orders, err := ds.orderService.GetOrdersSince(ctx, establishmentId, monthStart)
	if err != nil {
		ds.logger.Error("Failed to load orders for dashboard",
			gecho.Field("error", err),
			gecho.Field("establishment_id", establishmentId),
		)
		return nil, err
	}

	stats := ComputeStats(orders, now)
	return &stats, nil
}

// ComputeStats aggregates dashboard figures from an order slice. Cancelled
// orders never count toward revenue or the average ticket, but they do count
// toward today's order volume. The average ticket is zero, not a division
// error, on a day without revenue. Active tables counts distinct tables, so
// a table with several open orders counts once.
func ComputeStats(orders []tables.Order, now time.Time) structs.DashboardStats {
	year, month, day := now.Date()

	var monthlyRevenue uint64
	var ordersToday int
	var revenueToday uint64
	var billableToday int
	activeTables := make(map[uuid.UUID]bool)

	for _, order := range orders {
		created := order.CreatedAt.In(now.Location())

		if order.Status != tables.OrderStatusCancelled &&
			created.Year() == year && created.Month() == month {
			monthlyRevenue += order.Total
		}

		cy, cm, cd := created.Date()
		if cy == year && cm == month && cd == day {
			ordersToday++
			if order.Status != tables.OrderStatusCancelled {
				revenueToday += order.Total
				billableToday++
			}
		}

		if order.TableId != nil && !order.Status.IsTerminal() {
			activeTables[*order.TableId] = true
		}
	}

	var averageTicket uint64
	if billableToday > 0 {
		averageTicket = revenueToday / uint64(billableToday)
	}

	return structs.DashboardStats{
		MonthlyRevenue: monthlyRevenue,
		OrdersToday:    ordersToday,
		AverageTicket:  averageTicket,
		ActiveTables:   len(activeTables),
		ComputedAt:     now,
	}
}
