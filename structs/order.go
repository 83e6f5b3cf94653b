package structs

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutRequest converts the session cart into a persisted order. Table
// orders need a table id; delivery orders need phone and address.
type CheckoutRequest struct {
	Type            string     `json:"type" validate:"required,oneof=mesa delivery"`
	TableId         *uuid.UUID `json:"table_id,omitempty"`
	Notes           string     `json:"notes,omitempty" validate:"omitempty,max=500"`
	DeliveryPhone   string     `json:"delivery_phone,omitempty" validate:"omitempty,min=8,max=20"`
	DeliveryAddress string     `json:"delivery_address,omitempty" validate:"omitempty,max=300"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=recebido preparando pronto entregue cancelado"`
}

type CartItemRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
	Note      string    `json:"note,omitempty" validate:"omitempty,max=300"`
}

type CartNoteRequest struct {
	Note string `json:"note" validate:"max=300"`
}

// DashboardStats are the four derived figures on the owner overview tab.
// All values are recomputed from the order collection on every call.
type DashboardStats struct {
	MonthlyRevenue uint64    `json:"monthly_revenue"` // cents, current calendar month
	OrdersToday    int       `json:"orders_today"`
	AverageTicket  uint64    `json:"average_ticket"` // cents, 0 when no orders today
	ActiveTables   int       `json:"active_tables"`  // distinct tables with a non-terminal order
	ComputedAt     time.Time `json:"computed_at"`
}
