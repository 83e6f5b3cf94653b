package tables

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "recebido"
	OrderStatusPreparing OrderStatus = "preparando"
	OrderStatusReady     OrderStatus = "pronto"
	OrderStatusDelivered OrderStatus = "entregue"
	OrderStatusCancelled OrderStatus = "cancelado"
)

// IsTerminal reports whether no further transition may leave the status.
// Terminal orders release their table.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

type OrderType string

const (
	OrderTypeTable    OrderType = "mesa"
	OrderTypeDelivery OrderType = "delivery"
)

type Order struct {
	tableName       struct{}    `bun:"table:orders,alias:o"`
	Id              uuid.UUID   `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderNumber     string      `bun:"order_number,notnull,unique" json:"order_number" validate:"omitempty,min=7,max=20"`
	EstablishmentId uuid.UUID   `bun:"establishment_id,notnull,type:uuid" json:"establishment_id" validate:"required,uuid4"`
	TableId         *uuid.UUID  `bun:"table_id,type:uuid,nullzero" json:"table_id,omitempty" validate:"omitempty,uuid4"`
	Type            OrderType   `bun:"type,notnull" json:"type" validate:"required,oneof=mesa delivery"`
	Status          OrderStatus `bun:"status,notnull,default:'recebido'" json:"status" validate:"required,oneof=recebido preparando pronto entregue cancelado"`
	Total           uint64      `bun:"total,notnull" json:"total"` // stored in cents, sum of item line totals at creation
	Notes           string      `bun:"notes" json:"notes,omitempty" validate:"omitempty,max=500"`
	DeliveryPhone   string      `bun:"delivery_phone" json:"delivery_phone,omitempty" validate:"omitempty,min=8,max=20"`
	DeliveryAddress string      `bun:"delivery_address" json:"delivery_address,omitempty" validate:"omitempty,max=300"`
	CreatedAt       time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time   `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	Table *DiningTable `bun:"rel:belongs-to,join:table_id=id" json:"table,omitempty"`
	Items []OrderItem  `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `bun:"id,pk,notnull" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id" validate:"required,uuid4"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id" validate:"required,uuid4"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity" validate:"required,min=1"`

	// Snapshot of pricing at time of order, decoupled from the product's
	// current price.
	UnitPrice   uint64 `bun:"unit_price,notnull" json:"unit_price"`
	ProductName string `bun:"product_name,notnull" json:"product_name"`

	Note      string    `bun:"note" json:"note,omitempty" validate:"omitempty,max=300"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
}

// OrderStatusEvent records one status transition for auditing: who moved the
// order, from where, to where, and when.
type OrderStatusEvent struct {
	tableName  struct{}    `bun:"table:order_status_events,alias:ose"`
	Id         uuid.UUID   `bun:"id,pk,notnull" json:"id"`
	OrderId    uuid.UUID   `bun:"order_id,notnull,type:uuid" json:"order_id"`
	FromStatus OrderStatus `bun:"from_status,notnull" json:"from_status"`
	ToStatus   OrderStatus `bun:"to_status,notnull" json:"to_status"`
	ActorId    *uuid.UUID  `bun:"actor_id,type:uuid,nullzero" json:"actor_id,omitempty"`
	CreatedAt  time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
