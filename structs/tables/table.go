package tables

import (
	"time"

	"github.com/google/uuid"
)

type TableStatus string

const (
	TableStatusFree     TableStatus = "livre"
	TableStatusOccupied TableStatus = "ocupada"
	TableStatusReserved TableStatus = "reservada"
)

// DiningTable is a physical table. The stored Status column is a cache
// refreshed inside order transactions; the authoritative occupancy is always
// derived from the non-terminal orders referencing the table.
type DiningTable struct {
	tableName       struct{}    `bun:"table:dining_tables,alias:dt"`
	Id              uuid.UUID   `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	EstablishmentId uuid.UUID   `bun:"establishment_id,notnull,type:uuid" json:"establishment_id" validate:"required,uuid4"`
	Number          string      `bun:"number,notnull" json:"number" validate:"required,min=1,max=20"`
	QRCode          string      `bun:"qr_code" json:"qr_code,omitempty"` // base64-encoded PNG
	Status          TableStatus `bun:"status,notnull,default:'livre'" json:"status" validate:"required,oneof=livre ocupada reservada"`
	CreatedAt       time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time   `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
