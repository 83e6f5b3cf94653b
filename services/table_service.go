package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/luanmendes74/menu-flow-saas/database"
	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

const qrCodeSize = 256 // px

// TableService manages dining tables. Occupancy is always derived from the
// open orders referencing a table; the stored status column is only a cache
// and gets repaired here whenever it drifts.
type TableService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewTableService(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *TableService {
	return &TableService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

type occupiedTableRow struct {
	TableId uuid.UUID `bun:"table_id"`
}

// occupiedTableIDs returns the ids of tables holding at least one order in a
// non-terminal status.
func (ts *TableService) occupiedTableIDs(ctx context.Context, establishmentId uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := database.RawQuery[occupiedTableRow](ts.db, ctx, `
		SELECT DISTINCT o.table_id
		FROM orders AS o
		WHERE o.establishment_id = ?
		  AND o.table_id IS NOT NULL
		  AND o.status NOT IN (?, ?)`,
		establishmentId, tables.OrderStatusDelivered, tables.OrderStatusCancelled,
	)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	occupied := make(map[uuid.UUID]bool, len(rows))
	for _, row := range rows {
		occupied[row.TableId] = true
	}
	return occupied, nil
}

// GetTables lists the tenant's tables with their derived occupancy. When the
// stored status disagrees with the derivation the row is repaired in place,
// except for reservations, which only staff set and clear.
func (ts *TableService) GetTables(ctx context.Context, establishmentId uuid.UUID) ([]tables.DiningTable, error) {
	tableRows, err := database.Query[tables.DiningTable](ts.db).
		Where("establishment_id", establishmentId).
		OrderBy("number", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	occupied, err := ts.occupiedTableIDs(ctx, establishmentId)
	if err != nil {
		return nil, err
	}

	for i := range tableRows {
		derived := tables.TableStatusFree
		if occupied[tableRows[i].Id] {
			derived = tables.TableStatusOccupied
		}

		if tableRows[i].Status == tables.TableStatusReserved && derived == tables.TableStatusFree {
			continue
		}
		if tableRows[i].Status == derived {
			continue
		}

		ts.logger.Debug("Repairing stale table status",
			gecho.Field("table_id", tableRows[i].Id),
			gecho.Field("stored", tableRows[i].Status),
			gecho.Field("derived", derived),
		)
		tableRows[i].Status = derived
		if _, err := database.Query[tables.DiningTable](ts.db).
			Where("id", tableRows[i].Id).
			Update(ctx, map[string]any{"status": derived, "updated_at": time.Now()}); err != nil {
			ts.logger.Warn("Failed to repair table status", gecho.Field("error", err), gecho.Field("table_id", tableRows[i].Id))
		}
	}

	return tableRows, nil
}

func (ts *TableService) GetTableByID(ctx context.Context, establishmentId, tableId uuid.UUID) (*tables.DiningTable, error) {
	table, err := database.Query[tables.DiningTable](ts.db).
		Where("id", tableId).
		Where("establishment_id", establishmentId).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if table == nil {
		return nil, lib.ErrNotFound
	}
	return table, nil
}

// CreateTable registers a table, enforcing the plan's table cap, and encodes
// the public menu URL for the table into a QR code stored alongside it.
func (ts *TableService) CreateTable(ctx context.Context, establishment *tables.Establishment, req *structs.CreateTableRequest) (*tables.DiningTable, error) {
	if err := ts.checkTableLimit(ctx, establishment); err != nil {
		return nil, err
	}

	duplicate, err := database.Query[tables.DiningTable](ts.db).
		Where("establishment_id", establishment.Id).
		Where("number", req.Number).
		Exists(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if duplicate {
		return nil, lib.NewValidationError("number", "a table with this number already exists")
	}

	qr, err := ts.generateQRCode(establishment.Subdomain, req.Number)
	if err != nil {
		ts.logger.Error("Failed to generate table QR code",
			gecho.Field("error", err),
			gecho.Field("establishment_id", establishment.Id),
			gecho.Field("number", req.Number),
		)
		return nil, err
	}

	table := &tables.DiningTable{
		EstablishmentId: establishment.Id,
		Number:          req.Number,
		QRCode:          qr,
		Status:          tables.TableStatusFree,
	}

	table, err = database.Query[tables.DiningTable](ts.db).Insert(ctx, table)
	if err != nil {
		ts.logger.Error("Failed to create table",
			gecho.Field("error", err),
			gecho.Field("establishment_id", establishment.Id),
		)
		return nil, lib.MapPgError(err)
	}

	return table, nil
}

// SetReservation toggles a table between livre and reservada. Occupied tables
// cannot be reserved.
func (ts *TableService) SetReservation(ctx context.Context, establishmentId, tableId uuid.UUID, reserved bool) (*tables.DiningTable, error) {
	occupied, err := ts.occupiedTableIDs(ctx, establishmentId)
	if err != nil {
		return nil, err
	}
	if occupied[tableId] {
		return nil, lib.NewValidationError("status", "table has open orders")
	}

	status := tables.TableStatusFree
	if reserved {
		status = tables.TableStatusReserved
	}

	rows, err := database.Query[tables.DiningTable](ts.db).
		Where("id", tableId).
		Where("establishment_id", establishmentId).
		Update(ctx, map[string]any{"status": status, "updated_at": time.Now()})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	return ts.GetTableByID(ctx, establishmentId, tableId)
}

// DeleteTable removes a table. Tables with open orders are protected.
func (ts *TableService) DeleteTable(ctx context.Context, establishmentId, tableId uuid.UUID) error {
	occupied, err := ts.occupiedTableIDs(ctx, establishmentId)
	if err != nil {
		return err
	}
	if occupied[tableId] {
		return lib.NewValidationError("table", "table has open orders")
	}

	rows, err := database.Query[tables.DiningTable](ts.db).
		Where("id", tableId).
		Where("establishment_id", establishmentId).
		Delete(ctx)
	if err != nil {
		ts.logger.Error("Failed to delete table",
			gecho.Field("error", err),
			gecho.Field("table_id", tableId),
		)
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// RegenerateQRCode rebuilds and stores the QR code, for when the public base
// URL or subdomain changes.
func (ts *TableService) RegenerateQRCode(ctx context.Context, establishment *tables.Establishment, tableId uuid.UUID) (*tables.DiningTable, error) {
	table, err := ts.GetTableByID(ctx, establishment.Id, tableId)
	if err != nil {
		return nil, err
	}

	qr, err := ts.generateQRCode(establishment.Subdomain, table.Number)
	if err != nil {
		return nil, err
	}

	if _, err := database.Query[tables.DiningTable](ts.db).
		Where("id", tableId).
		Where("establishment_id", establishment.Id).
		Update(ctx, map[string]any{"qr_code": qr, "updated_at": time.Now()}); err != nil {
		return nil, lib.MapPgError(err)
	}

	table.QRCode = qr
	return table, nil
}

func (ts *TableService) generateQRCode(subdomain, number string) (string, error) {
	url := fmt.Sprintf("%s/%s/mesa/%s", ts.cfg.Menu.PublicBaseURL, subdomain, number)
	png, err := qrcode.Encode(url, qrcode.Medium, qrCodeSize)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// checkTableLimit enforces the plan's table cap. A limit of zero or a missing
// plan means unlimited.
func (ts *TableService) checkTableLimit(ctx context.Context, establishment *tables.Establishment) error {
	if establishment.Plan == nil || establishment.Plan.TableLimit <= 0 {
		return nil
	}

	count, err := database.Query[tables.DiningTable](ts.db).
		Where("establishment_id", establishment.Id).
		Count(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}

	if count >= establishment.Plan.TableLimit {
		return lib.NewValidationError("plan", "table limit reached for the current plan")
	}
	return nil
}
