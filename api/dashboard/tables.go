package dashboard

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

func (drm *DashboardRoutesManager) HandleListTables(w http.ResponseWriter, r *http.Request) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return
	}

	diningTables, err := drm.tableService.GetTables(r.Context(), membership.EstablishmentId)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to load tables")
		return
	}

	gecho.Success(w,
		gecho.WithData(diningTables),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleCreateTable(w http.ResponseWriter, r *http.Request) {
	establishment, ok := drm.establishment(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateTableRequest](r)
	if err != nil {
		drm.logger.Warn("Failed to extract table body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the table details and try again"), gecho.Send())
		return
	}

	table, err := drm.tableService.CreateTable(r.Context(), establishment, body)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to create the table")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Table created"),
		gecho.WithData(table),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleSetReservation(w http.ResponseWriter, r *http.Request) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return
	}

	tableId, err := uuid.Parse(chi.URLParam(r, "tableId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid table id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SetReservationRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the reservation details and try again"), gecho.Send())
		return
	}

	table, err := drm.tableService.SetReservation(r.Context(), membership.EstablishmentId, tableId, *body.Reserved)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to update the reservation")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Reservation updated"),
		gecho.WithData(table),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleRegenerateQRCode(w http.ResponseWriter, r *http.Request) {
	establishment, ok := drm.establishment(w, r)
	if !ok {
		return
	}

	tableId, err := uuid.Parse(chi.URLParam(r, "tableId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid table id"), gecho.Send())
		return
	}

	table, err := drm.tableService.RegenerateQRCode(r.Context(), establishment, tableId)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to regenerate the QR code")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("QR code regenerated"),
		gecho.WithData(table),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleDeleteTable(w http.ResponseWriter, r *http.Request) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return
	}

	tableId, err := uuid.Parse(chi.URLParam(r, "tableId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid table id"), gecho.Send())
		return
	}

	if err := drm.tableService.DeleteTable(r.Context(), membership.EstablishmentId, tableId); err != nil {
		drm.respondServiceError(w, err, "Unable to delete the table")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Table deleted"),
		gecho.Send(),
	)
}
