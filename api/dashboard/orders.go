package dashboard

import (
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/api/health"
	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

func (drm *DashboardRoutesManager) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return
	}

	var status *tables.OrderStatus
	if s := r.URL.Query().Get("status"); s != "" {
		candidate := tables.OrderStatus(s)
		switch candidate {
		case tables.OrderStatusReceived, tables.OrderStatusPreparing, tables.OrderStatusReady,
			tables.OrderStatusDelivered, tables.OrderStatusCancelled:
			status = &candidate
		default:
			gecho.BadRequest(w, gecho.WithMessage("Unknown status filter"), gecho.Send())
			return
		}
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	result, err := drm.orderService.GetOrders(r.Context(), membership.EstablishmentId, status, page, pageSize)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to load orders")
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return
	}

	orderId, err := uuid.Parse(chi.URLParam(r, "orderId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	order, err := drm.orderService.GetOrderById(r.Context(), membership.EstablishmentId, orderId)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to load the order")
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleGetOrderHistory(w http.ResponseWriter, r *http.Request) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return
	}

	orderId, err := uuid.Parse(chi.URLParam(r, "orderId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	events, err := drm.orderService.GetStatusHistory(r.Context(), membership.EstablishmentId, orderId)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to load the order history")
		return
	}

	gecho.Success(w,
		gecho.WithData(events),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return
	}

	orderId, err := uuid.Parse(chi.URLParam(r, "orderId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		drm.logger.Warn("Failed to extract status update body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the requested status and try again"), gecho.Send())
		return
	}

	newStatus := tables.OrderStatus(body.Status)
	actorId := membership.UserId

	order, err := drm.orderService.UpdateOrderStatus(r.Context(), membership.EstablishmentId, orderId, newStatus, &actorId)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to update the order status")
		return
	}

	health.StatusTransitions.WithLabelValues(string(newStatus)).Inc()

	gecho.Success(w,
		gecho.WithMessage("Order status updated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
