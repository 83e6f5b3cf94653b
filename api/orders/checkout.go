package orders

import (
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"github.com/luanmendes74/menu-flow-saas/api/health"
	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

func (orm *OrderRoutesManager) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	subdomain := chi.URLParam(r, "subdomain")

	establishment, err := orm.catalogService.GetEstablishmentBySubdomain(r.Context(), subdomain)
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage("Establishment not found"), gecho.Send())
		return
	}

	sessionKey, err := lib.GetSessionKey(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Missing session key"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CheckoutRequest](r)
	if err != nil {
		orm.logger.Warn("Failed to extract checkout body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your order details and try again"), gecho.Send())
		return
	}

	order, err := orm.orderService.Checkout(r.Context(), establishment, sessionKey, body)
	if err != nil {
		var validationErr *lib.ValidationError
		if errors.As(err, &validationErr) {
			gecho.BadRequest(w,
				gecho.WithMessage("Order could not be placed"),
				gecho.WithData(validationErr.Errors),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Checkout failed",
			gecho.Field("error", err),
			gecho.Field("establishment_id", establishment.Id),
		)
		gecho.InternalServerError(w, gecho.WithMessage("Unable to place the order. Please try again"), gecho.Send())
		return
	}

	health.OrdersCreated.WithLabelValues(string(order.Type)).Inc()

	gecho.Success(w,
		gecho.WithMessage("Order placed"),
		gecho.WithData(order),
		gecho.Send(),
	)
}

// HandleTrackOrder lets a customer follow their order by number. The order
// number is unguessable enough for an anonymous read of status and items.
func (orm *OrderRoutesManager) HandleTrackOrder(w http.ResponseWriter, r *http.Request) {
	subdomain := chi.URLParam(r, "subdomain")
	orderNumber := chi.URLParam(r, "orderNumber")

	establishment, err := orm.catalogService.GetEstablishmentBySubdomain(r.Context(), subdomain)
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage("Establishment not found"), gecho.Send())
		return
	}

	order, err := orm.orderService.GetOrderByOrderNumber(r.Context(), establishment.Id, orderNumber)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
			return
		}
		orm.logger.Error("Failed to load order for tracking", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load the order right now"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}
