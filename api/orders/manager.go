package orders

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"github.com/luanmendes74/menu-flow-saas/api/middleware"
	"github.com/luanmendes74/menu-flow-saas/services"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

// OrderRoutesManager handles the storefront side of ordering: turning a cart
// into an order and letting the customer follow it by order number.
type OrderRoutesManager struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	mw             *middleware.Middleware
	orderService   *services.OrderService
	catalogService *services.CatalogService
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	mw *middleware.Middleware,
	orderService *services.OrderService,
	catalogService *services.CatalogService,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:         logger,
		cfg:            cfg,
		mw:             mw,
		orderService:   orderService,
		catalogService: catalogService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/menu/{subdomain}/orders", func(r chi.Router) {
		// Checkout writes money-bearing rows; fail closed when the rate
		// limit backend is down.
		r.With(orm.mw.StrictRateLimitMiddleware(
			orm.cfg.RateLimit.CheckoutLimit,
			orm.cfg.RateLimit.CheckoutWindow,
		)).Post("/checkout", orm.HandleCheckout)
		r.Get("/{orderNumber}", orm.HandleTrackOrder)
	})
}
