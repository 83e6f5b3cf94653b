package dashboard

import (
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"github.com/luanmendes74/menu-flow-saas/api/middleware"
	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/services"
	"github.com/luanmendes74/menu-flow-saas/structs"
	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

// DashboardRoutesManager is the staff-facing surface. Every route runs behind
// authentication plus membership resolution, so handlers always operate inside
// exactly one establishment. Destructive routes additionally require the
// admin role.
type DashboardRoutesManager struct {
	logger           *gecho.Logger
	cfg              *structs.Config
	mw               *middleware.Middleware
	catalogService   *services.CatalogService
	tableService     *services.TableService
	orderService     *services.OrderService
	dashboardService *services.DashboardService
}

func NewDashboardRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	mw *middleware.Middleware,
	catalogService *services.CatalogService,
	tableService *services.TableService,
	orderService *services.OrderService,
	dashboardService *services.DashboardService,
) *DashboardRoutesManager {
	return &DashboardRoutesManager{
		logger:           logger,
		cfg:              cfg,
		mw:               mw,
		catalogService:   catalogService,
		tableService:     tableService,
		orderService:     orderService,
		dashboardService: dashboardService,
	}
}

func (drm *DashboardRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(drm.mw.UserAuthMiddleware)
		r.Use(drm.mw.MembershipMiddleware)

		r.Get("/stats", drm.HandleGetStats)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", drm.HandleListOrders)
			r.Get("/{orderId}", drm.HandleGetOrder)
			r.Get("/{orderId}/history", drm.HandleGetOrderHistory)
			r.Patch("/{orderId}/status", drm.HandleUpdateOrderStatus)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", drm.HandleListProducts)
			r.Post("/", drm.HandleCreateProduct)
			r.Patch("/{productId}", drm.HandleUpdateProduct)
			r.With(drm.mw.AdminOnlyMiddleware).Delete("/{productId}", drm.HandleDeleteProduct)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", drm.HandleListCategories)
			r.Post("/", drm.HandleCreateCategory)
			r.Patch("/{categoryId}", drm.HandleUpdateCategory)
			r.With(drm.mw.AdminOnlyMiddleware).Delete("/{categoryId}", drm.HandleDeleteCategory)
		})

		r.Route("/tables", func(r chi.Router) {
			r.Get("/", drm.HandleListTables)
			r.Post("/", drm.HandleCreateTable)
			r.Patch("/{tableId}/reservation", drm.HandleSetReservation)
			r.Post("/{tableId}/qrcode", drm.HandleRegenerateQRCode)
			r.With(drm.mw.AdminOnlyMiddleware).Delete("/{tableId}", drm.HandleDeleteTable)
		})
	})
}

// membership pulls the resolved membership out of the request context. The
// middleware guarantees it is present on every dashboard route.
func (drm *DashboardRoutesManager) membership(w http.ResponseWriter, r *http.Request) (*tables.EstablishmentUser, bool) {
	membership, ok := middleware.GetMembershipFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No active establishment membership"), gecho.Send())
		return nil, false
	}
	return membership, true
}

// establishment loads the member's tenant with its plan, needed by routes
// that enforce plan limits or rebuild QR codes.
func (drm *DashboardRoutesManager) establishment(w http.ResponseWriter, r *http.Request) (*tables.Establishment, bool) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return nil, false
	}

	establishment, err := drm.catalogService.GetEstablishmentByID(r.Context(), membership.EstablishmentId)
	if err != nil {
		drm.logger.Error("Failed to load establishment for member",
			gecho.Field("error", err),
			gecho.Field("establishment_id", membership.EstablishmentId),
		)
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load establishment data"), gecho.Send())
		return nil, false
	}
	return establishment, true
}

// respondServiceError translates service-layer errors into HTTP responses.
func (drm *DashboardRoutesManager) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *lib.ValidationError
	switch {
	case errors.As(err, &validationErr):
		gecho.BadRequest(w,
			gecho.WithMessage("Request could not be processed"),
			gecho.WithData(validationErr.Errors),
			gecho.Send(),
		)
	case lib.IsNotFound(err):
		gecho.NotFound(w, gecho.WithMessage("Not found"), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage("The resource changed underneath you. Reload and try again"), gecho.Send())
	case errors.Is(err, lib.ErrInvalidTransition):
		gecho.Conflict(w, gecho.WithMessage("This status change is not allowed"), gecho.Send())
	default:
		drm.logger.Error("Dashboard request failed", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage(fallback), gecho.Send())
	}
}
