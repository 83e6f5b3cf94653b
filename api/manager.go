package api

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"github.com/luanmendes74/menu-flow-saas/api/auth"
	"github.com/luanmendes74/menu-flow-saas/api/cart"
	"github.com/luanmendes74/menu-flow-saas/api/dashboard"
	"github.com/luanmendes74/menu-flow-saas/api/health"
	"github.com/luanmendes74/menu-flow-saas/api/menu"
	"github.com/luanmendes74/menu-flow-saas/api/middleware"
	"github.com/luanmendes74/menu-flow-saas/api/orders"
	"github.com/luanmendes74/menu-flow-saas/database"
	"github.com/luanmendes74/menu-flow-saas/services"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

type routerManager struct {
	menuRoutes      *menu.MenuRoutesManager
	cartRoutes      *cart.CartRoutesManager
	orderRoutes     *orders.OrderRoutesManager
	dashboardRoutes *dashboard.DashboardRoutesManager
	authRoutes      *auth.AuthRoutesManager
	healthRoutes    *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	db *database.DB,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *routerManager {
	sm := services.NewServiceManager(logger, cfg, db)

	return &routerManager{
		menuRoutes:      menu.NewMenuRoutesManager(logger, cfg, sm.CatalogService),
		cartRoutes:      cart.NewCartRoutesManager(logger, cfg, sm.CacheService, sm.CatalogService),
		orderRoutes:     orders.NewOrderRoutesManager(logger, cfg, mw, sm.OrderService, sm.CatalogService),
		dashboardRoutes: dashboard.NewDashboardRoutesManager(logger, cfg, mw, sm.CatalogService, sm.TableService, sm.OrderService, sm.DashboardService),
		authRoutes:      auth.NewAuthRoutesManager(logger, sm.AuthService, cfg, mw),
		healthRoutes:    health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.menuRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.dashboardRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
