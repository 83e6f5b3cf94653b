package services

import (
	"github.com/MonkyMars/gecho"

	"github.com/luanmendes74/menu-flow-saas/database"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

type ServiceManager struct {
	AuthService      *AuthService
	EmailService     *EmailService
	CacheService     *CacheService
	HealthService    *HealthService
	CatalogService   *CatalogService
	TableService     *TableService
	OrderService     *OrderService
	DashboardService *DashboardService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(cfg, logger, db)
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db)
	catalogService := NewCatalogService(cfg, logger, db)
	tableService := NewTableService(cfg, logger, db)
	orderService := NewOrderService(logger, cfg, db, catalogService, emailService)
	dashboardService := NewDashboardService(logger, orderService)

	return &ServiceManager{
		AuthService:      authService,
		EmailService:     emailService,
		CacheService:     cacheService,
		HealthService:    healthService,
		CatalogService:   catalogService,
		TableService:     tableService,
		OrderService:     orderService,
		DashboardService: dashboardService,
	}
}
