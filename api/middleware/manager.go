package middleware

import (
	"github.com/MonkyMars/gecho"

	"github.com/luanmendes74/menu-flow-saas/database"
	"github.com/luanmendes74/menu-flow-saas/services"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

type Middleware struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	authService  *services.AuthService
	cacheService *services.CacheService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *Middleware {
	return &Middleware{
		cfg:          cfg,
		logger:       logger,
		authService:  services.NewAuthService(cfg, logger, db),
		cacheService: services.NewCacheService(logger, cfg),
	}
}
