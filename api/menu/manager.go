package menu

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"github.com/luanmendes74/menu-flow-saas/services"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

// MenuRoutesManager serves the public, unauthenticated storefront surface:
// the menu itself and the anonymous session keys carts hang off.
type MenuRoutesManager struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	catalogService *services.CatalogService
}

func NewMenuRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	catalogService *services.CatalogService,
) *MenuRoutesManager {
	return &MenuRoutesManager{
		logger:         logger,
		cfg:            cfg,
		catalogService: catalogService,
	}
}

func (mrm *MenuRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/menu/{subdomain}", func(r chi.Router) {
		r.Get("/", mrm.HandleGetMenu)
		r.Post("/session", mrm.HandleCreateSession)
	})
}
