package cart

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/services"
	"github.com/luanmendes74/menu-flow-saas/structs"
	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

// CartRoutesManager exposes the anonymous session cart. Carts live entirely
// in the cache; nothing here touches an order row.
type CartRoutesManager struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	cacheService   *services.CacheService
	catalogService *services.CatalogService
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	cacheService *services.CacheService,
	catalogService *services.CatalogService,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:         logger,
		cfg:            cfg,
		cacheService:   cacheService,
		catalogService: catalogService,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/menu/{subdomain}/cart", func(r chi.Router) {
		r.Get("/", crm.HandleGetCart)
		r.Delete("/", crm.HandleClearCart)
		r.Post("/items", crm.HandleAddItem)
		r.Delete("/items/{productId}", crm.HandleRemoveItem)
		r.Patch("/items/{productId}", crm.HandleSetNote)
	})
}

// resolveSession loads the establishment and the caller's cart, replying with
// the appropriate error response when either is missing.
func (crm *CartRoutesManager) resolveSession(w http.ResponseWriter, r *http.Request) (*tables.Establishment, string, *structs.Cart, bool) {
	subdomain := chi.URLParam(r, "subdomain")

	establishment, err := crm.catalogService.GetEstablishmentBySubdomain(r.Context(), subdomain)
	if err != nil {
		gecho.NotFound(w, gecho.WithMessage("Establishment not found"), gecho.Send())
		return nil, "", nil, false
	}

	sessionKey, err := lib.GetSessionKey(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Missing session key"), gecho.Send())
		return nil, "", nil, false
	}

	cart, err := crm.cacheService.GetCart(establishment.Id, sessionKey)
	if err != nil {
		crm.logger.Error("Failed to load cart", gecho.Field("error", err), gecho.Field("subdomain", subdomain))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load the cart right now"), gecho.Send())
		return nil, "", nil, false
	}

	return establishment, sessionKey, cart, true
}

func (crm *CartRoutesManager) respondWithCart(w http.ResponseWriter, r *http.Request, establishmentId uuid.UUID, cart *structs.Cart) {
	catalog, err := crm.catalogService.GetProductsForCheckout(r.Context(), establishmentId)
	if err != nil {
		crm.logger.Error("Failed to price cart", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load the cart right now"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(structs.CartView{
			Cart:      cart,
			ItemCount: cart.ItemCount(),
			Total:     cart.Total(catalog),
		}),
		gecho.Send(),
	)
}
