package cart

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

func (crm *CartRoutesManager) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	establishment, _, cart, ok := crm.resolveSession(w, r)
	if !ok {
		return
	}

	crm.respondWithCart(w, r, establishment.Id, cart)
}

func (crm *CartRoutesManager) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	establishment, sessionKey, cart, ok := crm.resolveSession(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CartItemRequest](r)
	if err != nil {
		crm.logger.Warn("Failed to extract cart item body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the item and try again"), gecho.Send())
		return
	}

	catalog, err := crm.catalogService.GetProductsForCheckout(r.Context(), establishment.Id)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the cart right now"), gecho.Send())
		return
	}
	if _, exists := catalog[body.ProductId]; !exists {
		gecho.NotFound(w, gecho.WithMessage("Product not available"), gecho.Send())
		return
	}

	cart.Add(body.ProductId)
	if body.Note != "" {
		cart.SetNote(body.ProductId, body.Note)
	}

	if err := crm.cacheService.SetCart(establishment.Id, sessionKey, cart); err != nil {
		crm.logger.Error("Failed to store cart", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the cart right now"), gecho.Send())
		return
	}

	crm.respondWithCart(w, r, establishment.Id, cart)
}

func (crm *CartRoutesManager) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	establishment, sessionKey, cart, ok := crm.resolveSession(w, r)
	if !ok {
		return
	}

	productId, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	cart.Remove(productId)

	if err := crm.cacheService.SetCart(establishment.Id, sessionKey, cart); err != nil {
		crm.logger.Error("Failed to store cart", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the cart right now"), gecho.Send())
		return
	}

	crm.respondWithCart(w, r, establishment.Id, cart)
}

func (crm *CartRoutesManager) HandleSetNote(w http.ResponseWriter, r *http.Request) {
	establishment, sessionKey, cart, ok := crm.resolveSession(w, r)
	if !ok {
		return
	}

	productId, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CartNoteRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the note and try again"), gecho.Send())
		return
	}

	cart.SetNote(productId, body.Note)

	if err := crm.cacheService.SetCart(establishment.Id, sessionKey, cart); err != nil {
		crm.logger.Error("Failed to store cart", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the cart right now"), gecho.Send())
		return
	}

	crm.respondWithCart(w, r, establishment.Id, cart)
}

func (crm *CartRoutesManager) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	establishment, sessionKey, _, ok := crm.resolveSession(w, r)
	if !ok {
		return
	}

	if err := crm.cacheService.DeleteCart(establishment.Id, sessionKey); err != nil {
		crm.logger.Error("Failed to clear cart", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the cart right now"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cart cleared"),
		gecho.Send(),
	)
}
