package menu

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"github.com/luanmendes74/menu-flow-saas/lib"
)

func (mrm *MenuRoutesManager) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	subdomain := chi.URLParam(r, "subdomain")

	menu, err := mrm.catalogService.GetMenu(r.Context(), subdomain)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Establishment not found"), gecho.Send())
			return
		}
		mrm.logger.Error("Failed to load menu", gecho.Field("error", err), gecho.Field("subdomain", subdomain))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load the menu right now"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(menu),
		gecho.Send(),
	)
}

// HandleCreateSession issues the anonymous key a storefront client presents
// on cart and checkout calls.
func (mrm *MenuRoutesManager) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	subdomain := chi.URLParam(r, "subdomain")

	if _, err := mrm.catalogService.GetEstablishmentBySubdomain(r.Context(), subdomain); err != nil {
		gecho.NotFound(w, gecho.WithMessage("Establishment not found"), gecho.Send())
		return
	}

	key, err := lib.GenerateRandomToken()
	if err != nil {
		mrm.logger.Error("Failed to generate session key", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to start a session"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]string{"session_key": key}),
		gecho.Send(),
	)
}
