package auth

import (
	"net/http"

	"github.com/MonkyMars/gecho"

	"github.com/luanmendes74/menu-flow-saas/api/middleware"
)

// HandleMe returns the caller's identity and tenant membership, as the
// dashboard bootstrap call.
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
		return
	}

	membership, ok := middleware.GetMembershipFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No active establishment membership"), gecho.Send())
		return
	}

	user, err := arm.authService.GetUserByID(claims.Sub)
	if err != nil {
		arm.logger.Error("Failed to load user for /me", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load account data"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"user":       user,
			"membership": membership,
		}),
		gecho.Send(),
	)
}
