package auth

import (
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"

	"github.com/luanmendes74/menu-flow-saas/lib"
)

// HandleRefresh rotates the token pair. The presented refresh token is
// revoked in the same call, so it cannot be replayed.
func (arm *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("Missing refresh token"), gecho.Send())
		return
	}

	response, err := arm.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidToken) || errors.Is(err, lib.ErrExpiredToken) {
			lib.ClearCookie(lib.AccessCookieName, w)
			lib.ClearCookie(lib.RefreshCookieName, w)
			gecho.Unauthorized(w, gecho.WithMessage("Session expired. Please log in again"), gecho.Send())
			return
		}

		arm.logger.Error("Token refresh failed", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to refresh the session"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, response.RefreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, response.AccessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("Session refreshed"),
		gecho.WithData(response.User),
		gecho.Send(),
	)
}
