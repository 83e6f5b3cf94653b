package auth

import (
	"net/http"

	"github.com/MonkyMars/gecho"

	"github.com/luanmendes74/menu-flow-saas/lib"
)

func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err == nil {
		if err := arm.authService.Logout(refreshToken); err != nil {
			arm.logger.Error("Failed to revoke refresh token during logout", gecho.Field("error", err))
			gecho.InternalServerError(w,
				gecho.WithMessage("Failed to logout"),
				gecho.Send(),
			)
			return
		}
	}

	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
