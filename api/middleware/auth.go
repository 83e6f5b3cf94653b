package middleware

import (
	"context"
	"net/http"

	"github.com/MonkyMars/gecho"

	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

// Context keys for storing auth data in request context
type contextKey string

const (
	ClaimsContextKey     contextKey = "claims"
	MembershipContextKey contextKey = "membership"
)

// UserAuthMiddleware protects routes to only logged-in users
func (mw *Middleware) UserAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractClaims(r, mw.cfg.Auth.AccessTokenSecret)
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MembershipMiddleware resolves the caller's establishment membership and
// stores it in the request context. The lookup runs on every request so a
// deactivated membership locks the user out immediately. Must be used after
// UserAuthMiddleware.
func (mw *Middleware) MembershipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaimsFromContext(r.Context())
		if !ok {
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		membership, err := mw.authService.GetActiveMembership(r.Context(), claims.Sub)
		if err != nil {
			mw.logger.Warn("No active membership for authenticated user",
				gecho.Field("user_id", claims.Sub),
				gecho.Field("error", err),
			)
			gecho.Forbidden(w, gecho.WithMessage("No active establishment membership"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), MembershipContextKey, membership)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnlyMiddleware restricts a route to admin members. Must be used after
// MembershipMiddleware.
func (mw *Middleware) AdminOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		membership, ok := GetMembershipFromContext(r.Context())
		if !ok {
			gecho.Forbidden(w, gecho.WithMessage("Access denied"), gecho.Send())
			return
		}

		if membership.Role != tables.MemberRoleAdmin {
			mw.logger.Warn("Non-admin member attempted admin route",
				gecho.Field("user_id", membership.UserId),
				gecho.Field("role", membership.Role),
			)
			gecho.Forbidden(w, gecho.WithMessage("Admin access required"), gecho.Send())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClaimsFromContext is a helper function to extract the claims from request context
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}

// GetMembershipFromContext extracts the resolved membership from request context
func GetMembershipFromContext(ctx context.Context) (*tables.EstablishmentUser, bool) {
	membership, ok := ctx.Value(MembershipContextKey).(*tables.EstablishmentUser)
	return membership, ok
}
