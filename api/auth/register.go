package auth

import (
	"net/http"

	"github.com/MonkyMars/gecho"

	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract and validate request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your registration information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	user, err := arm.authService.Register(body)
	if err != nil {
		// Unique violations return 409 Conflict (already logged as warn in service)
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("This email is already registered"), gecho.Send())
			return
		}

		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete registration. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Account created. Ask your establishment admin to link it"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
