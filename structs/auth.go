package structs

import (
	"time"

	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

type ArgonParams struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// AuthClaims identify a user, not a tenant. The tenant membership (and its
// role) is resolved from the database on every dashboard request.
type AuthClaims struct {
	Sub   uuid.UUID `json:"sub"`
	Email string    `json:"email"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
	Jti   uuid.UUID `json:"jti"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

// AuthResponse carries the user plus freshly minted tokens. Tokens travel in
// cookies; the JSON body never includes them.
type AuthResponse struct {
	User         *tables.User `json:"user"`
	AccessToken  string       `json:"-"`
	RefreshToken string       `json:"-"`
}
