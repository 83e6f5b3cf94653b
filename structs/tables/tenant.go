package tables

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a subscription tier limiting how many products and tables an
// establishment may register.
type Plan struct {
	tableName    struct{}  `bun:"table:plans,alias:pl"`
	Id           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name         string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=50"`
	MonthlyPrice uint64    `bun:"monthly_price,notnull" json:"monthly_price"` // stored in cents
	ProductLimit int       `bun:"product_limit,notnull" json:"product_limit" validate:"gte=0"`
	TableLimit   int       `bun:"table_limit,notnull" json:"table_limit" validate:"gte=0"`
	IsActive     bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// Establishment is a tenant. Every catalog, table and order row carries its
// id, and every query is scoped by it.
type Establishment struct {
	tableName      struct{}   `bun:"table:establishments,alias:e"`
	Id             uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name           string     `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Subdomain      string     `bun:"subdomain,notnull,unique" json:"subdomain" validate:"required,min=2,max=63,lowercase"`
	Email          string     `bun:"email,notnull" json:"email" validate:"required,email"`
	Phone          string     `bun:"phone" json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Address        string     `bun:"address" json:"address,omitempty" validate:"omitempty,max=300"`
	Logo           string     `bun:"logo" json:"logo,omitempty" validate:"omitempty,url"`
	PrimaryColor   string     `bun:"primary_color,notnull,default:'#E11D48'" json:"primary_color"`
	SecondaryColor string     `bun:"secondary_color,notnull,default:'#0F172A'" json:"secondary_color"`
	PlanId         *uuid.UUID `bun:"plan_id,type:uuid,nullzero" json:"plan_id,omitempty"`
	IsActive       bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt      time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	Plan *Plan `bun:"rel:belongs-to,join:plan_id=id" json:"plan,omitempty"`
}

type MemberRole string

const (
	MemberRoleAdmin MemberRole = "admin"
	MemberRoleStaff MemberRole = "funcionario"
)

// EstablishmentUser maps an authenticated user to a single active tenant
// membership carrying a role.
type EstablishmentUser struct {
	tableName       struct{}   `bun:"table:establishment_users,alias:eu"`
	Id              uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	EstablishmentId uuid.UUID  `bun:"establishment_id,notnull,type:uuid" json:"establishment_id" validate:"required,uuid4"`
	UserId          uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"user_id" validate:"required,uuid4"`
	Name            string     `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Email           string     `bun:"email,notnull" json:"email" validate:"required,email"`
	Role            MemberRole `bun:"role,notnull,default:'funcionario'" json:"role" validate:"required,oneof=admin funcionario"`
	IsActive        bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt       time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	Establishment *Establishment `bun:"rel:belongs-to,join:establishment_id=id" json:"establishment,omitempty"`
}
