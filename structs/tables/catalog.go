package tables

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	tableName       struct{}  `bun:"table:categories,alias:c"`
	Id              uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	EstablishmentId uuid.UUID `bun:"establishment_id,notnull,type:uuid" json:"establishment_id" validate:"required,uuid4"`
	Name            string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Description     string    `bun:"description" json:"description,omitempty" validate:"omitempty,max=300"`
	DisplayOrder    int       `bun:"display_order,notnull,default:0" json:"display_order"`
	IsActive        bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

type Product struct {
	tableName       struct{}   `bun:"table:products,alias:p"`
	Id              uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	EstablishmentId uuid.UUID  `bun:"establishment_id,notnull,type:uuid" json:"establishment_id" validate:"required,uuid4"`
	CategoryId      *uuid.UUID `bun:"category_id,type:uuid,nullzero" json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Name            string     `bun:"name,notnull" json:"name" validate:"required,min=2,max=200"`
	Description     string     `bun:"description" json:"description,omitempty" validate:"omitempty,max=500"`
	Price           uint64     `bun:"price,notnull" json:"price"` // stored in cents
	Image           string     `bun:"image" json:"image,omitempty" validate:"omitempty,url"`
	IsAvailable     bool       `bun:"is_available,notnull,default:true" json:"is_available"`
	IsFeatured      bool       `bun:"is_featured,notnull,default:false" json:"is_featured"`
	DisplayOrder    int        `bun:"display_order,notnull,default:0" json:"display_order"`
	CreatedAt       time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}
