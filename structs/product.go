package structs

import (
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

type CreateProductRequest struct {
	CategoryId   *uuid.UUID `json:"category_id,omitempty"`
	Name         string     `json:"name" validate:"required,min=2,max=200"`
	Description  string     `json:"description,omitempty" validate:"omitempty,max=500"`
	Price        uint64     `json:"price" validate:"gte=0"` // cents
	Image        string     `json:"image,omitempty" validate:"omitempty,url"`
	IsAvailable  *bool      `json:"is_available,omitempty"`
	IsFeatured   bool       `json:"is_featured"`
	DisplayOrder int        `json:"display_order"`
}

type UpdateProductRequest struct {
	CategoryId   *uuid.UUID `json:"category_id,omitempty"`
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description  *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Price        *uint64    `json:"price,omitempty" validate:"omitempty,gte=0"`
	Image        *string    `json:"image,omitempty" validate:"omitempty,url"`
	IsAvailable  *bool      `json:"is_available,omitempty"`
	IsFeatured   *bool      `json:"is_featured,omitempty"`
	DisplayOrder *int       `json:"display_order,omitempty"`
}

type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=300"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=300"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type CreateTableRequest struct {
	Number string `json:"number" validate:"required,min=1,max=20"`
}

type SetReservationRequest struct {
	Reserved *bool `json:"reserved" validate:"required"`
}

// MenuSection is one active category with its available products, in display
// order, as served on the public menu endpoint.
type MenuSection struct {
	Category tables.Category  `json:"category"`
	Products []tables.Product `json:"products"`
}

// Menu is the customer-facing catalog snapshot for one establishment.
type Menu struct {
	Establishment tables.Establishment `json:"establishment"`
	Sections      []MenuSection        `json:"sections"`
	Featured      []tables.Product     `json:"featured,omitempty"`
}
