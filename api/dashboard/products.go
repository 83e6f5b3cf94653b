package dashboard

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

func (drm *DashboardRoutesManager) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return
	}

	products, err := drm.catalogService.GetProducts(r.Context(), membership.EstablishmentId)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to load products")
		return
	}

	gecho.Success(w,
		gecho.WithData(products),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	establishment, ok := drm.establishment(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateProductRequest](r)
	if err != nil {
		drm.logger.Warn("Failed to extract product body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product details and try again"), gecho.Send())
		return
	}

	product, err := drm.catalogService.CreateProduct(r.Context(), establishment, body)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to create the product")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	establishment, ok := drm.establishment(w, r)
	if !ok {
		return
	}

	productId, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProductRequest](r)
	if err != nil {
		drm.logger.Warn("Failed to extract product update body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product details and try again"), gecho.Send())
		return
	}

	product, err := drm.catalogService.UpdateProduct(r.Context(), establishment, productId, body)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to update the product")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	establishment, ok := drm.establishment(w, r)
	if !ok {
		return
	}

	productId, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	if err := drm.catalogService.DeleteProduct(r.Context(), establishment, productId); err != nil {
		drm.respondServiceError(w, err, "Unable to delete the product")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
