package dashboard

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

func (drm *DashboardRoutesManager) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return
	}

	categories, err := drm.catalogService.GetCategories(r.Context(), membership.EstablishmentId)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to load categories")
		return
	}

	gecho.Success(w,
		gecho.WithData(categories),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	establishment, ok := drm.establishment(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateCategoryRequest](r)
	if err != nil {
		drm.logger.Warn("Failed to extract category body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the category details and try again"), gecho.Send())
		return
	}

	category, err := drm.catalogService.CreateCategory(r.Context(), establishment, body)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to create the category")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category created"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	establishment, ok := drm.establishment(w, r)
	if !ok {
		return
	}

	categoryId, err := uuid.Parse(chi.URLParam(r, "categoryId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateCategoryRequest](r)
	if err != nil {
		drm.logger.Warn("Failed to extract category update body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the category details and try again"), gecho.Send())
		return
	}

	category, err := drm.catalogService.UpdateCategory(r.Context(), establishment, categoryId, body)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to update the category")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	establishment, ok := drm.establishment(w, r)
	if !ok {
		return
	}

	categoryId, err := uuid.Parse(chi.URLParam(r, "categoryId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	if err := drm.catalogService.DeleteCategory(r.Context(), establishment, categoryId); err != nil {
		drm.respondServiceError(w, err, "Unable to delete the category")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category deleted"),
		gecho.Send(),
	)
}
