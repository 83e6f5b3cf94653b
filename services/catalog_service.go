package services

import (
	"context"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/database"
	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

// CatalogService owns the per-tenant menu content: categories, products and
// the assembled public menu. Every query is scoped by establishment id; the
// public menu is additionally cached per subdomain and invalidated on any
// catalog write.
type CatalogService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
}

func NewCatalogService(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *CatalogService {
	return &CatalogService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: NewCacheService(logger, cfg),
	}
}

// GetEstablishmentBySubdomain loads an active tenant by its public subdomain.
func (cs *CatalogService) GetEstablishmentBySubdomain(ctx context.Context, subdomain string) (*tables.Establishment, error) {
	establishment, err := database.Query[tables.Establishment](cs.db).
		Where("subdomain", subdomain).
		Where("is_active", true).
		Relation("Plan").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if establishment == nil {
		return nil, lib.ErrNotFound
	}
	return establishment, nil
}

// GetEstablishmentByID loads a tenant with its plan for limit checks.
func (cs *CatalogService) GetEstablishmentByID(ctx context.Context, establishmentId uuid.UUID) (*tables.Establishment, error) {
	establishment, err := database.Query[tables.Establishment](cs.db).
		Where("id", establishmentId).
		Relation("Plan").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if establishment == nil {
		return nil, lib.ErrNotFound
	}
	return establishment, nil
}

// GetMenu assembles the customer-facing menu for a subdomain: the active
// categories in display order, each with its available products, plus the
// featured products. Served from cache when possible.
func (cs *CatalogService) GetMenu(ctx context.Context, subdomain string) (*structs.Menu, error) {
	cached, err := cs.cacheService.GetMenu(subdomain)
	if err != nil {
		cs.logger.Warn("Menu cache read failed", gecho.Field("error", err), gecho.Field("subdomain", subdomain))
	} else if cached != nil {
		return cached, nil
	}

	startTime := time.Now()
	establishment, err := cs.GetEstablishmentBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	categories, err := database.Query[tables.Category](cs.db).
		Where("establishment_id", establishment.Id).
		Where("is_active", true).
		OrderBy("display_order", database.ASC).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	products, err := database.Query[tables.Product](cs.db).
		Where("establishment_id", establishment.Id).
		Where("is_available", true).
		OrderBy("display_order", database.ASC).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	byCategory := make(map[uuid.UUID][]tables.Product)
	var featured []tables.Product
	for _, product := range products {
		if product.IsFeatured {
			featured = append(featured, product)
		}
		if product.CategoryId != nil {
			byCategory[*product.CategoryId] = append(byCategory[*product.CategoryId], product)
		}
	}

	sections := make([]structs.MenuSection, 0, len(categories))
	for _, category := range categories {
		categoryProducts := byCategory[category.Id]
		if len(categoryProducts) == 0 {
			// Empty categories don't render on the public menu
			continue
		}
		sections = append(sections, structs.MenuSection{
			Category: category,
			Products: categoryProducts,
		})
	}

	menu := &structs.Menu{
		Establishment: *establishment,
		Sections:      sections,
		Featured:      featured,
	}

	if err := cs.cacheService.SetMenu(subdomain, menu); err != nil {
		cs.logger.Warn("Menu cache write failed", gecho.Field("error", err), gecho.Field("subdomain", subdomain))
	}

	cs.logger.Debug("Menu assembled",
		gecho.Field("subdomain", subdomain),
		gecho.Field("sections", len(sections)),
		gecho.Field("elapsed_time_ms", time.Since(startTime).Milliseconds()),
	)

	return menu, nil
}

// GetProductsForCheckout returns the available products keyed by id, as the
// pricing snapshot for cart totals and order items.
func (cs *CatalogService) GetProductsForCheckout(ctx context.Context, establishmentId uuid.UUID) (map[uuid.UUID]*tables.Product, error) {
	products, err := database.Query[tables.Product](cs.db).
		Where("establishment_id", establishmentId).
		Where("is_available", true).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	catalog := make(map[uuid.UUID]*tables.Product, len(products))
	for i := range products {
		catalog[products[i].Id] = &products[i]
	}
	return catalog, nil
}

func (cs *CatalogService) GetProducts(ctx context.Context, establishmentId uuid.UUID) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](cs.db).
		Where("establishment_id", establishmentId).
		Relation("Category").
		OrderBy("display_order", database.ASC).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

func (cs *CatalogService) GetProductByID(ctx context.Context, establishmentId, productId uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](cs.db).
		Where("id", productId).
		Where("establishment_id", establishmentId).
		Relation("Category").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}
	return product, nil
}

func (cs *CatalogService) CreateProduct(ctx context.Context, establishment *tables.Establishment, req *structs.CreateProductRequest) (*tables.Product, error) {
	if err := cs.checkProductLimit(ctx, establishment); err != nil {
		return nil, err
	}

	if req.CategoryId != nil {
		if err := cs.assertCategoryOwned(ctx, establishment.Id, *req.CategoryId); err != nil {
			return nil, err
		}
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	product := &tables.Product{
		EstablishmentId: establishment.Id,
		CategoryId:      req.CategoryId,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Image:           req.Image,
		IsAvailable:     isAvailable,
		IsFeatured:      req.IsFeatured,
		DisplayOrder:    req.DisplayOrder,
	}

	product, err := database.Query[tables.Product](cs.db).Insert(ctx, product)
	if err != nil {
		cs.logger.Error("Failed to create product",
			gecho.Field("error", err),
			gecho.Field("establishment_id", establishment.Id),
		)
		return nil, lib.MapPgError(err)
	}

	cs.invalidateMenu(establishment.Subdomain)
	return product, nil
}

func (cs *CatalogService) UpdateProduct(ctx context.Context, establishment *tables.Establishment, productId uuid.UUID, req *structs.UpdateProductRequest) (*tables.Product, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if req.CategoryId != nil {
		if err := cs.assertCategoryOwned(ctx, establishment.Id, *req.CategoryId); err != nil {
			return nil, err
		}
		updates["category_id"] = *req.CategoryId
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}

	rows, err := database.Query[tables.Product](cs.db).
		Where("id", productId).
		Where("establishment_id", establishment.Id).
		Update(ctx, updates)
	if err != nil {
		cs.logger.Error("Failed to update product",
			gecho.Field("error", err),
			gecho.Field("product_id", productId),
		)
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	cs.invalidateMenu(establishment.Subdomain)
	return cs.GetProductByID(ctx, establishment.Id, productId)
}

func (cs *CatalogService) DeleteProduct(ctx context.Context, establishment *tables.Establishment, productId uuid.UUID) error {
	rows, err := database.Query[tables.Product](cs.db).
		Where("id", productId).
		Where("establishment_id", establishment.Id).
		Delete(ctx)
	if err != nil {
		cs.logger.Error("Failed to delete product",
			gecho.Field("error", err),
			gecho.Field("product_id", productId),
		)
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateMenu(establishment.Subdomain)
	return nil
}

func (cs *CatalogService) GetCategories(ctx context.Context, establishmentId uuid.UUID) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		Where("establishment_id", establishmentId).
		OrderBy("display_order", database.ASC).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return categories, nil
}

func (cs *CatalogService) CreateCategory(ctx context.Context, establishment *tables.Establishment, req *structs.CreateCategoryRequest) (*tables.Category, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &tables.Category{
		EstablishmentId: establishment.Id,
		Name:            req.Name,
		Description:     req.Description,
		DisplayOrder:    req.DisplayOrder,
		IsActive:        isActive,
	}

	category, err := database.Query[tables.Category](cs.db).Insert(ctx, category)
	if err != nil {
		cs.logger.Error("Failed to create category",
			gecho.Field("error", err),
			gecho.Field("establishment_id", establishment.Id),
		)
		return nil, lib.MapPgError(err)
	}

	cs.invalidateMenu(establishment.Subdomain)
	return category, nil
}

func (cs *CatalogService) UpdateCategory(ctx context.Context, establishment *tables.Establishment, categoryId uuid.UUID, req *structs.UpdateCategoryRequest) (*tables.Category, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	rows, err := database.Query[tables.Category](cs.db).
		Where("id", categoryId).
		Where("establishment_id", establishment.Id).
		Update(ctx, updates)
	if err != nil {
		cs.logger.Error("Failed to update category",
			gecho.Field("error", err),
			gecho.Field("category_id", categoryId),
		)
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	cs.invalidateMenu(establishment.Subdomain)

	category, err := database.Query[tables.Category](cs.db).
		Where("id", categoryId).
		Where("establishment_id", establishment.Id).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return category, nil
}

// DeleteCategory removes a category; its products survive as uncategorized.
func (cs *CatalogService) DeleteCategory(ctx context.Context, establishment *tables.Establishment, categoryId uuid.UUID) error {
	if _, err := database.Query[tables.Product](cs.db).
		Where("category_id", categoryId).
		Where("establishment_id", establishment.Id).
		Update(ctx, map[string]any{"category_id": nil, "updated_at": time.Now()}); err != nil {
		return lib.MapPgError(err)
	}

	rows, err := database.Query[tables.Category](cs.db).
		Where("id", categoryId).
		Where("establishment_id", establishment.Id).
		Delete(ctx)
	if err != nil {
		cs.logger.Error("Failed to delete category",
			gecho.Field("error", err),
			gecho.Field("category_id", categoryId),
		)
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateMenu(establishment.Subdomain)
	return nil
}

// checkProductLimit enforces the plan's product cap. A limit of zero or a
// missing plan means unlimited.
func (cs *CatalogService) checkProductLimit(ctx context.Context, establishment *tables.Establishment) error {
	if establishment.Plan == nil || establishment.Plan.ProductLimit <= 0 {
		return nil
	}

	count, err := database.Query[tables.Product](cs.db).
		Where("establishment_id", establishment.Id).
		Count(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}

	if count >= establishment.Plan.ProductLimit {
		return lib.NewValidationError("plan", "product limit reached for the current plan")
	}
	return nil
}

func (cs *CatalogService) assertCategoryOwned(ctx context.Context, establishmentId, categoryId uuid.UUID) error {
	exists, err := database.Query[tables.Category](cs.db).
		Where("id", categoryId).
		Where("establishment_id", establishmentId).
		Exists(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if !exists {
		return lib.NewValidationError("category_id", "category does not exist")
	}
	return nil
}

func (cs *CatalogService) invalidateMenu(subdomain string) {
	if err := cs.cacheService.InvalidateMenu(subdomain); err != nil {
		cs.logger.Warn("Menu cache invalidation failed",
			gecho.Field("error", err),
			gecho.Field("subdomain", subdomain),
		)
	}
}
