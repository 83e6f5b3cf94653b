package services

import (
	"context"
	"fmt"
	"runtime/debug"
	"slices"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"

	"github.com/luanmendes74/menu-flow-saas/database"
	"github.com/luanmendes74/menu-flow-saas/lib"
	"github.com/luanmendes74/menu-flow-saas/structs"
	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

type OrderService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	db             *database.DB
	catalogService *CatalogService
	cacheService   *CacheService
	emailService   *EmailService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	catalogService *CatalogService,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		logger:         logger,
		cfg:            cfg,
		db:             db,
		catalogService: catalogService,
		cacheService:   NewCacheService(logger, cfg),
		emailService:   emailService,
	}
}

// Checkout converts the session cart into a persisted order. The order row,
// its item snapshots, the table occupancy cache and nothing else change in a
// single transaction; the cart is discarded only after a successful commit,
// so a failed checkout leaves it intact for retry.
func (os *OrderService) Checkout(ctx context.Context, establishment *tables.Establishment, sessionKey string, req *structs.CheckoutRequest) (order *tables.Order, err error) {
	cart, err := os.cacheService.GetCart(establishment.Id, sessionKey)
	if err != nil {
		os.logger.Error("Failed to load cart for checkout", gecho.Field("error", err))
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, lib.NewValidationError("cart", "cart is empty")
	}

	orderType := tables.OrderType(req.Type)
	if err := os.validateCheckoutTarget(ctx, establishment.Id, orderType, req); err != nil {
		return nil, err
	}

	catalog, err := os.catalogService.GetProductsForCheckout(ctx, establishment.Id)
	if err != nil {
		return nil, err
	}

	items := make([]tables.OrderItem, 0, len(cart.Lines))
	var total uint64
	for _, line := range cart.Lines {
		product, ok := catalog[line.ProductId]
		if !ok {
			return nil, lib.NewValidationError("cart", "a product in the cart is no longer available")
		}
		items = append(items, tables.OrderItem{
			Id:          uuid.New(),
			ProductId:   product.Id,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			ProductName: product.Name,
			Note:        line.Note,
		})
		total += product.Price * uint64(line.Quantity)
	}

	tx, err := os.db.BeginTx(ctx, nil)
	if err != nil {
		os.logger.Error("Failed to begin checkout transaction", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			os.logger.Error(fmt.Sprintf("panic in Checkout: %v", p),
				gecho.Field("stack_trace", string(debug.Stack())))
			tx.Rollback()
			err = fmt.Errorf("panic recovered: %v", p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
			if err == nil {
				os.finishCheckout(establishment, sessionKey, order)
			}
		}
	}()

	order = &tables.Order{
		OrderNumber:     lib.GenerateOrderNumber(),
		EstablishmentId: establishment.Id,
		TableId:         req.TableId,
		Type:            orderType,
		Status:          tables.OrderStatusReceived,
		Total:           total,
		Notes:           req.Notes,
		DeliveryPhone:   req.DeliveryPhone,
		DeliveryAddress: req.DeliveryAddress,
	}
	scrubOrderTarget(order)

	if _, err = tx.NewInsert().Model(order).Returning("*").Exec(ctx); err != nil {
		os.logger.Error("Failed to insert order",
			gecho.Field("error", err),
			gecho.Field("establishment_id", establishment.Id),
		)
		err = lib.MapPgError(err)
		return nil, err
	}

	for i := range items {
		items[i].OrderId = order.Id
	}
	if _, err = tx.NewInsert().Model(&items).Exec(ctx); err != nil {
		os.logger.Error("Order items failed to persist, rolling back",
			gecho.Field("error", err),
			gecho.Field("order_id", order.Id),
		)
		err = &lib.PartialCheckoutError{OrderId: order.Id.String(), Err: lib.MapPgError(err)}
		return nil, err
	}

	if order.TableId != nil {
		if _, err = tx.NewUpdate().
			Model(&tables.DiningTable{}).
			Set("status = ?", tables.TableStatusOccupied).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", *order.TableId).
			Where("establishment_id = ?", establishment.Id).
			Exec(ctx); err != nil {
			err = lib.MapPgError(err)
			return nil, err
		}
	}

	order.Items = items

	os.logger.Info("Order created",
		gecho.Field("order_id", order.Id),
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("type", order.Type),
		gecho.Field("total", order.Total),
		gecho.Field("items", len(items)),
	)

	return order, nil
}

// finishCheckout runs after a committed checkout: the cart is discarded (a
// stale cart would allow an accidental duplicate submission) and the kitchen
// is notified. Neither step may affect the checkout result.
func (os *OrderService) finishCheckout(establishment *tables.Establishment, sessionKey string, order *tables.Order) {
	if cacheErr := os.cacheService.DeleteCart(establishment.Id, sessionKey); cacheErr != nil {
		os.logger.Warn("Failed to discard cart after checkout",
			gecho.Field("error", cacheErr),
			gecho.Field("order_id", order.Id),
		)
	}
	go os.emailService.SendNewOrderNotification(establishment, order)
}

// scrubOrderTarget drops the fields the order's type cannot carry: a table
// order keeps no delivery details, a delivery order no table reference.
func scrubOrderTarget(order *tables.Order) {
	if order.Type == tables.OrderTypeDelivery {
		order.TableId = nil
	} else {
		order.DeliveryPhone = ""
		order.DeliveryAddress = ""
	}
}

func (os *OrderService) validateCheckoutTarget(ctx context.Context, establishmentId uuid.UUID, orderType tables.OrderType, req *structs.CheckoutRequest) error {
	switch orderType {
	case tables.OrderTypeTable:
		if req.TableId == nil {
			return lib.NewValidationError("table_id", "table orders require a table")
		}
		exists, err := database.Query[tables.DiningTable](os.db).
			Where("id", *req.TableId).
			Where("establishment_id", establishmentId).
			Exists(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		if !exists {
			return lib.NewValidationError("table_id", "table does not exist")
		}
	case tables.OrderTypeDelivery:
		if req.DeliveryPhone == "" || req.DeliveryAddress == "" {
			return lib.NewValidationError("delivery", "delivery orders require phone and address")
		}
	default:
		return lib.NewValidationError("type", "unknown order type")
	}
	return nil
}

// UpdateOrderStatus moves an order through its lifecycle. The same status is
// a no-op without a write; an invalid transition is rejected before touching
// the database; and the update itself is guarded by the expected current
// status, so two racing staff members cannot both win.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, establishmentId, orderId uuid.UUID, newStatus tables.OrderStatus, actorId *uuid.UUID) (updated *tables.Order, err error) {
	order, err := os.GetOrderById(ctx, establishmentId, orderId)
	if err != nil {
		return nil, err
	}

	if order.Status == newStatus {
		os.logger.Debug("Order already in requested status",
			gecho.Field("order_id", orderId),
			gecho.Field("status", newStatus),
		)
		return order, nil
	}

	if !os.isValidStatusTransition(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", lib.ErrInvalidTransition, order.Status, newStatus)
	}

	tx, err := os.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			os.logger.Error(fmt.Sprintf("panic in UpdateOrderStatus: %v", p))
			err = fmt.Errorf("panic recovered: %v", p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	// Guard on the status we read; losing the race means zero rows
	res, err := tx.NewUpdate().
		Model(&tables.Order{}).
		Set("status = ?", newStatus).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", orderId).
		Where("establishment_id = ?", establishmentId).
		Where("status = ?", order.Status).
		Exec(ctx)
	if err != nil {
		err = lib.MapPgError(err)
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		os.logger.Warn("Concurrent status update lost the race",
			gecho.Field("order_id", orderId),
			gecho.Field("expected", order.Status),
			gecho.Field("requested", newStatus),
		)
		err = lib.ErrConflict
		return nil, err
	}

	event := &tables.OrderStatusEvent{
		Id:         uuid.New(),
		OrderId:    orderId,
		FromStatus: order.Status,
		ToStatus:   newStatus,
		ActorId:    actorId,
	}
	if _, err = tx.NewInsert().Model(event).Exec(ctx); err != nil {
		err = lib.MapPgError(err)
		return nil, err
	}

	if order.TableId != nil {
		if err = os.refreshTableStatusTx(ctx, tx, establishmentId, *order.TableId, orderId, newStatus); err != nil {
			return nil, err
		}
	}

	os.logger.Info("Order status updated",
		gecho.Field("order_id", orderId),
		gecho.Field("old_status", order.Status),
		gecho.Field("new_status", newStatus),
	)

	order.Status = newStatus
	return order, nil
}

// refreshTableStatusTx keeps the stored table status in step with the orders
// changed in this transaction. A table frees up only when no other open order
// still references it.
func (os *OrderService) refreshTableStatusTx(ctx context.Context, tx database.Tx, establishmentId, tableId, orderId uuid.UUID, newStatus tables.OrderStatus) error {
	status := tables.TableStatusOccupied
	if newStatus.IsTerminal() {
		others, err := tx.NewSelect().
			Model(&tables.Order{}).
			Where("table_id = ?", tableId).
			Where("id != ?", orderId).
			Where("status NOT IN (?, ?)", tables.OrderStatusDelivered, tables.OrderStatusCancelled).
			Count(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		if others == 0 {
			status = tables.TableStatusFree
		}
	}

	if _, err := tx.NewUpdate().
		Model(&tables.DiningTable{}).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", tableId).
		Where("establishment_id = ?", establishmentId).
		Exec(ctx); err != nil {
		return lib.MapPgError(err)
	}
	return nil
}

func (os *OrderService) GetOrderById(ctx context.Context, establishmentId, orderId uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("id", orderId).
		Where("establishment_id", establishmentId).
		Relation("Items").
		Relation("Table").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

func (os *OrderService) GetOrderByOrderNumber(ctx context.Context, establishmentId uuid.UUID, orderNumber string) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("order_number", orderNumber).
		Where("establishment_id", establishmentId).
		Relation("Items").
		Relation("Table").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// GetOrders lists the tenant's orders, newest first, optionally filtered by
// status, with pagination metadata.
func (os *OrderService) GetOrders(ctx context.Context, establishmentId uuid.UUID, status *tables.OrderStatus, page, pageSize int) (*database.PaginationResult[tables.Order], error) {
	query := database.Query[tables.Order](os.db).
		Where("establishment_id", establishmentId).
		Relation("Items").
		Relation("Table").
		OrderBy("created_at", database.DESC)
	if status != nil {
		query = query.Where("status", *status)
	}

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// GetOrdersSince loads orders created at or after the cutoff, plus any older
// order that is still open, for the dashboard aggregation. Table occupancy is
// derived from every open order, not just this month's, so an order placed
// before the cutoff that is still in the kitchen must be in the slice.
func (os *OrderService) GetOrdersSince(ctx context.Context, establishmentId uuid.UUID, since time.Time) ([]tables.Order, error) {
	orders, err := database.Query[tables.Order](os.db).
		Where("establishment_id", establishmentId).
		WhereRaw("(created_at >= ? OR status NOT IN (?, ?))",
			since, tables.OrderStatusDelivered, tables.OrderStatusCancelled).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return orders, nil
}

// GetStatusHistory returns the audit trail for an order, oldest first.
func (os *OrderService) GetStatusHistory(ctx context.Context, establishmentId, orderId uuid.UUID) ([]tables.OrderStatusEvent, error) {
	// Ownership check first; events don't carry the tenant id
	if _, err := os.GetOrderById(ctx, establishmentId, orderId); err != nil {
		return nil, err
	}

	events, err := database.Query[tables.OrderStatusEvent](os.db).
		Where("order_id", orderId).
		OrderBy("created_at", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return events, nil
}

// isValidStatusTransition validates if a status transition is allowed
func (os *OrderService) isValidStatusTransition(current, next tables.OrderStatus) bool {
	transitions := map[tables.OrderStatus][]tables.OrderStatus{
		tables.OrderStatusReceived: {
			tables.OrderStatusPreparing,
			tables.OrderStatusCancelled,
		},
		tables.OrderStatusPreparing: {
			tables.OrderStatusReady,
			tables.OrderStatusCancelled,
		},
		tables.OrderStatusReady: {
			tables.OrderStatusDelivered,
			tables.OrderStatusCancelled,
		},
		tables.OrderStatusDelivered: {},
		tables.OrderStatusCancelled: {},
	}

	allowedNextStates, exists := transitions[current]
	if !exists {
		return false
	}

	return slices.Contains(allowedNextStates, next)
}
