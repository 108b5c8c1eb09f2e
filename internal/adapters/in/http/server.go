package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/staff"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler             commands.CreateOrderCommandHandler
	createProductHandler           commands.CreateProductCommandHandler
	restockProductHandler          commands.RestockProductCommandHandler
	updateProductStockHandler      commands.UpdateProductStockCommandHandler
	assignOrderToDeliveryHandler   commands.AssignOrderToDeliveryCommandHandler
	verifyHandoverHandler          commands.VerifyHandoverCommandHandler
	verifyDeliveryHandoverHandler  commands.VerifyDeliveryHandoverCommandHandler
	markDeliveryFailedHandler      commands.MarkDeliveryFailedCommandHandler
	cancelOrderHandler             commands.CancelOrderCommandHandler
	updateOrderStatusHandler       commands.UpdateOrderStatusCommandHandler
	requestReturnHandler           commands.RequestReturnCommandHandler
	updateReturnStatusHandler      commands.UpdateReturnStatusCommandHandler
	verifyReturnCollectionHandler  commands.VerifyReturnCollectionCommandHandler
	verifyReturnToWarehouseHandler commands.VerifyReturnToWarehouseCommandHandler
	updateRefundStatusHandler      commands.UpdateRefundStatusCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getInventoryLogHandler   queries.GetInventoryLogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	restockProductHandler commands.RestockProductCommandHandler,
	updateProductStockHandler commands.UpdateProductStockCommandHandler,
	assignOrderToDeliveryHandler commands.AssignOrderToDeliveryCommandHandler,
	verifyHandoverHandler commands.VerifyHandoverCommandHandler,
	verifyDeliveryHandoverHandler commands.VerifyDeliveryHandoverCommandHandler,
	markDeliveryFailedHandler commands.MarkDeliveryFailedCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	requestReturnHandler commands.RequestReturnCommandHandler,
	updateReturnStatusHandler commands.UpdateReturnStatusCommandHandler,
	verifyReturnCollectionHandler commands.VerifyReturnCollectionCommandHandler,
	verifyReturnToWarehouseHandler commands.VerifyReturnToWarehouseCommandHandler,
	updateRefundStatusHandler commands.UpdateRefundStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getInventoryLogHandler queries.GetInventoryLogQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		createProductHandler:           createProductHandler,
		restockProductHandler:          restockProductHandler,
		updateProductStockHandler:      updateProductStockHandler,
		assignOrderToDeliveryHandler:   assignOrderToDeliveryHandler,
		verifyHandoverHandler:          verifyHandoverHandler,
		verifyDeliveryHandoverHandler:  verifyDeliveryHandoverHandler,
		markDeliveryFailedHandler:      markDeliveryFailedHandler,
		cancelOrderHandler:             cancelOrderHandler,
		updateOrderStatusHandler:       updateOrderStatusHandler,
		requestReturnHandler:           requestReturnHandler,
		updateReturnStatusHandler:      updateReturnStatusHandler,
		verifyReturnCollectionHandler:  verifyReturnCollectionHandler,
		verifyReturnToWarehouseHandler: verifyReturnToWarehouseHandler,
		updateRefundStatusHandler:      updateRefundStatusHandler,
		getOrderHandler:                getOrderHandler,
		getOrdersByStatusHandler:       getOrdersByStatusHandler,
		getInventoryLogHandler:         getInventoryLogHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	source, err := order.ParseSource(newOrder.Source)
	if err != nil {
		return errorResponse(ctx, err)
	}
	paymentMethod, err := order.ParsePaymentMethod(newOrder.PaymentMethod)
	if err != nil {
		return errorResponse(ctx, err)
	}

	// Online orders are placed by the customer; only POS orders carry a
	// staff role.
	actorRole := staff.UnknownRole
	if params.XStaffRole != nil {
		actorRole, err = staff.ParseRole(*params.XStaffRole)
		if err != nil {
			return errorResponse(ctx, err)
		}
	}

	lines := make([]commands.OrderLine, 0, len(newOrder.Lines))
	for _, l := range newOrder.Lines {
		productID, idErr := kernel.UUIDFromBytes(l.ProductId[:])
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: l.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		source,
		actorRole,
		newOrder.CustomerName,
		deref(newOrder.CustomerEmail),
		deref(newOrder.CustomerPhone),
		deref(newOrder.ShippingAddress),
		lines,
		newOrder.Total,
		derefFloat(newOrder.TaxAmount),
		derefFloat(newOrder.ShippingCost),
		derefFloat(newOrder.DiscountAmount),
		paymentMethod,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]servers.OrderItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = servers.OrderItem{
			Id:       item.ID.Bytes(),
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
		if item.ProductID != nil {
			productID := item.ProductID.Bytes()
			items[i].ProductId = &productID
		}
	}

	history := make([]servers.OrderHistoryEntry, len(result.History))
	for i, entry := range result.History {
		history[i] = servers.OrderHistoryEntry{
			Status:     entry.Status,
			Note:       optional(entry.Note),
			OccurredAt: entry.OccurredAt,
		}
	}

	response := servers.Order{
		Id:              result.ID.Bytes(),
		Source:          result.Source,
		Status:          result.Status,
		CustomerName:    result.CustomerName,
		CustomerEmail:   optional(result.CustomerEmail),
		CustomerPhone:   optional(result.CustomerPhone),
		ShippingAddress: optional(result.ShippingAddress),
		Total:           result.Total,
		TaxAmount:       &result.TaxAmount,
		ShippingCost:    &result.ShippingCost,
		DiscountAmount:  &result.DiscountAmount,
		PaymentMethod:   result.PaymentMethod,
		PaymentStatus:   result.PaymentStatus,
		ReturnStatus:    optional(result.ReturnStatus),
		ReturnType:      optional(result.ReturnType),
		ReturnReason:    optional(result.ReturnReason),
		FailureReason:   optional(result.FailureReason),
		DeliveryImage:   optional(result.DeliveryImage),
		ReturnImage:     optional(result.ReturnImage),
		CreatedAt:       result.CreatedAt,
		Items:           items,
		History:         history,
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders - lists orders in one status.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	status, err := order.ParseStatus(params.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	results, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.OrderSummary, len(results))
	for i, summary := range results {
		response[i] = servers.OrderSummary{
			Id:           summary.ID.Bytes(),
			Source:       summary.Source,
			Status:       summary.Status,
			CustomerName: summary.CustomerName,
			Total:        summary.Total,
			ItemCount:    summary.ItemCount,
			CreatedAt:    summary.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PackOrder handles POST /api/v1/orders/{orderId}/pack - packs the order and
// assigns the shipment and delivery staff.
func (s *Server) PackOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.PackOrderParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.PackRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentStaffID, err := kernel.UUIDFromBytes(request.ShipmentStaffId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}
	deliveryStaffID, err := kernel.UUIDFromBytes(request.DeliveryStaffId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignOrderToDeliveryCommand(orderID, shipmentStaffID, deliveryStaffID, actorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.assignOrderToDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyHandover handles POST /api/v1/orders/{orderId}/handover - transfers
// custody to the delivery staff.
func (s *Server) VerifyHandover(ctx echo.Context, orderId openapi_types.UUID, params servers.VerifyHandoverParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.HandoverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyHandoverCommand(orderID, request.Code, actorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.verifyHandoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/{orderId}/delivery - confirms
// the doorstep handover with the customer OTP.
func (s *Server) ConfirmDelivery(ctx echo.Context, orderId openapi_types.UUID, params servers.ConfirmDeliveryParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.DeliveryConfirmation
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyDeliveryHandoverCommand(
		orderID,
		request.Otp,
		derefBool(request.PaymentCollected),
		deref(request.ImagePath),
		actorRole,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.verifyDeliveryHandoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDeliveryFailed handles POST /api/v1/orders/{orderId}/delivery-failure -
// records a failed delivery attempt.
func (s *Server) MarkDeliveryFailed(ctx echo.Context, orderId openapi_types.UUID, params servers.MarkDeliveryFailedParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.DeliveryFailure
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkDeliveryFailedCommand(orderID, request.Reason, actorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.markDeliveryFailedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels the
// order, restocking any committed goods.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	// The cancel body is optional; an empty read leaves the note blank.
	var request servers.CancelRequest
	_ = ctx.Bind(&request)

	cmd, err := commands.NewCancelOrderCommand(orderID, deref(request.Note))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status - performs
// one of the free status transitions.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.StatusUpdate
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, deref(request.Note))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestReturn handles POST /api/v1/orders/{orderId}/return - opens a
// return request on a delivered order.
func (s *Server) RequestReturn(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.ReturnRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	returnType, err := order.ParseReturnType(request.Type)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRequestReturnCommand(orderID, returnType, request.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.requestReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateReturnStatus handles PUT /api/v1/orders/{orderId}/return - approves
// or rejects a pending return request.
func (s *Server) UpdateReturnStatus(ctx echo.Context, orderId openapi_types.UUID, params servers.UpdateReturnStatusParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.ReturnDecision
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	decision, err := order.ParseReturnStatus(request.Decision)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateReturnStatusCommand(orderID, decision, deref(request.Note), actorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateReturnStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyReturnCollection handles POST /api/v1/orders/{orderId}/return/collection -
// confirms pickup of returned goods with the return OTP.
func (s *Server) VerifyReturnCollection(ctx echo.Context, orderId openapi_types.UUID, params servers.VerifyReturnCollectionParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.ReturnCollection
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyReturnCollectionCommand(orderID, request.Otp, deref(request.ImagePath), actorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.verifyReturnCollectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyReturnToWarehouse handles POST /api/v1/orders/{orderId}/return/receipt -
// receives returned goods back into the warehouse.
func (s *Server) VerifyReturnToWarehouse(ctx echo.Context, orderId openapi_types.UUID, params servers.VerifyReturnToWarehouseParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.ReturnReceipt
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyReturnToWarehouseCommand(orderID, request.Code, actorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.verifyReturnToWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateRefundStatus handles PUT /api/v1/orders/{orderId}/refund - attests
// that the refund was paid out.
func (s *Server) UpdateRefundStatus(ctx echo.Context, orderId openapi_types.UUID, params servers.UpdateRefundStatusParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.RefundRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	refundMethod, err := order.ParsePaymentMethod(request.Method)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateRefundStatusCommand(orderID, refundMethod, actorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateRefundStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products - creates a catalog product.
func (s *Server) CreateProduct(ctx echo.Context, params servers.CreateProductParams) error {
	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var newProduct servers.NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	returnPolicy := product.NoReturnAllowed
	if newProduct.ReturnPolicy != nil {
		returnPolicy, err = product.ParseReturnPolicy(*newProduct.ReturnPolicy)
		if err != nil {
			return errorResponse(ctx, err)
		}
	}

	cmd, err := commands.NewCreateProductCommand(
		newProduct.Name,
		newProduct.Price,
		newProduct.Quantity,
		returnPolicy,
		actorRole,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	productID, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: productID.Bytes()})
}

// RestockProduct handles POST /api/v1/products/{productId}/restock - adds
// goods to the shelf.
func (s *Server) RestockProduct(ctx echo.Context, productId openapi_types.UUID, params servers.RestockProductParams) error {
	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.RestockRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRestockProductCommand(productID, request.Quantity, actorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.restockProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateProductStock handles PUT /api/v1/products/{productId}/stock -
// overrides the on-hand quantity.
func (s *Server) UpdateProductStock(ctx echo.Context, productId openapi_types.UUID, params servers.UpdateProductStockParams) error {
	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorRole, err := staff.ParseRole(params.XStaffRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.StockOverride
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductStockCommand(productID, request.Quantity, actorRole)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateProductStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetInventoryLog handles GET /api/v1/products/{productId}/inventory-log -
// retrieves the product's stock ledger.
func (s *Server) GetInventoryLog(ctx echo.Context, productId openapi_types.UUID) error {
	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetInventoryLogQuery(productID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	results, err := s.getInventoryLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.InventoryLogEntry, len(results))
	for i, entry := range results {
		response[i] = servers.InventoryLogEntry{
			Id:          entry.ID.Bytes(),
			ProductId:   entry.ProductID.Bytes(),
			ProductName: entry.ProductName,
			OldQuantity: entry.OldQuantity,
			NewQuantity: entry.NewQuantity,
			Change:      entry.Change,
			ChangeType:  entry.ChangeType,
			OccurredAt:  entry.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// errorResponse maps domain errors onto HTTP status codes: unknown objects
// are 404, illegal lifecycle moves are 409, failed code checks and unmet
// preconditions are 422, and validation failures are 400.
func errorResponse(ctx echo.Context, err error) error {
	var (
		notFound     *errs.ObjectNotFoundError
		transition   *errs.InvalidTransitionError
		codeMismatch *errs.CodeMismatchError
		precondition *errs.PreconditionUnmetError
		invalid      *errs.ValueIsInvalidError
		required     *errs.ValueIsRequiredError
		outOfRange   *errs.ValueIsOutOfRangeError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &transition):
		status = http.StatusConflict
	case errors.As(err, &codeMismatch), errors.As(err, &precondition):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &invalid), errors.As(err, &required), errors.As(err, &outOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
