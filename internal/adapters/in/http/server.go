package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	userIDHeader    = "X-User-Id"
	userEmailHeader = "X-User-Email"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler        commands.AddCartItemCommandHandler
	updateCartItemHandler     commands.UpdateCartItemCommandHandler
	removeCartItemHandler     commands.RemoveCartItemCommandHandler
	clearCartHandler          commands.ClearCartCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	markOrderPaidHandler      commands.MarkOrderPaidCommandHandler
	markOrderDeliveredHandler commands.MarkOrderDeliveredCommandHandler

	// Query handlers
	getCartHandler       queries.GetCartQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getUserOrdersHandler queries.GetUserOrdersQueryHandler
	getAllOrdersHandler  queries.GetAllOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	updateCartItemHandler commands.UpdateCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	markOrderDeliveredHandler commands.MarkOrderDeliveredCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:        addCartItemHandler,
		updateCartItemHandler:     updateCartItemHandler,
		removeCartItemHandler:     removeCartItemHandler,
		clearCartHandler:          clearCartHandler,
		createOrderHandler:        createOrderHandler,
		markOrderPaidHandler:      markOrderPaidHandler,
		markOrderDeliveredHandler: markOrderDeliveredHandler,
		getCartHandler:            getCartHandler,
		getOrderHandler:           getOrderHandler,
		getUserOrdersHandler:      getUserOrdersHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
	}
}

// currentUserID reads the authenticated user identifier propagated by the
// edge proxy in the X-User-Id header.
func currentUserID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(userIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(userIDHeader)
	}

	return kernel.UUIDFromString(raw)
}

// currentUserEmail reads the authenticated user's email. It may be empty;
// payment confirmation falls back to it only when the provider reported none.
func currentUserEmail(ctx echo.Context) string {
	return ctx.Request().Header.Get(userEmailHeader)
}

// errorResponse maps application errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrCatalogMismatch), errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

// GetCart handles GET /api/v1/cart - returns the current user's cart with
// snapshot and live catalog prices side by side.
func (s *Server) GetCart(ctx echo.Context) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithCart(ctx, userID)
}

// AddCartItem handles POST /api/v1/cart/items - adds a product to the cart
// or bumps the quantity of an existing line.
func (s *Server) AddCartItem(ctx echo.Context) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.AddCartItemJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID, err := kernel.UUIDFromBytes(body.ProductId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(userID, productID, body.Qty)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithCart(ctx, userID)
}

// UpdateCartItem handles PUT /api/v1/cart/items/{productId} - sets the
// absolute quantity of a cart line. A zero quantity removes the line.
func (s *Server) UpdateCartItem(ctx echo.Context, productId openapi_types.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.UpdateCartItemJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateCartItemCommand(userID, productID, body.Qty)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.updateCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithCart(ctx, userID)
}

// DeleteCartItem handles DELETE /api/v1/cart/items/{productId} - removes a
// line from the cart.
func (s *Server) DeleteCartItem(ctx echo.Context, productId openapi_types.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(userID, productID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithCart(ctx, userID)
}

// ClearCart handles DELETE /api/v1/cart - empties the current user's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithCart(ctx, userID)
}

// CreateOrder handles POST /api/v1/orders - checks out the submitted line
// items into a new order priced from the catalog.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.CreateOrderJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductId[:])
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}

		input := commands.OrderItemInput{
			ProductID: productID,
			Name:      item.Name,
			Qty:       item.Qty,
		}
		if item.Image != nil {
			input.Image = *item.Image
		}
		if item.Price != nil {
			input.Price = *item.Price
		}

		items = append(items, input)
	}

	address, err := order.NewAddress(
		body.ShippingAddress.Street,
		body.ShippingAddress.City,
		body.ShippingAddress.PostalCode,
		body.ShippingAddress.Country,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, userID, items, address, body.PaymentMethod)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		Id: orderID.Bytes(),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - returns one order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetMyOrders handles GET /api/v1/orders/mine - returns the current user's
// order history, newest first.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetAllOrders handles GET /api/v1/orders - returns every order, newest
// first, for back office screens.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// PayOrder handles POST /api/v1/orders/{orderId}/pay - records a payment
// confirmation. Missing provider fields fall back to manual defaults.
func (s *Server) PayOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.PayOrderJSONRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil && !errors.Is(bindErr, echo.ErrUnsupportedMediaType) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	details := commands.PaymentDetails{}
	if body.Id != nil {
		details.ID = *body.Id
	}
	if body.Status != nil {
		details.Status = *body.Status
	}
	if body.UpdateTime != nil {
		details.UpdateTime = *body.UpdateTime
	}
	if body.PayerEmail != nil {
		details.PayerEmail = *body.PayerEmail
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, details, currentUserEmail(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver - marks a paid
// order as delivered.
func (s *Server) DeliverOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.markOrderDeliveredHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// toAPIStatus maps a domain lifecycle status onto the wire enum.
func toAPIStatus(status order.Status) servers.OrderStatus {
	switch status {
	case order.Paid:
		return servers.Paid
	case order.Delivered:
		return servers.Delivered
	default:
		return servers.Created
	}
}

func toOrderSummaries(orders []queries.OrderSummaryResponse) []servers.OrderSummary {
	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			Id:          o.ID.Bytes(),
			UserId:      o.UserID.Bytes(),
			TotalPrice:  o.TotalPrice.Float64(),
			Status:      toAPIStatus(o.Status),
			PaidAt:      o.PaidAt,
			DeliveredAt: o.DeliveredAt,
			CreatedAt:   o.CreatedAt,
		}
	}

	return response
}

// respondWithCart renders the enriched cart read model for the user. Cart
// mutations respond with the full cart so clients stay in sync.
func (s *Server) respondWithCart(ctx echo.Context, userID kernel.UUID) error {
	query, err := queries.NewGetCartQuery(userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := servers.Cart{
		UserId: cart.UserID.Bytes(),
		Items:  make([]servers.CartItem, len(cart.Items)),
	}
	for i, item := range cart.Items {
		response.Items[i] = servers.CartItem{
			ProductId:    item.ProductID.Bytes(),
			Name:         item.Name,
			Image:        item.Image,
			PriceAtAdd:   item.PriceAtAdd.Float64(),
			CurrentPrice: item.CurrentPrice.Float64(),
			Qty:          item.Qty,
			CountInStock: item.CountInStock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondWithOrder renders the full order read model.
func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := servers.Order{
		Id:     o.ID.Bytes(),
		UserId: o.UserID.Bytes(),
		Items:  make([]servers.OrderItem, len(o.LineItems)),
		ShippingAddress: servers.Address{
			Street:     o.Street,
			City:       o.City,
			PostalCode: o.PostalCode,
			Country:    o.Country,
		},
		PaymentMethod: o.PaymentMethod,
		ItemsPrice:    o.ItemsPrice.Float64(),
		TaxPrice:      o.TaxPrice.Float64(),
		ShippingPrice: o.ShippingPrice.Float64(),
		TotalPrice:    o.TotalPrice.Float64(),
		Status:        toAPIStatus(o.Status),
		PaidAt:        o.PaidAt,
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
	}
	for i, item := range o.LineItems {
		response.Items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price.Float64(),
			Qty:       item.Qty,
		}
	}
	if o.PaymentID != "" {
		response.PaymentResult = &servers.PaymentResult{
			Id:         o.PaymentID,
			Status:     o.PaymentStatus,
			UpdateTime: o.PaymentUpdateTime,
			PayerEmail: o.PayerEmail,
		}
	}

	return ctx.JSON(code, response)
}
