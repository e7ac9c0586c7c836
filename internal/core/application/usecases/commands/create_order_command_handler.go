package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// CreateOrderCommandHandler converts a checkout request into a persisted,
// immutably priced order.
//
// Price integrity: the payload's product ids are fetched from the catalog
// in one call, and the result must correspond 1:1 with the payload lines.
// A count mismatch means a product was deleted, an id mistyped, or the same
// product was split across lines, and fails the whole checkout with
// CatalogMismatch, persisting nothing. Line-item prices come exclusively
// from that fetch; any price embedded in the client payload is ignored.
//
// The confirmation notification is sent only after the order is durably
// committed; its failure is logged and swallowed.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	calculator *services.PriceCalculator
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	calculator *services.PriceCalculator,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		calculator: calculator,
		notifier:   notifier,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the checkout command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	authoritative, err := h.fetchAuthoritativeProducts(ctx, cmd.Items())
	if err != nil {
		return err
	}

	lineItems := make([]*order.LineItem, 0, len(cmd.Items()))
	pricedItems := make([]services.PricedItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		p := authoritative[input.ProductID.Bytes()]

		// Price comes from the catalog fetch, never from input.Price.
		li, liErr := order.NewLineItem(input.ProductID, input.Name, input.Image, p.Price(), input.Qty)
		if liErr != nil {
			return liErr
		}

		lineItems = append(lineItems, li)
		pricedItems = append(pricedItems, services.PricedItem{Qty: input.Qty, Price: p.Price()})
	}

	quote, err := h.calculator.Calculate(pricedItems)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), lineItems, cmd.Address(), cmd.PaymentMethod(),
		quote.Items, quote.Tax, quote.Shipping, quote.Total,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort only, strictly after the commit.
	if notifyErr := h.notifier.SendOrderConfirmation(ctx, newOrder); notifyErr != nil {
		h.logger.WarnContext(ctx, "order confirmation notification failed",
			"order_id", newOrder.ID().String(), "error", notifyErr)
	}

	return nil
}

// fetchAuthoritativeProducts resolves the payload's product ids against the
// catalog, indexed by raw uuid for line rebuilding. The catalog must return
// exactly one product per payload line; a shortfall covers both unknown ids
// and the same id split across lines, since an order stores one line per
// product.
func (h *CreateOrderCommandHandler) fetchAuthoritativeProducts(
	ctx context.Context,
	items []OrderItemInput,
) (map[uuid.UUID]*product.Product, error) {
	ids := make([]kernel.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		key := item.ProductID.Bytes()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := h.catalog.FindMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(products) != len(items) {
		return nil, errs.NewCatalogMismatchError(len(items), len(products))
	}

	byID := make(map[uuid.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID().Bytes()] = p
	}
	return byID, nil
}
