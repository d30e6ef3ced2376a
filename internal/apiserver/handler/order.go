package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/farmchainx/farmchainx/internal/apiserver/database"
	"github.com/farmchainx/farmchainx/internal/apiserver/middleware"
	"github.com/farmchainx/farmchainx/internal/common/cnst"
	"github.com/farmchainx/farmchainx/internal/common/dto"
	"github.com/farmchainx/farmchainx/internal/i18n"
	"github.com/farmchainx/farmchainx/pkg/trace"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var errDistributorNotFound = errors.New("distributor not found")

func validateOrderRequest(req *dto.CreateOrderRequest) *i18n.ErrorWithCode {
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.CustomerPhone) == "" ||
		strings.TrimSpace(req.ShippingAddress) == "" ||
		strings.TrimSpace(req.PaymentMethod) == "" {
		return i18n.ErrorOrderRequiredFields
	}
	if req.DistributorID == 0 {
		return i18n.ErrorDistributorNotFound
	}
	if len(req.Items) == 0 {
		return i18n.ErrorOrderItemsRequired
	}
	for i, it := range req.Items {
		if strings.TrimSpace(it.ProductName) == "" || it.Quantity <= 0 || it.UnitPrice < 0 {
			return i18n.ErrorInvalidOrderItem.WithParam("Index", i+1)
		}
	}
	return nil
}

// CreateOrder places an order for the caller with a distributor
func (h *Handler) CreateOrder(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}
	if verr := validateOrderRequest(&req); verr != nil {
		i18n.RespondWithError(c, verr)
		return
	}

	scope := trace.Tracer(cnst.TraceAPIServer).Start(c.Request.Context(), cnst.SpanOrderCreate)
	defer scope.End()
	ctx := scope.Ctx

	order := &database.Order{
		ConsumerID:      user.ID,
		DistributorID:   req.DistributorID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
		PaymentMethod:   strings.TrimSpace(req.PaymentMethod),
		Items:           make([]database.OrderItem, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		order.Items = append(order.Items, database.OrderItem{
			ProductID:   it.ProductID,
			ProductName: strings.TrimSpace(it.ProductName),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	err := h.db.Transaction(ctx, func(ctx context.Context) error {
		distributor, err := h.db.GetUserByID(ctx, req.DistributorID)
		if errors.Is(err, database.ErrNotFound) {
			return errDistributorNotFound
		}
		if err != nil {
			return err
		}
		if distributor.Role != database.RoleDistributor {
			return errDistributorNotFound
		}
		return h.db.CreateOrder(ctx, order)
	})
	if errors.Is(err, errDistributorNotFound) {
		i18n.RespondWithError(c, i18n.ErrorDistributorNotFound)
		return
	}
	if err != nil {
		scope.Fail(err)
		h.storeError(c, err, nil, "failed to create order")
		return
	}

	scope.WithAttrs(
		attribute.String(cnst.AttrOrderNumber, order.OrderNumber),
		attribute.Int(cnst.AttrOrderItems, len(order.Items)),
		attribute.Int64(cnst.AttrUserID, int64(user.ID)),
	)
	h.metrics.OrderCreated(order.TotalAmount)
	h.logger.Info("order created",
		zap.String("order_number", order.OrderNumber),
		zap.Uint("consumer_id", user.ID),
		zap.Uint("distributor_id", order.DistributorID),
		zap.Float64("total", order.TotalAmount))

	created, err := h.db.GetOrder(ctx, order.ID)
	if err != nil {
		h.storeError(c, err, i18n.ErrorOrderNotFound, "failed to reload order")
		return
	}

	i18n.Created(i18n.SuccessOrderCreated).
		With("order", toOrderInfo(created)).
		Send(c)
}

// MyOrders lists orders placed by the caller
func (h *Handler) MyOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}
	orders, err := h.db.ListOrdersByConsumer(c.Request.Context(), user.ID)
	if err != nil {
		h.storeError(c, err, nil, "failed to list consumer orders")
		return
	}
	c.JSON(http.StatusOK, toOrderInfos(orders))
}

// DistributorOrders lists orders addressed to the caller
func (h *Handler) DistributorOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}
	orders, err := h.db.ListOrdersByDistributor(c.Request.Context(), user.ID)
	if err != nil {
		h.storeError(c, err, nil, "failed to list distributor orders")
		return
	}
	c.JSON(http.StatusOK, toOrderInfos(orders))
}

// loadOrder fetches the order named by the path and checks that allowed
// accepts the caller. Other users get 404 so order ids do not leak.
func (h *Handler) loadOrder(c *gin.Context, allowed func(u *database.User, o *database.Order) bool) (*database.Order, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return nil, false
	}
	id, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}
	order, err := h.db.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, i18n.ErrorOrderNotFound, "failed to get order")
		return nil, false
	}
	if user.Role != database.RoleAdmin && !allowed(user, order) {
		i18n.RespondWithError(c, i18n.ErrorOrderNotFound)
		return nil, false
	}
	return order, true
}

func isOrderParty(u *database.User, o *database.Order) bool {
	return o.ConsumerID == u.ID || o.DistributorID == u.ID
}

func isOrderDistributor(u *database.User, o *database.Order) bool {
	return o.DistributorID == u.ID
}

func isOrderConsumer(u *database.User, o *database.Order) bool {
	return o.ConsumerID == u.ID
}

// GetOrder returns an order to one of its parties or an admin
func (h *Handler) GetOrder(c *gin.Context) {
	order, ok := h.loadOrder(c, isOrderParty)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toOrderInfo(order))
}

// UpdateOrderStatus moves an order to a new status. DELIVERED stamps the
// delivery date; any other status clears it.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	order, ok := h.loadOrder(c, isOrderDistributor)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}
	status := database.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		i18n.RespondWithError(c, i18n.ErrorInvalidOrderStatus.WithParam("Status", req.Status))
		return
	}

	ctx := c.Request.Context()
	if status == database.OrderDelivered {
		now := h.now().UTC()
		order.DeliveryDate = &now
	} else {
		order.DeliveryDate = nil
	}
	if err := h.db.UpdateOrderStatus(ctx, order.ID, status, order.DeliveryDate); err != nil {
		h.storeError(c, err, i18n.ErrorOrderNotFound, "failed to update order status")
		return
	}
	order.Status = status

	i18n.Success(i18n.SuccessOrderStatusUpdated).
		With("orderStatus", string(status)).
		With("order", toOrderInfo(order)).
		Send(c)
}

// DeleteOrder removes an order placed by the caller
func (h *Handler) DeleteOrder(c *gin.Context) {
	order, ok := h.loadOrder(c, isOrderConsumer)
	if !ok {
		return
	}
	if err := h.db.DeleteOrder(c.Request.Context(), order.ID); err != nil {
		h.storeError(c, err, i18n.ErrorOrderNotFound, "failed to delete order")
		return
	}
	i18n.Success(i18n.SuccessOrderDeleted).Send(c)
}
