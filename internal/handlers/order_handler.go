package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skydraw_backend/internal/middleware"
	"skydraw_backend/internal/services"
	"skydraw_backend/internal/services/dto"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/order")
	order.Use(middleware.AuthMiddleware())
	{
		order.POST("/create", h.Create)
		order.GET("/my-orders", h.MyOrders)
		order.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.orderService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListByCustomer(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateStatus lets either party of the order move it; orders the caller
// is no party to come back as 404.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	orderID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.orderService.UpdateStatus(orderID, req.Status, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}
