package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/services"
)

type OrderController struct {
	service services.OrderService
}

func NewOrderController(s services.OrderService) *OrderController {
	return &OrderController{service: s}
}

func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.OrderCreate
	if !bindJSON(c, &req) {
		return
	}

	order, svcErr := ctrl.service.CreateOrder(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, svcErr := ctrl.service.GetOrder(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (ctrl *OrderController) ListOrders(c *gin.Context) {
	filter, ok := parseFilter(c, "customer_id", "employee_id", "user_id")
	if !ok {
		return
	}
	orders, svcErr := ctrl.service.ListOrders(c.Request.Context(), filter)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondList(c, "orders", orders)
}

func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.OrderUpdate
	if !bindJSON(c, &req) {
		return
	}

	order, svcErr := ctrl.service.UpdateOrder(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if svcErr := ctrl.service.DeleteOrder(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
