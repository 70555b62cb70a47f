package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/services"
)

type OrderDetailController struct {
	service services.OrderDetailService
}

func NewOrderDetailController(s services.OrderDetailService) *OrderDetailController {
	return &OrderDetailController{service: s}
}

func (ctrl *OrderDetailController) CreateOrderDetail(c *gin.Context) {
	var req models.OrderDetailCreate
	if !bindJSON(c, &req) {
		return
	}

	detail, svcErr := ctrl.service.CreateOrderDetail(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (ctrl *OrderDetailController) GetOrderDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	detail, svcErr := ctrl.service.GetOrderDetail(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (ctrl *OrderDetailController) ListOrderDetails(c *gin.Context) {
	filter, ok := parseFilter(c, "order_id", "product_id", "user_id")
	if !ok {
		return
	}
	details, svcErr := ctrl.service.ListOrderDetails(c.Request.Context(), filter)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondList(c, "order_details", details)
}

func (ctrl *OrderDetailController) UpdateOrderDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.OrderDetailUpdate
	if !bindJSON(c, &req) {
		return
	}

	detail, svcErr := ctrl.service.UpdateOrderDetail(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (ctrl *OrderDetailController) DeleteOrderDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if svcErr := ctrl.service.DeleteOrderDetail(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order detail deleted successfully"})
}
