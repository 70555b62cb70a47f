package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/services"
)

type CustomerController struct {
	service services.CustomerService
}

func NewCustomerController(s services.CustomerService) *CustomerController {
	return &CustomerController{service: s}
}

func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var req models.CustomerCreate
	if !bindJSON(c, &req) {
		return
	}

	customer, svcErr := ctrl.service.CreateCustomer(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	customer, svcErr := ctrl.service.GetCustomer(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ctrl *CustomerController) ListCustomers(c *gin.Context) {
	filter, ok := parseFilter(c, "user_id")
	if !ok {
		return
	}
	customers, svcErr := ctrl.service.ListCustomers(c.Request.Context(), filter)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondList(c, "customers", customers)
}

func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.CustomerUpdate
	if !bindJSON(c, &req) {
		return
	}

	customer, svcErr := ctrl.service.UpdateCustomer(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if svcErr := ctrl.service.DeleteCustomer(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
