package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/services"
)

type EmployeeController struct {
	service services.EmployeeService
}

func NewEmployeeController(s services.EmployeeService) *EmployeeController {
	return &EmployeeController{service: s}
}

func (ctrl *EmployeeController) CreateEmployee(c *gin.Context) {
	var req models.EmployeeCreate
	if !bindJSON(c, &req) {
		return
	}

	employee, svcErr := ctrl.service.CreateEmployee(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (ctrl *EmployeeController) GetEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	employee, svcErr := ctrl.service.GetEmployee(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ctrl *EmployeeController) ListEmployees(c *gin.Context) {
	filter, ok := parseFilter(c, "user_id")
	if !ok {
		return
	}
	employees, svcErr := ctrl.service.ListEmployees(c.Request.Context(), filter)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondList(c, "employees", employees)
}

func (ctrl *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.EmployeeUpdate
	if !bindJSON(c, &req) {
		return
	}

	employee, svcErr := ctrl.service.UpdateEmployee(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ctrl *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if svcErr := ctrl.service.DeleteEmployee(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
