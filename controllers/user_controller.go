package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/repository"
	"github.com/ramses2099/storeapiv2/services"
)

type UserController struct {
	service services.UserService
}

func NewUserController(s services.UserService) *UserController {
	return &UserController{service: s}
}

func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req models.UserCreate
	if !bindJSON(c, &req) {
		return
	}

	user, svcErr := ctrl.service.CreateUser(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (ctrl *UserController) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, svcErr := ctrl.service.GetUser(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctrl *UserController) ListUsers(c *gin.Context) {
	filter := repository.Filter{}
	for key := range c.Request.URL.Query() {
		if key != "username" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("unsupported filter %q", key)})
			return
		}
	}
	if username := c.Query("username"); username != "" {
		filter["username"] = username
	}
	users, svcErr := ctrl.service.ListUsers(c.Request.Context(), filter)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondList(c, "users", users)
}

func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.UserUpdate
	if !bindJSON(c, &req) {
		return
	}

	user, svcErr := ctrl.service.UpdateUser(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if svcErr := ctrl.service.DeleteUser(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
