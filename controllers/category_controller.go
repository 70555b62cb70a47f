package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/services"
)

type CategoryController struct {
	service services.CategoryService
}

func NewCategoryController(s services.CategoryService) *CategoryController {
	return &CategoryController{service: s}
}

func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryCreate
	if !bindJSON(c, &req) {
		return
	}

	category, svcErr := ctrl.service.CreateCategory(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, svcErr := ctrl.service.GetCategory(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	filter, ok := parseFilter(c, "user_id")
	if !ok {
		return
	}
	categories, svcErr := ctrl.service.ListCategories(c.Request.Context(), filter)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondList(c, "categories", categories)
}

func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.CategoryUpdate
	if !bindJSON(c, &req) {
		return
	}

	category, svcErr := ctrl.service.UpdateCategory(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if svcErr := ctrl.service.DeleteCategory(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
