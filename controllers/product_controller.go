package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/services"
)

type ProductController struct {
	service services.ProductService
}

func NewProductController(s services.ProductService) *ProductController {
	return &ProductController{service: s}
}

func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.ProductCreate
	if !bindJSON(c, &req) {
		return
	}

	product, svcErr := ctrl.service.CreateProduct(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, svcErr := ctrl.service.GetProduct(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ctrl *ProductController) ListProducts(c *gin.Context) {
	filter, ok := parseFilter(c, "category_id", "user_id")
	if !ok {
		return
	}
	products, svcErr := ctrl.service.ListProducts(c.Request.Context(), filter)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondList(c, "products", products)
}

func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.ProductUpdate
	if !bindJSON(c, &req) {
		return
	}

	product, svcErr := ctrl.service.UpdateProduct(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if svcErr := ctrl.service.DeleteProduct(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// ListVendors returns the vendors supplying the product.
func (ctrl *ProductController) ListVendors(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	vendors, svcErr := ctrl.service.ListVendors(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondList(c, "vendors", vendors)
}

// AddVendor links a vendor to the product. Repeating the call is harmless.
func (ctrl *ProductController) AddVendor(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	vendorID, ok := parseID(c, "vendor_id")
	if !ok {
		return
	}

	link, svcErr := ctrl.service.AddVendor(c.Request.Context(), productID, vendorID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, link)
}

func (ctrl *ProductController) RemoveVendor(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	vendorID, ok := parseID(c, "vendor_id")
	if !ok {
		return
	}

	if svcErr := ctrl.service.RemoveVendor(c.Request.Context(), productID, vendorID); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor removed from product"})
}
