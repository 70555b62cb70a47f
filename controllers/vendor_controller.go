package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/services"
)

type VendorController struct {
	service services.VendorService
}

func NewVendorController(s services.VendorService) *VendorController {
	return &VendorController{service: s}
}

func (ctrl *VendorController) CreateVendor(c *gin.Context) {
	var req models.VendorCreate
	if !bindJSON(c, &req) {
		return
	}

	vendor, svcErr := ctrl.service.CreateVendor(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (ctrl *VendorController) GetVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	vendor, svcErr := ctrl.service.GetVendor(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (ctrl *VendorController) ListVendors(c *gin.Context) {
	filter, ok := parseFilter(c, "user_id")
	if !ok {
		return
	}
	vendors, svcErr := ctrl.service.ListVendors(c.Request.Context(), filter)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondList(c, "vendors", vendors)
}

func (ctrl *VendorController) UpdateVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.VendorUpdate
	if !bindJSON(c, &req) {
		return
	}

	vendor, svcErr := ctrl.service.UpdateVendor(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (ctrl *VendorController) DeleteVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if svcErr := ctrl.service.DeleteVendor(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
}

// ListProducts returns the products the vendor supplies.
func (ctrl *VendorController) ListProducts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	products, svcErr := ctrl.service.ListProducts(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	respondList(c, "products", products)
}
