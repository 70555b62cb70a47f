package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/repository"
	"github.com/ramses2099/storeapiv2/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRouter(svc services.ProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewProductController(svc)
	r := gin.New()
	r.POST("/products", ctrl.CreateProduct)
	r.GET("/products", ctrl.ListProducts)
	r.GET("/products/:id", ctrl.GetProduct)
	r.PATCH("/products/:id", ctrl.UpdateProduct)
	r.DELETE("/products/:id", ctrl.DeleteProduct)
	r.GET("/products/:id/vendors", ctrl.ListVendors)
	r.PUT("/products/:id/vendors/:vendor_id", ctrl.AddVendor)
	r.DELETE("/products/:id/vendors/:vendor_id", ctrl.RemoveVendor)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateProduct_Created(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &fakeProductService{
		createFn: func(ctx context.Context, req *models.ProductCreate) (*models.Product, *services.ServiceError) {
			return &models.Product{
				ID:             1,
				Name:           req.Name,
				PricePerUnit:   *req.PricePerUnit,
				QuantityOnHand: *req.QuantityOnHand,
				CategoryID:     req.CategoryID,
				UserID:         req.UserID,
				Audit:          models.Audit{Created: &created},
			}, nil
		},
	}

	w := doRequest(newProductRouter(svc), http.MethodPost, "/products",
		`{"name":"Widget","description":"A widget","priceperunit":9.99,"quantityonhand":100,"category_id":1,"user_id":1}`)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["product_id"])
	assert.Equal(t, "Widget", body["name"])
	assert.Equal(t, 9.99, body["priceperunit"])
	assert.Equal(t, "2024-03-01T12:00:00Z", body["created"])
	assert.Nil(t, body["updated"])
}

func TestCreateProduct_MalformedJSON(t *testing.T) {
	svc := &fakeProductService{}

	w := doRequest(newProductRouter(svc), http.MethodPost, "/products", `{"name":`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestCreateProduct_WrongFieldType(t *testing.T) {
	svc := &fakeProductService{}

	w := doRequest(newProductRouter(svc), http.MethodPost, "/products", `{"name":"Widget","priceperunit":"cheap"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestCreateProduct_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		svcErr *services.ServiceError
	}{
		{"validation", &services.ServiceError{StatusCode: 422, Message: "category_id 9 does not exist", Kind: services.ErrValidation}},
		{"conflict", &services.ServiceError{StatusCode: 409, Message: "product conflicts with an existing record", Kind: services.ErrConflict}},
		{"internal", &services.ServiceError{StatusCode: 500, Message: "failed to process product", Kind: services.ErrInternal}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeProductService{
				createFn: func(ctx context.Context, req *models.ProductCreate) (*models.Product, *services.ServiceError) {
					return nil, tt.svcErr
				},
			}

			w := doRequest(newProductRouter(svc), http.MethodPost, "/products", `{"name":"Widget"}`)

			assert.Equal(t, tt.svcErr.StatusCode, w.Code)
			assert.Equal(t, tt.svcErr.Message, decode(t, w)["error"])
		})
	}
}

func TestGetProduct_InvalidID(t *testing.T) {
	svc := &fakeProductService{}
	r := newProductRouter(svc)

	for _, path := range []string{"/products/abc", "/products/0", "/products/-4"} {
		w := doRequest(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, path)
	}
	assert.Equal(t, 0, svc.calls)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := &fakeProductService{
		getFn: func(ctx context.Context, id uint) (*models.Product, *services.ServiceError) {
			assert.Equal(t, uint(42), id)
			return nil, &services.ServiceError{StatusCode: http.StatusNotFound, Message: "product not found", Kind: services.ErrNotFound}
		},
	}

	w := doRequest(newProductRouter(svc), http.MethodGet, "/products/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "product not found", decode(t, w)["error"])
}

func TestListProducts_Filter(t *testing.T) {
	var got repository.Filter
	svc := &fakeProductService{
		listFn: func(ctx context.Context, filter repository.Filter) ([]models.Product, *services.ServiceError) {
			got = filter
			return []models.Product{{ID: 1, Name: "Hammer"}, {ID: 2, Name: "Saw"}}, nil
		},
	}

	w := doRequest(newProductRouter(svc), http.MethodGet, "/products?category_id=3", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, repository.Filter{"category_id": uint(3)}, got)
	body := decode(t, w)
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["products"], 2)
}

func TestListProducts_BadFilters(t *testing.T) {
	svc := &fakeProductService{}
	r := newProductRouter(svc)

	assert.Equal(t, http.StatusUnprocessableEntity, doRequest(r, http.MethodGet, "/products?category_id=tools", "").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, doRequest(r, http.MethodGet, "/products?colour=red", "").Code)
	assert.Equal(t, 0, svc.calls)
}

func TestUpdateProduct_PartialBody(t *testing.T) {
	svc := &fakeProductService{
		updateFn: func(ctx context.Context, id uint, req *models.ProductUpdate) (*models.Product, *services.ServiceError) {
			require.NotNil(t, req.QuantityOnHand)
			assert.Equal(t, 90, *req.QuantityOnHand)
			assert.Nil(t, req.Name)
			return &models.Product{ID: id, Name: "Widget", QuantityOnHand: *req.QuantityOnHand}, nil
		},
	}

	w := doRequest(newProductRouter(svc), http.MethodPatch, "/products/5", `{"quantityonhand":90}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(90), decode(t, w)["quantityonhand"])
}

func TestDeleteProduct(t *testing.T) {
	svc := &fakeProductService{
		deleteFn: func(ctx context.Context, id uint) *services.ServiceError { return nil },
	}

	w := doRequest(newProductRouter(svc), http.MethodDelete, "/products/5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product deleted successfully", decode(t, w)["message"])
}

func TestProductVendorRoutes(t *testing.T) {
	svc := &fakeProductService{
		addVendorFn: func(ctx context.Context, productID, vendorID uint) (*models.ProductVendor, *services.ServiceError) {
			return &models.ProductVendor{ProductID: productID, VendorID: vendorID}, nil
		},
		listVendorsFn: func(ctx context.Context, productID uint) ([]models.Vendor, *services.ServiceError) {
			return []models.Vendor{{ID: 2}}, nil
		},
		removeVendorFn: func(ctx context.Context, productID, vendorID uint) *services.ServiceError {
			return &services.ServiceError{StatusCode: http.StatusNotFound, Message: "vendor 2 is not linked to product 1", Kind: services.ErrNotFound}
		},
	}
	r := newProductRouter(svc)

	w := doRequest(r, http.MethodPut, "/products/1/vendors/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["product_id"])
	assert.Equal(t, float64(2), body["vendor_id"])

	w = doRequest(r, http.MethodGet, "/products/1/vendors", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = doRequest(r, http.MethodDelete, "/products/1/vendors/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodPut, "/products/1/vendors/x", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
