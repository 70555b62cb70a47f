package controllers

import (
	"context"

	"github.com/ramses2099/storeapiv2/models"
	"github.com/ramses2099/storeapiv2/repository"
	"github.com/ramses2099/storeapiv2/services"
)

type fakeProductService struct {
	createFn       func(ctx context.Context, req *models.ProductCreate) (*models.Product, *services.ServiceError)
	getFn          func(ctx context.Context, id uint) (*models.Product, *services.ServiceError)
	listFn         func(ctx context.Context, filter repository.Filter) ([]models.Product, *services.ServiceError)
	updateFn       func(ctx context.Context, id uint, req *models.ProductUpdate) (*models.Product, *services.ServiceError)
	deleteFn       func(ctx context.Context, id uint) *services.ServiceError
	addVendorFn    func(ctx context.Context, productID, vendorID uint) (*models.ProductVendor, *services.ServiceError)
	removeVendorFn func(ctx context.Context, productID, vendorID uint) *services.ServiceError
	listVendorsFn  func(ctx context.Context, productID uint) ([]models.Vendor, *services.ServiceError)
	calls          int
}

func (f *fakeProductService) CreateProduct(ctx context.Context, req *models.ProductCreate) (*models.Product, *services.ServiceError) {
	f.calls++
	return f.createFn(ctx, req)
}

func (f *fakeProductService) GetProduct(ctx context.Context, id uint) (*models.Product, *services.ServiceError) {
	f.calls++
	return f.getFn(ctx, id)
}

func (f *fakeProductService) ListProducts(ctx context.Context, filter repository.Filter) ([]models.Product, *services.ServiceError) {
	f.calls++
	return f.listFn(ctx, filter)
}

func (f *fakeProductService) UpdateProduct(ctx context.Context, id uint, req *models.ProductUpdate) (*models.Product, *services.ServiceError) {
	f.calls++
	return f.updateFn(ctx, id, req)
}

func (f *fakeProductService) DeleteProduct(ctx context.Context, id uint) *services.ServiceError {
	f.calls++
	return f.deleteFn(ctx, id)
}

func (f *fakeProductService) AddVendor(ctx context.Context, productID, vendorID uint) (*models.ProductVendor, *services.ServiceError) {
	f.calls++
	return f.addVendorFn(ctx, productID, vendorID)
}

func (f *fakeProductService) RemoveVendor(ctx context.Context, productID, vendorID uint) *services.ServiceError {
	f.calls++
	return f.removeVendorFn(ctx, productID, vendorID)
}

func (f *fakeProductService) ListVendors(ctx context.Context, productID uint) ([]models.Vendor, *services.ServiceError) {
	f.calls++
	return f.listVendorsFn(ctx, productID)
}

type fakeUserService struct {
	createFn func(ctx context.Context, req *models.UserCreate) (*models.User, *services.ServiceError)
	listFn   func(ctx context.Context, filter repository.Filter) ([]models.User, *services.ServiceError)
}

func (f *fakeUserService) CreateUser(ctx context.Context, req *models.UserCreate) (*models.User, *services.ServiceError) {
	return f.createFn(ctx, req)
}

func (f *fakeUserService) GetUser(ctx context.Context, id uint) (*models.User, *services.ServiceError) {
	return nil, &services.ServiceError{StatusCode: 404, Message: "user not found", Kind: services.ErrNotFound}
}

func (f *fakeUserService) ListUsers(ctx context.Context, filter repository.Filter) ([]models.User, *services.ServiceError) {
	return f.listFn(ctx, filter)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, id uint, req *models.UserUpdate) (*models.User, *services.ServiceError) {
	return nil, nil
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id uint) *services.ServiceError {
	return nil
}

type fakeOrderService struct {
	createFn func(ctx context.Context, req *models.OrderCreate) (*models.Order, *services.ServiceError)
	deleteFn func(ctx context.Context, id uint) *services.ServiceError
}

func (f *fakeOrderService) CreateOrder(ctx context.Context, req *models.OrderCreate) (*models.Order, *services.ServiceError) {
	return f.createFn(ctx, req)
}

func (f *fakeOrderService) GetOrder(ctx context.Context, id uint) (*models.Order, *services.ServiceError) {
	return nil, nil
}

func (f *fakeOrderService) ListOrders(ctx context.Context, filter repository.Filter) ([]models.Order, *services.ServiceError) {
	return nil, nil
}

func (f *fakeOrderService) UpdateOrder(ctx context.Context, id uint, req *models.OrderUpdate) (*models.Order, *services.ServiceError) {
	return nil, nil
}

func (f *fakeOrderService) DeleteOrder(ctx context.Context, id uint) *services.ServiceError {
	return f.deleteFn(ctx, id)
}
