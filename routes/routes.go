package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/controllers"
)

// Controllers bundles the handlers registered by RegisterRoutes.
type Controllers struct {
	Users        *controllers.UserController
	Customers    *controllers.CustomerController
	Employees    *controllers.EmployeeController
	Vendors      *controllers.VendorController
	Categories   *controllers.CategoryController
	Products     *controllers.ProductController
	Orders       *controllers.OrderController
	OrderDetails *controllers.OrderDetailController
}

// crud holds the five handlers of one resource.
type crud struct {
	create, list, get, update, remove gin.HandlerFunc
}

func register(r gin.IRouter, path string, h crud) *gin.RouterGroup {
	g := r.Group(path)
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.remove)
	return g
}

func RegisterRoutes(r *gin.Engine, c Controllers) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK", "service": "store-service"})
	})

	register(r, "/users", crud{c.Users.CreateUser, c.Users.ListUsers, c.Users.GetUser, c.Users.UpdateUser, c.Users.DeleteUser})
	register(r, "/customers", crud{c.Customers.CreateCustomer, c.Customers.ListCustomers, c.Customers.GetCustomer, c.Customers.UpdateCustomer, c.Customers.DeleteCustomer})
	register(r, "/employees", crud{c.Employees.CreateEmployee, c.Employees.ListEmployees, c.Employees.GetEmployee, c.Employees.UpdateEmployee, c.Employees.DeleteEmployee})
	register(r, "/categories", crud{c.Categories.CreateCategory, c.Categories.ListCategories, c.Categories.GetCategory, c.Categories.UpdateCategory, c.Categories.DeleteCategory})
	register(r, "/orders", crud{c.Orders.CreateOrder, c.Orders.ListOrders, c.Orders.GetOrder, c.Orders.UpdateOrder, c.Orders.DeleteOrder})
	register(r, "/order-details", crud{c.OrderDetails.CreateOrderDetail, c.OrderDetails.ListOrderDetails, c.OrderDetails.GetOrderDetail, c.OrderDetails.UpdateOrderDetail, c.OrderDetails.DeleteOrderDetail})

	vendors := register(r, "/vendors", crud{c.Vendors.CreateVendor, c.Vendors.ListVendors, c.Vendors.GetVendor, c.Vendors.UpdateVendor, c.Vendors.DeleteVendor})
	vendors.GET("/:id/products", c.Vendors.ListProducts)

	products := register(r, "/products", crud{c.Products.CreateProduct, c.Products.ListProducts, c.Products.GetProduct, c.Products.UpdateProduct, c.Products.DeleteProduct})
	products.GET("/:id/vendors", c.Products.ListVendors)
	products.PUT("/:id/vendors/:vendor_id", c.Products.AddVendor)
	products.DELETE("/:id/vendors/:vendor_id", c.Products.RemoveVendor)
}
