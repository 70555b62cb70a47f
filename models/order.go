package models

import "time"

type Order struct {
	ID           uint          `gorm:"primaryKey" json:"order_id"`
	OrderDate    time.Time     `gorm:"column:orderdate;not null" json:"orderdate"`
	ShipDate     time.Time     `gorm:"column:shipdate;not null" json:"shipdate"`
	OrderTotal   float64       `gorm:"column:ordertotal;not null;check:ordertotal >= 0" json:"ordertotal"`
	CustomerID   uint          `gorm:"not null;index" json:"customer_id"`
	EmployeeID   uint          `gorm:"not null;index" json:"employee_id"`
	UserID       uint          `gorm:"not null;index" json:"user_id"`
	Customer     *Customer     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Employee     *Employee     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	User         *User         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"ordersdetails,omitempty"`
	Audit
}

func (Order) TableName() string { return "orders" }

// OrderCreate is the payload for creating an order, optionally together with
// its lines.
type OrderCreate struct {
	OrderDate    time.Time         `json:"orderdate" validate:"required"`
	ShipDate     time.Time         `json:"shipdate" validate:"required,gtefield=OrderDate"`
	OrderTotal   *float64          `json:"ordertotal" validate:"required,gte=0"`
	CustomerID   uint              `json:"customer_id" validate:"required"`
	EmployeeID   uint              `json:"employee_id" validate:"required"`
	UserID       uint              `json:"user_id" validate:"required"`
	OrderDetails []OrderLineCreate `json:"ordersdetails" validate:"omitempty,dive"`
}

// OrderLineCreate is one line of an OrderCreate. The order and user ids come
// from the enclosing order.
type OrderLineCreate struct {
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	ProductID uint     `json:"product_id" validate:"required"`
}

type OrderUpdate struct {
	OrderDate  *time.Time `json:"orderdate" validate:"omitnil"`
	ShipDate   *time.Time `json:"shipdate" validate:"omitnil"`
	OrderTotal *float64   `json:"ordertotal" validate:"omitnil,gte=0"`
	CustomerID *uint      `json:"customer_id" validate:"omitnil,gt=0"`
	EmployeeID *uint      `json:"employee_id" validate:"omitnil,gt=0"`
	UserID     *uint      `json:"user_id" validate:"omitnil,gt=0"`
}

func (o *Order) Apply(req *OrderUpdate) {
	setIf(&o.OrderDate, req.OrderDate)
	setIf(&o.ShipDate, req.ShipDate)
	setIf(&o.OrderTotal, req.OrderTotal)
	setIf(&o.CustomerID, req.CustomerID)
	setIf(&o.EmployeeID, req.EmployeeID)
	setIf(&o.UserID, req.UserID)
}
