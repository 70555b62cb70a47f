package models

import "gorm.io/gorm"

type OrderDetail struct {
	ID          uint     `gorm:"primaryKey" json:"order_detail_id"`
	OrderID     uint     `gorm:"not null;index" json:"order_id"`
	Price       float64  `gorm:"not null;check:price >= 0" json:"price"`
	Quantity    int      `gorm:"not null;check:quantity > 0" json:"quantity"`
	ProductID   uint     `gorm:"not null;index" json:"product_id"`
	ProductName string   `gorm:"-" json:"product_name"`
	UserID      uint     `gorm:"not null;index" json:"user_id"`
	Product     *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	User        *User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Audit
}

func (OrderDetail) TableName() string { return "order_details" }

// AfterFind fills ProductName from the preloaded product.
func (d *OrderDetail) AfterFind(tx *gorm.DB) error {
	if d.Product != nil {
		d.ProductName = d.Product.Name
	}
	return nil
}

type OrderDetailCreate struct {
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	OrderID   uint     `json:"order_id" validate:"required"`
	ProductID uint     `json:"product_id" validate:"required"`
	UserID    uint     `json:"user_id" validate:"required"`
}

type OrderDetailUpdate struct {
	Price     *float64 `json:"price" validate:"omitnil,gte=0"`
	Quantity  *int     `json:"quantity" validate:"omitnil,gt=0"`
	OrderID   *uint    `json:"order_id" validate:"omitnil,gt=0"`
	ProductID *uint    `json:"product_id" validate:"omitnil,gt=0"`
	UserID    *uint    `json:"user_id" validate:"omitnil,gt=0"`
}

func (d *OrderDetail) Apply(req *OrderDetailUpdate) {
	setIf(&d.Price, req.Price)
	setIf(&d.Quantity, req.Quantity)
	setIf(&d.OrderID, req.OrderID)
	setIf(&d.ProductID, req.ProductID)
	setIf(&d.UserID, req.UserID)
}
