package models

type Product struct {
	ID             uint      `gorm:"primaryKey" json:"product_id"`
	Name           string    `gorm:"type:varchar(250);not null" json:"name"`
	Description    string    `gorm:"type:varchar(250);not null" json:"description"`
	PricePerUnit   float64   `gorm:"column:priceperunit;not null;check:priceperunit >= 0" json:"priceperunit"`
	QuantityOnHand int       `gorm:"column:quantityonhand;not null;check:quantityonhand >= 0" json:"quantityonhand"`
	CategoryID     uint      `gorm:"not null;index" json:"category_id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	Category       *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	User           *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Audit
}

func (Product) TableName() string { return "products" }

type ProductCreate struct {
	Name           string   `json:"name" validate:"required,max=250"`
	Description    string   `json:"description" validate:"required,max=250"`
	PricePerUnit   *float64 `json:"priceperunit" validate:"required,gte=0"`
	QuantityOnHand *int     `json:"quantityonhand" validate:"required,gte=0"`
	CategoryID     uint     `json:"category_id" validate:"required"`
	UserID         uint     `json:"user_id" validate:"required"`
}

type ProductUpdate struct {
	Name           *string  `json:"name" validate:"omitnil,min=1,max=250"`
	Description    *string  `json:"description" validate:"omitnil,min=1,max=250"`
	PricePerUnit   *float64 `json:"priceperunit" validate:"omitnil,gte=0"`
	QuantityOnHand *int     `json:"quantityonhand" validate:"omitnil,gte=0"`
	CategoryID     *uint    `json:"category_id" validate:"omitnil,gt=0"`
	UserID         *uint    `json:"user_id" validate:"omitnil,gt=0"`
}

func (p *Product) Apply(req *ProductUpdate) {
	setIf(&p.Name, req.Name)
	setIf(&p.Description, req.Description)
	setIf(&p.PricePerUnit, req.PricePerUnit)
	setIf(&p.QuantityOnHand, req.QuantityOnHand)
	setIf(&p.CategoryID, req.CategoryID)
	setIf(&p.UserID, req.UserID)
}
