package models

type Customer struct {
	ID uint `gorm:"primaryKey" json:"customer_id"`
	Contact
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Audit
}

func (Customer) TableName() string { return "customers" }

type CustomerCreate struct {
	ContactCreate
	UserID uint `json:"user_id" validate:"required"`
}

type CustomerUpdate struct {
	ContactUpdate
	UserID *uint `json:"user_id" validate:"omitnil,gt=0"`
}

func (c *Customer) Apply(req *CustomerUpdate) {
	c.Contact.Apply(&req.ContactUpdate)
	setIf(&c.UserID, req.UserID)
}
