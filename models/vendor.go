package models

type Vendor struct {
	ID uint `gorm:"primaryKey" json:"vendor_id"`
	Contact
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Audit
}

func (Vendor) TableName() string { return "vendors" }

type VendorCreate struct {
	ContactCreate
	UserID uint `json:"user_id" validate:"required"`
}

type VendorUpdate struct {
	ContactUpdate
	UserID *uint `json:"user_id" validate:"omitnil,gt=0"`
}

func (v *Vendor) Apply(req *VendorUpdate) {
	v.Contact.Apply(&req.ContactUpdate)
	setIf(&v.UserID, req.UserID)
}
