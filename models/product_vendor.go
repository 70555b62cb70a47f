package models

// ProductVendor is a row of the product/vendor join table. Rows disappear
// together with either side.
type ProductVendor struct {
	ProductID uint     `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	VendorID  uint     `gorm:"primaryKey;autoIncrement:false" json:"vendor_id"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Vendor    *Vendor  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ProductVendor) TableName() string { return "products_vendors" }
