package models

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"category_id"`
	Description string `gorm:"type:varchar(250);not null" json:"description"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	User        *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Audit
}

func (Category) TableName() string { return "categories" }

type CategoryCreate struct {
	Description string `json:"description" validate:"required,max=250"`
	UserID      uint   `json:"user_id" validate:"required"`
}

type CategoryUpdate struct {
	Description *string `json:"description" validate:"omitnil,min=1,max=250"`
	UserID      *uint   `json:"user_id" validate:"omitnil,gt=0"`
}

func (c *Category) Apply(req *CategoryUpdate) {
	setIf(&c.Description, req.Description)
	setIf(&c.UserID, req.UserID)
}
