package models

import "time"

type Employee struct {
	ID uint `gorm:"primaryKey" json:"employee_id"`
	Contact
	DOB    time.Time `gorm:"column:dob;not null" json:"dob"`
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Audit
}

func (Employee) TableName() string { return "employees" }

type EmployeeCreate struct {
	ContactCreate
	DOB    time.Time `json:"dob" validate:"required"`
	UserID uint      `json:"user_id" validate:"required"`
}

type EmployeeUpdate struct {
	ContactUpdate
	DOB    *time.Time `json:"dob" validate:"omitnil"`
	UserID *uint      `json:"user_id" validate:"omitnil,gt=0"`
}

func (e *Employee) Apply(req *EmployeeUpdate) {
	e.Contact.Apply(&req.ContactUpdate)
	setIf(&e.DOB, req.DOB)
	setIf(&e.UserID, req.UserID)
}
