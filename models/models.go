package models

import "time"

// Audit holds the modification timestamps every record carries. Created is set
// when the row is inserted; Updated stays nil until the first update.
type Audit struct {
	Updated *time.Time `gorm:"column:updated" json:"updated"`
	Created *time.Time `gorm:"column:created" json:"created"`
}

// LastModified returns Updated when set, otherwise Created.
func (a Audit) LastModified() time.Time {
	if a.Updated != nil {
		return *a.Updated
	}
	if a.Created != nil {
		return *a.Created
	}
	return time.Time{}
}

// Contact is the name/address block shared by customers, employees and vendors.
type Contact struct {
	FirstName     string `gorm:"column:firstname;type:varchar(250);not null" json:"firstname"`
	LastName      string `gorm:"column:lastname;type:varchar(250);not null" json:"lastname"`
	StreetAddress string `gorm:"column:streetaddress;type:varchar(250);not null" json:"streetaddress"`
	City          string `gorm:"column:city;type:varchar(250);not null" json:"city"`
	State         string `gorm:"column:state;type:varchar(150);not null" json:"state"`
	ZipCode       string `gorm:"column:zipcode;type:varchar(50);not null" json:"zipcode"`
	PhoneNumber   string `gorm:"column:phonenumber;type:varchar(50);not null" json:"phonenumber"`
	Email         string `gorm:"column:email;type:varchar(250);not null" json:"email"`
}

// ContactCreate is the contact block of a create payload.
type ContactCreate struct {
	FirstName     string `json:"firstname" validate:"required,max=250"`
	LastName      string `json:"lastname" validate:"required,max=250"`
	StreetAddress string `json:"streetaddress" validate:"required,max=250"`
	City          string `json:"city" validate:"required,max=250"`
	State         string `json:"state" validate:"required,max=150"`
	ZipCode       string `json:"zipcode" validate:"required,max=50"`
	PhoneNumber   string `json:"phonenumber" validate:"required,max=50"`
	Email         string `json:"email" validate:"required,email,max=250"`
}

// ContactUpdate is the contact block of a partial update payload.
type ContactUpdate struct {
	FirstName     *string `json:"firstname" validate:"omitnil,min=1,max=250"`
	LastName      *string `json:"lastname" validate:"omitnil,min=1,max=250"`
	StreetAddress *string `json:"streetaddress" validate:"omitnil,min=1,max=250"`
	City          *string `json:"city" validate:"omitnil,min=1,max=250"`
	State         *string `json:"state" validate:"omitnil,min=1,max=150"`
	ZipCode       *string `json:"zipcode" validate:"omitnil,min=1,max=50"`
	PhoneNumber   *string `json:"phonenumber" validate:"omitnil,min=1,max=50"`
	Email         *string `json:"email" validate:"omitnil,email,max=250"`
}

// Contact converts the payload into the persisted block.
func (c ContactCreate) Contact() Contact {
	return Contact(c)
}

// Apply copies the fields present in u.
func (c *Contact) Apply(u *ContactUpdate) {
	setIf(&c.FirstName, u.FirstName)
	setIf(&c.LastName, u.LastName)
	setIf(&c.StreetAddress, u.StreetAddress)
	setIf(&c.City, u.City)
	setIf(&c.State, u.State)
	setIf(&c.ZipCode, u.ZipCode)
	setIf(&c.PhoneNumber, u.PhoneNumber)
	setIf(&c.Email, u.Email)
}

// StoreEvent is published after a record is created, updated or deleted.
type StoreEvent struct {
	EventType string    `json:"event_type"`
	Entity    string    `json:"entity"`
	EntityID  uint      `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

// All lists every persisted model, in dependency order, for schema creation.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Customer{},
		&Employee{},
		&Vendor{},
		&Category{},
		&Product{},
		&ProductVendor{},
		&Order{},
		&OrderDetail{},
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
