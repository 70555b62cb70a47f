package models

// User owns (is attributed as creator of) every other record.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"user_id"`
	Username  string `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Password  string `gorm:"type:varchar(200);not null" json:"-"`
	Email     string `gorm:"type:varchar(250);uniqueIndex;not null" json:"email"`
	FirstName string `gorm:"column:firstname;type:varchar(250);not null" json:"firstname"`
	LastName  string `gorm:"column:lastname;type:varchar(250);not null" json:"lastname"`
	Audit
}

func (User) TableName() string { return "users" }

// UserCreate is the payload for creating a user.
type UserCreate struct {
	Username  string `json:"username" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Email     string `json:"email" validate:"required,email,max=250"`
	FirstName string `json:"firstname" validate:"required,max=250"`
	LastName  string `json:"lastname" validate:"required,max=250"`
}

// UserUpdate is the payload for updating a user. Nil fields are left unchanged.
type UserUpdate struct {
	Username  *string `json:"username" validate:"omitnil,min=1,max=150"`
	Password  *string `json:"password" validate:"omitnil,min=8,max=72"`
	Email     *string `json:"email" validate:"omitnil,email,max=250"`
	FirstName *string `json:"firstname" validate:"omitnil,min=1,max=250"`
	LastName  *string `json:"lastname" validate:"omitnil,min=1,max=250"`
}

// Apply copies the fields present in req. The password is hashed by the
// caller and is not touched here.
func (u *User) Apply(req *UserUpdate) {
	setIf(&u.Username, req.Username)
	setIf(&u.Email, req.Email)
	setIf(&u.FirstName, req.FirstName)
	setIf(&u.LastName, req.LastName)
}
