package domain

// Admin represents an operator account with access to the console
type Admin struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:uq_admins_email" json:"email"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

// TableName specifies the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
