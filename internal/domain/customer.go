package domain

// Customer represents a client organization or contact the agency works
// with. Pure reference data, no lifecycle coupling to proposals/trackers.
type Customer struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Email   string `gorm:"type:varchar(255);not null;index:idx_customers_email" json:"email"`
	Company string `gorm:"type:varchar(255)" json:"company"`
	Phone   string `gorm:"type:varchar(50)" json:"phone"`
	Notes   string `gorm:"type:text" json:"notes"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
