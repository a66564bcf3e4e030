package domain

// Message represents a contact form submission from the public site
type Message struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Email   string `gorm:"type:varchar(255);not null" json:"email"`
	Subject string `gorm:"type:varchar(255)" json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`
	Read    bool   `gorm:"default:false;index:idx_messages_read" json:"read"`
}

// TableName specifies the table name for Message
func (Message) TableName() string {
	return "messages"
}
