package domain

// Service represents an offering in the agency's public service catalog
type Service struct {
	BaseModel
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex:uq_services_slug" json:"slug"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"type:varchar(100)" json:"icon"`
	SortOrder   int    `gorm:"default:0;index:idx_services_sort_order" json:"sort_order"`
	Active      bool   `gorm:"default:true;index:idx_services_active" json:"active"`
}

// TableName specifies the table name for Service
func (Service) TableName() string {
	return "services"
}
