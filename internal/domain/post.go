package domain

import "time"

// Post represents a blog article on the public site
type Post struct {
	BaseModel
	Slug        string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_posts_slug" json:"slug"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt     string     `gorm:"type:varchar(500)" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	CoverKey    string     `gorm:"type:text" json:"cover_key"`
	Language    string     `gorm:"type:varchar(10)" json:"language"`
	Published   bool       `gorm:"default:false;index:idx_posts_published" json:"published"`
	PublishedAt *time.Time `gorm:"type:timestamp" json:"published_at,omitempty"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}
