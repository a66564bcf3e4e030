package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreatePostRequest represents the request to create a blog post
type CreatePostRequest struct {
	Slug     string `json:"slug" binding:"required,min=2,max=255"`
	Title    string `json:"title" binding:"required,min=2,max=255"`
	Excerpt  string `json:"excerpt" binding:"max=500"`
	Content  string `json:"content"`
	CoverKey string `json:"coverKey"`
	Language string `json:"language" binding:"omitempty,max=10"`
}

// UpdatePostRequest represents the request to update a blog post.
// All fields are optional.
type UpdatePostRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=2,max=255"`
	Excerpt  *string `json:"excerpt" binding:"omitempty,max=500"`
	Content  *string `json:"content"`
	CoverKey *string `json:"coverKey"`
	Language *string `json:"language" binding:"omitempty,max=10"`
}

// PublishPostRequest toggles a post's published state
type PublishPostRequest struct {
	Published bool `json:"published"`
}

// PostResponse represents a blog post
type PostResponse struct {
	ID          uuid.UUID  `json:"postId"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content,omitempty"`
	CoverURL    string     `json:"coverUrl,omitempty"`
	Language    string     `json:"language,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateProjectRequest represents the request to create a portfolio entry
type CreateProjectRequest struct {
	Slug        string   `json:"slug" binding:"required,min=2,max=255"`
	Title       string   `json:"title" binding:"required,min=2,max=255"`
	Summary     string   `json:"summary" binding:"max=500"`
	Description string   `json:"description"`
	CoverKey    string   `json:"coverKey"`
	Gallery     []string `json:"gallery"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Published   bool     `json:"published"`
}

// UpdateProjectRequest represents the request to update a portfolio entry.
// All fields are optional.
type UpdateProjectRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=2,max=255"`
	Summary     *string  `json:"summary" binding:"omitempty,max=500"`
	Description *string  `json:"description"`
	CoverKey    *string  `json:"coverKey"`
	Gallery     []string `json:"gallery"`
	Tags        []string `json:"tags"`
	Featured    *bool    `json:"featured"`
	Published   *bool    `json:"published"`
}

// ProjectResponse represents a portfolio case study
type ProjectResponse struct {
	ID          uuid.UUID `json:"projectId"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	CoverURL    string    `json:"coverUrl,omitempty"`
	Gallery     []string  `json:"gallery"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateServiceRequest represents the request to create a catalog entry
type CreateServiceRequest struct {
	Slug        string `json:"slug" binding:"required,min=2,max=255"`
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"max=100"`
	SortOrder   int    `json:"sortOrder"`
	Active      *bool  `json:"active"`
}

// UpdateServiceRequest represents the request to update a catalog entry.
// All fields are optional.
type UpdateServiceRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" binding:"omitempty,max=100"`
	SortOrder   *int    `json:"sortOrder"`
	Active      *bool   `json:"active"`
}

// ServiceResponse represents a service catalog entry
type ServiceResponse struct {
	ID          uuid.UUID `json:"serviceId"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateCustomerRequest represents the request to create a customer record
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company" binding:"max=255"`
	Phone   string `json:"phone" binding:"max=50"`
	Notes   string `json:"notes"`
}

// UpdateCustomerRequest represents the request to update a customer record.
// All fields are optional.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Company *string `json:"company" binding:"omitempty,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Notes   *string `json:"notes"`
}

// CustomerResponse represents a customer record
type CustomerResponse struct {
	ID        uuid.UUID `json:"customerId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateMessageRequest represents a contact form submission
type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"max=255"`
	Body    string `json:"body" binding:"required,min=2"`
}

// MessageResponse represents a contact message as seen in the console
type MessageResponse struct {
	ID        uuid.UUID `json:"messageId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
