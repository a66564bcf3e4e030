package dto

import "agency-console-api/internal/domain"

// GenerateProposalRequest describes the brief fed to the drafting model
type GenerateProposalRequest struct {
	ClientName   string   `json:"clientName" binding:"required,min=2,max=255"`
	ProjectBrief string   `json:"projectBrief" binding:"required,min=10"`
	Services     []string `json:"services"`
	BudgetHint   string   `json:"budgetHint" binding:"max=255"`
	Language     string   `json:"language" binding:"omitempty,max=10"`
}

// GenerateProposalResponse returns the drafted structured content.
// Nothing is persisted; the operator reviews and saves it through the
// normal proposal endpoints.
type GenerateProposalResponse struct {
	Content *domain.ProposalContent `json:"content"`
}

// GeneratePostRequest describes the topic fed to the drafting model
type GeneratePostRequest struct {
	Topic    string `json:"topic" binding:"required,min=5"`
	Tone     string `json:"tone" binding:"omitempty,max=100"`
	Language string `json:"language" binding:"omitempty,max=10"`
}

// GeneratePostResponse returns a drafted article
type GeneratePostResponse struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// GenerateImageRequest asks for a cover image to be generated and stored
type GenerateImageRequest struct {
	Prompt     string `json:"prompt" binding:"required,min=5"`
	EntityType string `json:"entityType" binding:"required,oneof=POST PROJECT SERVICE"`
}

// GenerateImageResponse points at the stored image
type GenerateImageResponse struct {
	FileKey string `json:"fileKey"`
	FileURL string `json:"fileUrl"`
}
