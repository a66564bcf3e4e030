package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"agency-console-api/internal/client"
	"agency-console-api/internal/config"
	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/response"
)

// GeneratorService drafts proposal and post content with the generative
// API. Drafts are returned to the operator for review, never persisted
// directly.
type GeneratorService interface {
	GenerateProposal(ctx context.Context, req *dto.GenerateProposalRequest) (*dto.GenerateProposalResponse, error)
	GeneratePost(ctx context.Context, req *dto.GeneratePostRequest) (*dto.GeneratePostResponse, error)
	GenerateImage(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error)
}

// generatorServiceImpl is the implementation of GeneratorService
type generatorServiceImpl struct {
	aiClient client.AIClientInterface
	s3Client client.S3ClientInterface
	agency   config.AgencyConfig
	logger   *zap.Logger
}

// NewGeneratorService creates a new instance of GeneratorService
func NewGeneratorService(
	aiClient client.AIClientInterface,
	s3Client client.S3ClientInterface,
	agency config.AgencyConfig,
	logger *zap.Logger,
) GeneratorService {
	return &generatorServiceImpl{
		aiClient: aiClient,
		s3Client: s3Client,
		agency:   agency,
		logger:   logger,
	}
}

const proposalSystemPrompt = `You are a senior account manager at a digital agency writing a project proposal.
Respond with a single JSON object, no surrounding prose, matching exactly this shape:
{"vision": string, "scope": [{"title": string, "description": string}], "pricing": [{"item": string, "amount": number}], "timeline": [{"phase": string, "description": string, "duration": string}], "totalPrice": number, "currency": string, "language": string}
totalPrice must equal the sum of the pricing amounts.`

// GenerateProposal drafts structured proposal content from a brief
func (s *generatorServiceImpl) GenerateProposal(ctx context.Context, req *dto.GenerateProposalRequest) (*dto.GenerateProposalResponse, error) {
	lang := req.Language
	if lang == "" {
		lang = "en"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Agency: %s\nClient: %s\nLanguage: %s\n", s.agency.Name, req.ClientName, lang)
	if len(req.Services) > 0 {
		fmt.Fprintf(&sb, "Requested services: %s\n", strings.Join(req.Services, ", "))
	}
	if req.BudgetHint != "" {
		fmt.Fprintf(&sb, "Budget hint: %s\n", req.BudgetHint)
	}
	fmt.Fprintf(&sb, "\nProject brief:\n%s", req.ProjectBrief)

	raw, err := s.aiClient.GenerateText(ctx, proposalSystemPrompt, sb.String())
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstream, "Proposal generation failed", err.Error())
	}

	content := &domain.ProposalContent{}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), content); err != nil {
		s.logger.Warn("Generated proposal content was not valid JSON", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeUpstream, "Generated content could not be parsed", err.Error())
	}
	if content.Language == "" {
		content.Language = lang
	}

	return &dto.GenerateProposalResponse{Content: content}, nil
}

const postSystemPrompt = `You are a content writer for a digital agency blog.
Respond with a single JSON object, no surrounding prose, matching exactly this shape:
{"title": string, "excerpt": string, "content": string}
The content field is the full article body in Markdown.`

// GeneratePost drafts a blog article from a topic
func (s *generatorServiceImpl) GeneratePost(ctx context.Context, req *dto.GeneratePostRequest) (*dto.GeneratePostResponse, error) {
	lang := req.Language
	if lang == "" {
		lang = "en"
	}
	tone := req.Tone
	if tone == "" {
		tone = "professional but approachable"
	}

	prompt := fmt.Sprintf("Agency: %s\nTopic: %s\nTone: %s\nLanguage: %s",
		s.agency.Name, req.Topic, tone, lang)

	raw, err := s.aiClient.GenerateText(ctx, postSystemPrompt, prompt)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstream, "Post generation failed", err.Error())
	}

	draft := &dto.GeneratePostResponse{}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), draft); err != nil {
		s.logger.Warn("Generated post draft was not valid JSON", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeUpstream, "Generated content could not be parsed", err.Error())
	}
	return draft, nil
}

// GenerateImage generates a cover image and stores it in object storage
func (s *generatorServiceImpl) GenerateImage(ctx context.Context, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error) {
	image, err := s.aiClient.GenerateImage(ctx, req.Prompt)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstream, "Image generation failed", err.Error())
	}

	keyPrefix := strings.ToLower(req.EntityType) + "s"
	fileKey, err := s.s3Client.GenerateFileKey(keyPrefix, ".png")
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to build file key", err.Error())
	}

	if _, err := s.s3Client.UploadFile(ctx, fileKey, bytes.NewReader(image), "image/png"); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store generated image", err.Error())
	}

	return &dto.GenerateImageResponse{
		FileKey: fileKey,
		FileURL: s.s3Client.GetFileURL(fileKey),
	}, nil
}

// stripCodeFence unwraps model output that arrives inside a markdown
// ```json fence
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
