package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/client"
	"agency-console-api/internal/config"
	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/metrics"
	"agency-console-api/internal/repository"
	"agency-console-api/internal/response"
)

// MessageService defines the interface for contact message handling
type MessageService interface {
	SubmitMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	GetMessage(ctx context.Context, messageID uuid.UUID) (*dto.MessageResponse, error)
	ListMessages(ctx context.Context, unreadOnly bool) ([]*dto.MessageResponse, error)
	MarkRead(ctx context.Context, messageID uuid.UUID) error
	DeleteMessage(ctx context.Context, messageID uuid.UUID) error
}

// messageServiceImpl is the implementation of MessageService
type messageServiceImpl struct {
	messageRepo repository.MessageRepository
	mailer      client.MailSender
	agency      config.AgencyConfig
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewMessageService creates a new instance of MessageService
func NewMessageService(
	messageRepo repository.MessageRepository,
	mailer client.MailSender,
	agency config.AgencyConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		mailer:      mailer,
		agency:      agency,
		metrics:     m,
		logger:      logger,
	}
}

// SubmitMessage stores a contact form submission and forwards it to the
// agency inbox. The forward is best-effort; the stored message is the
// source of truth.
func (s *messageServiceImpl) SubmitMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	message := &domain.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store message", err.Error())
	}

	if s.agency.AdminEmail == "" {
		return toMessageResponse(message), nil
	}

	go func() {
		subject := fmt.Sprintf("New contact message from %s", message.Name)
		if message.Subject != "" {
			subject = fmt.Sprintf("%s: %s", subject, message.Subject)
		}
		body := fmt.Sprintf("<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
			message.Name, message.Email, message.Body)
		if err := s.mailer.Send(s.agency.AdminEmail, subject, body); err != nil {
			s.logger.Error("Failed to forward contact message",
				zap.String("message_id", message.ID.String()),
				zap.Error(err))
			if s.metrics != nil {
				s.metrics.IncrementEmailFailed("contact_forward")
			}
			return
		}
		if s.metrics != nil {
			s.metrics.IncrementEmailSent("contact_forward")
		}
	}()

	return toMessageResponse(message), nil
}

// GetMessage retrieves a single message for the console
func (s *messageServiceImpl) GetMessage(ctx context.Context, messageID uuid.UUID) (*dto.MessageResponse, error) {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Message not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch message", err.Error())
	}
	return toMessageResponse(message), nil
}

// ListMessages retrieves messages, newest first
func (s *messageServiceImpl) ListMessages(ctx context.Context, unreadOnly bool) ([]*dto.MessageResponse, error) {
	messages, err := s.messageRepo.FindAll(ctx, unreadOnly)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch messages", err.Error())
	}

	responses := make([]*dto.MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = toMessageResponse(message)
	}
	return responses, nil
}

// MarkRead flags a message as handled
func (s *messageServiceImpl) MarkRead(ctx context.Context, messageID uuid.UUID) error {
	if err := s.messageRepo.MarkRead(ctx, messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Message not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to mark message read", err.Error())
	}
	return nil
}

// DeleteMessage soft deletes a message
func (s *messageServiceImpl) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	if _, err := s.messageRepo.FindByID(ctx, messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Message not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch message", err.Error())
	}
	if err := s.messageRepo.Delete(ctx, messageID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete message", err.Error())
	}
	return nil
}

func toMessageResponse(message *domain.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Body:      message.Body,
		Read:      message.Read,
		CreatedAt: message.CreatedAt,
	}
}
