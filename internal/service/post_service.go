package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/client"
	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/repository"
	"agency-console-api/internal/response"
)

// PostService defines the interface for blog post business logic
type PostService interface {
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error)
	GetPostBySlug(ctx context.Context, slug string) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, publishedOnly bool) ([]*dto.PostResponse, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	SetPublished(ctx context.Context, postID uuid.UUID, published bool) (*dto.PostResponse, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
}

// postServiceImpl is the implementation of PostService
type postServiceImpl struct {
	postRepo repository.PostRepository
	s3Client client.S3ClientInterface
	logger   *zap.Logger
}

// NewPostService creates a new instance of PostService
func NewPostService(postRepo repository.PostRepository, s3Client client.S3ClientInterface, logger *zap.Logger) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		s3Client: s3Client,
		logger:   logger,
	}
}

// CreatePost creates a new unpublished post
func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if _, err := s.postRepo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Post slug already in use", req.Slug)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check post slug", err.Error())
	}

	post := &domain.Post{
		Slug:     req.Slug,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		CoverKey: req.CoverKey,
		Language: req.Language,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		if isUniqueViolation(err) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Post slug already in use", req.Slug)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create post", err.Error())
	}

	return s.toPostResponse(post, true), nil
}

// GetPost retrieves a post by ID for the console
func (s *postServiceImpl) GetPost(ctx context.Context, postID uuid.UUID) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}
	return s.toPostResponse(post, true), nil
}

// GetPostBySlug retrieves a published post for the public site
func (s *postServiceImpl) GetPostBySlug(ctx context.Context, slug string) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}
	if !post.Published {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
	}
	return s.toPostResponse(post, true), nil
}

// ListPosts retrieves post summaries without the content body
func (s *postServiceImpl) ListPosts(ctx context.Context, publishedOnly bool) ([]*dto.PostResponse, error) {
	posts, err := s.postRepo.FindAll(ctx, publishedOnly)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
	}

	responses := make([]*dto.PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = s.toPostResponse(post, false)
	}
	return responses, nil
}

// UpdatePost updates a post's attributes
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CoverKey != nil {
		post.CoverKey = *req.CoverKey
	}
	if req.Language != nil {
		post.Language = *req.Language
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update post", err.Error())
	}
	return s.toPostResponse(post, true), nil
}

// SetPublished toggles a post's visibility on the public site. The first
// publish stamps PublishedAt; republshing later keeps the original date.
func (s *postServiceImpl) SetPublished(ctx context.Context, postID uuid.UUID, published bool) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	post.Published = published
	if published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update post", err.Error())
	}
	return s.toPostResponse(post, true), nil
}

// DeletePost soft deletes a post
func (s *postServiceImpl) DeletePost(ctx context.Context, postID uuid.UUID) error {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete post", err.Error())
	}
	return nil
}

func (s *postServiceImpl) toPostResponse(post *domain.Post, includeContent bool) *dto.PostResponse {
	resp := &dto.PostResponse{
		ID:          post.ID,
		Slug:        post.Slug,
		Title:       post.Title,
		Excerpt:     post.Excerpt,
		Language:    post.Language,
		Published:   post.Published,
		PublishedAt: post.PublishedAt,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
	if includeContent {
		resp.Content = post.Content
	}
	if post.CoverKey != "" {
		resp.CoverURL = s.s3Client.GetFileURL(post.CoverKey)
	}
	return resp
}
