package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/client"
	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/repository"
	"agency-console-api/internal/response"
)

// ProjectService defines the interface for portfolio business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error)
	GetProjectBySlug(ctx context.Context, slug string) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, publishedOnly bool) ([]*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	s3Client    client.S3ClientInterface
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, s3Client client.S3ClientInterface, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		s3Client:    s3Client,
		logger:      logger,
	}
}

// CreateProject creates a new portfolio case study
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if _, err := s.projectRepo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Project slug already in use", req.Slug)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check project slug", err.Error())
	}

	project := &domain.Project{
		Slug:        req.Slug,
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		CoverKey:    req.CoverKey,
		Featured:    req.Featured,
		Published:   req.Published,
	}
	if err := project.SetGallery(emptyIfNil(req.Gallery)); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode gallery", err.Error())
	}
	if err := project.SetTags(emptyIfNil(req.Tags)); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tags", err.Error())
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		if isUniqueViolation(err) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Project slug already in use", req.Slug)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	return s.toProjectResponse(project, true)
}

// GetProject retrieves a portfolio entry by ID for the console
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	return s.toProjectResponse(project, true)
}

// GetProjectBySlug retrieves a published portfolio entry for the public site
func (s *projectServiceImpl) GetProjectBySlug(ctx context.Context, slug string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	if !project.Published {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
	}
	return s.toProjectResponse(project, true)
}

// ListProjects retrieves portfolio entries, featured first
func (s *projectServiceImpl) ListProjects(ctx context.Context, publishedOnly bool) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx, publishedOnly)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		resp, err := s.toProjectResponse(project, false)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// UpdateProject updates a portfolio entry
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Summary != nil {
		project.Summary = *req.Summary
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.CoverKey != nil {
		project.CoverKey = *req.CoverKey
	}
	if req.Gallery != nil {
		if err := project.SetGallery(req.Gallery); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode gallery", err.Error())
		}
	}
	if req.Tags != nil {
		if err := project.SetTags(req.Tags); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tags", err.Error())
		}
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Published != nil {
		project.Published = *req.Published
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}
	return s.toProjectResponse(project, true)
}

// DeleteProject soft deletes a portfolio entry
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}
	return nil
}

func (s *projectServiceImpl) toProjectResponse(project *domain.Project, includeDescription bool) (*dto.ProjectResponse, error) {
	gallery, err := project.DecodeGallery()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode gallery", err.Error())
	}
	tags, err := project.DecodeTags()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode tags", err.Error())
	}

	galleryURLs := make([]string, len(gallery))
	for i, key := range gallery {
		galleryURLs[i] = s.s3Client.GetFileURL(key)
	}

	resp := &dto.ProjectResponse{
		ID:        project.ID,
		Slug:      project.Slug,
		Title:     project.Title,
		Summary:   project.Summary,
		Gallery:   galleryURLs,
		Tags:      tags,
		Featured:  project.Featured,
		Published: project.Published,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
	if includeDescription {
		resp.Description = project.Description
	}
	if project.CoverKey != "" {
		resp.CoverURL = s.s3Client.GetFileURL(project.CoverKey)
	}
	return resp, nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
