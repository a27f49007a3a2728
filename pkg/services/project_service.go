package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/models"
)

// ProjectService manages projects and their owning users.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(httpCtx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(req.Name)

	if req.RepoURL != nil {
		builder.SetRepoURL(*req.RepoURL)
	}
	if req.OwnerID != nil {
		builder.SetOwnerID(*req.OwnerID)
	}

	project, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	project, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// CreateUser creates a new user
func (s *ProjectService) CreateUser(httpCtx context.Context, req models.CreateUserRequest) (*ent.User, error) {
	if req.Username == "" {
		return nil, NewValidationError("username", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.User.Create().
		SetID(uuid.New().String()).
		SetUsername(req.Username)

	if req.Email != nil {
		builder.SetEmail(*req.Email)
	}
	if req.GithubAccessToken != nil {
		builder.SetGithubAccessToken(*req.GithubAccessToken)
	}

	user, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *ProjectService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	user, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
