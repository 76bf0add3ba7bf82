package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/cadet-records-api/internal/models"
	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
)

type tagRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id, userID string) error
}

// TagService manages the private notes of a user.
type TagService struct {
	repo      tagRepository
	validator *validator.Validate
	logger    *zap.Logger
	newID     func() string
}

// NewTagService constructs the tag service.
func NewTagService(repo tagRepository, validate *validator.Validate, logger *zap.Logger) *TagService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TagService{repo: repo, validator: validate, logger: logger, newID: uuid.NewString}
}

// List returns the notes owned by userID.
func (s *TagService) List(ctx context.Context, userID string) ([]models.Tag, error) {
	tags, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Storage(err, "list tags")
	}
	return tags, nil
}

// Create stores a new note for userID.
func (s *TagService) Create(ctx context.Context, userID string, req models.TagRequest) (*models.Tag, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid tag payload")
	}
	tag := &models.Tag{ID: s.newID(), UserID: userID, Title: req.Title, Content: req.Content}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, appErrors.Storage(err, "create tag")
	}
	return tag, nil
}

// Update rewrites a note. Ids owned by someone else are left untouched.
func (s *TagService) Update(ctx context.Context, userID, id string, req models.TagRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid tag payload")
	}
	tag := &models.Tag{ID: id, UserID: userID, Title: req.Title, Content: req.Content}
	if err := s.repo.Update(ctx, tag); err != nil {
		return appErrors.Storage(err, "update tag")
	}
	return nil
}

// Delete removes a note of userID.
func (s *TagService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return appErrors.Storage(err, "delete tag")
	}
	return nil
}
