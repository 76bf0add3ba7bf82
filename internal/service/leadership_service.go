package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/cadet-records-api/internal/dto"
	"github.com/noah-isme/cadet-records-api/internal/models"
	"github.com/noah-isme/cadet-records-api/internal/reconcile"
	"github.com/noah-isme/cadet-records-api/pkg/database"
	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
)

type leadershipRepository interface {
	FindByID(ctx context.Context, id string) (*models.Leadership, error)
	FindByCourse(ctx context.Context, courseID string) (*models.Leadership, error)
	Create(ctx context.Context, l *models.Leadership) error
	Update(ctx context.Context, l *models.Leadership) error
	Delete(ctx context.Context, id string) error
}

type leadershipStaffRepository interface {
	reconcile.Store[models.LeadershipStaff]
	ListByCourse(ctx context.Context, courseID string) ([]models.LeadershipStaff, error)
	DeleteByLeadership(ctx context.Context, leadershipID string) error
}

type courseReader interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

// LeadershipService saves a course's leadership profile and its staff roster.
type LeadershipService struct {
	leadership   leadershipRepository
	staff        leadershipStaffRepository
	courses      courseReader
	engine       *reconcile.Engine
	validator    *validator.Validate
	logger       *zap.Logger
	cascadeStaff bool
	newID        func() string
}

// NewLeadershipService constructs the leadership service. cascadeStaff removes a leadership's staff with it.
func NewLeadershipService(
	leadership leadershipRepository,
	staff leadershipStaffRepository,
	courses courseReader,
	engine *reconcile.Engine,
	validate *validator.Validate,
	logger *zap.Logger,
	cascadeStaff bool,
) *LeadershipService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = reconcile.NewEngine(logger)
	}
	return &LeadershipService{
		leadership:   leadership,
		staff:        staff,
		courses:      courses,
		engine:       engine,
		validator:    validate,
		logger:       logger,
		cascadeStaff: cascadeStaff,
		newID:        uuid.NewString,
	}
}

func (s *LeadershipService) staffRelation() reconcile.Relation[models.LeadershipStaff] {
	return reconcile.Relation[models.LeadershipStaff]{
		Name:   "leadership_staff",
		Policy: reconcile.FullReplace,
		Store:  s.staff,
		ID:     func(m models.LeadershipStaff) string { return m.ID },
		WithID: func(m models.LeadershipStaff, id string) models.LeadershipStaff {
			m.ID = id
			return m
		},
		Valid: func(m models.LeadershipStaff) bool { return m.FullName != "" },
	}
}

// GetByCourse returns the course leadership with its roster as a one element list, or an empty list.
func (s *LeadershipService) GetByCourse(ctx context.Context, courseID string) ([]models.LeadershipDetail, error) {
	l, err := s.leadership.FindByCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.LeadershipDetail{}, nil
		}
		return nil, appErrors.Storage(err, "load leadership")
	}
	staff, err := s.staff.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Storage(err, "load leadership staff")
	}
	return []models.LeadershipDetail{{Leadership: *l, StaffMembers: staff}}, nil
}

// Save upserts the leadership row and then replaces the course's whole staff roster with the submitted one.
// Without an id the course's existing leadership is updated, or a new one is created.
func (s *LeadershipService) Save(ctx context.Context, req dto.LeadershipRequest) (*models.LeadershipSaveResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid leadership payload")
	}
	courseID := strings.TrimSpace(req.CourseID)

	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Storage(err, "load course")
	}

	current, err := s.findCurrent(ctx, strings.TrimSpace(req.ID), courseID)
	if err != nil {
		return nil, err
	}

	result := &models.LeadershipSaveResult{}
	if current != nil {
		if current.CourseID != courseID {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid leadership payload: course_id does not match the leadership's course")
		}
		req.Apply(current)
		if err := s.leadership.Update(ctx, current); err != nil {
			return nil, appErrors.Storage(err, "update leadership")
		}
		result.ID, result.Updated = current.ID, true
	} else {
		id := s.newID()
		l := &models.Leadership{ID: id, CourseID: courseID}
		req.Apply(l)
		if err := s.leadership.Create(ctx, l); err != nil {
			if database.IsUniqueViolation(err) {
				return nil, appErrors.Clone(appErrors.ErrDuplicate, "course already has a leadership")
			}
			return nil, appErrors.Storage(err, "create leadership")
		}
		result.ID = id
	}

	var submitted []dto.StaffMemberInput
	if req.StaffMembers != nil {
		submitted = *req.StaffMembers
	}
	leadershipID := result.ID
	staff := make([]models.LeadershipStaff, 0, len(submitted))
	for _, in := range submitted {
		staff = append(staff, in.Model(courseID, &leadershipID))
	}
	if _, err := reconcile.Reconcile(ctx, s.engine, s.staffRelation(), courseID, staff); err != nil {
		return nil, appErrors.Storage(err, "save leadership staff")
	}

	s.logger.Info("leadership saved",
		zap.String("leadership_id", result.ID),
		zap.String("course_id", courseID),
		zap.Bool("updated", result.Updated),
	)
	return result, nil
}

// findCurrent resolves the leadership a save targets. An id that no longer
// exists falls back to the course's leadership, so a stale client id never
// creates a second row.
func (s *LeadershipService) findCurrent(ctx context.Context, id, courseID string) (*models.Leadership, error) {
	if id != "" {
		l, err := s.leadership.FindByID(ctx, id)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Storage(err, "load leadership")
		}
		s.logger.Warn("leadership id not found, using course leadership",
			zap.String("leadership_id", id),
			zap.String("course_id", courseID),
		)
	}
	l, err := s.leadership.FindByCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Storage(err, "load leadership")
	}
	return l, nil
}

// Delete removes a leadership row. The course's staff rows stay unless cascading is enabled.
func (s *LeadershipService) Delete(ctx context.Context, id string) error {
	if s.cascadeStaff {
		if err := s.staff.DeleteByLeadership(ctx, id); err != nil {
			return appErrors.Storage(err, "delete leadership staff")
		}
	}
	if err := s.leadership.Delete(ctx, id); err != nil {
		return appErrors.Storage(err, "delete leadership")
	}
	return nil
}
