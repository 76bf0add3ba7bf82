package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/cadet-records-api/internal/models"
	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
}

type teamWriter interface {
	Upsert(ctx context.Context, team *models.Team) error
}

// CourseConfig drives intake sizing and promotion.
type CourseConfig struct {
	TeamsPerIntake int
	MaxLevel       int
}

// CourseService lists, opens and promotes courses.
type CourseService struct {
	courses   courseRepository
	teams     teamWriter
	validator *validator.Validate
	logger    *zap.Logger
	config    CourseConfig
	now       func() time.Time
	newID     func() string
}

// NewCourseService constructs the course service.
func NewCourseService(courses courseRepository, teams teamWriter, validate *validator.Validate, logger *zap.Logger, cfg CourseConfig) *CourseService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxLevel <= 0 {
		cfg.MaxLevel = 4
	}
	return &CourseService{
		courses:   courses,
		teams:     teams,
		validator: validate,
		logger:    logger,
		config:    cfg,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// List returns every course ordered by level then name.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courses.List(ctx, false)
	if err != nil {
		return nil, appErrors.Storage(err, "list courses")
	}
	return courses, nil
}

// Create opens an active course and its numbered teams.
func (s *CourseService) Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid course payload")
	}

	level := req.Level
	if level == 0 {
		level = 1
	}
	startYear := req.StartYear
	if startYear == nil {
		year := s.now().Year()
		startYear = &year
	}

	course := &models.Course{
		ID:        s.newID(),
		Name:      req.Name,
		Level:     level,
		IsActive:  true,
		StartYear: startYear,
		TeamCount: req.TeamCount,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, appErrors.Storage(err, "create course")
	}
	if err := s.createTeams(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Promote runs the yearly level bump. Outside 15 August it does nothing unless force is set.
func (s *CourseService) Promote(ctx context.Context, force bool) (*models.PromotionResult, error) {
	today := s.now()
	if !force && !(today.Month() == time.August && today.Day() == 15) {
		s.logger.Info("course promotion skipped", zap.String("date", today.Format(dateLayout)))
		return &models.PromotionResult{Skipped: true}, nil
	}

	active, err := s.courses.List(ctx, true)
	if err != nil {
		return nil, appErrors.Storage(err, "list active courses")
	}

	year := today.Year()
	result := &models.PromotionResult{}
	for i := range active {
		course := active[i]
		if course.Level < s.config.MaxLevel {
			course.Level++
			result.Promoted++
		} else {
			endYear := year
			course.Archived = true
			course.IsActive = false
			course.EndYear = &endYear
			result.Archived++
		}
		if err := s.courses.Update(ctx, &course); err != nil {
			return nil, appErrors.Storage(err, "promote course")
		}
	}

	startYear := year
	intake := &models.Course{
		ID:        s.newID(),
		Name:      fmt.Sprintf("I Kurs %d", year),
		Level:     1,
		IsActive:  true,
		StartYear: &startYear,
		TeamCount: s.config.TeamsPerIntake,
	}
	if err := s.courses.Create(ctx, intake); err != nil {
		return nil, appErrors.Storage(err, "create intake course")
	}
	if err := s.createTeams(ctx, intake); err != nil {
		return nil, err
	}
	result.NewCourse = intake

	s.logger.Info("courses promoted",
		zap.Int("promoted", result.Promoted),
		zap.Int("archived", result.Archived),
		zap.String("new_course", intake.Name),
	)
	return result, nil
}

func (s *CourseService) createTeams(ctx context.Context, course *models.Course) error {
	for n := 1; n <= course.TeamCount; n++ {
		team := &models.Team{
			ID:       fmt.Sprintf("%s-team-%d", course.ID, n),
			CourseID: course.ID,
			Name:     fmt.Sprintf("Team %d", n),
		}
		if err := s.teams.Upsert(ctx, team); err != nil {
			return appErrors.Storage(err, "create course teams")
		}
	}
	return nil
}
