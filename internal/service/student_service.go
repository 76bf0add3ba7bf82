package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/cadet-records-api/internal/dto"
	"github.com/noah-isme/cadet-records-api/internal/models"
	"github.com/noah-isme/cadet-records-api/internal/reconcile"
	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
)

type studentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	ListByTeam(ctx context.Context, teamID string) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

type familyMemberRepository interface {
	reconcile.Store[models.FamilyMember]
	ListByStudent(ctx context.Context, studentID string) ([]models.FamilyMember, error)
	ListByStudents(ctx context.Context, studentIDs []string) (map[string][]models.FamilyMember, error)
	DeleteByStudent(ctx context.Context, studentID string) error
}

type disciplineRecordRepository interface {
	reconcile.Store[models.DisciplineRecord]
	ListByStudent(ctx context.Context, studentID string) ([]models.DisciplineRecord, error)
	ListByStudents(ctx context.Context, studentIDs []string) (map[string][]models.DisciplineRecord, error)
	DeleteByStudent(ctx context.Context, studentID string) error
}

type teamReader interface {
	FindByID(ctx context.Context, id string) (*models.Team, error)
}

// StudentService saves and assembles student records together with their family and discipline history.
type StudentService struct {
	students   studentRepository
	family     familyMemberRepository
	discipline disciplineRecordRepository
	teams      teamReader
	engine     *reconcile.Engine
	cache      *CacheService
	validator  *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
	newID      func() string
}

// NewStudentService constructs the student service.
func NewStudentService(
	students studentRepository,
	family familyMemberRepository,
	discipline disciplineRecordRepository,
	teams teamReader,
	engine *reconcile.Engine,
	cache *CacheService,
	validate *validator.Validate,
	logger *zap.Logger,
) *StudentService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = reconcile.NewEngine(logger)
	}
	return &StudentService{
		students:   students,
		family:     family,
		discipline: discipline,
		teams:      teams,
		engine:     engine,
		cache:      cache,
		validator:  validate,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (s *StudentService) familyRelation() reconcile.Relation[models.FamilyMember] {
	return reconcile.Relation[models.FamilyMember]{
		Name:   "family_members",
		Policy: reconcile.PartialSurvivor,
		Store:  s.family,
		ID:     func(m models.FamilyMember) string { return m.ID },
		WithID: func(m models.FamilyMember, id string) models.FamilyMember {
			m.ID = id
			return m
		},
		Valid: func(m models.FamilyMember) bool { return m.FullName != "" },
	}
}

func (s *StudentService) disciplineRelation() reconcile.Relation[models.DisciplineRecord] {
	return reconcile.Relation[models.DisciplineRecord]{
		Name:   "discipline_records",
		Policy: reconcile.PartialSurvivor,
		Store:  s.discipline,
		ID:     func(r models.DisciplineRecord) string { return r.ID },
		WithID: func(r models.DisciplineRecord, id string) models.DisciplineRecord {
			r.ID = id
			return r
		},
		Valid: func(r models.DisciplineRecord) bool { return r.Event != "" },
	}
}

// Get returns a student with both child collections. Discipline records come most recent first.
func (s *StudentService) Get(ctx context.Context, id string) (*models.StudentDetail, error) {
	var cached models.StudentDetail
	if s.cache.Get(ctx, studentDetailKey(id), &cached) {
		return &cached, nil
	}

	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Storage(err, "load student")
	}

	members, err := s.family.ListByStudent(ctx, id)
	if err != nil {
		return nil, appErrors.Storage(err, "load family members")
	}
	records, err := s.discipline.ListByStudent(ctx, id)
	if err != nil {
		return nil, appErrors.Storage(err, "load discipline records")
	}

	detail := &models.StudentDetail{Student: *student, FamilyMembers: members, DisciplineRecords: records}
	s.cache.Set(ctx, studentDetailKey(id), detail)
	return detail, nil
}

// ListByTeam returns every student of a team with children attached. An unknown team yields an empty list.
func (s *StudentService) ListByTeam(ctx context.Context, teamID string) ([]models.StudentDetail, error) {
	var cached []models.StudentDetail
	if s.cache.Get(ctx, teamRosterKey(teamID), &cached) {
		return cached, nil
	}

	students, err := s.students.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, appErrors.Storage(err, "list students")
	}

	ids := make([]string, len(students))
	for i, st := range students {
		ids[i] = st.ID
	}
	members, err := s.family.ListByStudents(ctx, ids)
	if err != nil {
		return nil, appErrors.Storage(err, "load family members")
	}
	records, err := s.discipline.ListByStudents(ctx, ids)
	if err != nil {
		return nil, appErrors.Storage(err, "load discipline records")
	}

	details := make([]models.StudentDetail, 0, len(students))
	for _, st := range students {
		detail := models.StudentDetail{
			Student:           st,
			FamilyMembers:     members[st.ID],
			DisciplineRecords: records[st.ID],
		}
		if detail.FamilyMembers == nil {
			detail.FamilyMembers = []models.FamilyMember{}
		}
		if detail.DisciplineRecords == nil {
			detail.DisciplineRecords = []models.DisciplineRecord{}
		}
		details = append(details, detail)
	}

	s.cache.Set(ctx, teamRosterKey(teamID), details)
	return details, nil
}

// Create registers a student with a zero score and inserts every valid child entry.
func (s *StudentService) Create(ctx context.Context, req dto.StudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid student payload")
	}
	teamID := strings.TrimSpace(req.TeamID)
	if teamID == "" {
		return nil, requiredField("team_id", "invalid student payload")
	}

	courseID, err := s.resolveCourse(ctx, teamID, strings.TrimSpace(req.CourseID))
	if err != nil {
		return nil, err
	}

	student := &models.Student{ID: s.newID(), TeamID: teamID, CourseID: courseID}
	req.Apply(student)
	defer s.cache.Invalidate(ctx, teamRosterKey(teamID))

	if err := s.students.Create(ctx, student); err != nil {
		return nil, appErrors.Storage(err, "create student")
	}
	if err := s.reconcileChildren(ctx, student.ID, req); err != nil {
		return nil, err
	}

	s.logger.Info("student created", zap.String("student_id", student.ID), zap.String("team_id", teamID))
	return student, nil
}

// Update overwrites the scalar fields of a student and reconciles the child collections that were submitted.
// Omitted team and course keep their stored values. The score is only written when supplied.
func (s *StudentService) Update(ctx context.Context, id string, req dto.StudentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid student payload")
	}

	existing, err := s.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Storage(err, "load student")
	}

	student := *existing
	teamID := strings.TrimSpace(req.TeamID)
	courseID := strings.TrimSpace(req.CourseID)
	if teamID == "" {
		teamID = existing.TeamID
	}
	if teamID != existing.TeamID || (courseID != "" && courseID != existing.CourseID) {
		resolved, err := s.resolveCourse(ctx, teamID, courseID)
		if err != nil {
			return err
		}
		student.TeamID = teamID
		student.CourseID = resolved
	}

	req.Apply(&student)
	if req.CurrentScore != nil {
		student.CurrentScore = *req.CurrentScore
	}

	defer s.cache.Invalidate(ctx, studentDetailKey(id), teamRosterKey(existing.TeamID), teamRosterKey(student.TeamID))

	if err := s.students.Update(ctx, &student); err != nil {
		return appErrors.Storage(err, "update student")
	}
	return s.reconcileChildren(ctx, id, req)
}

// Delete removes a student's discipline records, family members and the student row, in that order.
// Deleting an unknown id succeeds.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	keys := []string{studentDetailKey(id)}
	if existing, err := s.students.FindByID(ctx, id); err == nil {
		keys = append(keys, teamRosterKey(existing.TeamID))
	} else if !errors.Is(err, sql.ErrNoRows) {
		return appErrors.Storage(err, "load student")
	}
	defer s.cache.Invalidate(ctx, keys...)

	if err := s.discipline.DeleteByStudent(ctx, id); err != nil {
		return appErrors.Storage(err, "delete discipline records")
	}
	if err := s.family.DeleteByStudent(ctx, id); err != nil {
		return appErrors.Storage(err, "delete family members")
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return appErrors.Storage(err, "delete student")
	}
	return nil
}

// resolveCourse checks the team exists and returns the course the student belongs to.
func (s *StudentService) resolveCourse(ctx context.Context, teamID, courseID string) (string, error) {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", appErrors.Clone(appErrors.ErrNotFound, "team not found")
		}
		return "", appErrors.Storage(err, "load team")
	}
	if courseID == "" {
		return team.CourseID, nil
	}
	if courseID != team.CourseID {
		return "", appErrors.Clone(appErrors.ErrValidation, "invalid student payload: course_id does not match the team's course")
	}
	return courseID, nil
}

// reconcileChildren syncs each child collection present in the request. Absent collections are left alone.
func (s *StudentService) reconcileChildren(ctx context.Context, studentID string, req dto.StudentRequest) error {
	if req.FamilyMembers != nil {
		members := make([]models.FamilyMember, 0, len(*req.FamilyMembers))
		for _, in := range *req.FamilyMembers {
			members = append(members, in.Model(studentID))
		}
		if _, err := reconcile.Reconcile(ctx, s.engine, s.familyRelation(), studentID, members); err != nil {
			return appErrors.Storage(err, "save family members")
		}
	}

	if req.DisciplineRecords != nil {
		today := s.now().Format(dateLayout)
		records := make([]models.DisciplineRecord, 0, len(*req.DisciplineRecords))
		for _, in := range *req.DisciplineRecords {
			records = append(records, in.Model(studentID, today))
		}
		if _, err := reconcile.Reconcile(ctx, s.engine, s.disciplineRelation(), studentID, records); err != nil {
			return appErrors.Storage(err, "save discipline records")
		}
	}
	return nil
}
