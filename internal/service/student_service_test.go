package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cadet-records-api/internal/dto"
	"github.com/noah-isme/cadet-records-api/internal/models"
	"github.com/noah-isme/cadet-records-api/internal/reconcile"
	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
)

type studentFixture struct {
	svc        *StudentService
	students   *fakeStudentRepo
	family     fakeFamilyRepo
	discipline fakeDisciplineRepo
	cache      *memoryCache
}

func newStudentFixture() *studentFixture {
	f := &studentFixture{
		students:   &fakeStudentRepo{students: map[string]models.Student{}},
		family:     fakeFamilyRepo{newFakeChildren(func(m models.FamilyMember) string { return m.ID })},
		discipline: fakeDisciplineRepo{newFakeChildren(func(r models.DisciplineRecord) string { return r.ID })},
		cache:      newMemoryCache(),
	}
	teams := newFakeTeamRepo(
		models.Team{ID: "t1", CourseID: "c1"},
		models.Team{ID: "t2", CourseID: "c2"},
	)
	cache := NewCacheService(f.cache, nil, time.Minute, nil, true)
	engine := reconcile.NewEngine(nil, reconcile.WithIDGenerator(sequentialIDs("child")))
	f.svc = NewStudentService(f.students, f.family, f.discipline, teams, engine, cache, nil, nil)
	f.svc.newID = sequentialIDs("s")
	return f
}

func TestStudentServiceCreateValidation(t *testing.T) {
	f := newStudentFixture()

	req := studentPayload()
	req.FirstName = ""
	req.Email = "not-an-email"
	_, err := f.svc.Create(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "first_name is required")
	assert.Contains(t, appErr.Message, "email must be a valid email")
	assert.Empty(t, f.students.students)
}

func TestStudentServiceCreateRejectsBadChildRelation(t *testing.T) {
	f := newStudentFixture()

	req := studentPayload()
	req.FamilyMembers = &[]dto.FamilyMemberInput{{FullName: "X", Relation: "Cousin"}}
	_, err := f.svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "relation must be one of")
}

func TestStudentServiceCreateRequiresTeam(t *testing.T) {
	f := newStudentFixture()

	req := studentPayload()
	req.TeamID = ""
	_, err := f.svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "invalid student payload: team_id is required", appErrors.FromError(err).Message)

	req.TeamID = "ghost"
	_, err = f.svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	req.TeamID = "t1"
	req.CourseID = "c2"
	_, err = f.svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestStudentServiceCreateZeroesScore(t *testing.T) {
	f := newStudentFixture()

	req := studentPayload()
	req.CurrentScore = intPtr(99)
	created, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "c1", created.CourseID)
	assert.Zero(t, f.students.students[created.ID].CurrentScore)
}

func TestStudentServiceUpdateUnknownStudent(t *testing.T) {
	f := newStudentFixture()

	req := studentPayload()
	req.FamilyMembers = &[]dto.FamilyMemberInput{{FullName: "X"}}
	err := f.svc.Update(context.Background(), "missing", req)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Zero(t, f.students.updates)
	assert.Empty(t, f.family.rows)
}

func TestStudentServiceGetUsesCache(t *testing.T) {
	f := newStudentFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, studentPayload())
	require.NoError(t, err)

	first, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, f.cache.values, "students:detail:"+created.ID)

	delete(f.students.students, created.ID)
	second, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, first.FirstName, second.FirstName)
}

func TestStudentServiceWritesInvalidateCache(t *testing.T) {
	f := newStudentFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, studentPayload())
	require.NoError(t, err)
	_, err = f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	_, err = f.svc.ListByTeam(ctx, "t1")
	require.NoError(t, err)

	update := studentPayload()
	update.TeamID = "t2"
	require.NoError(t, f.svc.Update(ctx, created.ID, update))

	assert.NotContains(t, f.cache.values, "students:detail:"+created.ID)
	assert.NotContains(t, f.cache.values, "students:team:t1")
	assert.Contains(t, f.cache.deleted, "students:team:t2")

	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.TeamID)
	assert.Equal(t, "c2", got.CourseID)
}

func TestStudentServiceCacheFailureDoesNotFailRead(t *testing.T) {
	f := newStudentFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, studentPayload())
	require.NoError(t, err)

	f.cache.getErr = errors.New("redis down")
	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestStudentServiceChildFailureSurfacesStorageError(t *testing.T) {
	f := newStudentFixture()
	f.discipline.insertErr = errors.New("CHECK constraint failed")

	req := studentPayload()
	req.FamilyMembers = &[]dto.FamilyMemberInput{{FullName: "Parent"}}
	req.DisciplineRecords = &[]dto.DisciplineRecordInput{{Date: "2024-01-01", Event: "Late"}}
	_, err := f.svc.Create(context.Background(), req)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, 500, appErr.Status)
	assert.Contains(t, appErr.Message, "save discipline records")
	assert.Contains(t, appErr.Message, "CHECK constraint failed")

	// Earlier writes stay in place.
	assert.Len(t, f.students.students, 1)
	assert.Len(t, f.family.rows["s-1"], 1)
}

func TestStudentServiceDeleteOrder(t *testing.T) {
	f := newStudentFixture()
	ctx := context.Background()

	req := studentPayload()
	req.FamilyMembers = &[]dto.FamilyMemberInput{{FullName: "Parent"}}
	req.DisciplineRecords = &[]dto.DisciplineRecordInput{{Date: "2024-01-01", Event: "Late"}}
	created, err := f.svc.Create(ctx, req)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))
	assert.Empty(t, f.students.students)
	assert.Empty(t, f.family.rows[created.ID])
	assert.Empty(t, f.discipline.rows[created.ID])

	require.NoError(t, f.svc.Delete(ctx, "never-existed"))
}
