package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/cadet-records-api/internal/models"
	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
)

type fakeUserRepo struct {
	byID      map[string]*models.User
	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*models.User{}}
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.byID {
		if u.Email == strings.ToLower(email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.byID {
		if u.Email == user.Email {
			return errors.New("create user: constraint failed: UNIQUE constraint failed: users.email (2067)")
		}
	}
	clone := *user
	f.byID[user.ID] = &clone
	return nil
}

type fakeCourseRepo struct {
	courses map[string]models.Course
	order   []string
	listErr error
}

func newFakeCourseRepo(courses ...models.Course) *fakeCourseRepo {
	f := &fakeCourseRepo{courses: map[string]models.Course{}}
	for _, c := range courses {
		f.courses[c.ID] = c
		f.order = append(f.order, c.ID)
	}
	return f
}

func (f *fakeCourseRepo) List(ctx context.Context, activeOnly bool) ([]models.Course, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Course{}
	for _, id := range f.order {
		c := f.courses[id]
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseRepo) FindByID(ctx context.Context, id string) (*models.Course, error) {
	if c, ok := f.courses[id]; ok {
		return &c, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	f.courses[course.ID] = *course
	f.order = append(f.order, course.ID)
	return nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	f.courses[course.ID] = *course
	return nil
}

type fakeTeamRepo struct {
	teams     map[string]models.Team
	upsertErr error
}

func newFakeTeamRepo(teams ...models.Team) *fakeTeamRepo {
	f := &fakeTeamRepo{teams: map[string]models.Team{}}
	for _, t := range teams {
		f.teams[t.ID] = t
	}
	return f
}

func (f *fakeTeamRepo) List(ctx context.Context, filter models.TeamFilter) ([]models.Team, error) {
	out := []models.Team{}
	for _, t := range f.teams {
		if filter.CourseID != "" && t.CourseID != filter.CourseID {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTeamRepo) FindByID(ctx context.Context, id string) (*models.Team, error) {
	if t, ok := f.teams[id]; ok {
		return &t, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeTeamRepo) Upsert(ctx context.Context, team *models.Team) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.teams[team.ID] = *team
	return nil
}

type fakeTagRepo struct {
	tags map[string]models.Tag
}

func (f *fakeTagRepo) ListByUser(ctx context.Context, userID string) ([]models.Tag, error) {
	out := []models.Tag{}
	for _, t := range f.tags {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *fakeTagRepo) Create(ctx context.Context, tag *models.Tag) error {
	f.tags[tag.ID] = *tag
	return nil
}

func (f *fakeTagRepo) Update(ctx context.Context, tag *models.Tag) error {
	if existing, ok := f.tags[tag.ID]; ok && existing.UserID == tag.UserID {
		f.tags[tag.ID] = *tag
	}
	return nil
}

func (f *fakeTagRepo) Delete(ctx context.Context, id, userID string) error {
	if existing, ok := f.tags[id]; ok && existing.UserID == userID {
		delete(f.tags, id)
	}
	return nil
}

type fakeStudentRepo struct {
	students  map[string]models.Student
	updateErr error
	updates   int
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s, ok := f.students[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStudentRepo) ListByTeam(ctx context.Context, teamID string) ([]models.Student, error) {
	out := []models.Student{}
	for _, s := range f.students {
		if s.TeamID == teamID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return out, nil
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, student *models.Student) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id string) error {
	delete(f.students, id)
	return nil
}

// fakeChildren is a map-backed child store keyed by parent then child id.
type fakeChildren[C any] struct {
	rows      map[string]map[string]C
	id        func(C) string
	insertErr error
}

func newFakeChildren[C any](id func(C) string) *fakeChildren[C] {
	return &fakeChildren[C]{rows: map[string]map[string]C{}, id: id}
}

func (f *fakeChildren[C]) ExistingIDs(ctx context.Context, parentID string) ([]string, error) {
	ids := []string{}
	for id := range f.rows[parentID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeChildren[C]) Insert(ctx context.Context, parentID string, child C) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if f.rows[parentID] == nil {
		f.rows[parentID] = map[string]C{}
	}
	f.rows[parentID][f.id(child)] = child
	return nil
}

func (f *fakeChildren[C]) Update(ctx context.Context, parentID string, child C) error {
	f.rows[parentID][f.id(child)] = child
	return nil
}

func (f *fakeChildren[C]) Delete(ctx context.Context, parentID string, ids []string) error {
	for _, id := range ids {
		delete(f.rows[parentID], id)
	}
	return nil
}

func (f *fakeChildren[C]) list(parentID string) []C {
	ids, _ := f.ExistingIDs(context.Background(), parentID)
	out := make([]C, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.rows[parentID][id])
	}
	return out
}

type fakeFamilyRepo struct {
	*fakeChildren[models.FamilyMember]
}

func (f fakeFamilyRepo) ListByStudent(ctx context.Context, studentID string) ([]models.FamilyMember, error) {
	return f.list(studentID), nil
}

func (f fakeFamilyRepo) ListByStudents(ctx context.Context, ids []string) (map[string][]models.FamilyMember, error) {
	out := map[string][]models.FamilyMember{}
	for _, id := range ids {
		if rows := f.list(id); len(rows) > 0 {
			out[id] = rows
		}
	}
	return out, nil
}

func (f fakeFamilyRepo) DeleteByStudent(ctx context.Context, studentID string) error {
	delete(f.rows, studentID)
	return nil
}

type fakeDisciplineRepo struct {
	*fakeChildren[models.DisciplineRecord]
}

func (f fakeDisciplineRepo) ListByStudent(ctx context.Context, studentID string) ([]models.DisciplineRecord, error) {
	return f.list(studentID), nil
}

func (f fakeDisciplineRepo) ListByStudents(ctx context.Context, ids []string) (map[string][]models.DisciplineRecord, error) {
	out := map[string][]models.DisciplineRecord{}
	for _, id := range ids {
		if rows := f.list(id); len(rows) > 0 {
			out[id] = rows
		}
	}
	return out, nil
}

func (f fakeDisciplineRepo) DeleteByStudent(ctx context.Context, studentID string) error {
	delete(f.rows, studentID)
	return nil
}

// memoryCache stores raw values and counts key deletions.
type memoryCache struct {
	mu      sync.Mutex
	values  map[string]interface{}
	deleted []string
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]interface{}{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	switch d := dest.(type) {
	case *models.StudentDetail:
		*d = *(v.(*models.StudentDetail))
	case *[]models.StudentDetail:
		*d = v.([]models.StudentDetail)
	default:
		return errors.New("unsupported destination")
	}
	return nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}
