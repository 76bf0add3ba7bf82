package handler

import (
	"context"

	"github.com/noah-isme/cadet-records-api/internal/dto"
	"github.com/noah-isme/cadet-records-api/internal/models"
	"github.com/noah-isme/cadet-records-api/internal/service"
)

type authServiceMock struct {
	loginResp  *models.LoginResponse
	loginErr   error
	signupResp *models.SignupResponse
	signupErr  error
	profile    *models.UserInfo
	lastUserID string
}

func (m *authServiceMock) Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResponse, error) {
	return m.signupResp, m.signupErr
}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return m.loginResp, m.loginErr
}

func (m *authServiceMock) Profile(ctx context.Context, userID string) (*models.UserInfo, error) {
	m.lastUserID = userID
	return m.profile, nil
}

type studentServiceMock struct {
	detail     *models.StudentDetail
	getErr     error
	roster     []models.StudentDetail
	created    *models.Student
	createErr  error
	updateErr  error
	deleteErr  error
	lastID     string
	lastTeamID string
	lastReq    dto.StudentRequest
}

func (m *studentServiceMock) Get(ctx context.Context, id string) (*models.StudentDetail, error) {
	m.lastID = id
	return m.detail, m.getErr
}

func (m *studentServiceMock) ListByTeam(ctx context.Context, teamID string) ([]models.StudentDetail, error) {
	m.lastTeamID = teamID
	return m.roster, nil
}

func (m *studentServiceMock) Create(ctx context.Context, req dto.StudentRequest) (*models.Student, error) {
	m.lastReq = req
	return m.created, m.createErr
}

func (m *studentServiceMock) Update(ctx context.Context, id string, req dto.StudentRequest) error {
	m.lastID = id
	m.lastReq = req
	return m.updateErr
}

func (m *studentServiceMock) Delete(ctx context.Context, id string) error {
	m.lastID = id
	return m.deleteErr
}

type leadershipServiceMock struct {
	list       []models.LeadershipDetail
	saveResp   *models.LeadershipSaveResult
	saveErr    error
	deletedID  string
	lastCourse string
}

func (m *leadershipServiceMock) GetByCourse(ctx context.Context, courseID string) ([]models.LeadershipDetail, error) {
	m.lastCourse = courseID
	return m.list, nil
}

func (m *leadershipServiceMock) Save(ctx context.Context, req dto.LeadershipRequest) (*models.LeadershipSaveResult, error) {
	return m.saveResp, m.saveErr
}

func (m *leadershipServiceMock) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return nil
}

type teamServiceMock struct {
	teams      []models.Team
	lastFilter models.TeamFilter
	saved      *models.Team
	saveErr    error
}

func (m *teamServiceMock) List(ctx context.Context, filter models.TeamFilter) ([]models.Team, error) {
	m.lastFilter = filter
	return m.teams, nil
}

func (m *teamServiceMock) Save(ctx context.Context, req dto.SaveTeamRequest) (*models.Team, error) {
	return m.saved, m.saveErr
}

type rosterExporterMock struct {
	doc        *service.RosterDocument
	err        error
	lastFormat string
}

func (m *rosterExporterMock) Export(ctx context.Context, teamID, format string) (*service.RosterDocument, error) {
	m.lastFormat = format
	return m.doc, m.err
}

type courseServiceMock struct {
	courses   []models.Course
	created   *models.Course
	promotion *models.PromotionResult
	lastForce bool
}

func (m *courseServiceMock) List(ctx context.Context) ([]models.Course, error) {
	return m.courses, nil
}

func (m *courseServiceMock) Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	return m.created, nil
}

func (m *courseServiceMock) Promote(ctx context.Context, force bool) (*models.PromotionResult, error) {
	m.lastForce = force
	return m.promotion, nil
}

type tagServiceMock struct {
	tags     []models.Tag
	created  *models.Tag
	lastUser string
	lastID   string
}

func (m *tagServiceMock) List(ctx context.Context, userID string) ([]models.Tag, error) {
	m.lastUser = userID
	return m.tags, nil
}

func (m *tagServiceMock) Create(ctx context.Context, userID string, req models.TagRequest) (*models.Tag, error) {
	m.lastUser = userID
	return m.created, nil
}

func (m *tagServiceMock) Update(ctx context.Context, userID, id string, req models.TagRequest) error {
	m.lastUser, m.lastID = userID, id
	return nil
}

func (m *tagServiceMock) Delete(ctx context.Context, userID, id string) error {
	m.lastUser, m.lastID = userID, id
	return nil
}
