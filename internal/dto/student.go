package dto

import (
	"strings"

	"github.com/noah-isme/cadet-records-api/internal/models"
)

// FamilyMemberInput is one submitted family member. Entries without a full name are skipped.
type FamilyMemberInput struct {
	ID          string `json:"id"`
	Relation    string `json:"relation" validate:"omitempty,oneof=Father Mother Brother Sister Relative"`
	FullName    string `json:"fullName" validate:"max=255"`
	BirthDate   string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	BirthPlace  string `json:"birthPlace"`
	Address     string `json:"address"`
	Job         string `json:"job"`
	PhoneMobile string `json:"phoneMobile"`
	PhoneHome   string `json:"phoneHome"`
}

// Model maps the input to a row owned by studentID.
func (in FamilyMemberInput) Model(studentID string) models.FamilyMember {
	return models.FamilyMember{
		ID:          strings.TrimSpace(in.ID),
		StudentID:   studentID,
		Relation:    models.FamilyRelation(in.Relation),
		FullName:    strings.TrimSpace(in.FullName),
		BirthDate:   in.BirthDate,
		BirthPlace:  in.BirthPlace,
		Address:     in.Address,
		Job:         in.Job,
		PhoneMobile: in.PhoneMobile,
		PhoneHome:   in.PhoneHome,
	}
}

// DisciplineRecordInput is one submitted discipline entry. Entries without an event are skipped.
type DisciplineRecordInput struct {
	ID          string `json:"id"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Year        *int   `json:"year" validate:"omitempty,min=1900,max=3000"`
	Event       string `json:"event"`
	ScoreChange int    `json:"scoreChange"`
	Note        string `json:"note"`
}

// Model maps the input to a row owned by studentID. An empty date falls back to today.
func (in DisciplineRecordInput) Model(studentID, today string) models.DisciplineRecord {
	date := in.Date
	if date == "" {
		date = today
	}
	return models.DisciplineRecord{
		ID:          strings.TrimSpace(in.ID),
		StudentID:   studentID,
		Date:        date,
		Year:        in.Year,
		Event:       strings.TrimSpace(in.Event),
		ScoreChange: in.ScoreChange,
		Note:        in.Note,
	}
}

// StudentRequest is the create and update payload for a student.
// A nil child collection leaves stored children untouched, an empty one removes them all.
type StudentRequest struct {
	TeamID             string   `json:"team_id"`
	CourseID           string   `json:"course_id"`
	FirstName          string   `json:"first_name" validate:"required,notblank"`
	LastName           string   `json:"last_name" validate:"required,notblank"`
	FatherName         string   `json:"father_name" validate:"required,notblank"`
	BirthDate          string   `json:"birth_date" validate:"required,datetime=2006-01-02"`
	BirthPlace         string   `json:"birth_place"`
	RegisteredAddress  string   `json:"registered_address"`
	CurrentAddress     string   `json:"current_address"`
	WorkNumber         string   `json:"work_number"`
	OriginLocation     string   `json:"origin_location"`
	ServiceStartYear   *int     `json:"service_start_year" validate:"omitempty,min=1900,max=3000"`
	Position           string   `json:"position"`
	Rank               string   `json:"rank"`
	Awards             string   `json:"awards"`
	ForeignLanguages   string   `json:"foreign_languages"`
	SportsAchievements string   `json:"sports_achievements"`
	IDCardNumber       string   `json:"id_card_number"`
	ServiceCardNumber  string   `json:"service_card_number"`
	Email              string   `json:"email" validate:"required,notblank,email"`
	Phone              string   `json:"phone" validate:"required,notblank"`
	PhoneHome          string   `json:"phone_home"`
	Address            string   `json:"address"`
	EmergencyContact   string   `json:"emergency_contact"`
	MilitaryService    bool     `json:"military_service"`
	Height             *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight             *float64 `json:"weight" validate:"omitempty,gt=0"`
	PhotoURL           string   `json:"photo_url"`
	CurrentScore       *int     `json:"current_score"`

	FamilyMembers     *[]FamilyMemberInput     `json:"family_members" validate:"omitempty,dive"`
	DisciplineRecords *[]DisciplineRecordInput `json:"discipline_records" validate:"omitempty,dive"`
}

// Apply copies the scalar fields onto the student row. Team, course and score are left to the caller.
func (r StudentRequest) Apply(s *models.Student) {
	s.FirstName = strings.TrimSpace(r.FirstName)
	s.LastName = strings.TrimSpace(r.LastName)
	s.FatherName = strings.TrimSpace(r.FatherName)
	s.BirthDate = r.BirthDate
	s.BirthPlace = r.BirthPlace
	s.RegisteredAddress = r.RegisteredAddress
	s.CurrentAddress = r.CurrentAddress
	s.WorkNumber = r.WorkNumber
	s.OriginLocation = r.OriginLocation
	s.ServiceStartYear = r.ServiceStartYear
	s.Position = r.Position
	s.Rank = r.Rank
	s.Awards = r.Awards
	s.ForeignLanguages = r.ForeignLanguages
	s.SportsAchievements = r.SportsAchievements
	s.IDCardNumber = r.IDCardNumber
	s.ServiceCardNumber = r.ServiceCardNumber
	s.Email = strings.TrimSpace(r.Email)
	s.Phone = strings.TrimSpace(r.Phone)
	s.PhoneHome = r.PhoneHome
	s.Address = r.Address
	s.EmergencyContact = r.EmergencyContact
	s.MilitaryService = r.MilitaryService
	s.Height = r.Height
	s.Weight = r.Weight
	s.PhotoURL = r.PhotoURL
}
