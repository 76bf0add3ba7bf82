package models

// Student is a cadet enrolled in a team. Dates are stored as YYYY-MM-DD strings.
type Student struct {
	ID                 string   `db:"id" json:"id"`
	TeamID             string   `db:"team_id" json:"team_id"`
	CourseID           string   `db:"course_id" json:"course_id"`
	FirstName          string   `db:"first_name" json:"first_name"`
	LastName           string   `db:"last_name" json:"last_name"`
	FatherName         string   `db:"father_name" json:"father_name"`
	BirthDate          string   `db:"birth_date" json:"birth_date"`
	BirthPlace         string   `db:"birth_place" json:"birth_place"`
	RegisteredAddress  string   `db:"registered_address" json:"registered_address"`
	CurrentAddress     string   `db:"current_address" json:"current_address"`
	WorkNumber         string   `db:"work_number" json:"work_number"`
	OriginLocation     string   `db:"origin_location" json:"origin_location"`
	ServiceStartYear   *int     `db:"service_start_year" json:"service_start_year"`
	Position           string   `db:"position" json:"position"`
	Rank               string   `db:"rank" json:"rank"`
	Awards             string   `db:"awards" json:"awards"`
	ForeignLanguages   string   `db:"foreign_languages" json:"foreign_languages"`
	SportsAchievements string   `db:"sports_achievements" json:"sports_achievements"`
	IDCardNumber       string   `db:"id_card_number" json:"id_card_number"`
	ServiceCardNumber  string   `db:"service_card_number" json:"service_card_number"`
	Email              string   `db:"email" json:"email"`
	Phone              string   `db:"phone" json:"phone"`
	PhoneHome          string   `db:"phone_home" json:"phone_home"`
	Address            string   `db:"address" json:"address"`
	EmergencyContact   string   `db:"emergency_contact" json:"emergency_contact"`
	MilitaryService    bool     `db:"military_service" json:"military_service"`
	Height             *float64 `db:"height" json:"height"`
	Weight             *float64 `db:"weight" json:"weight"`
	PhotoURL           string   `db:"photo_url" json:"photo_url"`
	CurrentScore       int      `db:"current_score" json:"current_score"`
}

// FullName joins the name parts the way rosters print them.
func (s Student) FullName() string {
	name := s.LastName
	if s.FirstName != "" {
		if name != "" {
			name += " "
		}
		name += s.FirstName
	}
	if s.FatherName != "" {
		name += " " + s.FatherName
	}
	return name
}

// StudentDetail is a student with both child collections attached.
type StudentDetail struct {
	Student
	FamilyMembers     []FamilyMember     `json:"family_members"`
	DisciplineRecords []DisciplineRecord `json:"discipline_records"`
}

// FamilyRelation enumerates accepted family relations.
type FamilyRelation string

const (
	RelationFather   FamilyRelation = "Father"
	RelationMother   FamilyRelation = "Mother"
	RelationBrother  FamilyRelation = "Brother"
	RelationSister   FamilyRelation = "Sister"
	RelationRelative FamilyRelation = "Relative"
)

// FamilyMember belongs to exactly one student.
type FamilyMember struct {
	ID          string         `db:"id" json:"id"`
	StudentID   string         `db:"student_id" json:"student_id"`
	Relation    FamilyRelation `db:"relation" json:"relation"`
	FullName    string         `db:"full_name" json:"full_name"`
	BirthDate   string         `db:"birth_date" json:"birth_date"`
	BirthPlace  string         `db:"birth_place" json:"birth_place"`
	Address     string         `db:"address" json:"address"`
	Job         string         `db:"job" json:"job"`
	PhoneMobile string         `db:"phone_mobile" json:"phone_mobile"`
	PhoneHome   string         `db:"phone_home" json:"phone_home"`
}

// DisciplineRecord is one entry of a student's conduct history.
type DisciplineRecord struct {
	ID          string `db:"id" json:"id"`
	StudentID   string `db:"student_id" json:"student_id"`
	Date        string `db:"date" json:"date"`
	Year        *int   `db:"year" json:"year"`
	Event       string `db:"event" json:"event"`
	ScoreChange int    `db:"score_change" json:"score_change"`
	Note        string `db:"note" json:"note"`
}
