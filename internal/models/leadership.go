package models

// Leadership is the single command profile attached to a course.
type Leadership struct {
	ID       string `db:"id" json:"id"`
	CourseID string `db:"course_id" json:"course_id"`
	FullName string `db:"full_name" json:"full_name"`
	Position string `db:"position" json:"position"`
	Rank     string `db:"rank" json:"rank"`
	Email    string `db:"email" json:"email"`
	Phone    string `db:"phone" json:"phone"`
	PhotoURL string `db:"photo_url" json:"photo_url"`
	Bio      string `db:"bio" json:"bio"`
}

// LeadershipStaff is a member of a course's leadership roster.
type LeadershipStaff struct {
	ID           string  `db:"id" json:"id"`
	CourseID     string  `db:"course_id" json:"course_id"`
	LeadershipID *string `db:"leadership_id" json:"leadership_id"`
	FullName     string  `db:"full_name" json:"full_name"`
	Position     string  `db:"position" json:"position"`
	Rank         string  `db:"rank" json:"rank"`
	Email        string  `db:"email" json:"email"`
	Phone        string  `db:"phone" json:"phone"`
	PhotoURL     string  `db:"photo_url" json:"photo_url"`
}

// LeadershipDetail is a leadership row with the course's staff roster.
type LeadershipDetail struct {
	Leadership
	StaffMembers []LeadershipStaff `json:"staff_members"`
}

// LeadershipSaveResult is returned by the leadership upsert.
type LeadershipSaveResult struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
}
