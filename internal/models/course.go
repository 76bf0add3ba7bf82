package models

// Course is one intake of cadets moving through the training levels.
type Course struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Level     int    `db:"level" json:"level"`
	IsActive  bool   `db:"is_active" json:"is_active"`
	Archived  bool   `db:"archived" json:"archived"`
	StartYear *int   `db:"start_year" json:"start_year"`
	EndYear   *int   `db:"end_year" json:"end_year"`
	TeamCount int    `db:"team_count" json:"team_count"`
}

// CreateCourseRequest payload for opening a course.
type CreateCourseRequest struct {
	Name      string `json:"name" validate:"required,notblank"`
	Level     int    `json:"level" validate:"omitempty,min=1"`
	StartYear *int   `json:"start_year" validate:"omitempty,min=1900"`
	TeamCount int    `json:"team_count" validate:"omitempty,min=0,max=100"`
}

// PromotionResult summarises a yearly promotion run.
type PromotionResult struct {
	Skipped   bool    `json:"skipped,omitempty"`
	Promoted  int     `json:"promoted"`
	Archived  int     `json:"archived"`
	NewCourse *Course `json:"new_course,omitempty"`
}
