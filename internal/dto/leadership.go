package dto

import (
	"strings"

	"github.com/noah-isme/cadet-records-api/internal/models"
)

// StaffMemberInput is one submitted leadership staff entry. Submitted ids are not kept.
type StaffMemberInput struct {
	ID       string `json:"id"`
	FullName string `json:"fullName" validate:"max=255"`
	Position string `json:"position"`
	Rank     string `json:"rank"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photoUrl"`
}

// Model maps the input to a staff row of the course roster.
func (in StaffMemberInput) Model(courseID string, leadershipID *string) models.LeadershipStaff {
	return models.LeadershipStaff{
		ID:           strings.TrimSpace(in.ID),
		CourseID:     courseID,
		LeadershipID: leadershipID,
		FullName:     strings.TrimSpace(in.FullName),
		Position:     in.Position,
		Rank:         in.Rank,
		Email:        in.Email,
		Phone:        in.Phone,
		PhotoURL:     in.PhotoURL,
	}
}

// LeadershipRequest upserts a course leadership and replaces its staff roster.
type LeadershipRequest struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id" validate:"required,notblank"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
	Rank     string `json:"rank"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photo_url"`
	Bio      string `json:"bio"`

	StaffMembers *[]StaffMemberInput `json:"staff_members" validate:"omitempty,dive"`
}

// Apply copies the profile fields onto the leadership row.
func (r LeadershipRequest) Apply(l *models.Leadership) {
	l.FullName = strings.TrimSpace(r.FullName)
	l.Position = r.Position
	l.Rank = r.Rank
	l.Email = r.Email
	l.Phone = r.Phone
	l.PhotoURL = r.PhotoURL
	l.Bio = r.Bio
}
