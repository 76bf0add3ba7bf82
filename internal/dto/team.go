package dto

import "github.com/noah-isme/cadet-records-api/internal/models"

// SaveTeamRequest upserts a team. A missing id creates a new team.
type SaveTeamRequest struct {
	ID                   string `json:"id" validate:"max=128"`
	CourseID             string `json:"course_id" validate:"required,notblank"`
	Name                 string `json:"name" validate:"required,notblank"`
	Commander            string `json:"commander"`
	CommanderRank        string `json:"commander_rank"`
	CommanderContact     string `json:"commander_contact"`
	SubCommander1        string `json:"sub_commander_1"`
	SubCommander1Rank    string `json:"sub_commander_1_rank"`
	SubCommander1Contact string `json:"sub_commander_1_contact"`
	SubCommander2        string `json:"sub_commander_2"`
	SubCommander2Rank    string `json:"sub_commander_2_rank"`
	SubCommander2Contact string `json:"sub_commander_2_contact"`
	SubCommander3        string `json:"sub_commander_3"`
	SubCommander3Rank    string `json:"sub_commander_3_rank"`
	SubCommander3Contact string `json:"sub_commander_3_contact"`
}

// Model maps the request to a team row.
func (r SaveTeamRequest) Model(id string) models.Team {
	return models.Team{
		ID:                   id,
		CourseID:             r.CourseID,
		Name:                 r.Name,
		Commander:            r.Commander,
		CommanderRank:        r.CommanderRank,
		CommanderContact:     r.CommanderContact,
		SubCommander1:        r.SubCommander1,
		SubCommander1Rank:    r.SubCommander1Rank,
		SubCommander1Contact: r.SubCommander1Contact,
		SubCommander2:        r.SubCommander2,
		SubCommander2Rank:    r.SubCommander2Rank,
		SubCommander2Contact: r.SubCommander2Contact,
		SubCommander3:        r.SubCommander3,
		SubCommander3Rank:    r.SubCommander3Rank,
		SubCommander3Contact: r.SubCommander3Contact,
	}
}

// TeamRosterExport selects the roster export format.
type TeamRosterExport struct {
	Format string `form:"format" validate:"omitempty,oneof=csv pdf"`
}
