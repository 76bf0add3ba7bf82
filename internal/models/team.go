package models

// Team groups students inside a course together with its command chain.
type Team struct {
	ID                   string `db:"id" json:"id"`
	CourseID             string `db:"course_id" json:"course_id"`
	Name                 string `db:"name" json:"name"`
	Commander            string `db:"commander" json:"commander"`
	CommanderRank        string `db:"commander_rank" json:"commander_rank"`
	CommanderContact     string `db:"commander_contact" json:"commander_contact"`
	SubCommander1        string `db:"sub_commander_1" json:"sub_commander_1"`
	SubCommander1Rank    string `db:"sub_commander_1_rank" json:"sub_commander_1_rank"`
	SubCommander1Contact string `db:"sub_commander_1_contact" json:"sub_commander_1_contact"`
	SubCommander2        string `db:"sub_commander_2" json:"sub_commander_2"`
	SubCommander2Rank    string `db:"sub_commander_2_rank" json:"sub_commander_2_rank"`
	SubCommander2Contact string `db:"sub_commander_2_contact" json:"sub_commander_2_contact"`
	SubCommander3        string `db:"sub_commander_3" json:"sub_commander_3"`
	SubCommander3Rank    string `db:"sub_commander_3_rank" json:"sub_commander_3_rank"`
	SubCommander3Contact string `db:"sub_commander_3_contact" json:"sub_commander_3_contact"`
}

// TeamFilter narrows team listings.
type TeamFilter struct {
	CourseID string
}
