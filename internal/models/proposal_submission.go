package models

import "time"

type ProposalSubmission struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	TeamName string      `gorm:"size:100;not null" json:"team_name"`
	Subtheme string      `gorm:"size:200;not null" json:"subtheme"`
	Author   Participant `gorm:"embedded;embeddedPrefix:author_" json:"author"`

	ProposalFileID  string `gorm:"size:255;not null" json:"proposal_file_id"`
	ProposalFileURL string `gorm:"size:512;not null" json:"proposal_file_url"`
	BoQFileID       string `gorm:"size:255;not null" json:"boq_file_id"`
	BoQFileURL      string `gorm:"size:512;not null" json:"boq_file_url"`

	CreatedAt time.Time `json:"created_at"`
}
