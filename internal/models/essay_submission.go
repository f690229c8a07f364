package models

import "time"

type EssaySubmission struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	TeamName string      `gorm:"size:100;not null" json:"team_name"`
	Subtheme string      `gorm:"size:200;not null" json:"subtheme"`
	Author   Participant `gorm:"embedded;embeddedPrefix:author_" json:"author"`

	EssayFileID  string `gorm:"size:255;not null" json:"essay_file_id"`
	EssayFileURL string `gorm:"size:512;not null" json:"essay_file_url"`

	CreatedAt time.Time `json:"created_at"`
}
