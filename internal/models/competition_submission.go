package models

import "time"

const (
	CompetitionInnovativeEssay = "innovative-essay"
	CompetitionNationalTender  = "national-tender"
)

type CompetitionSubmission struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	TeamName        string      `gorm:"size:100;not null" json:"team_name"`
	CompetitionKind string      `gorm:"size:50;not null" json:"competition_kind"`
	Leader          Participant `gorm:"embedded;embeddedPrefix:leader_" json:"leader"`
	Member2         Participant `gorm:"embedded;embeddedPrefix:member2_" json:"member2"`
	Member3         Participant `gorm:"embedded;embeddedPrefix:member3_" json:"member3"`

	IDScanFileID      string `gorm:"size:255;not null" json:"id_scan_file_id"`
	IDScanFileURL     string `gorm:"size:512;not null" json:"id_scan_file_url"`
	PaymentProofID    string `gorm:"size:255;not null" json:"payment_proof_file_id"`
	PaymentProofURL   string `gorm:"size:512;not null" json:"payment_proof_file_url"`
	PromoProofFileID  string `gorm:"size:255;not null" json:"promo_proof_file_id"`
	PromoProofFileURL string `gorm:"size:512;not null" json:"promo_proof_file_url"`

	CreatedAt time.Time `json:"created_at"`
}
