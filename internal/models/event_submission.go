package models

import "time"

const (
	EventWorkshop        = "workshop"
	EventDiscussionForum = "student-discussion-forum"
	EventNationalSummit  = "national-summit"
)

type EventSubmission struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	FullName            string `gorm:"size:100;not null" json:"full_name"`
	Email               string `gorm:"size:255;not null" json:"email"`
	PhoneNumber         string `gorm:"size:30;not null" json:"phone_number"`
	Institution         string `gorm:"size:200;not null" json:"institution"`
	EventKind           string `gorm:"size:50;not null" json:"event_kind"`
	SpecialRequirements string `gorm:"size:1000" json:"special_requirements,omitempty"`

	AttachmentFileID  string `gorm:"size:255" json:"attachment_file_id,omitempty"`
	AttachmentFileURL string `gorm:"size:512" json:"attachment_file_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
