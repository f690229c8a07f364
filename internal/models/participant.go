package models

// Participant holds the per-student contact block shared by every
// submission type. Embedded into submission rows with a column prefix so
// the persisted record stays fully flattened.
type Participant struct {
	FullName    string `gorm:"size:100;not null" json:"fullName"`
	StudentID   string `gorm:"size:20;not null" json:"studentId"`
	PhoneNumber string `gorm:"size:30;not null" json:"phoneNumber"`
	MessagingID string `gorm:"size:100;not null" json:"messagingId"`
	Email       string `gorm:"size:255;not null" json:"email"`
	Institution string `gorm:"size:200;not null" json:"institution"`
	Department  string `gorm:"size:200;not null" json:"department"`
}
