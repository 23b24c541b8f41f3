package domain

import "time"

// User is keyed by its email address: the email doubles as the primary key
// and as the JWT subject, so it must be normalized (lowercased, trimmed)
// before it is ever used as a lookup key.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:255"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Name         string    `json:"name" gorm:"not null;size:100"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
