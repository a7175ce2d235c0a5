package entity

import (
	"time"

	"github.com/google/uuid"
)

// Moderator reviews submissions and inquiries.
type Moderator struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
