package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission records who proposed a business and any special request attached to it.
type Submission struct {
	ID             uuid.UUID `json:"id"`
	BusinessID     uuid.UUID `json:"business_id"`
	SpecialRequest string    `json:"special_request,omitempty"`
	ContactName    string    `json:"contact_name,omitempty"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
