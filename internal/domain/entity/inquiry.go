package entity

import (
	"time"

	"github.com/google/uuid"
)

// InquiryStatus tracks moderator follow-up on a chat request.
type InquiryStatus string

const (
	InquiryStatusPending InquiryStatus = "pending"
	InquiryStatusHandled InquiryStatus = "handled"
)

// Inquiry is a free-text request left through the chat widget.
type Inquiry struct {
	ID        uuid.UUID     `json:"id"`
	Message   string        `json:"message"`
	Contact   string        `json:"contact,omitempty"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	HandledAt *time.Time    `json:"handled_at,omitempty"`
}
