package usecase

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatSuggestion links a reply to a business
type ChatSuggestion struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category entity.Category `json:"category"`
	Address  string          `json:"address"`
	Phone    string          `json:"phone"`
}

// ChatReply is the answer to one chat message
type ChatReply struct {
	Message     string            `json:"message"`
	Suggestions []*ChatSuggestion `json:"suggestions"`
}

// ChatUsecase answers chat messages and records requests for moderators
type ChatUsecase interface {
	// Reply answers a free-text message
	Reply(ctx context.Context, message string) (*ChatReply, error)

	// SubmitInquiry stores a request and returns the acknowledgement text
	SubmitInquiry(ctx context.Context, message, contact string) (*entity.Inquiry, string, error)
}
