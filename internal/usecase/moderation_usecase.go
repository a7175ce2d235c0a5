package usecase

import (
	"context"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"

	"github.com/google/uuid"
)

// LoginResult carries the moderator access token
type LoginResult struct {
	AccessToken string            `json:"access_token"`
	ExpiresIn   int64             `json:"expires_in"`
	Moderator   *entity.Moderator `json:"moderator"`
}

// PendingBusiness is a business awaiting review with its submission record
type PendingBusiness struct {
	Business   *entity.Business   `json:"business"`
	Submission *entity.Submission `json:"submission,omitempty"`
}

// ModerationUsecase defines the moderator workflows
type ModerationUsecase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// CreateModerator registers a moderator account
	CreateModerator(ctx context.Context, email, name, password string) (*entity.Moderator, error)

	ListPending(ctx context.Context, page repository.Page) ([]*PendingBusiness, error)

	// Approve makes a business publicly visible
	Approve(ctx context.Context, id uuid.UUID) error

	// Reject deletes a business and its uploaded image
	Reject(ctx context.Context, id uuid.UUID) error

	ListInquiries(ctx context.Context, status entity.InquiryStatus, page repository.Page) ([]*entity.Inquiry, error)

	MarkInquiryHandled(ctx context.Context, id uuid.UUID) error
}
