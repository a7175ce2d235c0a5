package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/domain/validation"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type moderatorInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=200"`
	Password string `json:"password" validate:"min=8,max=72"`
}

type moderationService struct {
	moderatorRepo  repository.ModeratorRepository
	businessRepo   repository.BusinessRepository
	submissionRepo repository.SubmissionRepository
	inquiryRepo    repository.InquiryRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	images         service.ImageStore
	publisher      service.EventPublisher
	validator      *validation.Validator
	logger         *slog.Logger
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	ModeratorRepo  repository.ModeratorRepository
	BusinessRepo   repository.BusinessRepository
	SubmissionRepo repository.SubmissionRepository
	InquiryRepo    repository.InquiryRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Images         service.ImageStore
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewModerationService creates the moderator workflow.
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	return &moderationService{
		moderatorRepo:  params.ModeratorRepo,
		businessRepo:   params.BusinessRepo,
		submissionRepo: params.SubmissionRepo,
		inquiryRepo:    params.InquiryRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		images:         params.Images,
		publisher:      params.Publisher,
		validator:      validation.New(),
		logger:         params.Logger,
	}
}

func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the moderator's password and issues an access token.
func (srv *moderationService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	moderator, err := srv.moderatorRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrModeratorNotFound) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find moderator")
	}

	if !srv.hasher.Check(password, moderator.PasswordHash) {
		srv.log(ctx).Info("Rejected moderator login", slog.String("email", moderator.Email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	roles := entity.Roles{entity.RoleModerator}
	token, err := srv.tokenService.GenerateAccessToken(moderator.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginResult{
		AccessToken: token,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration() / time.Second),
		Moderator:   moderator,
	}, nil
}

// CreateModerator registers a moderator account.
func (srv *moderationService) CreateModerator(ctx context.Context, email, name, password string) (*entity.Moderator, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := srv.validator.Struct(moderatorInput{Email: email, Name: name, Password: password}); err != nil {
		return nil, errors.WithStack(err)
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	moderator := &entity.Moderator{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	}
	if err := srv.moderatorRepo.Create(ctx, moderator); err != nil {
		if errors.Is(err, repository.ErrDuplicateModerator) {
			return nil, errors.WithStack(domainerrors.ErrModeratorAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create moderator")
	}

	srv.log(ctx).Info("Moderator created", slog.String("moderatorID", moderator.ID.String()))

	return moderator, nil
}

// ListPending returns unapproved businesses with their submission notes.
func (srv *moderationService) ListPending(ctx context.Context, page repository.Page) ([]*usecase.PendingBusiness, error) {
	businesses, err := srv.businessRepo.ListPending(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending businesses")
	}

	out := make([]*usecase.PendingBusiness, 0, len(businesses))
	for _, b := range businesses {
		submission, err := srv.submissionRepo.FindByBusinessID(ctx, b.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find submission")
		}
		out = append(out, &usecase.PendingBusiness{Business: b, Submission: submission})
	}

	return out, nil
}

// Approve publishes a pending business.
func (srv *moderationService) Approve(ctx context.Context, id uuid.UUID) error {
	business, err := srv.findBusiness(ctx, id)
	if err != nil {
		return err
	}
	if business.IsApproved {
		return errors.WithStack(domainerrors.ErrBusinessAlreadyApproved)
	}

	if err := srv.businessRepo.SetApproved(ctx, id); err != nil {
		return errors.Wrap(err, "failed to approve business")
	}

	srv.log(ctx).Info("Business approved", slog.String("businessID", id.String()))

	event := &service.DirectoryEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventBusinessApproved,
		SubjectID:  id.String(),
		Title:      "Negocio aprobado",
		Summary:    business.Name,
		OccurredAt: time.Now().Unix(),
	}
	if err := srv.publisher.PublishDirectoryEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish approval event", slog.String("businessID", id.String()), slog.Any("error", err))
	}

	return nil
}

// Reject deletes a pending business and its stored image.
func (srv *moderationService) Reject(ctx context.Context, id uuid.UUID) error {
	business, err := srv.findBusiness(ctx, id)
	if err != nil {
		return err
	}
	if business.IsApproved {
		return errors.WithStack(domainerrors.ErrBusinessAlreadyApproved)
	}

	if err := srv.businessRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete business")
	}

	if key, ok := srv.images.KeyFromURL(business.ImageURL); ok {
		if err := srv.images.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to delete rejected business image", slog.String("key", key), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Business rejected", slog.String("businessID", id.String()))

	return nil
}

func (srv *moderationService) findBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, errors.WithStack(domainerrors.ErrBusinessNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

// ListInquiries returns inquiries with the given status, or all of them when status is empty.
func (srv *moderationService) ListInquiries(ctx context.Context, status entity.InquiryStatus, page repository.Page) ([]*entity.Inquiry, error) {
	inquiries, err := srv.inquiryRepo.List(ctx, status, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inquiries")
	}

	return inquiries, nil
}

// MarkInquiryHandled closes an inquiry.
func (srv *moderationService) MarkInquiryHandled(ctx context.Context, id uuid.UUID) error {
	err := srv.inquiryRepo.MarkHandled(ctx, id)
	if errors.Is(err, repository.ErrInquiryNotFound) {
		return errors.WithStack(domainerrors.ErrInquiryNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to mark inquiry handled")
	}

	return nil
}
