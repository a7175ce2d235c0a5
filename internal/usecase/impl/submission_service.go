package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"directorio/config"
	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/hours"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/domain/validation"
	"directorio/internal/usecase"
	"directorio/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const msgNoOpenDay = "Debe seleccionar al menos un día de apertura"

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type submissionService struct {
	txManager     repository.TransactionManager
	images        service.ImageStore
	publisher     service.EventPublisher
	validator     *validation.Validator
	locale        hours.Locale
	directory     *config.DirectoryConfig
	maxImageBytes int64
	logger        *slog.Logger
}

// SubmissionServiceParams holds dependencies for SubmissionService, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Images    service.ImageStore
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSubmissionService creates the public business submission flow.
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	return &submissionService{
		txManager:     params.TxManager,
		images:        params.Images,
		publisher:     params.Publisher,
		validator:     validation.New(),
		locale:        hours.ParseLocale(params.Config.Directory.Locale),
		directory:     params.Config.Directory,
		maxImageBytes: params.Config.Storage.MaxImageBytes,
		logger:        params.Logger,
	}
}

func (srv *submissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates input, stores the optional image and records an unapproved business.
func (srv *submissionService) Submit(ctx context.Context, input *usecase.SubmissionInput, image *usecase.ImageUpload) (*entity.Business, error) {
	business, violations := srv.buildBusiness(input)
	if err := domainerrors.NewValidationError(violations...); err != nil {
		return nil, errors.WithStack(err)
	}

	img, err := srv.readImage(image)
	if err != nil {
		return nil, err
	}

	var imageKey string
	if img != nil {
		imageKey = "businesses/" + util.Checksum(img.data) + img.ext
		url, err := srv.images.Put(ctx, imageKey, img.contentType, bytes.NewReader(img.data))
		if err != nil {
			srv.log(ctx).Error("Failed to store business image", slog.String("key", imageKey), slog.Any("error", err))

			return nil, errors.WithStack(domainerrors.ErrImageStoreFailed)
		}
		business.ImageURL = url
	}

	submission := &entity.Submission{
		SpecialRequest: strings.TrimSpace(input.SpecialRequest),
		ContactName:    strings.TrimSpace(input.ContactName),
		ContactEmail:   strings.TrimSpace(input.ContactEmail),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewBusinessRepository().Create(ctx, business); err != nil {
			return errors.Wrap(err, "failed to create business")
		}

		submission.BusinessID = business.ID
		if err := repoFactory.NewSubmissionRepository().Create(ctx, submission); err != nil {
			return errors.Wrap(err, "failed to create submission")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute submission transaction", slog.String("name", business.Name), slog.Any("error", err))
		if imageKey != "" {
			if delErr := srv.images.Delete(ctx, imageKey); delErr != nil {
				srv.log(ctx).Warn("Failed to remove orphaned image", slog.String("key", imageKey), slog.Any("error", delErr))
			}
		}

		return nil, errors.Wrap(err, "failed to execute submission transaction")
	}

	srv.log(ctx).Info("Business submitted", slog.String("businessID", business.ID.String()), slog.String("name", business.Name))
	srv.publish(ctx, business)

	return business, nil
}

func (srv *submissionService) publish(ctx context.Context, business *entity.Business) {
	event := &service.DirectoryEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventSubmissionCreated,
		SubjectID:  business.ID.String(),
		Title:      "Nuevo negocio por revisar",
		Summary:    business.Name + " (" + business.Category.Label() + ")",
		OccurredAt: time.Now().Unix(),
	}
	if err := srv.publisher.PublishDirectoryEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish submission event", slog.String("businessID", business.ID.String()), slog.Any("error", err))
	}
}

// buildBusiness maps input onto a business, collecting every violation it finds.
func (srv *submissionService) buildBusiness(input *usecase.SubmissionInput) (*entity.Business, []domainerrors.FieldViolation) {
	var violations []domainerrors.FieldViolation
	if err := srv.validator.Struct(input); err != nil {
		var verr *domainerrors.ValidationError
		if errors.As(err, &verr) {
			violations = append(violations, verr.Violations()...)
		} else {
			violations = append(violations, domainerrors.FieldViolation{Field: "", Message: err.Error()})
		}
	}

	business := &entity.Business{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Address:     strings.TrimSpace(input.Address),
		City:        valueOr(input.City, srv.directory.DefaultCity),
		State:       valueOr(input.State, srv.directory.DefaultState),
		ZipCode:     valueOr(input.ZipCode, srv.directory.DefaultZipCode),
		Phone:       strings.TrimSpace(input.Phone),
		Email:       strings.TrimSpace(input.Email),
		Website:     strings.TrimSpace(input.Website),
		Tags:        cleanTags(input.Tags),
		IsApproved:  false,
	}
	if input.Latitude != nil {
		business.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		business.Longitude = *input.Longitude
	}

	if input.Category != "" {
		if c, ok := entity.ParseCategory(input.Category); ok {
			business.Category = c
		} else {
			violations = append(violations, domainerrors.FieldViolation{Field: "category", Message: "Categoría no válida"})
		}
	}

	business.Zone = entity.ZoneCentro
	if strings.TrimSpace(input.Zone) != "" {
		if z, ok := entity.ParseZone(input.Zone); ok {
			business.Zone = z
		} else {
			violations = append(violations, domainerrors.FieldViolation{Field: "location", Message: "Ubicación no válida"})
		}
	}

	if tier := entity.PriceTier(strings.TrimSpace(input.PriceRange)); tier != "" {
		if tier.IsValid() {
			business.PriceTier = &tier
		} else {
			violations = append(violations, domainerrors.FieldViolation{Field: "price_range", Message: "Rango de precio no válido"})
		}
	}

	schedule, hourViolations := srv.buildSchedule(input)
	business.Hours = schedule
	violations = append(violations, hourViolations...)

	return business, violations
}

// buildSchedule merges the day picker and raw descriptors into a normalised schedule.
func (srv *submissionService) buildSchedule(input *usecase.SubmissionInput) (hours.Schedule, []domainerrors.FieldViolation) {
	var violations []domainerrors.FieldViolation
	raw := make(map[string]string, len(input.Days)+len(input.Hours))

	for day, dh := range input.Days {
		if !dh.IsOpen {
			raw[day] = hours.Closed

			continue
		}
		desc, err := hours.FormatRange(dh.OpenTime, dh.CloseTime)
		if err != nil {
			violations = append(violations, domainerrors.FieldViolation{Field: "days." + day, Message: "Horario no válido"})

			continue
		}
		raw[day] = desc
	}
	for day, desc := range input.Hours {
		raw[day] = desc
	}

	if len(violations) > 0 {
		return nil, violations
	}

	schedule, err := hours.Normalize(srv.locale, raw)
	if err != nil {
		return nil, []domainerrors.FieldViolation{{Field: "hours", Message: scheduleMessage(err)}}
	}

	for day, desc := range schedule {
		if hours.IsClosed(desc) {
			continue
		}
		if r, err := hours.ParseRange(desc); err == nil && r.Open > r.Close {
			violations = append(violations, domainerrors.FieldViolation{
				Field:   "hours." + day,
				Message: "La hora de cierre debe ser posterior a la de apertura",
			})
		}
	}
	if !schedule.HasOpenDay() {
		violations = append(violations, domainerrors.FieldViolation{Field: "hours", Message: msgNoOpenDay})
	}
	slices.SortFunc(violations, func(a, b domainerrors.FieldViolation) int {
		return strings.Compare(a.Field, b.Field)
	})

	return schedule, violations
}

func scheduleMessage(err error) string {
	switch {
	case errors.Is(err, hours.ErrUnknownDay):
		return "Día no reconocido"
	case errors.Is(err, hours.ErrDuplicateDay):
		return "Día repetido"
	default:
		return "Horario no válido"
	}
}

type sniffedImage struct {
	data        []byte
	contentType string
	ext         string
}

// readImage enforces the size cap and sniffs the content type. A missing upload yields nil.
func (srv *submissionService) readImage(image *usecase.ImageUpload) (*sniffedImage, error) {
	if image == nil || image.Body == nil {
		return nil, nil
	}
	if image.Size > srv.maxImageBytes {
		return nil, errors.WithStack(domainerrors.ErrImageTooLarge.WithDetails("máximo " + util.FormatBytes(srv.maxImageBytes)))
	}

	data, err := io.ReadAll(io.LimitReader(image.Body, srv.maxImageBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}
	if int64(len(data)) > srv.maxImageBytes {
		return nil, errors.WithStack(domainerrors.ErrImageTooLarge.WithDetails("máximo " + util.FormatBytes(srv.maxImageBytes)))
	}
	if len(data) == 0 {
		return nil, nil
	}

	contentType, _, _ := strings.Cut(http.DetectContentType(data), ";")
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnsupportedImage.WithDetails(contentType))
	}

	return &sniffedImage{data: data, contentType: contentType, ext: ext}, nil
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}

	return fallback
}

// cleanTags trims, lowercases and deduplicates tags, keeping their order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}

	return out
}
