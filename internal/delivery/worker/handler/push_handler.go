package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"directorio/config"
	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/constants"
	"directorio/internal/domain/service"
	"directorio/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const batchSize = 500

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns directory events into push notifications for moderator devices
type PushHandler struct {
	verifyPushAuth  bool
	verify          func(*http.Request) error
	logger          *slog.Logger
	notificationSvc service.NotificationService
	moderatorTokens []string
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; the local publisher does not
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var tokens []string
	if params.Config.Notify != nil {
		for _, token := range params.Config.Notify.ModeratorTokens {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		verify:          verifyPubSubToken,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		moderatorTokens: tokens,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode directory event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing directory event",
		slog.String("type", string(event.Type)),
		slog.String("subject_id", event.SubjectID),
	)

	if err := h.processEvent(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process directory event",
			slog.String("subject_id", event.SubjectID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; 200 drops a message that can never succeed
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.DirectoryEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent fans the event out to every moderator device
func (h *PushHandler) processEvent(ctx context.Context, event *service.DirectoryEvent) error {
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	title, ok := notificationTitle(event)
	if !ok {
		return errors.Errorf("unknown event type %q", event.Type)
	}

	if h.notificationSvc == nil || len(h.moderatorTokens) == 0 {
		log.Info("[Worker] No moderator devices to notify", slog.String("type", string(event.Type)))

		return nil
	}

	data := map[string]string{
		"type":       string(event.Type),
		"subject_id": event.SubjectID,
	}

	totalSent := 0
	totalFailed := 0
	var invalidTokens []string
	for idx := 0; idx < len(h.moderatorTokens); idx += batchSize {
		batch := h.moderatorTokens[idx:min(idx+batchSize, len(h.moderatorTokens))]

		sent, failed, invalid, err := h.notificationSvc.SendBatchNotification(ctx, batch, title, event.Summary, data)
		if err != nil {
			return newRetryableError(errors.Wrap(err, "failed to send batch"))
		}
		totalSent += sent
		totalFailed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		log.Warn("[Worker] Moderator tokens rejected by FCM, remove them from notify.moderatorTokens",
			slog.Int("count", len(invalidTokens)))
	}

	log.Info("[Worker] Notification sending completed",
		slog.String("subject_id", event.SubjectID),
		slog.Int("total_sent", totalSent),
		slog.Int("total_failed", totalFailed),
	)

	return nil
}

func notificationTitle(event *service.DirectoryEvent) (string, bool) {
	if event.Title != "" {
		return event.Title, true
	}

	switch event.Type {
	case service.EventSubmissionCreated:
		return "Nuevo negocio por revisar", true
	case service.EventInquiryCreated:
		return "Nueva consulta", true
	case service.EventBusinessApproved:
		return "Negocio aprobado", true
	default:
		return "", false
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
