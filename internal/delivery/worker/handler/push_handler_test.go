package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"directorio/config"
	"directorio/internal/domain/constants"
	"directorio/internal/domain/service"
	"directorio/internal/infra/pubsub"
	mockSvc "directorio/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(tokens ...string) *config.Config {
	cfg := &config.Config{Notify: &config.NotifyConfig{ModeratorTokens: tokens}}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func newTestPushHandler(t *testing.T, cfg *config.Config, svc service.NotificationService) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: svc,
	})
}

func pushBody(t *testing.T, event *service.DirectoryEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(data),
			"attributes": attributes,
			"messageId":  "1",
		},
		"subscription": "projects/demo/subscriptions/directory-events",
	})
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.DirectoryEvent{
		Type:      service.EventSubmissionCreated,
		SubjectID: "b-1",
		Summary:   "Panadería La Espiga",
	}

	tests := []struct {
		name       string
		body       string
		tokens     []string
		setupMock  func(*mockSvc.MockNotificationService)
		wantStatus int
	}{
		{
			name:   "notifies moderators",
			body:   pushBody(t, event, nil),
			tokens: []string{"tok-1", " tok-2 ", ""},
			setupMock: func(m *mockSvc.MockNotificationService) {
				m.EXPECT().
					SendBatchNotification(mock.Anything, []string{"tok-1", "tok-2"}, "Nuevo negocio por revisar", "Panadería La Espiga",
						map[string]string{"type": "submission.created", "subject_id": "b-1"}).
					Return(1, 1, []string{"tok-2"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "send failure is retried",
			body:   pushBody(t, event, nil),
			tokens: []string{"tok-1"},
			setupMock: func(m *mockSvc.MockNotificationService) {
				m.EXPECT().
					SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(0, 0, nil, errors.New("fcm unavailable"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "no moderator devices",
			body:       pushBody(t, event, nil),
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown event type is dropped",
			body:       pushBody(t, &service.DirectoryEvent{Type: "business.deleted"}, nil),
			tokens:     []string{"tok-1"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			body:       `{"message":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       `{"message":{"data":"%%%"}}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mockSvc.NewMockNotificationService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			h := newTestPushHandler(t, testConfig(tt.tokens...), svc)

			rec := doPush(h, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_Batches(t *testing.T) {
	tokens := make([]string, batchSize+20)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok-%d", i)
	}

	svc := mockSvc.NewMockNotificationService(t)
	svc.EXPECT().
		SendBatchNotification(mock.Anything, mock.MatchedBy(func(batch []string) bool { return len(batch) == batchSize }),
			"Nueva consulta", "¿Horario del domingo?", mock.Anything).
		Return(batchSize, 0, nil, nil).Once()
	svc.EXPECT().
		SendBatchNotification(mock.Anything, mock.MatchedBy(func(batch []string) bool { return len(batch) == 20 }),
			"Nueva consulta", "¿Horario del domingo?", mock.Anything).
		Return(20, 0, nil, nil).Once()

	h := newTestPushHandler(t, testConfig(tokens...), svc)
	event := &service.DirectoryEvent{Type: service.EventInquiryCreated, SubjectID: "i-1", Summary: "¿Horario del domingo?"}

	rec := doPush(h, pushBody(t, event, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_NilNotificationService(t *testing.T) {
	h := newTestPushHandler(t, testConfig("tok-1"), nil)
	event := &service.DirectoryEvent{Type: service.EventBusinessApproved, SubjectID: "b-1"}

	rec := doPush(h, pushBody(t, event, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesTokenOutsideDevelop(t *testing.T) {
	cfg := testConfig("tok-1")
	cfg.Env.Env = "production"
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}

	h := newTestPushHandler(t, cfg, mockSvc.NewMockNotificationService(t))
	require.True(t, h.verifyPushAuth)
	h.verify = func(*http.Request) error { return errors.New("bad token") }

	rec := doPush(h, pushBody(t, &service.DirectoryEvent{Type: service.EventInquiryCreated}, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func pushMessageWithAttributes(attributes map[string]string) *pubsub.PushMessage {
	var msg pubsub.PushMessage
	msg.Message.Attributes = attributes

	return &msg
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h := newTestPushHandler(t, testConfig(), nil)

	tests := []struct {
		name       string
		attributes map[string]string
		event      *service.DirectoryEvent
		want       string
	}{
		{
			name:       "attribute wins",
			attributes: map[string]string{"request_id": "from-attr"},
			event:      &service.DirectoryEvent{RequestID: "from-event"},
			want:       "from-attr",
		},
		{
			name:  "event field",
			event: &service.DirectoryEvent{RequestID: "from-event"},
			want:  "from-event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			push := pushMessageWithAttributes(tt.attributes)
			assert.Equal(t, tt.want, h.extractRequestID(context.Background(), push, tt.event))
		})
	}

	generated := h.extractRequestID(context.Background(), pushMessageWithAttributes(nil), &service.DirectoryEvent{})
	assert.Len(t, generated, 36)
}
