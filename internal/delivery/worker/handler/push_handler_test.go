package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bcraftd/config"
	"bcraftd/internal/domain/constants"
	"bcraftd/internal/domain/entity"
	"bcraftd/internal/domain/service"
	mockRepo "bcraftd/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockRepo.MockAuditEventRepository) {
	t.Helper()

	auditRepo := mockRepo.NewMockAuditEventRepository(t)
	handler := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuditRepo: auditRepo,
	})

	return handler, auditRepo
}

func newPushContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push/audit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// pushEnvelope wraps an event into the JSON body Pub/Sub sends to push
// endpoints: the payload base64-encoded under message.data.
func pushEnvelope(t *testing.T, event *service.UserEvent, attributes map[string]string) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/test/subscriptions/user-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushedEvent() *service.UserEvent {
	return &service.UserEvent{
		EventID:    uuid.New().String(),
		EventType:  service.UserEventRegistered,
		UserID:     7,
		UserUUID:   uuid.New().String(),
		Email:      "a@example.com",
		OccurredAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestPushHandler_HandlePush_PersistsEvent(t *testing.T) {
	handler, auditRepo := newTestPushHandler(t, &config.Config{})

	event := newPushedEvent()
	event.RequestID = "req-from-event"

	var persisted *entity.AuditEvent
	auditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AuditEvent")).
		Run(func(_ context.Context, record *entity.AuditEvent) { persisted = record }).
		Return(nil)

	c, rec := newPushContext(pushEnvelope(t, event, map[string]string{"request_id": "req-from-attrs"}))

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, persisted)
	assert.Equal(t, event.EventID, persisted.EventID.String())
	assert.Equal(t, service.UserEventRegistered, persisted.EventType)
	assert.Equal(t, int64(7), persisted.UserID)
	assert.Equal(t, event.UserUUID, persisted.UserUUID.String())
	assert.Equal(t, "a@example.com", persisted.Email)
	assert.True(t, persisted.OccurredAt.Equal(event.OccurredAt))

	// Message attributes win over the event payload for request correlation.
	assert.Equal(t, "req-from-attrs", persisted.RequestID)
}

func TestPushHandler_HandlePush_RequestIDFallsBackToEvent(t *testing.T) {
	handler, auditRepo := newTestPushHandler(t, &config.Config{})

	event := newPushedEvent()
	event.RequestID = "req-from-event"

	var persisted *entity.AuditEvent
	auditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AuditEvent")).
		Run(func(_ context.Context, record *entity.AuditEvent) { persisted = record }).
		Return(nil)

	c, rec := newPushContext(pushEnvelope(t, event, nil))

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, persisted)
	assert.Equal(t, "req-from-event", persisted.RequestID)
}

func TestPushHandler_HandlePush_GeneratesRequestID(t *testing.T) {
	handler, auditRepo := newTestPushHandler(t, &config.Config{})

	var persisted *entity.AuditEvent
	auditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AuditEvent")).
		Run(func(_ context.Context, record *entity.AuditEvent) { persisted = record }).
		Return(nil)

	c, rec := newPushContext(pushEnvelope(t, newPushedEvent(), nil))

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, persisted)

	_, err = uuid.Parse(persisted.RequestID)
	assert.NoError(t, err)
}

func TestPushHandler_HandlePush_MalformedBody(t *testing.T) {
	handler, _ := newTestPushHandler(t, &config.Config{})

	c, rec := newPushContext(`{"message":`)

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64(t *testing.T) {
	handler, _ := newTestPushHandler(t, &config.Config{})

	c, rec := newPushContext(`{"message":{"data":"%%%not-base64%%%","messageId":"m-1"},"subscription":"s"}`)

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_EventNotJSON(t *testing.T) {
	handler, _ := newTestPushHandler(t, &config.Config{})

	data := base64.StdEncoding.EncodeToString([]byte("not json"))
	c, rec := newPushContext(`{"message":{"data":"` + data + `","messageId":"m-1"},"subscription":"s"}`)

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_InvalidEventID(t *testing.T) {
	handler, _ := newTestPushHandler(t, &config.Config{})

	event := newPushedEvent()
	event.EventID = "not-a-uuid"

	c, rec := newPushContext(pushEnvelope(t, event, nil))

	err := handler.HandlePush(c)

	// Malformed events must not be redelivered.
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_EmptyEventType(t *testing.T) {
	handler, _ := newTestPushHandler(t, &config.Config{})

	event := newPushedEvent()
	event.EventType = ""

	c, rec := newPushContext(pushEnvelope(t, event, nil))

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_StorageFailureTriggersRetry(t *testing.T) {
	handler, auditRepo := newTestPushHandler(t, &config.Config{})

	auditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AuditEvent")).
		Return(assert.AnError)

	c, rec := newPushContext(pushEnvelope(t, newPushedEvent(), nil))

	err := handler.HandlePush(c)

	// 503 asks Pub/Sub to redeliver later.
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_UnsignedGooglePushRejected(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	handler, _ := newTestPushHandler(t, cfg)

	c, rec := newPushContext(pushEnvelope(t, newPushedEvent(), nil))

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRetryableError_Unwrap(t *testing.T) {
	wrapped := newRetryableError(assert.AnError)

	assert.True(t, isRetryableError(wrapped))
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.False(t, isRetryableError(assert.AnError))
}
