package pubsub

import (
	"context"
	"testing"

	"bcraftd/config"
	"bcraftd/internal/domain/constants"
	"bcraftd/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublisherParams(pubsubCfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: pubsubCfg},
		Logger: testLogger(),
	}
}

func TestNewEventPublisher_DefaultsToNoop(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{
		nil,
		{Provider: ""},
		{Provider: constants.PubSubProviderNone},
	} {
		publisher, err := NewEventPublisher(newPublisherParams(cfg))

		require.NoError(t, err)
		require.NotNil(t, publisher)

		// Publishing through the no-op must be side-effect free.
		assert.NoError(t, publisher.PublishUserEvent(context.Background(), &service.UserEvent{
			EventID:   "e-1",
			EventType: service.UserEventLogin,
		}))
		assert.NoError(t, publisher.Close())
	}
}

func TestNewEventPublisher_LocalRequiresEndpoint(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(&config.PubSubConfig{
		Provider: constants.PubSubProviderLocal,
	}))

	require.Error(t, err)
	assert.Nil(t, publisher)
	assert.Contains(t, err.Error(), "local endpoint is required")
}

func TestNewEventPublisher_GoogleRequiresProjectAndTopic(t *testing.T) {
	_, err := NewEventPublisher(newPublisherParams(&config.PubSubConfig{
		Provider: constants.PubSubProviderGoogle,
		TopicID:  "user-events",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project ID is required")

	_, err = NewEventPublisher(newPublisherParams(&config.PubSubConfig{
		Provider:  constants.PubSubProviderGoogle,
		ProjectID: "test-project",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic ID is required")
}

func TestNewEventPublisher_UnknownProvider(t *testing.T) {
	_, err := NewEventPublisher(newPublisherParams(&config.PubSubConfig{
		Provider: "kafka",
	}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pubsub provider")
}
