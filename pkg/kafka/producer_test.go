package kafka

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberagenda/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
}

func TestNewProducer_RequiresBrokersAndTopic(t *testing.T) {
	_, err := NewProducer(nil, "appointment-events", testLogger())
	assert.Error(t, err)

	_, err = NewProducer([]string{"localhost:9092"}, "", testLogger())
	assert.Error(t, err)
}

func TestPublish_RejectsEmptyKeyAndValue(t *testing.T) {
	p, err := NewProducer([]string{"localhost:9092"}, "appointment-events", testLogger())
	require.NoError(t, err)
	defer p.Close()

	err = p.Publish(context.Background(), Message{Value: []byte("{}")})
	assert.ErrorIs(t, err, ErrEmptyKey)

	err = p.Publish(context.Background(), Message{Key: "b1"})
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestPublish_AfterClose(t *testing.T) {
	p, err := NewProducer([]string{"localhost:9092"}, "appointment-events", testLogger())
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close()) // closing twice is fine

	err = p.Publish(context.Background(), Message{Key: "b1", Value: []byte("{}")})
	assert.ErrorIs(t, err, ErrProducerClosed)
}
