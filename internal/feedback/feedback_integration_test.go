//go:build integration
// +build integration

// The build tag 'integration' allows separating integration tests from unit tests.
// Run unit tests with: go test ./...
// Run integration tests with: go test -tags=integration ./...

package feedback

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

func TestPublishConsumeRating(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rabbitmqContainer, err := rabbitmq.RunContainer(ctx,
		testcontainers.WithImage("rabbitmq:3.11-management"),
	)
	require.NoError(t, err, "Failed to start RabbitMQ container")
	defer func() {
		if err := rabbitmqContainer.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate RabbitMQ container: %v", err)
		}
	}()

	connStr, err := rabbitmqContainer.AmqpURL(ctx)
	require.NoError(t, err, "Failed to get RabbitMQ AMQP URL")

	publisher, err := NewRabbitMQPublisher(connStr)
	require.NoError(t, err, "Failed to create rating publisher")
	defer publisher.Close()

	receiver, err := NewRabbitMQReceiver(connStr)
	require.NoError(t, err, "Failed to create rating receiver")
	defer receiver.Close()

	log, err := NewRatingLog(filepath.Join(t.TempDir(), "ratings.json"))
	require.NoError(t, err)

	worker := NewWorker(receiver, log)
	go worker.Run()

	rating := Rating{
		Timestamp: time.Now().UTC(),
		Message:   "what is the leave policy",
		Response:  "Annual leave is 16 days per year.",
		Rating:    5,
		Feedback:  "clear answer",
	}
	require.NoError(t, publisher.PublishRating(ctx, rating))

	assert.Eventually(t, func() bool {
		ratings, err := log.Read()
		return err == nil && len(ratings) == 1 && ratings[0].Message == rating.Message
	}, time.Minute, 100*time.Millisecond, "rating never reached the log")
}
