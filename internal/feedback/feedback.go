package feedback

import (
	"context"
	"time"
)

const (
	RatingQueue     = "rating_queue"
	RetryDelay      = 5 * time.Second
	MaxConnectRetry = 5
)

// Rating is one user judgement of a bot answer. Ratings flow through a queue
// so submission never blocks on disk or broker latency.
type Rating struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Rating    int       `json:"rating"`
	Feedback  string    `json:"feedback,omitempty"`
}

type Task interface {
	Type() string

	Payload() []byte

	Ack() error

	Nack() error

	Reject() error
}

type Publisher interface {
	PublishRating(ctx context.Context, rating Rating) error

	Close()
}

type Receiver interface {
	Tasks() <-chan Task

	Close()
}
