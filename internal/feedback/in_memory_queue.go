package feedback

import (
	"context"
	"encoding/json"
)

type inMemoryTask struct {
	queue   string
	payload []byte
}

func (t *inMemoryTask) Type() string {
	return t.queue
}

func (t *inMemoryTask) Payload() []byte {
	return t.payload
}

func (t *inMemoryTask) Ack() error {
	return nil
}

func (t *inMemoryTask) Nack() error {
	return nil
}

func (t *inMemoryTask) Reject() error {
	return nil
}

// InMemoryQueue is both Publisher and Receiver for single-process
// deployments without a broker.
type InMemoryQueue struct {
	tasks chan Task
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		tasks: make(chan Task, 100),
	}
}

func (q *InMemoryQueue) PublishRating(_ context.Context, rating Rating) error {
	data, err := json.Marshal(rating)
	if err != nil {
		return err
	}

	q.tasks <- &inMemoryTask{queue: RatingQueue, payload: data}

	return nil
}

func (q *InMemoryQueue) Tasks() <-chan Task {
	return q.tasks
}

func (q *InMemoryQueue) Close() {
	if q.tasks != nil {
		close(q.tasks)
		q.tasks = nil
	}
}
