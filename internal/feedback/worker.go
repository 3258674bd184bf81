package feedback

import (
	"encoding/json"
	"log/slog"
)

// Worker drains the rating queue into the log. Malformed payloads are
// rejected rather than requeued; log write failures are nacked so the broker
// can redeliver.
type Worker struct {
	receiver Receiver
	log      *RatingLog
}

func NewWorker(receiver Receiver, log *RatingLog) *Worker {
	return &Worker{receiver: receiver, log: log}
}

// Run processes tasks until the receiver's channel closes.
func (w *Worker) Run() {
	for task := range w.receiver.Tasks() {
		w.process(task)
	}
	slog.Info("rating worker stopped")
}

func (w *Worker) process(task Task) {
	if task.Type() != RatingQueue {
		slog.Warn("received task from unknown queue, discarding", "queue", task.Type())
		if err := task.Reject(); err != nil {
			slog.Error("failed to reject task", "error", err)
		}
		return
	}

	var rating Rating
	if err := json.Unmarshal(task.Payload(), &rating); err != nil {
		slog.Error("failed to unmarshal rating, discarding", "error", err)
		if err := task.Reject(); err != nil {
			slog.Error("failed to reject task", "error", err)
		}
		return
	}

	if err := w.log.Append(rating); err != nil {
		slog.Error("failed to record rating", "error", err)
		if err := task.Nack(); err != nil {
			slog.Error("failed to nack task", "error", err)
		}
		return
	}

	if err := task.Ack(); err != nil {
		slog.Error("failed to ack task", "error", err)
	}
}
