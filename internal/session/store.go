package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

type Turn struct {
	User      string
	Bot       string
	Timestamp time.Time
}

type Session struct {
	Token     uuid.UUID
	CreatedAt time.Time
	Turns     []Turn
}

// Store owns all chat session state. Sessions live for the process lifetime
// or until explicitly deleted; nothing is persisted.
type Store interface {
	Create() (*Session, error)

	Get(token uuid.UUID) (*Session, error)

	Delete(token uuid.UUID) error

	AppendTurn(token uuid.UUID, turn Turn) error

	Count() int
}
