package session

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.Create()
	require.NoError(t, err)
	second, err := store.Create()
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, 2, store.Count())

	got, err := store.Get(first.Token)
	require.NoError(t, err)
	assert.Empty(t, got.Turns)

	require.NoError(t, store.Delete(first.Token))
	assert.Equal(t, 1, store.Count())

	_, err = store.Get(first.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, store.Delete(uuid.New()), ErrSessionNotFound)
}

func TestAppendTurnOrdering(t *testing.T) {
	store := NewMemoryStore()
	sess, err := store.Create()
	require.NoError(t, err)

	for i, q := range []string{"first", "second", "third"} {
		err := store.AppendTurn(sess.Token, Turn{
			User:      q,
			Bot:       "answer",
			Timestamp: time.Now().Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	got, err := store.Get(sess.Token)
	require.NoError(t, err)
	require.Len(t, got.Turns, 3)
	assert.Equal(t, "first", got.Turns[0].User)
	assert.Equal(t, "second", got.Turns[1].User)
	assert.Equal(t, "third", got.Turns[2].User)

	assert.ErrorIs(t, store.AppendTurn(uuid.New(), Turn{}), ErrSessionNotFound)
}

func TestSnapshotIsolation(t *testing.T) {
	store := NewMemoryStore()
	sess, err := store.Create()
	require.NoError(t, err)

	require.NoError(t, store.AppendTurn(sess.Token, Turn{User: "q", Bot: "a"}))

	snap, err := store.Get(sess.Token)
	require.NoError(t, err)
	snap.Turns[0].User = "mutated"

	again, err := store.Get(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "q", again.Turns[0].User)
}

func TestConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	sess, err := store.Create()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.AppendTurn(sess.Token, Turn{User: "q", Bot: "a"})
		}()
	}
	wg.Wait()

	got, err := store.Get(sess.Token)
	require.NoError(t, err)
	assert.Len(t, got.Turns, 50)
}
