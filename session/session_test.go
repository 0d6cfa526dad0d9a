package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/showroom/agent"
)

func TestWithSessionLazyCreate(t *testing.T) {
	store := NewInMemoryStore()

	err := store.WithSession("s1", func(sess *agent.Session) error {
		assert.Equal(t, "s1", sess.ID)
		assert.Empty(t, sess.History)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, store.IDs())
}

func TestWithSessionStatePersistsAcrossCalls(t *testing.T) {
	store := NewInMemoryStore()

	_ = store.WithSession("s1", func(sess *agent.Session) error {
		sess.Learn("hi", agent.ReasoningRecord{Action: agent.ActionGeneralQuery, Confidence: 0.5},
			agent.Observation{ActionSuccessful: true}, "hello")
		return nil
	})

	_ = store.WithSession("s1", func(sess *agent.Session) error {
		assert.Len(t, sess.History, 1)
		return nil
	})
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewInMemoryStore()

	_ = store.WithSession("a", func(sess *agent.Session) error {
		sess.Learn("hi", agent.ReasoningRecord{Action: agent.ActionGeneralQuery},
			agent.Observation{ActionSuccessful: true}, "hello")
		return nil
	})

	_ = store.WithSession("b", func(sess *agent.Session) error {
		assert.Empty(t, sess.History)
		return nil
	})
}

func TestConcurrentTurnsSerializePerSession(t *testing.T) {
	store := NewInMemoryStore()
	const workers = 16
	const turns = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < turns; i++ {
				_ = store.WithSession("shared", func(sess *agent.Session) error {
					sess.Learn("hi", agent.ReasoningRecord{Action: agent.ActionGeneralQuery, Confidence: 0.5},
						agent.Observation{ActionSuccessful: true}, "hello")
					return nil
				})
			}
		}()
	}
	wg.Wait()

	snapshot := store.Snapshot("shared")
	assert.Equal(t, workers*turns, snapshot.TotalInteractions)
	assert.InDelta(t, 1.0, snapshot.OverallSuccess, 0.0001)
}

func TestDelete(t *testing.T) {
	store := NewInMemoryStore()
	_ = store.WithSession("s1", func(*agent.Session) error { return nil })

	store.Delete("s1")
	assert.Empty(t, store.IDs())
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
