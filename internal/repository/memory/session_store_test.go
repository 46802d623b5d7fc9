package memory

import (
	"sync"
	"testing"
	"time"

	"ai-careercompass-be/pkg/catalog"

	"github.com/stretchr/testify/assert"
)

func TestTakeUnknownId(t *testing.T) {
	store := NewSessionStore(time.Minute)

	record, ok := store.Take("never-issued")

	assert.False(t, ok)
	assert.Nil(t, record)
}

func TestInsertThenTake(t *testing.T) {
	store := NewSessionStore(time.Minute)
	want := &SessionRecord{
		Jobs:     []catalog.JobPosting{{Id: "j1"}},
		Keywords: "python",
	}

	id := store.Insert(want)
	assert.NotEmpty(t, id)
	assert.False(t, want.CreatedAt.IsZero(), "insert must stamp creation time")

	got, ok := store.Take(id)
	assert.True(t, ok)
	assert.Same(t, want, got)
}

func TestTakeIsOneShot(t *testing.T) {
	store := NewSessionStore(time.Minute)
	id := store.Insert(&SessionRecord{})

	_, first := store.Take(id)
	_, second := store.Take(id)

	assert.True(t, first)
	assert.False(t, second, "a session is gone after the first take")
}

func TestTTLExpiry(t *testing.T) {
	store := NewSessionStore(600 * time.Second)
	base := time.Now()
	store.now = func() time.Time { return base }

	id := store.Insert(&SessionRecord{})

	// Just inside the TTL the record is still live.
	store.now = func() time.Time { return base.Add(599 * time.Second) }
	assert.Equal(t, 1, store.Len())

	store.now = func() time.Time { return base.Add(601 * time.Second) }
	_, ok := store.Take(id)
	assert.False(t, ok, "expired sessions read as unknown")
}

func TestSweepRunsOnInsert(t *testing.T) {
	store := NewSessionStore(time.Second)
	base := time.Now()
	store.now = func() time.Time { return base }

	store.Insert(&SessionRecord{})
	store.Insert(&SessionRecord{})
	assert.Equal(t, 2, store.Len())

	store.now = func() time.Time { return base.Add(2 * time.Second) }
	store.Insert(&SessionRecord{})

	assert.Equal(t, 1, store.Len(), "stale entries are evicted during insert")
}

func TestConcurrentTakeRace(t *testing.T) {
	store := NewSessionStore(time.Minute)
	id := store.Insert(&SessionRecord{})

	const callers = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := store.Take(id); ok {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count, "exactly one concurrent take may win")
}

func TestConcurrentInsertAndTake(t *testing.T) {
	store := NewSessionStore(time.Minute)

	var wg sync.WaitGroup
	ids := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- store.Insert(&SessionRecord{})
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "identifiers must be unique")
		seen[id] = true

		_, ok := store.Take(id)
		assert.True(t, ok)
	}
}
