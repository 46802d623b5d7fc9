package memory

import (
	"sync"
	"time"

	"ai-careercompass-be/pkg/catalog"
	"ai-careercompass-be/pkg/survey"

	"github.com/google/uuid"
)

// SessionRecord is the state captured at session begin and consumed exactly
// once at resolve. Mutated only by the store.
type SessionRecord struct {
	Jobs      []catalog.JobPosting
	Questions []survey.Question
	Keywords  string
	Location  string
	CreatedAt time.Time
}

// SessionStore holds at most one record per session id, bounded by a TTL.
// No persistence across restarts. Expired entries are swept lazily on every
// Insert and Take, so no background timer is needed; records are therefore
// unreachable the moment their TTL passes even if a sweep hasn't run yet.
type SessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*SessionRecord

	now func() time.Time // injectable for tests
}

const DefaultTTL = 600 * time.Second

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionStore{
		ttl:     ttl,
		entries: make(map[string]*SessionRecord),
		now:     time.Now,
	}
}

// Insert stores the record under a fresh 128-bit random identifier and stamps
// its creation time. The identifier is opaque to callers.
func (s *SessionStore) Insert(record *SessionRecord) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	id := uuid.NewString()
	record.CreatedAt = now
	s.entries[id] = record
	return id
}

// Take atomically looks up and removes the record: one-shot semantics. Under
// concurrent calls with the same identifier exactly one caller gets the
// record; everyone else sees a miss. Unknown, already-taken, and expired
// identifiers are indistinguishable.
func (s *SessionStore) Take(sessionId string) (*SessionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(s.now())

	record, ok := s.entries[sessionId]
	if !ok {
		return nil, false
	}
	delete(s.entries, sessionId)
	return record, true
}

// Len reports the number of live sessions, for logging.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// sweepLocked drops every record older than the TTL. O(live sessions), which
// stays small because liveness is bounded by TTL x request rate.
func (s *SessionStore) sweepLocked(now time.Time) {
	for id, record := range s.entries {
		if now.Sub(record.CreatedAt) > s.ttl {
			delete(s.entries, id)
		}
	}
}
