package session

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	payload   Payload
	expiresAt time.Time
}

// MemoryStore implements Store in process memory. Intended for tests and
// single-process development setups; expired records are dropped lazily on
// read.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord

	// now is replaceable in tests to exercise expiry without sleeping.
	now func() time.Time
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]memoryRecord),
		now:     time.Now,
	}
}

func (m *MemoryStore) Set(ctx context.Context, id string, payload Payload, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[id] = memoryRecord{
		payload:   payload,
		expiresAt: m.now().Add(ttl),
	}
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Payload, error) {
	m.mu.RLock()
	record, ok := m.records[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if m.now().After(record.expiresAt) {
		m.mu.Lock()
		delete(m.records, id)
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	payload := record.payload
	return &payload, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, id)
	return nil
}

var _ Store = (*MemoryStore)(nil)
