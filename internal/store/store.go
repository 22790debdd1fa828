// Package store provides in-memory persistence for accepted submissions.
//
// It is an explicit stand-in for durable storage: the Store interface is the
// contract a real database implementation would satisfy without touching the
// handlers.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ShadowHD6/Model-Submission-Forum/internal/model"
)

// Store defines the persistence contract for accepted submissions.
type Store interface {
	Save(sub model.SubmissionWithImage) model.StoredSubmission
	List() []model.StoredSubmission
	GetByID(id string) (model.StoredSubmission, bool)
}

type entry struct {
	sub model.StoredSubmission
	seq uint64
}

// Memory is a process-lifetime Store backed by a mutex-guarded map.
// No eviction, no size bound.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	seq     uint64
}

// NewMemory initializes an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry)}
}

// Save assigns an identifier and timestamp and stores the submission.
func (m *Memory) Save(sub model.SubmissionWithImage) model.StoredSubmission {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := model.StoredSubmission{
		SubmissionWithImage: sub,
		ID:                  uuid.NewString(),
		SubmittedAt:         time.Now(),
	}
	m.seq++
	m.entries[stored.ID] = entry{sub: stored, seq: m.seq}
	return stored
}

// List returns all stored submissions, most recent first. Entries saved
// within the same clock tick are ordered by insertion, newest first.
func (m *Memory) List() []model.StoredSubmission {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]entry, 0, len(m.entries))
	for _, e := range m.entries {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].sub.SubmittedAt.Equal(all[j].sub.SubmittedAt) {
			return all[i].sub.SubmittedAt.After(all[j].sub.SubmittedAt)
		}
		return all[i].seq > all[j].seq
	})

	out := make([]model.StoredSubmission, len(all))
	for i, e := range all {
		out[i] = e.sub
	}
	return out
}

// GetByID looks up a stored submission by its identifier.
func (m *Memory) GetByID(id string) (model.StoredSubmission, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	return e.sub, ok
}
