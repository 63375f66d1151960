package client

import (
	"fmt"
	"time"

	"tutorlink/internal/domain/course"
)

// Storage keeps draft trees between invocations. Server IDs assigned during
// a sync are written back here immediately, so an interrupted push resumes
// on the update branch instead of duplicating entities.
type Storage interface {
	SaveDraft(d *course.Draft) error
	GetDraft(localID string) (*course.Draft, error)
	GetDraftByServerID(serverID int64) (*course.Draft, error)
	ListDrafts() ([]DraftInfo, error)
	DeleteDraft(localID string) error
	Close() error
}

// DraftInfo is the listing row for a stored draft.
type DraftInfo struct {
	LocalID   string
	ServerID  int64
	Title     string
	UpdatedAt time.Time
}

// MemoryStorage is the fallback when the on-disk store cannot be opened.
// Nothing survives the process, which is still enough to run one wizard
// flow end to end.
type MemoryStorage struct {
	drafts map[string]*course.Draft
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{drafts: make(map[string]*course.Draft)}
}

func (m *MemoryStorage) SaveDraft(d *course.Draft) error {
	m.drafts[d.LocalID] = d
	return nil
}

func (m *MemoryStorage) GetDraft(localID string) (*course.Draft, error) {
	d, ok := m.drafts[localID]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", localID, course.ErrNotFound)
	}
	return d, nil
}

func (m *MemoryStorage) GetDraftByServerID(serverID int64) (*course.Draft, error) {
	for _, d := range m.drafts {
		if d.ServerID == serverID {
			return d, nil
		}
	}
	return nil, fmt.Errorf("draft for course %d: %w", serverID, course.ErrNotFound)
}

func (m *MemoryStorage) ListDrafts() ([]DraftInfo, error) {
	out := make([]DraftInfo, 0, len(m.drafts))
	for _, d := range m.drafts {
		out = append(out, DraftInfo{LocalID: d.LocalID, ServerID: d.ServerID, Title: d.Title})
	}
	return out, nil
}

func (m *MemoryStorage) DeleteDraft(localID string) error {
	delete(m.drafts, localID)
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
