package course

import (
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// Draft is the client-held course tree being authored. The backend owns the
// persisted course; a draft entity is identified by its client-generated
// LocalID until the create call for it succeeds, after which the
// server-assigned ID takes over. Exactly one of the two is authoritative at
// any moment: ServerID == 0 means the entity only exists locally.
type Draft struct {
	LocalID       string          `json:"local_id"`
	ServerID      int64           `json:"server_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category_id"`
	Language      string          `json:"language"`
	DurationHours int             `json:"duration_hours"`
	PriceMinor    int64           `json:"price_minor"`
	ThumbnailURL  string          `json:"thumbnail_url"`
	Sections      []*SectionDraft `json:"sections"`

	// Baseline is the last server-acknowledged field set, captured on pull
	// or after a successful update. Updates send only fields that differ
	// from it.
	Baseline *CoursePayload `json:"baseline,omitempty"`
}

type SectionDraft struct {
	LocalID     string         `json:"local_id"`
	ServerID    int64          `json:"server_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	OrderIndex  int            `json:"order_index"`
	Lessons     []*LessonDraft `json:"lessons"`

	Baseline *SectionPayload `json:"baseline,omitempty"`
}

type LessonDraft struct {
	LocalID         string           `json:"local_id"`
	ServerID        int64            `json:"server_id"`
	Title           string           `json:"title"`
	DurationMinutes int              `json:"duration_minutes"`
	Type            LessonType       `json:"lesson_type"`
	VideoURL        string           `json:"video_url,omitempty"`
	Content         string           `json:"content,omitempty"`
	OrderIndex      int              `json:"order_index"`
	Resources       []*ResourceDraft `json:"resources"`

	Baseline *LessonPayload `json:"baseline,omitempty"`
}

type ResourceDraft struct {
	LocalID  string       `json:"local_id"`
	ServerID int64        `json:"server_id"`
	Type     ResourceType `json:"resource_type"`
	Title    string       `json:"resource_title"`
	URL      string       `json:"resource_url"`

	Baseline *ResourcePayload `json:"baseline,omitempty"`
}

// NewLocalID generates a client-side identifier for a draft entity that has
// not been created on the server yet.
func NewLocalID() string {
	return uuid.NewString()
}

// Key returns the authoritative identity of the draft for lookups: the
// server ID once assigned, the local ID before that.
func (d *Draft) Key() string {
	if d.ServerID != 0 {
		return itoa(d.ServerID)
	}
	return d.LocalID
}

func (s *SectionDraft) Key() string {
	if s.ServerID != 0 {
		return itoa(s.ServerID)
	}
	return s.LocalID
}

func (l *LessonDraft) Key() string {
	if l.ServerID != 0 {
		return itoa(l.ServerID)
	}
	return l.LocalID
}

func (r *ResourceDraft) Key() string {
	if r.ServerID != 0 {
		return itoa(r.ServerID)
	}
	return r.LocalID
}

// OrderedSections returns the sections sorted by OrderIndex. The slice is a
// copy; the draft itself is not reordered.
func (d *Draft) OrderedSections() []*SectionDraft {
	out := make([]*SectionDraft, len(d.Sections))
	copy(out, d.Sections)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

// OrderedLessons returns the section's lessons sorted by OrderIndex.
func (s *SectionDraft) OrderedLessons() []*LessonDraft {
	out := make([]*LessonDraft, len(s.Lessons))
	copy(out, s.Lessons)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
