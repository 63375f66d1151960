package client

import (
	"context"
	"errors"
	"fmt"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"tutorlink/internal/domain/course"
)

// courseAPI is the slice of the HTTP adapter the synchronizer needs.
type courseAPI interface {
	CreateCourse(ctx context.Context, p course.CoursePayload) (int64, error)
	UpdateCourse(ctx context.Context, id int64, u course.CourseUpdate) error
	CreateSection(ctx context.Context, p course.SectionPayload) (int64, error)
	UpdateSection(ctx context.Context, id int64, u course.SectionUpdate) error
	CreateLesson(ctx context.Context, sectionID int64, p course.LessonPayload) (int64, error)
	UpdateLesson(ctx context.Context, id int64, u course.LessonUpdate) error
	CreateResource(ctx context.Context, lessonID int64, p course.ResourcePayload) (int64, error)
	UpdateResource(ctx context.Context, id int64, u course.ResourceUpdate) error
}

// ErrSyncInFlight is returned when a second sync is triggered while one is
// still running. The UI disables the trigger; this is the backstop.
var ErrSyncInFlight = errors.New("a sync is already in progress")

type EntityKind string

const (
	KindSection  EntityKind = "section"
	KindLesson   EntityKind = "lesson"
	KindResource EntityKind = "resource"
)

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeFailed  Outcome = "failed"
)

// EntityResult is one line of the per-entity log kept for the duration of a
// single run.
type EntityResult struct {
	Kind    EntityKind
	Ref     string // authoritative key at the time of the call
	Title   string
	Outcome Outcome
	Err     string
}

// SyncResult is the aggregate outcome of one synchronizer run. It is not
// persisted: a retry re-walks the whole tree and produces a fresh one.
type SyncResult struct {
	Entities  []EntityResult
	Failed    *EntityResult
	StartTime time.Time
	Duration  time.Duration
}

// Ok reports whether the whole tree synced.
func (r *SyncResult) Ok() bool {
	return r.Failed == nil
}

// Created counts entities created during the run.
func (r *SyncResult) Created() int {
	n := 0
	for _, e := range r.Entities {
		if e.Outcome == OutcomeCreated {
			n++
		}
	}
	return n
}

// Updated counts entities updated during the run.
func (r *SyncResult) Updated() int {
	n := 0
	for _, e := range r.Entities {
		if e.Outcome == OutcomeUpdated {
			n++
		}
	}
	return n
}

// Synchronizer reconciles a draft tree with the backend through ordered
// create/update calls: course first, then each section, its lessons, and
// their resources, strictly sequentially, because every child call needs
// the server ID returned by its parent's call.
//
// There is no rollback. On the first failed call the walk stops and the
// entities created so far stay created server-side; the failure is reported
// once and the caller may re-invoke, at which point entities holding a
// server ID take the update branch instead of being re-created.
type Synchronizer struct {
	api courseAPI
	log *slog.Logger

	// persist, when set, is called after every server-ID assignment so a
	// crash mid-walk cannot lose the create/update distinction.
	persist func(d *course.Draft) error

	mu       gosync.Mutex
	inFlight bool
}

func NewSynchronizer(api courseAPI, log *slog.Logger, persist func(*course.Draft) error) *Synchronizer {
	return &Synchronizer{
		api:     api,
		log:     log,
		persist: persist,
	}
}

// SyncContent walks the draft's sections (the course itself must already
// have a server ID) and issues the minimum ordered set of create/update
// calls. Exactly one attempt per call; no backoff.
func (s *Synchronizer) SyncContent(ctx context.Context, d *course.Draft) (*SyncResult, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrSyncInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if d.ServerID == 0 {
		return nil, course.ErrNoServerID
	}

	result := &SyncResult{StartTime: time.Now()}
	err := s.walk(ctx, d, result)
	result.Duration = time.Since(result.StartTime)

	s.log.Info("content sync finished",
		"course_id", d.ServerID,
		"created", result.Created(),
		"updated", result.Updated(),
		"ok", result.Ok(),
	)
	return result, err
}

func (s *Synchronizer) walk(ctx context.Context, d *course.Draft, result *SyncResult) error {
	for _, section := range d.OrderedSections() {
		if err := s.syncSection(ctx, d, section, result); err != nil {
			return err
		}
		for _, lesson := range section.OrderedLessons() {
			if err := s.syncLesson(ctx, d, section, lesson, result); err != nil {
				return err
			}
			for _, resource := range lesson.Resources {
				if err := s.syncResource(ctx, d, lesson, resource, result); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *Synchronizer) syncSection(ctx context.Context, d *course.Draft, sec *course.SectionDraft, result *SyncResult) error {
	if sec.ServerID == 0 {
		id, err := s.api.CreateSection(ctx, sec.Payload(d.ServerID))
		if err != nil {
			return s.fail(result, KindSection, sec.Key(), sec.Title, err)
		}
		sec.ServerID = id
		sec.RecordBaseline(d.ServerID)
		s.save(d)
		s.record(result, KindSection, sec.Key(), sec.Title, OutcomeCreated)
		return nil
	}

	if err := s.api.UpdateSection(ctx, sec.ServerID, sec.DiffSection()); err != nil {
		return s.fail(result, KindSection, sec.Key(), sec.Title, err)
	}
	sec.RecordBaseline(d.ServerID)
	s.save(d)
	s.record(result, KindSection, sec.Key(), sec.Title, OutcomeUpdated)
	return nil
}

func (s *Synchronizer) syncLesson(ctx context.Context, d *course.Draft, sec *course.SectionDraft, les *course.LessonDraft, result *SyncResult) error {
	// Invariant: the owning section was synced first, so it has an ID.
	if sec.ServerID == 0 {
		return course.ErrOrphanedLesson
	}

	if les.ServerID == 0 {
		id, err := s.api.CreateLesson(ctx, sec.ServerID, les.Payload())
		if err != nil {
			return s.fail(result, KindLesson, les.Key(), les.Title, err)
		}
		les.ServerID = id
		les.RecordBaseline()
		s.save(d)
		s.record(result, KindLesson, les.Key(), les.Title, OutcomeCreated)
		return nil
	}

	if err := s.api.UpdateLesson(ctx, les.ServerID, les.DiffLesson()); err != nil {
		return s.fail(result, KindLesson, les.Key(), les.Title, err)
	}
	les.RecordBaseline()
	s.save(d)
	s.record(result, KindLesson, les.Key(), les.Title, OutcomeUpdated)
	return nil
}

func (s *Synchronizer) syncResource(ctx context.Context, d *course.Draft, les *course.LessonDraft, res *course.ResourceDraft, result *SyncResult) error {
	if res.ServerID == 0 {
		id, err := s.api.CreateResource(ctx, les.ServerID, res.Payload())
		if err != nil {
			return s.fail(result, KindResource, res.Key(), res.Title, err)
		}
		res.ServerID = id
		res.RecordBaseline()
		s.save(d)
		s.record(result, KindResource, res.Key(), res.Title, OutcomeCreated)
		return nil
	}

	if err := s.api.UpdateResource(ctx, res.ServerID, res.DiffResource()); err != nil {
		return s.fail(result, KindResource, res.Key(), res.Title, err)
	}
	res.RecordBaseline()
	s.save(d)
	s.record(result, KindResource, res.Key(), res.Title, OutcomeUpdated)
	return nil
}

func (s *Synchronizer) record(result *SyncResult, kind EntityKind, ref, title string, outcome Outcome) {
	result.Entities = append(result.Entities, EntityResult{
		Kind:    kind,
		Ref:     ref,
		Title:   title,
		Outcome: outcome,
	})
}

// fail logs the failing entity, marks the run failed and stops the walk by
// propagating the error. No sibling or child after this point is touched.
func (s *Synchronizer) fail(result *SyncResult, kind EntityKind, ref, title string, err error) error {
	entry := EntityResult{
		Kind:    kind,
		Ref:     ref,
		Title:   title,
		Outcome: OutcomeFailed,
		Err:     err.Error(),
	}
	result.Entities = append(result.Entities, entry)
	result.Failed = &entry

	s.log.Warn("sync halted",
		"kind", kind,
		"ref", ref,
		"title", title,
		"error", err,
	)
	return fmt.Errorf("sync %s %q: %w", kind, title, err)
}

func (s *Synchronizer) save(d *course.Draft) {
	if s.persist == nil {
		return
	}
	if err := s.persist(d); err != nil {
		s.log.Warn("could not persist draft state", "error", err)
	}
}
