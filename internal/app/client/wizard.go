package client

import (
	"context"
	"errors"
	gosync "sync"

	"golang.org/x/exp/slog"

	"tutorlink/internal/domain/course"
)

// WizardState is the explicit state of the two-step authoring flow. The
// saving states exist so that "saving" and "idle" can never both be true:
// a submit is only legal from the matching idle state.
type WizardState string

const (
	StateStep1       WizardState = "step1"
	StateStep1Saving WizardState = "step1-saving"
	StateStep2       WizardState = "step2"
	StateStep2Saving WizardState = "step2-saving"
)

// WizardMode distinguishes the forward-only create flow from the
// bidirectional edit variant.
type WizardMode int

const (
	ModeCreate WizardMode = iota
	ModeEdit
)

var (
	ErrWrongStep    = errors.New("operation not valid in current step")
	ErrNoBackCreate = errors.New("the create wizard has no back transition")
)

// courseCreator is the slice of the HTTP adapter step 1 needs.
type courseCreator interface {
	CreateCourse(ctx context.Context, p course.CoursePayload) (int64, error)
	UpdateCourse(ctx context.Context, id int64, u course.CourseUpdate) error
}

// Wizard owns the course-authoring flow: the current step, the accumulated
// form data and draft tree, the per-field error and touched maps, and the
// single-flight gate on saves. All network work goes through the adapter
// and the synchronizer; the wizard only sequences it.
type Wizard struct {
	api  courseCreator
	sync *Synchronizer
	log  *slog.Logger
	mode WizardMode

	mu      gosync.Mutex
	state   WizardState
	form    course.Form
	errs    course.FieldErrors
	touched map[string]bool
	draft   *course.Draft
	lastErr string
}

func NewWizard(api courseCreator, sync *Synchronizer, log *slog.Logger) *Wizard {
	return &Wizard{
		api:     api,
		sync:    sync,
		log:     log,
		mode:    ModeCreate,
		state:   StateStep1,
		touched: map[string]bool{},
		errs:    course.FieldErrors{},
	}
}

// NewEditWizard starts the flow on an existing draft (fetched via the edit
// path). Both steps are reachable and step 1 updates instead of creating.
func NewEditWizard(api courseCreator, sync *Synchronizer, log *slog.Logger, d *course.Draft) *Wizard {
	return &Wizard{
		api:     api,
		sync:    sync,
		log:     log,
		mode:    ModeEdit,
		state:   StateStep1,
		form:    course.FormFromDraft(d),
		draft:   d,
		touched: map[string]bool{},
		errs:    course.FieldErrors{},
	}
}

// State returns the current wizard state.
func (w *Wizard) State() WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Draft exposes the accumulated draft; nil until step 1 succeeds in create
// mode.
func (w *Wizard) Draft() *course.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// LastError is the inline error from the most recent failed save, verbatim
// from the backend when it said anything.
func (w *Wizard) LastError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// SetField records an input and re-validates that one field, blur-style.
// The error only becomes visible once the field is touched.
func (w *Wizard) SetField(name, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.setFormField(name, value)
	w.touched[name] = true
	if msg := course.ValidateField(name, value); msg != "" {
		w.errs[name] = msg
	} else {
		delete(w.errs, name)
	}
}

// FieldError returns the message to display for a field: nothing unless the
// field was touched or a submit force-touched everything.
func (w *Wizard) FieldError(name string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.touched[name] {
		return ""
	}
	return w.errs[name]
}

// Form returns a copy of the raw step-1 inputs.
func (w *Wizard) Form() course.Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// SetForm replaces the whole step-1 form at once (the CLI collects inputs
// up front rather than per keystroke).
func (w *Wizard) SetForm(f course.Form) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = f
}

// SubmitStep1 validates every field (force-touching them all) and, when
// clean, creates the course (updates it in edit mode) and advances to
// step 2. A failed save keeps the form and state intact and records the
// inline error.
func (w *Wizard) SubmitStep1(ctx context.Context) error {
	w.mu.Lock()
	if w.state != StateStep1 {
		w.mu.Unlock()
		return ErrWrongStep
	}

	for name := range w.formFields() {
		w.touched[name] = true
	}
	if errs := w.form.Validate(); errs != nil {
		w.errs = errs
		w.mu.Unlock()
		return course.ErrInvalidForm
	}
	w.errs = course.FieldErrors{}

	form := w.form
	w.state = StateStep1Saving
	w.mu.Unlock()

	err := w.saveStep1(ctx, form)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		// Back to step 1, form retained, backend message inline.
		w.state = StateStep1
		w.lastErr = UserMessage(err)
		return err
	}
	w.lastErr = ""
	w.state = StateStep2
	return nil
}

func (w *Wizard) saveStep1(ctx context.Context, form course.Form) error {
	if w.mode == ModeEdit {
		d := w.applyForm(form)
		if err := w.api.UpdateCourse(ctx, d.ServerID, d.DiffCourse()); err != nil {
			return err
		}
		d.RecordBaseline()
		return nil
	}

	draft, err := form.ToDraft()
	if err != nil {
		return err
	}
	id, err := w.api.CreateCourse(ctx, draft.Payload())
	if err != nil {
		return err
	}
	draft.ServerID = id
	draft.RecordBaseline()

	w.mu.Lock()
	w.draft = draft
	w.mu.Unlock()
	return nil
}

// applyForm merges edited step-1 fields back into the existing draft.
func (w *Wizard) applyForm(form course.Form) *course.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	parsed, err := form.ToDraft()
	if err != nil {
		return w.draft
	}
	w.draft.Title = parsed.Title
	w.draft.Description = parsed.Description
	w.draft.CategoryID = parsed.CategoryID
	w.draft.Language = parsed.Language
	w.draft.DurationHours = parsed.DurationHours
	w.draft.PriceMinor = parsed.PriceMinor
	w.draft.ThumbnailURL = parsed.ThumbnailURL
	return w.draft
}

// SetSections installs the step-2 content tree on the draft.
func (w *Wizard) SetSections(sections []*course.SectionDraft) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateStep2 {
		return ErrWrongStep
	}
	w.draft.Sections = sections
	return nil
}

// SaveStep2 hands the tree to the synchronizer. While a save is in flight
// the wizard sits in Step2Saving and any further trigger is a no-op; this
// is the gate that keeps two walks from ever running concurrently.
//
// On partial failure the wizard returns to step 2 with the error inline.
// Whatever was already created server-side stays created, and a retry
// re-walks the tree with the server-ID guard deciding create versus update.
func (w *Wizard) SaveStep2(ctx context.Context) (*SyncResult, error) {
	w.mu.Lock()
	if w.state == StateStep2Saving {
		w.mu.Unlock()
		return nil, ErrSyncInFlight
	}
	if w.state != StateStep2 {
		w.mu.Unlock()
		return nil, ErrWrongStep
	}
	w.state = StateStep2Saving
	draft := w.draft
	w.mu.Unlock()

	result, err := w.sync.SyncContent(ctx, draft)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = StateStep2
	if err != nil {
		w.lastErr = UserMessage(err)
		return result, err
	}
	w.lastErr = ""
	return result, nil
}

// Back returns to step 1. Only the edit variant supports it; the create
// wizard is forward-only.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.mode != ModeEdit {
		return ErrNoBackCreate
	}
	if w.state != StateStep2 {
		return ErrWrongStep
	}
	w.state = StateStep1
	return nil
}

func (w *Wizard) setFormField(name, value string) {
	switch name {
	case course.FieldTitle:
		w.form.Title = value
	case course.FieldDescription:
		w.form.Description = value
	case course.FieldCategory:
		w.form.CategoryID = value
	case course.FieldLanguage:
		w.form.Language = value
	case course.FieldDuration:
		w.form.DurationHours = value
	case course.FieldPrice:
		w.form.PriceMinor = value
	case course.FieldThumbnailURL:
		w.form.ThumbnailURL = value
	}
}

func (w *Wizard) formFields() map[string]string {
	return map[string]string{
		course.FieldTitle:        w.form.Title,
		course.FieldDescription:  w.form.Description,
		course.FieldCategory:     w.form.CategoryID,
		course.FieldLanguage:     w.form.Language,
		course.FieldDuration:     w.form.DurationHours,
		course.FieldPrice:        w.form.PriceMinor,
		course.FieldThumbnailURL: w.form.ThumbnailURL,
	}
}
