package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"tutorlink/internal/app/client/config"
	"tutorlink/internal/domain/authz"
	"tutorlink/internal/domain/course"
	"tutorlink/internal/domain/user"
)

// App wires the client together: config, session, local draft storage, the
// HTTP adapter and the synchronizer. Commands talk to App, nothing below
// it.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	storage    Storage
	sync       *Synchronizer
	session    user.Session
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl := NewHTTPClient(cfg, log)

	var storage Storage
	sqliteStorage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		log.Warn("could not open draft store, falling back to memory", "error", err)
		storage = NewMemoryStorage()
	} else {
		storage = sqliteStorage
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		storage:    storage,
	}
	app.sync = NewSynchronizer(httpCl, log, storage.SaveDraft)

	// Restore the session from the stored token, if any.
	if token, err := os.ReadFile(cfg.TokenPath); err == nil && len(token) > 0 {
		sess, err := user.SessionFromToken(string(token))
		if err != nil {
			log.Warn("stored token is malformed, ignoring", "error", err)
		} else {
			app.session = sess
			httpCl.SetToken(sess.Token)
			log.Debug("session restored", "role", sess.Role)
		}
	}

	return app, nil
}

// Session returns the already-loaded session state. Zero when signed out.
func (a *App) Session() user.Session {
	return a.session
}

// Guard runs the route gate for a surface requiring the given role.
func (a *App) Guard(requiredRole user.Role) authz.Decision {
	return authz.Authorize(a.session, requiredRole)
}

// CheckConnection pings the backend with a short deadline.
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// ==================== Auth ====================

func (a *App) Register(ctx context.Context, login, password string, role user.Role, bio string) error {
	return a.httpClient.Register(ctx, login, password, role, bio)
}

// Login authenticates, stores the token and installs the session.
func (a *App) Login(ctx context.Context, login, password string) error {
	token, err := a.httpClient.Login(ctx, login, password)
	if err != nil {
		return err
	}

	sess, err := user.SessionFromToken(token)
	if err != nil {
		return fmt.Errorf("server returned an unusable token: %w", err)
	}
	sess.Login = login

	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	a.session = sess
	a.httpClient.SetToken(token)
	a.log.Info("signed in", "login", login, "role", sess.Role)
	return nil
}

// Logout clears the stored credential and the in-memory session.
func (a *App) Logout() error {
	a.session = user.Session{}
	a.httpClient.SetToken("")
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// HandleRemoteError applies the session-expiry contract: any 401-class
// failure clears the stored credential so the next command lands on the
// sign-in path.
func (a *App) HandleRemoteError(err error) error {
	if err != nil && errors.Is(err, ErrSessionExpired) {
		if lerr := a.Logout(); lerr != nil {
			a.log.Warn("could not clear credentials", "error", lerr)
		}
	}
	return err
}

// ==================== Authoring ====================

// NewCreateWizard starts the forward-only course creation flow.
func (a *App) NewCreateWizard() *Wizard {
	return NewWizard(a.httpClient, a.sync, a.log)
}

// NewEditWizardFor fetches the course and its tree from the backend and
// starts the bidirectional edit flow on the rebuilt draft.
func (a *App) NewEditWizardFor(ctx context.Context, courseID int64) (*Wizard, error) {
	draft, err := a.PullCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return NewEditWizard(a.httpClient, a.sync, a.log, draft), nil
}

// PullCourse rebuilds an editable draft from the backend and stores it
// locally with baselines.
func (a *App) PullCourse(ctx context.Context, courseID int64) (*course.Draft, error) {
	courses, err := a.httpClient.MyCourses(ctx)
	if err != nil {
		return nil, a.HandleRemoteError(err)
	}

	var remote *course.RemoteCourse
	for i := range courses {
		if courses[i].ID == courseID {
			remote = &courses[i]
			break
		}
	}
	if remote == nil {
		return nil, fmt.Errorf("course %d: %w", courseID, course.ErrNotFound)
	}

	sections, err := a.httpClient.CourseSections(ctx, courseID)
	if err != nil {
		return nil, a.HandleRemoteError(err)
	}

	draft := course.DraftFromRemote(*remote, sections)

	// Reuse the stored local identity when this course was pulled before,
	// so repeated pulls do not pile up rows.
	if prev, err := a.storage.GetDraftByServerID(courseID); err == nil {
		draft.LocalID = prev.LocalID
	}
	if err := a.storage.SaveDraft(draft); err != nil {
		a.log.Warn("could not store pulled draft", "error", err)
	}
	return draft, nil
}

// PushDraft syncs a locally stored draft's content tree.
func (a *App) PushDraft(ctx context.Context, localID string) (*SyncResult, error) {
	draft, err := a.storage.GetDraft(localID)
	if err != nil {
		return nil, err
	}
	result, err := a.sync.SyncContent(ctx, draft)
	return result, a.HandleRemoteError(err)
}

// MyCourses lists the tutor's published courses.
func (a *App) MyCourses(ctx context.Context) ([]course.RemoteCourse, error) {
	courses, err := a.httpClient.MyCourses(ctx)
	return courses, a.HandleRemoteError(err)
}

// ==================== Drafts ====================

func (a *App) SaveDraft(d *course.Draft) error {
	return a.storage.SaveDraft(d)
}

func (a *App) GetDraft(localID string) (*course.Draft, error) {
	return a.storage.GetDraft(localID)
}

func (a *App) ListDrafts() ([]DraftInfo, error) {
	return a.storage.ListDrafts()
}

func (a *App) DeleteDraft(localID string) error {
	return a.storage.DeleteDraft(localID)
}

// DeleteSection removes a section server-side, fire-and-forget.
func (a *App) DeleteSection(ctx context.Context, id int64) error {
	return a.HandleRemoteError(a.httpClient.DeleteSection(ctx, id))
}

func (a *App) DeleteLesson(ctx context.Context, id int64) error {
	return a.HandleRemoteError(a.httpClient.DeleteLesson(ctx, id))
}

func (a *App) DeleteResource(ctx context.Context, id int64) error {
	return a.HandleRemoteError(a.httpClient.DeleteResource(ctx, id))
}

func (a *App) Close() error {
	return a.storage.Close()
}
