package course

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

// CatalogRepository is the server-side persistence surface. Every query is
// scoped to the owning tutor: a row that exists but belongs to someone else
// reads as ErrNotFound.
type CatalogRepository interface {
	CreateCourse(ctx context.Context, tutorID int64, p CoursePayload) (int64, error)
	UpdateCourse(ctx context.Context, tutorID, id int64, u CourseUpdate) error
	CoursesByTutor(ctx context.Context, tutorID int64) ([]RemoteCourse, error)
	SectionTree(ctx context.Context, tutorID, courseID int64) ([]RemoteSection, error)

	CreateSection(ctx context.Context, tutorID int64, p SectionPayload) (int64, error)
	UpdateSection(ctx context.Context, tutorID, id int64, u SectionUpdate) error
	DeleteSection(ctx context.Context, tutorID, id int64) error

	CreateLesson(ctx context.Context, tutorID, sectionID int64, p LessonPayload) (int64, error)
	UpdateLesson(ctx context.Context, tutorID, id int64, u LessonUpdate) error
	DeleteLesson(ctx context.Context, tutorID, id int64) error

	CreateResource(ctx context.Context, tutorID, lessonID int64, p ResourcePayload) (int64, error)
	UpdateResource(ctx context.Context, tutorID, id int64, u ResourceUpdate) error
	DeleteResource(ctx context.Context, tutorID, id int64) error
}

type Cataloger interface {
	CreateCourse(ctx context.Context, tutorID int64, p CoursePayload) (int64, error)
	UpdateCourse(ctx context.Context, tutorID, id int64, u CourseUpdate) error
	MyCourses(ctx context.Context, tutorID int64) ([]RemoteCourse, error)
	CourseSections(ctx context.Context, tutorID, courseID int64) ([]RemoteSection, error)

	CreateSection(ctx context.Context, tutorID int64, p SectionPayload) (int64, error)
	UpdateSection(ctx context.Context, tutorID, id int64, u SectionUpdate) error
	DeleteSection(ctx context.Context, tutorID, id int64) error

	CreateLesson(ctx context.Context, tutorID, sectionID int64, p LessonPayload) (int64, error)
	UpdateLesson(ctx context.Context, tutorID, id int64, u LessonUpdate) error
	DeleteLesson(ctx context.Context, tutorID, id int64) error

	CreateResource(ctx context.Context, tutorID, lessonID int64, p ResourcePayload) (int64, error)
	UpdateResource(ctx context.Context, tutorID, id int64, u ResourceUpdate) error
	DeleteResource(ctx context.Context, tutorID, id int64) error
}

// Catalog is the tutor-facing course management service: it re-validates
// incoming payloads with the same rules the client form uses and delegates
// persistence to the repository.
type Catalog struct {
	repo CatalogRepository
	log  *slog.Logger
}

func NewCatalog(repo CatalogRepository, log *slog.Logger) *Catalog {
	return &Catalog{
		repo: repo,
		log:  log,
	}
}

func (c *Catalog) CreateCourse(ctx context.Context, tutorID int64, p CoursePayload) (int64, error) {
	if err := validateCoursePayload(p); err != nil {
		return 0, err
	}
	id, err := c.repo.CreateCourse(ctx, tutorID, p)
	if err != nil {
		return 0, fmt.Errorf("create course: %w", err)
	}
	c.log.Info("course created", "id", id, "tutor", tutorID)
	return id, nil
}

func (c *Catalog) UpdateCourse(ctx context.Context, tutorID, id int64, u CourseUpdate) error {
	if err := validateCourseUpdate(u); err != nil {
		return err
	}
	if err := c.repo.UpdateCourse(ctx, tutorID, id, u); err != nil {
		return fmt.Errorf("update course %d: %w", id, err)
	}
	return nil
}

func (c *Catalog) MyCourses(ctx context.Context, tutorID int64) ([]RemoteCourse, error) {
	return c.repo.CoursesByTutor(ctx, tutorID)
}

func (c *Catalog) CourseSections(ctx context.Context, tutorID, courseID int64) ([]RemoteSection, error) {
	return c.repo.SectionTree(ctx, tutorID, courseID)
}

func (c *Catalog) CreateSection(ctx context.Context, tutorID int64, p SectionPayload) (int64, error) {
	if msg := ValidateTitle(p.Title); msg != "" {
		return 0, &ValidationError{Field: FieldTitle, Message: msg}
	}
	id, err := c.repo.CreateSection(ctx, tutorID, p)
	if err != nil {
		return 0, fmt.Errorf("create section: %w", err)
	}
	c.log.Info("section created", "id", id, "course", p.CourseID)
	return id, nil
}

func (c *Catalog) UpdateSection(ctx context.Context, tutorID, id int64, u SectionUpdate) error {
	if u.Title != nil {
		if msg := ValidateTitle(*u.Title); msg != "" {
			return &ValidationError{Field: FieldTitle, Message: msg}
		}
	}
	if err := c.repo.UpdateSection(ctx, tutorID, id, u); err != nil {
		return fmt.Errorf("update section %d: %w", id, err)
	}
	return nil
}

func (c *Catalog) DeleteSection(ctx context.Context, tutorID, id int64) error {
	return c.repo.DeleteSection(ctx, tutorID, id)
}

func (c *Catalog) CreateLesson(ctx context.Context, tutorID, sectionID int64, p LessonPayload) (int64, error) {
	if err := validateLessonPayload(p); err != nil {
		return 0, err
	}
	id, err := c.repo.CreateLesson(ctx, tutorID, sectionID, p)
	if err != nil {
		return 0, fmt.Errorf("create lesson: %w", err)
	}
	c.log.Info("lesson created", "id", id, "section", sectionID)
	return id, nil
}

func (c *Catalog) UpdateLesson(ctx context.Context, tutorID, id int64, u LessonUpdate) error {
	if u.LessonType != nil {
		if err := u.LessonType.Validate(); err != nil {
			return &ValidationError{Field: "lessonType", Message: err.Error()}
		}
	}
	if err := c.repo.UpdateLesson(ctx, tutorID, id, u); err != nil {
		return fmt.Errorf("update lesson %d: %w", id, err)
	}
	return nil
}

func (c *Catalog) DeleteLesson(ctx context.Context, tutorID, id int64) error {
	return c.repo.DeleteLesson(ctx, tutorID, id)
}

func (c *Catalog) CreateResource(ctx context.Context, tutorID, lessonID int64, p ResourcePayload) (int64, error) {
	if err := p.ResourceType.Validate(); err != nil {
		return 0, &ValidationError{Field: "resourceType", Message: err.Error()}
	}
	if p.ResourceURL == "" {
		return 0, &ValidationError{Field: "resourceURL", Message: "Resource URL is required"}
	}
	id, err := c.repo.CreateResource(ctx, tutorID, lessonID, p)
	if err != nil {
		return 0, fmt.Errorf("create resource: %w", err)
	}
	return id, nil
}

func (c *Catalog) UpdateResource(ctx context.Context, tutorID, id int64, u ResourceUpdate) error {
	if u.ResourceType != nil {
		if err := u.ResourceType.Validate(); err != nil {
			return &ValidationError{Field: "resourceType", Message: err.Error()}
		}
	}
	if err := c.repo.UpdateResource(ctx, tutorID, id, u); err != nil {
		return fmt.Errorf("update resource %d: %w", id, err)
	}
	return nil
}

func (c *Catalog) DeleteResource(ctx context.Context, tutorID, id int64) error {
	return c.repo.DeleteResource(ctx, tutorID, id)
}

// ValidationError surfaces a field-level rejection with the same wording the
// client renders next to form inputs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validateCoursePayload(p CoursePayload) error {
	checks := []struct {
		field, msg string
	}{
		{FieldTitle, ValidateTitle(p.Title)},
		{FieldDescription, ValidateDescription(p.Description)},
		{FieldCategory, ValidateCategory(p.CategoryID)},
		{FieldLanguage, ValidateLanguage(p.Language)},
		{FieldThumbnailURL, ValidateThumbnailURL(p.ThumbnailURL)},
	}
	for _, c := range checks {
		if c.msg != "" {
			return &ValidationError{Field: c.field, Message: c.msg}
		}
	}
	if p.Duration < DurationMin || p.Duration > DurationMax {
		return &ValidationError{Field: FieldDuration, Message: fmt.Sprintf("Duration must be between %d and %d hours", DurationMin, DurationMax)}
	}
	if p.Price < PriceMin || p.Price > PriceMax {
		return &ValidationError{Field: FieldPrice, Message: fmt.Sprintf("Price must be between %d and %d", PriceMin, PriceMax)}
	}
	return nil
}

func validateCourseUpdate(u CourseUpdate) error {
	if u.Title != nil {
		if msg := ValidateTitle(*u.Title); msg != "" {
			return &ValidationError{Field: FieldTitle, Message: msg}
		}
	}
	if u.Description != nil {
		if msg := ValidateDescription(*u.Description); msg != "" {
			return &ValidationError{Field: FieldDescription, Message: msg}
		}
	}
	if u.ThumbnailURL != nil {
		if msg := ValidateThumbnailURL(*u.ThumbnailURL); msg != "" {
			return &ValidationError{Field: FieldThumbnailURL, Message: msg}
		}
	}
	if u.Duration != nil && (*u.Duration < DurationMin || *u.Duration > DurationMax) {
		return &ValidationError{Field: FieldDuration, Message: fmt.Sprintf("Duration must be between %d and %d hours", DurationMin, DurationMax)}
	}
	if u.Price != nil && (*u.Price < PriceMin || *u.Price > PriceMax) {
		return &ValidationError{Field: FieldPrice, Message: fmt.Sprintf("Price must be between %d and %d", PriceMin, PriceMax)}
	}
	return nil
}

func validateLessonPayload(p LessonPayload) error {
	if msg := ValidateTitle(p.Title); msg != "" {
		return &ValidationError{Field: FieldTitle, Message: msg}
	}
	if err := p.LessonType.Validate(); err != nil {
		return &ValidationError{Field: "lessonType", Message: err.Error()}
	}
	if p.Duration < 0 {
		return &ValidationError{Field: "duration", Message: "Duration must not be negative"}
	}
	return nil
}
