package tutor

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"tutorlink/internal/app/server/api/http/middleware/auth"
	"tutorlink/internal/domain/course"
	"tutorlink/internal/domain/user"
)

// Handler serves the tutor course-management surface. Every success payload
// is wrapped in a {result: T} envelope; the client unwraps it and never sees
// the difference from the bare auth responses.
type Handler struct {
	catalog    course.Cataloger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(catalog course.Cataloger, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		catalog:    catalog,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	// Courses
	huma.Register(api, h.createCourseOp(), h.createCourse)
	huma.Register(api, h.updateCourseOp(), h.updateCourse)
	huma.Register(api, h.myCoursesOp(), h.myCourses)
	huma.Register(api, h.courseSectionsOp(), h.courseSections)

	// Sections
	huma.Register(api, h.createSectionOp(), h.createSection)
	huma.Register(api, h.updateSectionOp(), h.updateSection)
	huma.Register(api, h.deleteSectionOp(), h.deleteSection)

	// Lessons
	huma.Register(api, h.createLessonOp(), h.createLesson)
	huma.Register(api, h.updateLessonOp(), h.updateLesson)
	huma.Register(api, h.deleteLessonOp(), h.deleteLesson)

	// Resources
	huma.Register(api, h.createResourceOp(), h.createResource)
	huma.Register(api, h.updateResourceOp(), h.updateResource)
	huma.Register(api, h.deleteResourceOp(), h.deleteResource)
}

// tutorID resolves the authenticated caller and rejects everyone who is not
// a tutor.
func tutorID(ctx context.Context) (int64, error) {
	id, ok := auth.GetUserID(ctx)
	if !ok {
		return 0, huma.Error401Unauthorized("Unauthorized")
	}
	role, ok := auth.GetRole(ctx)
	if !ok || role != user.RoleTutor {
		return 0, huma.Error403Forbidden("Tutor role required")
	}
	return id, nil
}

// mapErr translates service errors onto HTTP statuses.
func mapErr(err error) error {
	var verr *course.ValidationError
	switch {
	case errors.As(err, &verr):
		return huma.Error422UnprocessableEntity(verr.Message)
	case errors.Is(err, course.ErrNotFound):
		return huma.Error404NotFound("Not found")
	}
	return err
}

// ==================== Courses ====================

func (h *Handler) createCourse(ctx context.Context, input *createCourseInput) (*idOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := h.catalog.CreateCourse(ctx, uid, input.Body)
	if err != nil {
		return nil, mapErr(err)
	}
	return newIDOutput(id), nil
}

func (h *Handler) updateCourse(ctx context.Context, input *updateCourseInput) (*idOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.catalog.UpdateCourse(ctx, uid, input.ID, input.Body); err != nil {
		return nil, mapErr(err)
	}
	return newIDOutput(input.ID), nil
}

func (h *Handler) myCourses(ctx context.Context, _ *struct{}) (*coursesOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := h.catalog.MyCourses(ctx, uid)
	if err != nil {
		return nil, mapErr(err)
	}
	return &coursesOutput{Body: coursesEnvelope{Result: courses}}, nil
}

func (h *Handler) courseSections(ctx context.Context, input *byIDInput) (*sectionsOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	sections, err := h.catalog.CourseSections(ctx, uid, input.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &sectionsOutput{Body: sectionsEnvelope{Result: sections}}, nil
}

// ==================== Sections ====================

func (h *Handler) createSection(ctx context.Context, input *createSectionInput) (*idOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := h.catalog.CreateSection(ctx, uid, input.Body)
	if err != nil {
		return nil, mapErr(err)
	}
	return newIDOutput(id), nil
}

func (h *Handler) updateSection(ctx context.Context, input *updateSectionInput) (*idOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.catalog.UpdateSection(ctx, uid, input.ID, input.Body); err != nil {
		return nil, mapErr(err)
	}
	return newIDOutput(input.ID), nil
}

func (h *Handler) deleteSection(ctx context.Context, input *byIDInput) (*statusOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.catalog.DeleteSection(ctx, uid, input.ID); err != nil {
		return nil, mapErr(err)
	}
	return newStatusOutput(), nil
}

// ==================== Lessons ====================

func (h *Handler) createLesson(ctx context.Context, input *createLessonInput) (*idOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := h.catalog.CreateLesson(ctx, uid, input.ID, input.Body)
	if err != nil {
		return nil, mapErr(err)
	}
	return newIDOutput(id), nil
}

func (h *Handler) updateLesson(ctx context.Context, input *updateLessonInput) (*idOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.catalog.UpdateLesson(ctx, uid, input.ID, input.Body); err != nil {
		return nil, mapErr(err)
	}
	return newIDOutput(input.ID), nil
}

func (h *Handler) deleteLesson(ctx context.Context, input *byIDInput) (*statusOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.catalog.DeleteLesson(ctx, uid, input.ID); err != nil {
		return nil, mapErr(err)
	}
	return newStatusOutput(), nil
}

// ==================== Resources ====================

func (h *Handler) createResource(ctx context.Context, input *createResourceInput) (*idOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := h.catalog.CreateResource(ctx, uid, input.ID, input.Body)
	if err != nil {
		return nil, mapErr(err)
	}
	return newIDOutput(id), nil
}

func (h *Handler) updateResource(ctx context.Context, input *updateResourceInput) (*idOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.catalog.UpdateResource(ctx, uid, input.ID, input.Body); err != nil {
		return nil, mapErr(err)
	}
	return newIDOutput(input.ID), nil
}

func (h *Handler) deleteResource(ctx context.Context, input *byIDInput) (*statusOutput, error) {
	uid, err := tutorID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.catalog.DeleteResource(ctx, uid, input.ID); err != nil {
		return nil, mapErr(err)
	}
	return newStatusOutput(), nil
}
