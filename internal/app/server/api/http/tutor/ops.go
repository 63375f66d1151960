package tutor

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createCourseOp() huma.Operation {
	return huma.Operation{
		OperationID: "courses-create",
		Method:      http.MethodPost,
		Path:        "/tutor/courses",
		Summary:     "Create a course",
		Tags:        []string{"courses"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateCourseOp() huma.Operation {
	return huma.Operation{
		OperationID: "courses-update",
		Method:      http.MethodPut,
		Path:        "/tutor/courses/{id}",
		Summary:     "Update course metadata",
		Description: "Partial update: only the fields present in the body change.",
		Tags:        []string{"courses"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) myCoursesOp() huma.Operation {
	return huma.Operation{
		OperationID: "courses-mine",
		Method:      http.MethodGet,
		Path:        "/tutor/courses/me",
		Summary:     "List the caller's courses",
		Tags:        []string{"courses"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) courseSectionsOp() huma.Operation {
	return huma.Operation{
		OperationID: "courses-sections",
		Method:      http.MethodGet,
		Path:        "/tutor/courses/sections/{id}",
		Summary:     "Fetch the full section tree of a course",
		Tags:        []string{"courses", "sections"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

// ==================== Sections ====================

func (h *Handler) createSectionOp() huma.Operation {
	return huma.Operation{
		OperationID: "sections-create",
		Method:      http.MethodPost,
		Path:        "/tutor/courses/sections",
		Summary:     "Create a section",
		Tags:        []string{"sections"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateSectionOp() huma.Operation {
	return huma.Operation{
		OperationID: "sections-update",
		Method:      http.MethodPut,
		Path:        "/tutor/courses/sections/{id}",
		Summary:     "Update a section",
		Tags:        []string{"sections"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteSectionOp() huma.Operation {
	return huma.Operation{
		OperationID: "sections-delete",
		Method:      http.MethodDelete,
		Path:        "/tutor/courses/sections/{id}",
		Summary:     "Delete a section and its lessons",
		Tags:        []string{"sections"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

// ==================== Lessons ====================

func (h *Handler) createLessonOp() huma.Operation {
	return huma.Operation{
		OperationID: "lessons-create",
		Method:      http.MethodPost,
		Path:        "/tutor/courses/sections/{id}/lessons",
		Summary:     "Create a lesson inside a section",
		Tags:        []string{"lessons"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateLessonOp() huma.Operation {
	return huma.Operation{
		OperationID: "lessons-update",
		Method:      http.MethodPut,
		Path:        "/tutor/courses/sections/lessons/{id}",
		Summary:     "Update a lesson",
		Tags:        []string{"lessons"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteLessonOp() huma.Operation {
	return huma.Operation{
		OperationID: "lessons-delete",
		Method:      http.MethodDelete,
		Path:        "/tutor/courses/sections/lessons/{id}",
		Summary:     "Delete a lesson and its resources",
		Tags:        []string{"lessons"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

// ==================== Resources ====================

func (h *Handler) createResourceOp() huma.Operation {
	return huma.Operation{
		OperationID: "resources-create",
		Method:      http.MethodPost,
		Path:        "/tutor/lessons/{id}/resources",
		Summary:     "Attach a resource to a lesson",
		Tags:        []string{"resources"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateResourceOp() huma.Operation {
	return huma.Operation{
		OperationID: "resources-update",
		Method:      http.MethodPut,
		Path:        "/tutor/resources/{id}",
		Summary:     "Update a resource",
		Tags:        []string{"resources"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteResourceOp() huma.Operation {
	return huma.Operation{
		OperationID: "resources-delete",
		Method:      http.MethodDelete,
		Path:        "/tutor/resources/{id}",
		Summary:     "Delete a resource",
		Tags:        []string{"resources"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
