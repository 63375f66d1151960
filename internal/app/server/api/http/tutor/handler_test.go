package tutor

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tutorlink/internal/app/server/api/http/middleware/auth"
	"tutorlink/internal/domain/course"
	"tutorlink/internal/domain/user"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) CreateCourse(ctx context.Context, tutorID int64, p course.CoursePayload) (int64, error) {
	args := m.Called(ctx, tutorID, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalog) UpdateCourse(ctx context.Context, tutorID, id int64, u course.CourseUpdate) error {
	args := m.Called(ctx, tutorID, id, u)
	return args.Error(0)
}

func (m *MockCatalog) MyCourses(ctx context.Context, tutorID int64) ([]course.RemoteCourse, error) {
	args := m.Called(ctx, tutorID)
	return args.Get(0).([]course.RemoteCourse), args.Error(1)
}

func (m *MockCatalog) CourseSections(ctx context.Context, tutorID, courseID int64) ([]course.RemoteSection, error) {
	args := m.Called(ctx, tutorID, courseID)
	return args.Get(0).([]course.RemoteSection), args.Error(1)
}

func (m *MockCatalog) CreateSection(ctx context.Context, tutorID int64, p course.SectionPayload) (int64, error) {
	args := m.Called(ctx, tutorID, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalog) UpdateSection(ctx context.Context, tutorID, id int64, u course.SectionUpdate) error {
	args := m.Called(ctx, tutorID, id, u)
	return args.Error(0)
}

func (m *MockCatalog) DeleteSection(ctx context.Context, tutorID, id int64) error {
	args := m.Called(ctx, tutorID, id)
	return args.Error(0)
}

func (m *MockCatalog) CreateLesson(ctx context.Context, tutorID, sectionID int64, p course.LessonPayload) (int64, error) {
	args := m.Called(ctx, tutorID, sectionID, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalog) UpdateLesson(ctx context.Context, tutorID, id int64, u course.LessonUpdate) error {
	args := m.Called(ctx, tutorID, id, u)
	return args.Error(0)
}

func (m *MockCatalog) DeleteLesson(ctx context.Context, tutorID, id int64) error {
	args := m.Called(ctx, tutorID, id)
	return args.Error(0)
}

func (m *MockCatalog) CreateResource(ctx context.Context, tutorID, lessonID int64, p course.ResourcePayload) (int64, error) {
	args := m.Called(ctx, tutorID, lessonID, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalog) UpdateResource(ctx context.Context, tutorID, id int64, u course.ResourceUpdate) error {
	args := m.Called(ctx, tutorID, id, u)
	return args.Error(0)
}

func (m *MockCatalog) DeleteResource(ctx context.Context, tutorID, id int64) error {
	args := m.Called(ctx, tutorID, id)
	return args.Error(0)
}

func tutorCtx(id int64) context.Context {
	ctx := auth.WithUserID(context.Background(), id)
	return auth.WithRole(ctx, user.RoleTutor)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_CreateCourse(t *testing.T) {
	payload := course.CoursePayload{
		Title: "German A2", Description: "Grammar and vocabulary.",
		CategoryID: "languages", Language: "de",
		Duration: 20, Price: 4999, ThumbnailURL: "https://cdn.example/g.png",
	}

	t.Run("Success", func(t *testing.T) {
		svc := new(MockCatalog)
		svc.On("CreateCourse", mock.Anything, int64(7), payload).Return(int64(42), nil)
		h := NewHandler(svc, nil, nil)

		resp, err := h.createCourse(tutorCtx(7), &createCourseInput{Body: payload})
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.Body.Result.ID)
		svc.AssertExpectations(t)
	})

	t.Run("NoIdentity", func(t *testing.T) {
		h := NewHandler(nil, nil, nil)
		_, err := h.createCourse(context.Background(), &createCourseInput{Body: payload})
		assert.Equal(t, 401, statusOf(t, err))
	})

	t.Run("WrongRole", func(t *testing.T) {
		h := NewHandler(nil, nil, nil)
		ctx := auth.WithRole(auth.WithUserID(context.Background(), 7), user.RoleLearner)
		_, err := h.createCourse(ctx, &createCourseInput{Body: payload})
		assert.Equal(t, 403, statusOf(t, err))
	})

	t.Run("ValidationError", func(t *testing.T) {
		svc := new(MockCatalog)
		svc.On("CreateCourse", mock.Anything, int64(7), mock.Anything).
			Return(int64(0), &course.ValidationError{Field: "title", Message: "Title must be 3-100 characters"})
		h := NewHandler(svc, nil, nil)

		_, err := h.createCourse(tutorCtx(7), &createCourseInput{Body: payload})
		assert.Equal(t, 422, statusOf(t, err))
		assert.Contains(t, err.Error(), "Title must be 3-100 characters")
	})
}

// Rows belonging to another tutor answer 404, never 403: nothing leaks about
// whether the ID exists, and the client reserves 403 for dead sessions.
func TestHandler_ForeignRowsAnswer404(t *testing.T) {
	svc := new(MockCatalog)
	svc.On("UpdateSection", mock.Anything, int64(7), int64(99), mock.Anything).Return(course.ErrNotFound)
	svc.On("DeleteLesson", mock.Anything, int64(7), int64(99)).Return(course.ErrNotFound)
	h := NewHandler(svc, nil, nil)

	_, err := h.updateSection(tutorCtx(7), &updateSectionInput{ID: 99})
	assert.Equal(t, 404, statusOf(t, err))

	_, err = h.deleteLesson(tutorCtx(7), &byIDInput{ID: 99})
	assert.Equal(t, 404, statusOf(t, err))
}

func TestHandler_CreateLessonPassesSectionID(t *testing.T) {
	payload := course.LessonPayload{Title: "Nominative", LessonType: course.LessonTypeVideo}

	svc := new(MockCatalog)
	svc.On("CreateLesson", mock.Anything, int64(7), int64(11), payload).Return(int64(101), nil)
	h := NewHandler(svc, nil, nil)

	resp, err := h.createLesson(tutorCtx(7), &createLessonInput{ID: 11, Body: payload})
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.Body.Result.ID)
	svc.AssertExpectations(t)
}

func TestHandler_CourseSectionsEnvelope(t *testing.T) {
	tree := []course.RemoteSection{
		{ID: 11, CourseID: 5, Title: "Cases", Lessons: []course.RemoteLesson{}},
	}
	svc := new(MockCatalog)
	svc.On("CourseSections", mock.Anything, int64(7), int64(5)).Return(tree, nil)
	h := NewHandler(svc, nil, nil)

	resp, err := h.courseSections(tutorCtx(7), &byIDInput{ID: 5})
	require.NoError(t, err)
	assert.Equal(t, tree, resp.Body.Result)
}

func TestHandler_DeleteSectionStatus(t *testing.T) {
	svc := new(MockCatalog)
	svc.On("DeleteSection", mock.Anything, int64(7), int64(11)).Return(nil)
	h := NewHandler(svc, nil, nil)

	resp, err := h.deleteSection(tutorCtx(7), &byIDInput{ID: 11})
	require.NoError(t, err)
	assert.Equal(t, "Ok", resp.Body.Result.Status)
}
