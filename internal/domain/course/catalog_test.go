package course

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CreateCourse(ctx context.Context, tutorID int64, p CoursePayload) (int64, error) {
	args := m.Called(ctx, tutorID, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) UpdateCourse(ctx context.Context, tutorID, id int64, u CourseUpdate) error {
	args := m.Called(ctx, tutorID, id, u)
	return args.Error(0)
}

func (m *MockCatalogRepository) CoursesByTutor(ctx context.Context, tutorID int64) ([]RemoteCourse, error) {
	args := m.Called(ctx, tutorID)
	return args.Get(0).([]RemoteCourse), args.Error(1)
}

func (m *MockCatalogRepository) SectionTree(ctx context.Context, tutorID, courseID int64) ([]RemoteSection, error) {
	args := m.Called(ctx, tutorID, courseID)
	return args.Get(0).([]RemoteSection), args.Error(1)
}

func (m *MockCatalogRepository) CreateSection(ctx context.Context, tutorID int64, p SectionPayload) (int64, error) {
	args := m.Called(ctx, tutorID, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) UpdateSection(ctx context.Context, tutorID, id int64, u SectionUpdate) error {
	args := m.Called(ctx, tutorID, id, u)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteSection(ctx context.Context, tutorID, id int64) error {
	args := m.Called(ctx, tutorID, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) CreateLesson(ctx context.Context, tutorID, sectionID int64, p LessonPayload) (int64, error) {
	args := m.Called(ctx, tutorID, sectionID, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) UpdateLesson(ctx context.Context, tutorID, id int64, u LessonUpdate) error {
	args := m.Called(ctx, tutorID, id, u)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteLesson(ctx context.Context, tutorID, id int64) error {
	args := m.Called(ctx, tutorID, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) CreateResource(ctx context.Context, tutorID, lessonID int64, p ResourcePayload) (int64, error) {
	args := m.Called(ctx, tutorID, lessonID, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) UpdateResource(ctx context.Context, tutorID, id int64, u ResourceUpdate) error {
	args := m.Called(ctx, tutorID, id, u)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteResource(ctx context.Context, tutorID, id int64) error {
	args := m.Called(ctx, tutorID, id)
	return args.Error(0)
}

func validCoursePayload() CoursePayload {
	return CoursePayload{
		Title:        "German for beginners",
		Description:  "Grammar and vocabulary from zero to A2.",
		CategoryID:   "languages",
		Language:     "de",
		Duration:     20,
		Price:        4999,
		ThumbnailURL: "https://cdn.example/german.png",
	}
}

func TestCatalog_CreateCourse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("CreateCourse", mock.Anything, int64(7), validCoursePayload()).Return(int64(42), nil)

		c := NewCatalog(repo, slog.Default())
		id, err := c.CreateCourse(context.Background(), 7, validCoursePayload())
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		repo.AssertExpectations(t)
	})

	// The backend re-checks what the client form already validated; a
	// hand-rolled request does not get around the rules.
	rejections := []struct {
		name  string
		edit  func(*CoursePayload)
		field string
	}{
		{"short title", func(p *CoursePayload) { p.Title = "ab" }, FieldTitle},
		{"short description", func(p *CoursePayload) { p.Description = "too short" }, FieldDescription},
		{"missing category", func(p *CoursePayload) { p.CategoryID = "" }, FieldCategory},
		{"missing language", func(p *CoursePayload) { p.Language = "" }, FieldLanguage},
		{"bad thumbnail", func(p *CoursePayload) { p.ThumbnailURL = "not-a-url" }, FieldThumbnailURL},
		{"zero duration", func(p *CoursePayload) { p.Duration = 0 }, FieldDuration},
		{"duration too long", func(p *CoursePayload) { p.Duration = 1000 }, FieldDuration},
		{"negative price", func(p *CoursePayload) { p.Price = -1 }, FieldPrice},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCatalogRepository)
			c := NewCatalog(repo, slog.Default())

			p := validCoursePayload()
			tt.edit(&p)

			_, err := c.CreateCourse(context.Background(), 7, p)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			repo.AssertNotCalled(t, "CreateCourse", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCatalog_UpdateCourse_ChecksOnlyProvidedFields(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("UpdateCourse", mock.Anything, int64(7), int64(5), mock.Anything).Return(nil)
	c := NewCatalog(repo, slog.Default())

	// A partial update with no touched fields passes validation untouched.
	require.NoError(t, c.UpdateCourse(context.Background(), 7, 5, CourseUpdate{}))

	bad := "ab"
	err := c.UpdateCourse(context.Background(), 7, 5, CourseUpdate{Title: &bad})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldTitle, verr.Field)
}

func TestCatalog_CreateLesson(t *testing.T) {
	repo := new(MockCatalogRepository)
	c := NewCatalog(repo, slog.Default())

	_, err := c.CreateLesson(context.Background(), 7, 11, LessonPayload{Title: "Nominative", LessonType: "webinar"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "lessonType", verr.Field)

	p := LessonPayload{Title: "Nominative", LessonType: LessonTypeVideo, Duration: 12}
	repo.On("CreateLesson", mock.Anything, int64(7), int64(11), p).Return(int64(101), nil)
	id, err := c.CreateLesson(context.Background(), 7, 11, p)
	require.NoError(t, err)
	assert.Equal(t, int64(101), id)
}

func TestCatalog_CreateResource(t *testing.T) {
	repo := new(MockCatalogRepository)
	c := NewCatalog(repo, slog.Default())

	_, err := c.CreateResource(context.Background(), 7, 101, ResourcePayload{ResourceType: ResourceTypePDF})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "resourceURL", verr.Field)

	_, err = c.CreateResource(context.Background(), 7, 101, ResourcePayload{ResourceType: "torrent", ResourceURL: "https://x.example/a"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "resourceType", verr.Field)
}

func TestCatalog_OwnershipErrorsPassThrough(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("DeleteSection", mock.Anything, int64(7), int64(99)).Return(ErrNotFound)
	c := NewCatalog(repo, slog.Default())

	err := c.DeleteSection(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
