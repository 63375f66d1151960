package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffCourse_NoBaselineSendsEverything(t *testing.T) {
	d := &Draft{
		LocalID:       NewLocalID(),
		Title:         "Spanish A1",
		Description:   "Absolute beginner Spanish, spoken first.",
		CategoryID:    "cat-es",
		Language:      "Spanish",
		DurationHours: 20,
		PriceMinor:    9900,
		ThumbnailURL:  "https://cdn.example.com/es.png",
	}

	u := d.DiffCourse()
	require.NotNil(t, u.Title)
	require.NotNil(t, u.Description)
	require.NotNil(t, u.CategoryID)
	require.NotNil(t, u.Language)
	require.NotNil(t, u.Duration)
	require.NotNil(t, u.Price)
	require.NotNil(t, u.ThumbnailURL)
	assert.Equal(t, "Spanish A1", *u.Title)
}

func TestDiffCourse_OnlyChangedFields(t *testing.T) {
	d := &Draft{
		Title:         "Spanish A1",
		Description:   "Absolute beginner Spanish, spoken first.",
		CategoryID:    "cat-es",
		Language:      "Spanish",
		DurationHours: 20,
		PriceMinor:    9900,
		ThumbnailURL:  "https://cdn.example.com/es.png",
	}
	d.RecordBaseline()

	d.Title = "Spanish A1 (updated)"
	d.PriceMinor = 11900

	u := d.DiffCourse()
	require.NotNil(t, u.Title)
	require.NotNil(t, u.Price)
	assert.Equal(t, "Spanish A1 (updated)", *u.Title)
	assert.Equal(t, int64(11900), *u.Price)

	assert.Nil(t, u.Description)
	assert.Nil(t, u.CategoryID)
	assert.Nil(t, u.Language)
	assert.Nil(t, u.Duration)
	assert.Nil(t, u.ThumbnailURL)
}

func TestDiffSection_OrderIndexAlwaysTravels(t *testing.T) {
	s := &SectionDraft{
		LocalID:    NewLocalID(),
		ServerID:   7,
		Title:      "Greetings",
		OrderIndex: 2,
	}
	s.RecordBaseline(1)

	u := s.DiffSection()
	assert.Nil(t, u.Title)
	assert.Nil(t, u.Description)
	require.NotNil(t, u.OrderIndex)
	assert.Equal(t, 2, *u.OrderIndex)
}

func TestDiffLesson_OrderIndexAlwaysTravels(t *testing.T) {
	l := &LessonDraft{
		LocalID:         NewLocalID(),
		ServerID:        9,
		Title:           "Hello and goodbye",
		Type:            LessonTypeVideo,
		DurationMinutes: 15,
		VideoURL:        "https://videos.example.com/1",
		OrderIndex:      0,
	}
	l.RecordBaseline()

	l.Title = "Hello, goodbye and thanks"
	u := l.DiffLesson()
	require.NotNil(t, u.Title)
	require.NotNil(t, u.OrderIndex)
	assert.Nil(t, u.Duration)
	assert.Nil(t, u.LessonType)
	assert.Nil(t, u.VideoURL)
	assert.Nil(t, u.Content)
}

func TestKey_ServerIDTakesOver(t *testing.T) {
	s := &SectionDraft{LocalID: "local-abc"}
	assert.Equal(t, "local-abc", s.Key())

	s.ServerID = 42
	assert.Equal(t, "42", s.Key())
}

func TestOrderedSections_SortsByOrderIndexStable(t *testing.T) {
	d := &Draft{
		Sections: []*SectionDraft{
			{LocalID: "c", OrderIndex: 2},
			{LocalID: "a", OrderIndex: 0},
			{LocalID: "b1", OrderIndex: 1},
			{LocalID: "b2", OrderIndex: 1},
		},
	}

	got := d.OrderedSections()
	assert.Equal(t, []string{"a", "b1", "b2", "c"},
		[]string{got[0].LocalID, got[1].LocalID, got[2].LocalID, got[3].LocalID})
	// The draft itself keeps its order.
	assert.Equal(t, "c", d.Sections[0].LocalID)
}
