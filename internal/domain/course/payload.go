package course

// Wire-level field sets, named exactly as the backend expects them. The same
// structs double as baseline snapshots for changed-field updates.

type CoursePayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	CategoryID   string `json:"categoryID"`
	Language     string `json:"language"`
	Duration     int    `json:"duration"`
	Price        int64  `json:"price"`
	ThumbnailURL string `json:"thumbnailURL"`
}

type SectionPayload struct {
	CourseID    int64  `json:"courseID"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	OrderIndex  int    `json:"orderIndex"`
}

type LessonPayload struct {
	Title      string     `json:"title"`
	Duration   int        `json:"duration"`
	LessonType LessonType `json:"lessonType"`
	VideoURL   string     `json:"videoURL,omitempty"`
	Content    string     `json:"content,omitempty"`
	OrderIndex int        `json:"orderIndex"`
}

type ResourcePayload struct {
	ResourceType  ResourceType `json:"resourceType"`
	ResourceTitle string       `json:"resourceTitle,omitempty"`
	ResourceURL   string       `json:"resourceURL"`
}

// Partial-update bodies: only changed fields are serialized.

type CourseUpdate struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	CategoryID   *string `json:"categoryID,omitempty"`
	Language     *string `json:"language,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	Price        *int64  `json:"price,omitempty"`
	ThumbnailURL *string `json:"thumbnailURL,omitempty"`
}

type SectionUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	OrderIndex  *int    `json:"orderIndex,omitempty"`
}

type LessonUpdate struct {
	Title      *string     `json:"title,omitempty"`
	Duration   *int        `json:"duration,omitempty"`
	LessonType *LessonType `json:"lessonType,omitempty"`
	VideoURL   *string     `json:"videoURL,omitempty"`
	Content    *string     `json:"content,omitempty"`
	OrderIndex *int        `json:"orderIndex,omitempty"`
}

type ResourceUpdate struct {
	ResourceType  *ResourceType `json:"resourceType,omitempty"`
	ResourceTitle *string       `json:"resourceTitle,omitempty"`
	ResourceURL   *string       `json:"resourceURL,omitempty"`
}

// Payload builds the create body for the course metadata.
func (d *Draft) Payload() CoursePayload {
	return CoursePayload{
		Title:        d.Title,
		Description:  d.Description,
		CategoryID:   d.CategoryID,
		Language:     d.Language,
		Duration:     d.DurationHours,
		Price:        d.PriceMinor,
		ThumbnailURL: d.ThumbnailURL,
	}
}

// Payload builds the create body for a section under courseID.
func (s *SectionDraft) Payload(courseID int64) SectionPayload {
	return SectionPayload{
		CourseID:    courseID,
		Title:       s.Title,
		Description: s.Description,
		OrderIndex:  s.OrderIndex,
	}
}

func (l *LessonDraft) Payload() LessonPayload {
	return LessonPayload{
		Title:      l.Title,
		Duration:   l.DurationMinutes,
		LessonType: l.Type,
		VideoURL:   l.VideoURL,
		Content:    l.Content,
		OrderIndex: l.OrderIndex,
	}
}

func (r *ResourceDraft) Payload() ResourcePayload {
	return ResourcePayload{
		ResourceType:  r.Type,
		ResourceTitle: r.Title,
		ResourceURL:   r.URL,
	}
}
