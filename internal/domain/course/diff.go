package course

// Diff helpers for the update path. A draft with a server ID is updated, not
// re-created; the update body carries only fields that differ from the last
// server-acknowledged baseline. With no baseline recorded the full field set
// is sent.

// DiffCourse compares the draft's current fields with its baseline.
func (d *Draft) DiffCourse() CourseUpdate {
	cur := d.Payload()
	var u CourseUpdate
	base := d.Baseline
	if base == nil || base.Title != cur.Title {
		u.Title = &cur.Title
	}
	if base == nil || base.Description != cur.Description {
		u.Description = &cur.Description
	}
	if base == nil || base.CategoryID != cur.CategoryID {
		u.CategoryID = &cur.CategoryID
	}
	if base == nil || base.Language != cur.Language {
		u.Language = &cur.Language
	}
	if base == nil || base.Duration != cur.Duration {
		u.Duration = &cur.Duration
	}
	if base == nil || base.Price != cur.Price {
		u.Price = &cur.Price
	}
	if base == nil || base.ThumbnailURL != cur.ThumbnailURL {
		u.ThumbnailURL = &cur.ThumbnailURL
	}
	return u
}

func (s *SectionDraft) DiffSection() SectionUpdate {
	var u SectionUpdate
	base := s.Baseline
	if base == nil || base.Title != s.Title {
		u.Title = &s.Title
	}
	if base == nil || base.Description != s.Description {
		u.Description = &s.Description
	}
	// OrderIndex always travels so the server can re-validate sibling order.
	u.OrderIndex = &s.OrderIndex
	return u
}

func (l *LessonDraft) DiffLesson() LessonUpdate {
	cur := l.Payload()
	var u LessonUpdate
	base := l.Baseline
	if base == nil || base.Title != cur.Title {
		u.Title = &cur.Title
	}
	if base == nil || base.Duration != cur.Duration {
		u.Duration = &cur.Duration
	}
	if base == nil || base.LessonType != cur.LessonType {
		u.LessonType = &cur.LessonType
	}
	if base == nil || base.VideoURL != cur.VideoURL {
		u.VideoURL = &cur.VideoURL
	}
	if base == nil || base.Content != cur.Content {
		u.Content = &cur.Content
	}
	u.OrderIndex = &cur.OrderIndex
	return u
}

func (r *ResourceDraft) DiffResource() ResourceUpdate {
	cur := r.Payload()
	var u ResourceUpdate
	base := r.Baseline
	if base == nil || base.ResourceType != cur.ResourceType {
		u.ResourceType = &cur.ResourceType
	}
	if base == nil || base.ResourceTitle != cur.ResourceTitle {
		u.ResourceTitle = &cur.ResourceTitle
	}
	if base == nil || base.ResourceURL != cur.ResourceURL {
		u.ResourceURL = &cur.ResourceURL
	}
	return u
}

// RecordBaseline snapshots the current fields as server-acknowledged.
func (d *Draft) RecordBaseline() {
	p := d.Payload()
	d.Baseline = &p
}

func (s *SectionDraft) RecordBaseline(courseID int64) {
	p := s.Payload(courseID)
	s.Baseline = &p
}

func (l *LessonDraft) RecordBaseline() {
	p := l.Payload()
	l.Baseline = &p
}

func (r *ResourceDraft) RecordBaseline() {
	p := r.Payload()
	r.Baseline = &p
}
