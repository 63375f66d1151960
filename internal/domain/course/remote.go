package course

// Server-side representations as they travel on the wire. The stub server
// answers with these and the client rebuilds drafts from them, so the field
// mapping is shared and lossless in both directions.

type RemoteCourse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CategoryID   string `json:"categoryID"`
	Language     string `json:"language"`
	Duration     int    `json:"duration"`
	Price        int64  `json:"price"`
	ThumbnailURL string `json:"thumbnailURL"`
}

type RemoteSection struct {
	ID          int64          `json:"id"`
	CourseID    int64          `json:"courseID"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	OrderIndex  int            `json:"orderIndex"`
	Lessons     []RemoteLesson `json:"lessons"`
}

type RemoteLesson struct {
	ID         int64            `json:"id"`
	SectionID  int64            `json:"sectionID"`
	Title      string           `json:"title"`
	Duration   int              `json:"duration"`
	LessonType LessonType       `json:"lessonType"`
	VideoURL   string           `json:"videoURL,omitempty"`
	Content    string           `json:"content,omitempty"`
	OrderIndex int              `json:"orderIndex"`
	Resources  []RemoteResource `json:"resources"`
}

type RemoteResource struct {
	ID            int64        `json:"id"`
	LessonID      int64        `json:"lessonID"`
	ResourceType  ResourceType `json:"resourceType"`
	ResourceTitle string       `json:"resourceTitle,omitempty"`
	ResourceURL   string       `json:"resourceURL"`
}

// DraftFromRemote reconstructs an editable draft from the fetched course and
// its section tree. Every entity gets its server ID and a baseline snapshot,
// so a subsequent push takes the update branch and diffs against what the
// server already has.
func DraftFromRemote(rc RemoteCourse, sections []RemoteSection) *Draft {
	d := &Draft{
		LocalID:       NewLocalID(),
		ServerID:      rc.ID,
		Title:         rc.Title,
		Description:   rc.Description,
		CategoryID:    rc.CategoryID,
		Language:      rc.Language,
		DurationHours: rc.Duration,
		PriceMinor:    rc.Price,
		ThumbnailURL:  rc.ThumbnailURL,
	}
	d.RecordBaseline()

	for _, rs := range sections {
		sd := &SectionDraft{
			LocalID:     NewLocalID(),
			ServerID:    rs.ID,
			Title:       rs.Title,
			Description: rs.Description,
			OrderIndex:  rs.OrderIndex,
		}
		sd.RecordBaseline(rc.ID)
		for _, rl := range rs.Lessons {
			ld := &LessonDraft{
				LocalID:         NewLocalID(),
				ServerID:        rl.ID,
				Title:           rl.Title,
				DurationMinutes: rl.Duration,
				Type:            rl.LessonType,
				VideoURL:        rl.VideoURL,
				Content:         rl.Content,
				OrderIndex:      rl.OrderIndex,
			}
			ld.RecordBaseline()
			for _, rr := range rl.Resources {
				rd := &ResourceDraft{
					LocalID:  NewLocalID(),
					ServerID: rr.ID,
					Type:     rr.ResourceType,
					Title:    rr.ResourceTitle,
					URL:      rr.ResourceURL,
				}
				rd.RecordBaseline()
				ld.Resources = append(ld.Resources, rd)
			}
			sd.Lessons = append(sd.Lessons, ld)
		}
		d.Sections = append(d.Sections, sd)
	}
	return d
}
