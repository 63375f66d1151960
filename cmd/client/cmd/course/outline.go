package course

import (
	"encoding/json"
	"fmt"
	"os"

	"tutorlink/internal/domain/course"
)

// Outline is the file format for the step-2 content tree. Order in the file
// is the order on the wire: positions become orderIndex values.
type Outline struct {
	Sections []outlineSection `json:"sections"`
}

type outlineSection struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Lessons     []outlineLesson `json:"lessons"`
}

type outlineLesson struct {
	Title     string            `json:"title"`
	Type      string            `json:"type"`
	Duration  int               `json:"duration"`
	VideoURL  string            `json:"videoURL,omitempty"`
	Content   string            `json:"content,omitempty"`
	Resources []outlineResource `json:"resources,omitempty"`
}

type outlineResource struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url"`
}

// LoadOutline reads an outline file and builds fresh section drafts from
// it. Everything gets a new local identity; server IDs are assigned during
// the sync.
func LoadOutline(path string) ([]*course.SectionDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}

	var outline Outline
	if err := json.Unmarshal(data, &outline); err != nil {
		return nil, fmt.Errorf("parse outline: %w", err)
	}

	sections := make([]*course.SectionDraft, 0, len(outline.Sections))
	for si, sec := range outline.Sections {
		sd := &course.SectionDraft{
			LocalID:     course.NewLocalID(),
			Title:       sec.Title,
			Description: sec.Description,
			OrderIndex:  si,
		}
		for li, ol := range sec.Lessons {
			lt := course.LessonType(ol.Type)
			if err := lt.Validate(); err != nil {
				return nil, fmt.Errorf("section %d lesson %d: %w", si+1, li+1, err)
			}
			ld := &course.LessonDraft{
				LocalID:         course.NewLocalID(),
				Title:           ol.Title,
				Type:            lt,
				DurationMinutes: ol.Duration,
				VideoURL:        ol.VideoURL,
				Content:         ol.Content,
				OrderIndex:      li,
			}
			for ri, orr := range ol.Resources {
				rt := course.ResourceType(orr.Type)
				if err := rt.Validate(); err != nil {
					return nil, fmt.Errorf("section %d lesson %d resource %d: %w", si+1, li+1, ri+1, err)
				}
				ld.Resources = append(ld.Resources, &course.ResourceDraft{
					LocalID: course.NewLocalID(),
					Type:    rt,
					Title:   orr.Title,
					URL:     orr.URL,
				})
			}
			sd.Lessons = append(sd.Lessons, ld)
		}
		sections = append(sections, sd)
	}
	return sections, nil
}
