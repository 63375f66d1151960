package course

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type LessonType string

const (
	LessonTypeVideo   LessonType = "Video"
	LessonTypeReading LessonType = "Reading"
)

func (LessonType) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(LessonTypeVideo),
			string(LessonTypeReading),
		},
		Description: "Lesson content kind",
		Examples:    []any{LessonTypeVideo},
	}
}

// Validate implements huma.Validatable.
func (t LessonType) Validate() error {
	switch t {
	case LessonTypeVideo, LessonTypeReading:
		return nil
	}
	return fmt.Errorf("unknown lesson type: %s", t)
}

func (t LessonType) String() string {
	return string(t)
}

type ResourceType string

const (
	ResourceTypePDF          ResourceType = "PDF"
	ResourceTypeExternalLink ResourceType = "ExternalLink"
)

func (ResourceType) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(ResourceTypePDF),
			string(ResourceTypeExternalLink),
		},
		Description: "Lesson resource kind",
		Examples:    []any{ResourceTypePDF},
	}
}

// Validate implements huma.Validatable.
func (t ResourceType) Validate() error {
	switch t {
	case ResourceTypePDF, ResourceTypeExternalLink:
		return nil
	}
	return fmt.Errorf("unknown resource type: %s", t)
}

func (t ResourceType) String() string {
	return string(t)
}
