package tutor

import "tutorlink/internal/domain/course"

// Inputs

type byIDInput struct {
	ID int64 `path:"id" example:"1"`
}

type createCourseInput struct {
	Body course.CoursePayload
}

type updateCourseInput struct {
	ID   int64 `path:"id" example:"1"`
	Body course.CourseUpdate
}

type createSectionInput struct {
	Body course.SectionPayload
}

type updateSectionInput struct {
	ID   int64 `path:"id" example:"1"`
	Body course.SectionUpdate
}

type createLessonInput struct {
	ID   int64 `path:"id" example:"1" doc:"Parent section ID"`
	Body course.LessonPayload
}

type updateLessonInput struct {
	ID   int64 `path:"id" example:"1"`
	Body course.LessonUpdate
}

type createResourceInput struct {
	ID   int64 `path:"id" example:"1" doc:"Parent lesson ID"`
	Body course.ResourcePayload
}

type updateResourceInput struct {
	ID   int64 `path:"id" example:"1"`
	Body course.ResourceUpdate
}

// Enveloped outputs

type idResult struct {
	ID int64 `json:"id"`
}

type idEnvelope struct {
	Result idResult `json:"result"`
}

type idOutput struct {
	Body idEnvelope
}

func newIDOutput(id int64) *idOutput {
	return &idOutput{Body: idEnvelope{Result: idResult{ID: id}}}
}

type statusResult struct {
	Status string `json:"status"`
}

type statusEnvelope struct {
	Result statusResult `json:"result"`
}

type statusOutput struct {
	Body statusEnvelope
}

func newStatusOutput() *statusOutput {
	return &statusOutput{Body: statusEnvelope{Result: statusResult{Status: "Ok"}}}
}

type coursesEnvelope struct {
	Result []course.RemoteCourse `json:"result"`
}

type coursesOutput struct {
	Body coursesEnvelope
}

type sectionsEnvelope struct {
	Result []course.RemoteSection `json:"result"`
}

type sectionsOutput struct {
	Body sectionsEnvelope
}
