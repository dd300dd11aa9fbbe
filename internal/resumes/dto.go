package resumes

import (
	"resume-builder/resume/model"
	"resume-builder/resume/view"
)

type fieldRequest struct {
	Field string  `json:"field"`
	Value *string `json:"value"`
}

type valueRequest struct {
	Value *string `json:"value"`
}

type templateRequest struct {
	TemplateID string `json:"templateId"`
}

// ResumeResponse is the outward-facing representation of a session document.
type ResumeResponse struct {
	Resume  model.ResumeDocument `json:"resume"`
	EntryID string               `json:"entryId,omitempty"`
	Notice  *Notice              `json:"notice,omitempty"`
}

// GroupedSkillsResponse lists non-empty skill groups in display order.
type GroupedSkillsResponse struct {
	Groups []view.CategoryGroup `json:"groups"`
}

// TemplatesResponse lists the template catalog.
type TemplatesResponse struct {
	Templates []model.Template `json:"templates"`
	Default   model.TemplateID `json:"default"`
}

func toResponse(res Result) ResumeResponse {
	return ResumeResponse{Resume: res.Doc.Normalize(), Notice: res.Notice}
}
