package editor

import (
	"fmt"
	"strings"

	"resume-builder/resume/model"
)

// Edit is one user change to a document. The set of edits is closed; use
// the constructors in this package or the Parse helpers for wire input.
type Edit interface {
	// Kind names the edit for logs and metrics.
	Kind() string
	apply(doc model.ResumeDocument, ids IDSource) model.ResumeDocument
}

// ContactEdit replaces one contact field.
type ContactEdit struct {
	Field ContactField
	Value string
}

// SummaryEdit replaces the summary text.
type SummaryEdit struct {
	Value string
}

// TemplateEdit selects a template.
type TemplateEdit struct {
	Template model.TemplateID
}

// AddEntry appends a placeholder entry to a section.
type AddEntry struct {
	Section Section
}

// RemoveEntry removes an entry from a section.
type RemoveEntry struct {
	Section Section
	ID      string
}

// UpdateEntry replaces one text field of an entry. The section is implied
// by the concrete type of Field.
type UpdateEntry struct {
	ID    string
	Field EntryField
	Value string
}

// SkillCategoryEdit moves a skill to another category.
type SkillCategoryEdit struct {
	ID       string
	Category model.SkillCategory
}

func (ContactEdit) Kind() string       { return "update_contact" }
func (SummaryEdit) Kind() string       { return "update_summary" }
func (TemplateEdit) Kind() string      { return "select_template" }
func (AddEntry) Kind() string          { return "add_entry" }
func (RemoveEntry) Kind() string       { return "remove_entry" }
func (UpdateEntry) Kind() string       { return "update_entry" }
func (SkillCategoryEdit) Kind() string { return "update_entry" }

// Apply returns the document that results from applying e to doc.
func Apply(doc model.ResumeDocument, e Edit, ids IDSource) model.ResumeDocument {
	if e == nil {
		return doc
	}
	if ids == nil {
		ids = UUIDSource{}
	}
	return e.apply(doc, ids)
}

func (e ContactEdit) apply(doc model.ResumeDocument, _ IDSource) model.ResumeDocument {
	return UpdateContact(doc, e.Field, e.Value)
}

func (e SummaryEdit) apply(doc model.ResumeDocument, _ IDSource) model.ResumeDocument {
	return UpdateSummary(doc, e.Value)
}

func (e TemplateEdit) apply(doc model.ResumeDocument, _ IDSource) model.ResumeDocument {
	return SelectTemplate(doc, e.Template)
}

func (e AddEntry) apply(doc model.ResumeDocument, ids IDSource) model.ResumeDocument {
	switch e.Section {
	case SectionExperience:
		doc.ExperienceItems = AddExperience(doc.ExperienceItems, ids)
	case SectionEducation:
		doc.EducationItems = AddEducation(doc.EducationItems, ids)
	case SectionSkills:
		doc.SkillItems = AddSkill(doc.SkillItems, ids)
	case SectionProjects:
		doc.ProjectItems = AddProject(doc.ProjectItems, ids)
	case SectionCertifications:
		doc.CertificationItems = AddCertification(doc.CertificationItems, ids)
	}
	return doc
}

func (e RemoveEntry) apply(doc model.ResumeDocument, _ IDSource) model.ResumeDocument {
	switch e.Section {
	case SectionExperience:
		doc.ExperienceItems = Remove(doc.ExperienceItems, e.ID)
	case SectionEducation:
		doc.EducationItems = Remove(doc.EducationItems, e.ID)
	case SectionSkills:
		doc.SkillItems = Remove(doc.SkillItems, e.ID)
	case SectionProjects:
		doc.ProjectItems = Remove(doc.ProjectItems, e.ID)
	case SectionCertifications:
		doc.CertificationItems = Remove(doc.CertificationItems, e.ID)
	}
	return doc
}

func (e UpdateEntry) apply(doc model.ResumeDocument, _ IDSource) model.ResumeDocument {
	switch f := e.Field.(type) {
	case ExperienceField:
		doc.ExperienceItems = UpdateExperience(doc.ExperienceItems, e.ID, f, e.Value)
	case EducationField:
		doc.EducationItems = UpdateEducation(doc.EducationItems, e.ID, f, e.Value)
	case ProjectField:
		doc.ProjectItems = UpdateProject(doc.ProjectItems, e.ID, f, e.Value)
	case CertificationField:
		doc.CertificationItems = UpdateCertification(doc.CertificationItems, e.ID, f, e.Value)
	case SkillField:
		doc.SkillItems = UpdateSkill(doc.SkillItems, e.ID, f, e.Value)
	}
	return doc
}

func (e SkillCategoryEdit) apply(doc model.ResumeDocument, _ IDSource) model.ResumeDocument {
	doc.SkillItems = SetSkillCategory(doc.SkillItems, e.ID, e.Category)
	return doc
}

// ParseEntryEdit builds the edit for a wire-level "set field of entry"
// request. A skill's category is validated against the closed enumeration.
func ParseEntryEdit(section Section, id, field, value string) (Edit, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: entry id is required", ErrUnknownField)
	}
	if section == SectionSkills && strings.TrimSpace(field) == skillCategory {
		category, err := model.ParseSkillCategory(value)
		if err != nil {
			return nil, err
		}
		return SkillCategoryEdit{ID: id, Category: category}, nil
	}
	f, err := ParseEntryField(section, field)
	if err != nil {
		return nil, err
	}
	if f.section() != section {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, section, field)
	}
	return UpdateEntry{ID: id, Field: f, Value: value}, nil
}
