// Package editor applies single edits to a resume document. Every function is
// pure: the input value is never modified and the result shares unchanged
// entries with it.
package editor

import (
	"strings"

	"github.com/google/uuid"

	"resume-builder/resume/model"
)

// IDSource generates identifiers for new entries.
type IDSource interface {
	NewID() string
}

// UUIDSource generates random UUIDs.
type UUIDSource struct{}

// NewID returns a new random UUID string.
func (UUIDSource) NewID() string { return uuid.NewString() }

// IDFunc adapts a function to IDSource.
type IDFunc func() string

// NewID calls f.
func (f IDFunc) NewID() string { return f() }

// validText replaces invalid UTF-8 sequences with U+FFFD so a stored
// document decodes to exactly what was edited.
func validText(value string) string {
	return strings.ToValidUTF8(value, "\uFFFD")
}

// UpdateContact replaces one contact field.
func UpdateContact(doc model.ResumeDocument, field ContactField, value string) model.ResumeDocument {
	value = validText(value)
	c := doc.ContactInfo
	switch field {
	case ContactFullName:
		c.FullName = value
	case ContactTitle:
		c.Title = value
	case ContactEmail:
		c.Email = value
	case ContactPhone:
		c.Phone = value
	case ContactLocation:
		c.Location = value
	case ContactLinkedIn:
		c.LinkedIn = value
	case ContactWebsite:
		c.Website = value
	case ContactPortfolio:
		c.Portfolio = value
	case ContactGitHub:
		c.GitHub = value
	case ContactLeetCode:
		c.LeetCode = value
	case ContactCodeChef:
		c.CodeChef = value
	default:
		return doc
	}
	doc.ContactInfo = c
	return doc
}

// UpdateSummary replaces the free-text summary.
func UpdateSummary(doc model.ResumeDocument, value string) model.ResumeDocument {
	value = validText(value)
	doc.AboutContent = value
	return doc
}

// SelectTemplate replaces the selected template. Membership in the catalog
// is checked where the identifier enters the system (model.ParseTemplateID).
func SelectTemplate(doc model.ResumeDocument, id model.TemplateID) model.ResumeDocument {
	doc.SelectedTemplate = id
	return doc
}

// Remove drops the entry with the given id. Unknown ids leave items as is.
func Remove[T model.Entry](items []T, id string) []T {
	idx := indexOf(items, id)
	if idx < 0 {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

func indexOf[T model.Entry](items []T, id string) int {
	for i := range items {
		if items[i].EntryID() == id {
			return i
		}
	}
	return -1
}

// appendEntry always copies so the caller's backing array is never written.
func appendEntry[T any](items []T, entry T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, entry)
}

func updateEntry[T model.Entry](items []T, id string, set func(*T)) []T {
	idx := indexOf(items, id)
	if idx < 0 {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	set(&out[idx])
	return out
}

// AddExperience appends a placeholder experience entry.
func AddExperience(items []model.ExperienceItem, ids IDSource) []model.ExperienceItem {
	return appendEntry(items, model.ExperienceItem{
		ID:          ids.NewID(),
		Company:     "Company Name",
		Position:    "Position Title",
		StartDate:   "Start Date",
		EndDate:     "End Date",
		Location:    "Location",
		Description: "Describe your responsibilities and achievements",
	})
}

// UpdateExperience replaces one field of the entry with the given id.
func UpdateExperience(items []model.ExperienceItem, id string, field ExperienceField, value string) []model.ExperienceItem {
	value = validText(value)
	return updateEntry(items, id, func(e *model.ExperienceItem) {
		switch field {
		case ExperienceCompany:
			e.Company = value
		case ExperiencePosition:
			e.Position = value
		case ExperienceStartDate:
			e.StartDate = value
		case ExperienceEndDate:
			e.EndDate = value
		case ExperienceDescription:
			e.Description = value
		case ExperienceLocation:
			e.Location = value
		}
	})
}

// AddEducation appends a placeholder education entry.
func AddEducation(items []model.EducationItem, ids IDSource) []model.EducationItem {
	return appendEntry(items, model.EducationItem{
		ID:          ids.NewID(),
		Institution: "University/College Name",
		Degree:      "Degree Type",
		Field:       "Field of Study",
		StartDate:   "Start Year",
		EndDate:     "End Year",
		Location:    "Location",
	})
}

// UpdateEducation replaces one field of the entry with the given id.
func UpdateEducation(items []model.EducationItem, id string, field EducationField, value string) []model.EducationItem {
	value = validText(value)
	return updateEntry(items, id, func(e *model.EducationItem) {
		switch field {
		case EducationInstitution:
			e.Institution = value
		case EducationDegree:
			e.Degree = value
		case EducationStudyField:
			e.Field = value
		case EducationStartDate:
			e.StartDate = value
		case EducationEndDate:
			e.EndDate = value
		case EducationLocation:
			e.Location = value
		}
	})
}

// AddProject appends a placeholder project entry.
func AddProject(items []model.ProjectItem, ids IDSource) []model.ProjectItem {
	return appendEntry(items, model.ProjectItem{
		ID:           ids.NewID(),
		Title:        "New Project",
		Description:  "Project description",
		StartDate:    "Jan 2023",
		EndDate:      "Present",
		Technologies: "React, TypeScript",
	})
}

// UpdateProject replaces one field of the entry with the given id.
func UpdateProject(items []model.ProjectItem, id string, field ProjectField, value string) []model.ProjectItem {
	value = validText(value)
	return updateEntry(items, id, func(p *model.ProjectItem) {
		switch field {
		case ProjectTitle:
			p.Title = value
		case ProjectDescription:
			p.Description = value
		case ProjectStartDate:
			p.StartDate = value
		case ProjectEndDate:
			p.EndDate = value
		case ProjectLink:
			p.Link = value
		case ProjectTechnologies:
			p.Technologies = value
		}
	})
}

// AddCertification appends a placeholder certification entry.
func AddCertification(items []model.CertificationItem, ids IDSource) []model.CertificationItem {
	return appendEntry(items, model.CertificationItem{
		ID:           ids.NewID(),
		Name:         "New Certification",
		Organization: "Issuing Organization",
		IssueDate:    "Jan 2023",
	})
}

// UpdateCertification replaces one field of the entry with the given id.
func UpdateCertification(items []model.CertificationItem, id string, field CertificationField, value string) []model.CertificationItem {
	value = validText(value)
	return updateEntry(items, id, func(c *model.CertificationItem) {
		switch field {
		case CertificationName:
			c.Name = value
		case CertificationOrganization:
			c.Organization = value
		case CertificationIssueDate:
			c.IssueDate = value
		case CertificationExpiryDate:
			c.ExpiryDate = value
		case CertificationCredentialID:
			c.CredentialID = value
		case CertificationLink:
			c.Link = value
		}
	})
}

// AddSkill appends a placeholder skill in the languages category.
func AddSkill(items []model.SkillItem, ids IDSource) []model.SkillItem {
	return appendEntry(items, model.SkillItem{
		ID:       ids.NewID(),
		Name:     "New Skill",
		Category: model.CategoryLanguages,
	})
}

// UpdateSkill replaces one text field of the skill with the given id.
func UpdateSkill(items []model.SkillItem, id string, field SkillField, value string) []model.SkillItem {
	value = validText(value)
	return updateEntry(items, id, func(s *model.SkillItem) {
		switch field {
		case SkillName:
			s.Name = value
		}
	})
}

// SetSkillCategory moves the skill with the given id to another category.
func SetSkillCategory(items []model.SkillItem, id string, category model.SkillCategory) []model.SkillItem {
	return updateEntry(items, id, func(s *model.SkillItem) {
		s.Category = category
	})
}
