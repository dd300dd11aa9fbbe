package model

// ResumeDocument is the aggregate root edited by a session. Collections keep
// insertion order and identifiers are unique within their collection.
type ResumeDocument struct {
	ContactInfo        ContactInfo         `json:"contactInfo"`
	AboutContent       string              `json:"aboutContent"`
	ExperienceItems    []ExperienceItem    `json:"experienceItems"`
	EducationItems     []EducationItem     `json:"educationItems"`
	SkillItems         []SkillItem         `json:"skillItems"`
	ProjectItems       []ProjectItem       `json:"projectItems"`
	CertificationItems []CertificationItem `json:"certificationItems"`
	SelectedTemplate   TemplateID          `json:"selectedTemplate"`
}

// ContactInfo captures top-of-resume identity details and profile links.
type ContactInfo struct {
	FullName  string `json:"fullName"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	GitHub    string `json:"github,omitempty"`
	LeetCode  string `json:"leetcode,omitempty"`
	CodeChef  string `json:"codechef,omitempty"`
}

// Entry is implemented by every identifier-keyed collection element.
type Entry interface {
	EntryID() string
}

// ExperienceItem represents a work history entry. Dates are display strings.
type ExperienceItem struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// EducationItem represents an education entry.
type EducationItem struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location"`
}

// ProjectItem represents a notable project.
type ProjectItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Link         string `json:"link,omitempty"`
	Technologies string `json:"technologies"`
}

// CertificationItem represents a certification entry.
type CertificationItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	IssueDate    string `json:"issueDate"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	Link         string `json:"link,omitempty"`
}

// SkillItem is a named skill in one of the fixed categories.
type SkillItem struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

func (e ExperienceItem) EntryID() string    { return e.ID }
func (e EducationItem) EntryID() string     { return e.ID }
func (e ProjectItem) EntryID() string       { return e.ID }
func (e CertificationItem) EntryID() string { return e.ID }
func (e SkillItem) EntryID() string         { return e.ID }

// Clone returns a copy that shares no backing arrays with d.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.ExperienceItems = cloneSlice(d.ExperienceItems)
	out.EducationItems = cloneSlice(d.EducationItems)
	out.SkillItems = cloneSlice(d.SkillItems)
	out.ProjectItems = cloneSlice(d.ProjectItems)
	out.CertificationItems = cloneSlice(d.CertificationItems)
	return out
}

// Normalize replaces nil collections with empty ones and an unknown
// template with the baseline.
func (d ResumeDocument) Normalize() ResumeDocument {
	if d.ExperienceItems == nil {
		d.ExperienceItems = []ExperienceItem{}
	}
	if d.EducationItems == nil {
		d.EducationItems = []EducationItem{}
	}
	if d.SkillItems == nil {
		d.SkillItems = []SkillItem{}
	}
	if d.ProjectItems == nil {
		d.ProjectItems = []ProjectItem{}
	}
	if d.CertificationItems == nil {
		d.CertificationItems = []CertificationItem{}
	}
	if !IsKnownTemplate(d.SelectedTemplate) {
		d.SelectedTemplate = DefaultTemplate
	}
	return d
}

// DuplicateIDs reports identifiers that occur more than once in items.
func DuplicateIDs[T Entry](items []T) []string {
	seen := make(map[string]struct{}, len(items))
	var dups []string
	for _, item := range items {
		id := item.EntryID()
		if _, ok := seen[id]; ok {
			dups = append(dups, id)
			continue
		}
		seen[id] = struct{}{}
	}
	return dups
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
