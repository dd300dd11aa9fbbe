package editor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownSection is returned for a section name outside the document.
	ErrUnknownSection = errors.New("unknown section")

	// ErrUnknownField is returned for a field name the section does not have.
	ErrUnknownField = errors.New("unknown field")
)

// Section names one ordered collection of the document.
type Section string

const (
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
)

var sections = []Section{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
}

// ParseSection converts a path segment into a Section.
func ParseSection(raw string) (Section, error) {
	s := Section(strings.TrimSpace(raw))
	for _, known := range sections {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
}

// ContactField selects one scalar of ContactInfo.
type ContactField string

const (
	ContactFullName  ContactField = "fullName"
	ContactTitle     ContactField = "title"
	ContactEmail     ContactField = "email"
	ContactPhone     ContactField = "phone"
	ContactLocation  ContactField = "location"
	ContactLinkedIn  ContactField = "linkedin"
	ContactWebsite   ContactField = "website"
	ContactPortfolio ContactField = "portfolio"
	ContactGitHub    ContactField = "github"
	ContactLeetCode  ContactField = "leetcode"
	ContactCodeChef  ContactField = "codechef"
)

var contactFields = []ContactField{
	ContactFullName, ContactTitle, ContactEmail, ContactPhone, ContactLocation,
	ContactLinkedIn, ContactWebsite, ContactPortfolio, ContactGitHub, ContactLeetCode, ContactCodeChef,
}

// ParseContactField converts a wire field name into a ContactField.
func ParseContactField(raw string) (ContactField, error) {
	return parseField(raw, contactFields, "contact")
}

// EntryField is a field selector of one entry type. The concrete type
// decides which collection an UpdateEntry edit targets.
type EntryField interface {
	section() Section
}

// ExperienceField selects a text field of an ExperienceItem.
type ExperienceField string

const (
	ExperienceCompany     ExperienceField = "company"
	ExperiencePosition    ExperienceField = "position"
	ExperienceStartDate   ExperienceField = "startDate"
	ExperienceEndDate     ExperienceField = "endDate"
	ExperienceDescription ExperienceField = "description"
	ExperienceLocation    ExperienceField = "location"
)

// EducationField selects a text field of an EducationItem.
type EducationField string

const (
	EducationInstitution EducationField = "institution"
	EducationDegree      EducationField = "degree"
	EducationStudyField  EducationField = "field"
	EducationStartDate   EducationField = "startDate"
	EducationEndDate     EducationField = "endDate"
	EducationLocation    EducationField = "location"
)

// ProjectField selects a text field of a ProjectItem.
type ProjectField string

const (
	ProjectTitle        ProjectField = "title"
	ProjectDescription  ProjectField = "description"
	ProjectStartDate    ProjectField = "startDate"
	ProjectEndDate      ProjectField = "endDate"
	ProjectLink         ProjectField = "link"
	ProjectTechnologies ProjectField = "technologies"
)

// CertificationField selects a text field of a CertificationItem.
type CertificationField string

const (
	CertificationName         CertificationField = "name"
	CertificationOrganization CertificationField = "organization"
	CertificationIssueDate    CertificationField = "issueDate"
	CertificationExpiryDate   CertificationField = "expiryDate"
	CertificationCredentialID CertificationField = "credentialId"
	CertificationLink         CertificationField = "link"
)

// SkillField selects a text field of a SkillItem. The category is changed
// through SetSkillCategory since it is not free text.
type SkillField string

const (
	SkillName SkillField = "name"

	// skillCategory is accepted by ParseEntryEdit and routed to SetSkillCategory.
	skillCategory = "category"
)

func (ExperienceField) section() Section    { return SectionExperience }
func (EducationField) section() Section     { return SectionEducation }
func (ProjectField) section() Section       { return SectionProjects }
func (CertificationField) section() Section { return SectionCertifications }
func (SkillField) section() Section         { return SectionSkills }

var (
	experienceFields = []ExperienceField{
		ExperienceCompany, ExperiencePosition, ExperienceStartDate, ExperienceEndDate, ExperienceDescription, ExperienceLocation,
	}
	educationFields = []EducationField{
		EducationInstitution, EducationDegree, EducationStudyField, EducationStartDate, EducationEndDate, EducationLocation,
	}
	projectFields = []ProjectField{
		ProjectTitle, ProjectDescription, ProjectStartDate, ProjectEndDate, ProjectLink, ProjectTechnologies,
	}
	certificationFields = []CertificationField{
		CertificationName, CertificationOrganization, CertificationIssueDate, CertificationExpiryDate, CertificationCredentialID, CertificationLink,
	}
	skillFields = []SkillField{SkillName}
)

// ParseEntryField converts a wire field name of the given section into its
// typed selector.
func ParseEntryField(section Section, raw string) (EntryField, error) {
	switch section {
	case SectionExperience:
		return parseEntryField(raw, experienceFields, section)
	case SectionEducation:
		return parseEntryField(raw, educationFields, section)
	case SectionProjects:
		return parseEntryField(raw, projectFields, section)
	case SectionCertifications:
		return parseEntryField(raw, certificationFields, section)
	case SectionSkills:
		return parseEntryField(raw, skillFields, section)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
}

func parseEntryField[F interface {
	~string
	EntryField
}](raw string, known []F, section Section) (EntryField, error) {
	f, err := parseField(raw, known, string(section))
	if err != nil {
		return nil, err
	}
	return f, nil
}

func parseField[F ~string](raw string, known []F, owner string) (F, error) {
	f := F(strings.TrimSpace(raw))
	for _, k := range known {
		if f == k {
			return f, nil
		}
	}
	var zero F
	return zero, fmt.Errorf("%w: %s.%s", ErrUnknownField, owner, raw)
}
