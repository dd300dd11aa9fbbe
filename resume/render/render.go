// Package render turns the display projection of a resume into HTML and,
// through an Exporter, into a PDF document.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"resume-builder/resume/model"
	"resume-builder/resume/view"
)

//go:embed templates/resume.html.tmpl
var templatesFS embed.FS

var (
	previewOnce sync.Once
	preview     *template.Template
	previewErr  error
)

func loadPage() (*template.Template, error) {
	previewOnce.Do(func() {
		preview, previewErr = template.ParseFS(templatesFS, "templates/resume.html.tmpl")
	})
	return preview, previewErr
}

type pageData struct {
	Template       model.TemplateID
	Class          string
	Style          template.CSS
	Contact        model.ContactInfo
	Links          []string
	About          string
	Education      []model.EducationItem
	Experience     []model.ExperienceItem
	Skills         []view.CategoryGroup
	Projects       []model.ProjectItem
	Certifications []model.CertificationItem
}

// RenderHTML renders the preview page of doc. Sections appear in preview
// order: contact, about, education, experience, skills, projects and
// certifications.
func RenderHTML(doc model.ResumeDocument) ([]byte, error) {
	tpl, err := loadPage()
	if err != nil {
		return nil, fmt.Errorf("parse preview template: %w", err)
	}

	doc = doc.Normalize()
	style := view.StyleFor(doc.SelectedTemplate)
	data := pageData{
		Template:       doc.SelectedTemplate,
		Class:          style.Class,
		Style:          template.CSS(style.Inline()),
		Contact:        doc.ContactInfo,
		Links:          contactLinks(doc.ContactInfo),
		About:          doc.AboutContent,
		Education:      doc.EducationItems,
		Experience:     doc.ExperienceItems,
		Skills:         view.GroupByCategory(doc.SkillItems).Ordered(),
		Projects:       doc.ProjectItems,
		Certifications: doc.CertificationItems,
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}
	return buf.Bytes(), nil
}

func contactLinks(c model.ContactInfo) []string {
	var links []string
	for _, v := range []string{c.Website, c.LinkedIn, c.GitHub, c.Portfolio, c.LeetCode, c.CodeChef} {
		if v != "" {
			links = append(links, v)
		}
	}
	return links
}
