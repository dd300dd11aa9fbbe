package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownTemplate is returned when a template identifier is outside the catalog.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrUnknownCategory is returned when a skill category is outside the enumeration.
	ErrUnknownCategory = errors.New("unknown skill category")
)

// TemplateID identifies a cosmetic rendering variant.
type TemplateID string

const (
	TemplateClassic    TemplateID = "classic"
	TemplateModern     TemplateID = "modern"
	TemplateCreative   TemplateID = "creative"
	TemplateMinimalist TemplateID = "minimalist"

	// DefaultTemplate is used for new documents and for stored documents
	// that predate template selection.
	DefaultTemplate = TemplateClassic
)

// Template describes one entry of the template catalog.
type Template struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

// Templates is the fixed catalog, in selection order.
var Templates = []Template{
	{ID: TemplateClassic, Name: "Classic", Description: "A traditional resume layout with a clean, professional appearance"},
	{ID: TemplateModern, Name: "Modern", Description: "A contemporary design with a sleek, minimalist style"},
	{ID: TemplateCreative, Name: "Creative", Description: "A bold, colorful design that showcases your personality"},
	{ID: TemplateMinimalist, Name: "Minimalist", Description: "A simple, clean design focusing on content"},
}

// IsKnownTemplate reports whether id is part of the catalog.
func IsKnownTemplate(id TemplateID) bool {
	for _, t := range Templates {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ParseTemplateID converts a boundary string into a TemplateID.
func ParseTemplateID(raw string) (TemplateID, error) {
	id := TemplateID(strings.TrimSpace(raw))
	if !IsKnownTemplate(id) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, raw)
	}
	return id, nil
}

// SkillCategory is the closed set of skill buckets.
type SkillCategory string

const (
	CategoryLanguages      SkillCategory = "languages"
	CategoryFrontend       SkillCategory = "frontend"
	CategoryBackend        SkillCategory = "backend"
	CategoryFrameworks     SkillCategory = "frameworks"
	CategoryDatabase       SkillCategory = "database"
	CategoryTools          SkillCategory = "tools"
	CategoryVersionControl SkillCategory = "versionControl"
)

// SkillCategories lists every category in display order.
var SkillCategories = []SkillCategory{
	CategoryLanguages,
	CategoryFrontend,
	CategoryBackend,
	CategoryFrameworks,
	CategoryDatabase,
	CategoryTools,
	CategoryVersionControl,
}

var categoryLabels = map[SkillCategory]string{
	CategoryLanguages:      "Programming Languages",
	CategoryFrontend:       "Frontend",
	CategoryBackend:        "Backend",
	CategoryFrameworks:     "Frameworks",
	CategoryDatabase:       "Database",
	CategoryTools:          "Tools",
	CategoryVersionControl: "Version Control",
}

// Label returns the display heading for the category.
func (c SkillCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsKnownCategory reports whether c is one of SkillCategories.
func IsKnownCategory(c SkillCategory) bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseSkillCategory converts a boundary string into a SkillCategory.
func ParseSkillCategory(raw string) (SkillCategory, error) {
	c := SkillCategory(strings.TrimSpace(raw))
	if !IsKnownCategory(c) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
	return c, nil
}
