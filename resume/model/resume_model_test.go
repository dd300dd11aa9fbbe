package model

import (
	"errors"
	"testing"
)

func TestDefaultReturnsIndependentValues(t *testing.T) {
	a := Default()
	b := Default()

	a.ExperienceItems[0].Company = "Changed"
	a.SkillItems = append(a.SkillItems[:0], a.SkillItems[1:]...)

	if b.ExperienceItems[0].Company != "Tech Solutions Inc." {
		t.Fatalf("expected second default to be untouched, got %q", b.ExperienceItems[0].Company)
	}
	if len(b.SkillItems) != 11 {
		t.Fatalf("expected 11 skills, got %d", len(b.SkillItems))
	}
	if b.SelectedTemplate != TemplateClassic {
		t.Fatalf("expected classic template, got %q", b.SelectedTemplate)
	}
}

func TestDefaultHasUniqueIDs(t *testing.T) {
	doc := Default()
	if dups := DuplicateIDs(doc.ExperienceItems); len(dups) != 0 {
		t.Fatalf("duplicate experience ids: %v", dups)
	}
	if dups := DuplicateIDs(doc.SkillItems); len(dups) != 0 {
		t.Fatalf("duplicate skill ids: %v", dups)
	}
	if dups := DuplicateIDs(doc.CertificationItems); len(dups) != 0 {
		t.Fatalf("duplicate certification ids: %v", dups)
	}
}

func TestDuplicateIDsReportsRepeats(t *testing.T) {
	items := []SkillItem{{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: "a"}}
	dups := DuplicateIDs(items)
	if len(dups) != 2 || dups[0] != "a" {
		t.Fatalf("unexpected duplicates: %v", dups)
	}
}

func TestParseTemplateID(t *testing.T) {
	id, err := ParseTemplateID(" modern ")
	if err != nil {
		t.Fatalf("ParseTemplateID: %v", err)
	}
	if id != TemplateModern {
		t.Fatalf("expected modern, got %q", id)
	}

	if _, err := ParseTemplateID("brutalist"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestParseSkillCategory(t *testing.T) {
	for _, c := range SkillCategories {
		got, err := ParseSkillCategory(string(c))
		if err != nil {
			t.Fatalf("ParseSkillCategory(%q): %v", c, err)
		}
		if got != c {
			t.Fatalf("expected %q, got %q", c, got)
		}
	}
	if _, err := ParseSkillCategory("cooking"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryVersionControl.Label(); got != "Version Control" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := CategoryLanguages.Label(); got != "Programming Languages" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestNormalizeFillsCollectionsAndTemplate(t *testing.T) {
	doc := ResumeDocument{SelectedTemplate: "retro"}.Normalize()
	if doc.ExperienceItems == nil || doc.EducationItems == nil || doc.SkillItems == nil ||
		doc.ProjectItems == nil || doc.CertificationItems == nil {
		t.Fatalf("expected non-nil collections: %+v", doc)
	}
	if doc.SelectedTemplate != DefaultTemplate {
		t.Fatalf("expected default template, got %q", doc.SelectedTemplate)
	}
}

func TestCloneDoesNotShareBackingArrays(t *testing.T) {
	doc := Default()
	clone := doc.Clone()
	clone.ProjectItems[0].Title = "Other"
	if doc.ProjectItems[0].Title != "E-commerce Platform" {
		t.Fatalf("clone mutated original: %q", doc.ProjectItems[0].Title)
	}
}
