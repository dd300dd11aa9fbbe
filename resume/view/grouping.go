// Package view derives read-only display projections from a resume document.
package view

import "resume-builder/resume/model"

// SkillGroups maps every known category to its skills in document order.
// All categories are present; a category without skills has an empty slice.
type SkillGroups map[model.SkillCategory][]model.SkillItem

// CategoryGroup is one non-empty category ready for display.
type CategoryGroup struct {
	Category model.SkillCategory `json:"category"`
	Label    string              `json:"label"`
	Skills   []model.SkillItem   `json:"skills"`
}

// GroupByCategory folds skills into SkillGroups. Skills whose category is
// not part of the enumeration are left out.
func GroupByCategory(skills []model.SkillItem) SkillGroups {
	groups := make(SkillGroups, len(model.SkillCategories))
	for _, c := range model.SkillCategories {
		groups[c] = []model.SkillItem{}
	}
	for _, s := range skills {
		bucket, ok := groups[s.Category]
		if !ok {
			continue
		}
		groups[s.Category] = append(bucket, s)
	}
	return groups
}

// Ordered returns the non-empty groups in display order.
func (g SkillGroups) Ordered() []CategoryGroup {
	out := make([]CategoryGroup, 0, len(g))
	for _, c := range model.SkillCategories {
		skills := g[c]
		if len(skills) == 0 {
			continue
		}
		out = append(out, CategoryGroup{Category: c, Label: c.Label(), Skills: skills})
	}
	return out
}
