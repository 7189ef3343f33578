package content

import "github.com/samber/lo"

// SkillGroup is one category section of the skills list.
type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Skills   []Skill       `json:"skills"`
}

// FilterSkills returns the skills in category, keeping their original order.
func FilterSkills(skills []Skill, category SkillCategory) []Skill {
	return lo.Filter(skills, func(s Skill, _ int) bool {
		return s.Category == category
	})
}

// GroupSkills splits skills into one group per category in display order.
// Categories without skills are left out.
func GroupSkills(skills []Skill) []SkillGroup {
	var groups []SkillGroup
	for _, c := range SkillCategories() {
		if matched := FilterSkills(skills, c); len(matched) > 0 {
			groups = append(groups, SkillGroup{Category: c, Skills: matched})
		}
	}
	return groups
}
