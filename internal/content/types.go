// Package content holds the portfolio catalog: projects, experiences, skills
// and the profile copy shown around them. The catalog is loaded once and is
// read-only afterwards.
package content

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ProjectCategory classifies a project in the gallery.
type ProjectCategory string

const (
	ProjectMobile    ProjectCategory = "Mobile"
	ProjectWeb       ProjectCategory = "Web"
	ProjectFullStack ProjectCategory = "Full Stack"
	ProjectAI        ProjectCategory = "AI"
)

// IsValid reports whether c is one of the known project categories.
func (c ProjectCategory) IsValid() bool {
	switch c {
	case ProjectMobile, ProjectWeb, ProjectFullStack, ProjectAI:
		return true
	}
	return false
}

// UnmarshalYAML rejects categories outside the closed set.
func (c *ProjectCategory) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if !ProjectCategory(s).IsValid() {
		return errors.Errorf("line %d: unknown project category %q", node.Line, s)
	}
	*c = ProjectCategory(s)
	return nil
}

// SkillCategory groups skills in the skills section.
type SkillCategory string

const (
	SkillFrontend SkillCategory = "Frontend"
	SkillBackend  SkillCategory = "Backend"
	SkillDesign   SkillCategory = "Design"
	SkillTools    SkillCategory = "Tools"
)

// SkillCategories returns every skill category in display order.
func SkillCategories() []SkillCategory {
	return []SkillCategory{SkillFrontend, SkillBackend, SkillDesign, SkillTools}
}

// ParseSkillCategory matches s against the known categories, ignoring case.
func ParseSkillCategory(s string) (SkillCategory, bool) {
	for _, c := range SkillCategories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether c is one of the known skill categories.
func (c SkillCategory) IsValid() bool {
	switch c {
	case SkillFrontend, SkillBackend, SkillDesign, SkillTools:
		return true
	}
	return false
}

// UnmarshalYAML rejects categories outside the closed set.
func (c *SkillCategory) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, ok := ParseSkillCategory(s)
	if !ok {
		return errors.Errorf("line %d: unknown skill category %q", node.Line, s)
	}
	*c = parsed
	return nil
}

// Project is a gallery entry.
type Project struct {
	ID          string          `yaml:"id" json:"id"`
	Title       string          `yaml:"title" json:"title"`
	Description string          `yaml:"description" json:"description"`
	TechStack   []string        `yaml:"techStack" json:"techStack"`
	Category    ProjectCategory `yaml:"category" json:"category"`
	Icon        string          `yaml:"icon" json:"icon"`
	Gradient    string          `yaml:"gradient" json:"gradient"`
	Link        string          `yaml:"link,omitempty" json:"link,omitempty"`
	GithubURL   string          `yaml:"githubUrl,omitempty" json:"githubUrl,omitempty"`
}

// TechPreview returns the first n tech tags and how many were left out.
func (p Project) TechPreview(n int) ([]string, int) {
	if n < 0 {
		n = 0
	}
	if len(p.TechStack) <= n {
		return p.TechStack, 0
	}
	return p.TechStack[:n], len(p.TechStack) - n
}

// Experience is a timeline entry.
type Experience struct {
	ID          string   `yaml:"id" json:"id"`
	Role        string   `yaml:"role" json:"role"`
	Company     string   `yaml:"company" json:"company"`
	Location    string   `yaml:"location" json:"location"`
	Period      string   `yaml:"period" json:"period"`
	Description []string `yaml:"description" json:"description"`
	Icon        string   `yaml:"icon" json:"icon"`
}

// Skill is a single entry in the skills section. Level is 0-100.
type Skill struct {
	Name     string        `yaml:"name" json:"name"`
	Category SkillCategory `yaml:"category" json:"category"`
	Level    int           `yaml:"level" json:"level"`
	Icon     string        `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Hero is the landing banner copy.
type Hero struct {
	Greeting     string `yaml:"greeting" json:"greeting"`
	Headline     string `yaml:"headline" json:"headline"`
	Tagline      string `yaml:"tagline" json:"tagline"`
	SubTagline   string `yaml:"subTagline" json:"subTagline"`
	Availability string `yaml:"availability" json:"availability"`
}

// Highlight is a small card in the about section.
type Highlight struct {
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
	Icon  string `yaml:"icon" json:"icon"`
}

// About is the about section copy.
type About struct {
	Paragraphs []string    `yaml:"paragraphs" json:"paragraphs"`
	Highlights []Highlight `yaml:"highlights" json:"highlights"`
}

// Contact is the contact card.
type Contact struct {
	Name     string `yaml:"name" json:"name"`
	Title    string `yaml:"title" json:"title"`
	Email    string `yaml:"email" json:"email"`
	Github   string `yaml:"github" json:"github"`
	Linkedin string `yaml:"linkedin" json:"linkedin"`
	Location string `yaml:"location" json:"location"`
	CardID   string `yaml:"cardId" json:"cardId"`
}

// GithubURL returns the github profile as an absolute URL.
func (c Contact) GithubURL() string { return "https://" + c.Github }

// LinkedinURL returns the linkedin profile as an absolute URL.
func (c Contact) LinkedinURL() string { return "https://" + c.Linkedin }

// Profile is everything on the page that is not a list.
type Profile struct {
	Hero    Hero    `yaml:"hero" json:"hero"`
	About   About   `yaml:"about" json:"about"`
	Contact Contact `yaml:"contact" json:"contact"`
}
