package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalCatalog = `
profile:
  contact:
    name: "Test"
    email: "test@example.com"
projects:
  - id: p1
    title: One
    category: Web
    techStack: [Go, HTMX, Tailwind, SQLite, Docker]
  - id: p2
    title: Two
    category: "Full Stack"
experiences:
  - id: e1
    role: Developer
    description: [a, b]
skills:
  - { name: Go, category: Backend, level: 60 }
  - { name: React, category: frontend, level: 80 }
`

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, c.Projects())
	assert.NotEmpty(t, c.Experiences())
	assert.NotEmpty(t, c.Skills())
	assert.NotEmpty(t, c.Profile().Contact.Email)

	for _, p := range c.Projects() {
		assert.True(t, p.Category.IsValid(), p.ID)
		assert.True(t, c.HasProject(p.ID))
	}
	for _, e := range c.Experiences() {
		assert.True(t, c.HasExperience(e.ID))
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalCatalog), 0600))

	c, err := Load(path)
	require.NoError(t, err)

	require.Len(t, c.Projects(), 2)
	assert.Equal(t, ProjectFullStack, c.Projects()[1].Category)
	// Skill categories are matched case-insensitively
	assert.Equal(t, SkillFrontend, c.Skills()[1].Category)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown project category",
			yaml: "projects:\n  - {id: p1, title: One, category: Desktop}\n",
		},
		{
			name: "missing project category",
			yaml: "projects:\n  - {id: p1, title: One}\n",
		},
		{
			name: "duplicate project ids",
			yaml: "projects:\n  - {id: p1, title: One, category: Web}\n  - {id: p1, title: Two, category: AI}\n",
		},
		{
			name: "empty project id",
			yaml: "projects:\n  - {id: '', title: One, category: Web}\n",
		},
		{
			name: "missing project title",
			yaml: "projects:\n  - {id: p1, category: Web}\n",
		},
		{
			name: "duplicate experience ids",
			yaml: "experiences:\n  - {id: e1, role: A}\n  - {id: e1, role: B}\n",
		},
		{
			name: "missing experience role",
			yaml: "experiences:\n  - {id: e1}\n",
		},
		{
			name: "unknown skill category",
			yaml: "skills:\n  - {name: Go, category: Cooking, level: 10}\n",
		},
		{
			name: "skill level out of range",
			yaml: "skills:\n  - {name: Go, category: Backend, level: 101}\n",
		},
		{
			name: "unknown field",
			yaml: "projects:\n  - {id: p1, title: One, category: Web, stars: 5}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	c, err := Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	projects := c.Projects()
	projects[0].Title = "changed"
	projects[0].TechStack[0] = "changed"

	again := c.Projects()
	assert.Equal(t, "One", again[0].Title)
	assert.Equal(t, "Go", again[0].TechStack[0])

	p, ok := c.Project("p1")
	require.True(t, ok)
	p.TechStack[0] = "changed"
	p, _ = c.Project("p1")
	assert.Equal(t, "Go", p.TechStack[0])

	exps := c.Experiences()
	exps[0].Description[0] = "changed"
	assert.Equal(t, "a", c.Experiences()[0].Description[0])
}

func TestCatalogLookups(t *testing.T) {
	c, err := Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	_, ok := c.Project("nope")
	assert.False(t, ok)
	assert.False(t, c.HasProject("nope"))
	assert.True(t, c.HasProject("p2"))
	assert.True(t, c.HasExperience("e1"))
	assert.False(t, c.HasExperience("p1"))
}

func TestTechPreview(t *testing.T) {
	p := Project{TechStack: []string{"Go", "HTMX", "Tailwind", "SQLite", "Docker"}}

	shown, hidden := p.TechPreview(3)
	assert.Equal(t, []string{"Go", "HTMX", "Tailwind"}, shown)
	assert.Equal(t, 2, hidden)

	shown, hidden = p.TechPreview(10)
	assert.Len(t, shown, 5)
	assert.Zero(t, hidden)

	shown, hidden = p.TechPreview(-1)
	assert.Empty(t, shown)
	assert.Equal(t, 5, hidden)
}

func TestContactURLs(t *testing.T) {
	c := Contact{Github: "github.com/andyli", Linkedin: "linkedin.com/in/andyli"}
	assert.Equal(t, "https://github.com/andyli", c.GithubURL())
	assert.Equal(t, "https://linkedin.com/in/andyli", c.LinkedinURL())
}
