package content

import (
	"bytes"
	_ "embed"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog is the read-only data store behind every section of the page.
type Catalog struct {
	profile     Profile
	projects    []Project
	experiences []Experience
	skills      []Skill
}

type catalogFile struct {
	Profile     Profile      `yaml:"profile"`
	Projects    []Project    `yaml:"projects"`
	Experiences []Experience `yaml:"experiences"`
	Skills      []Skill      `yaml:"skills"`
}

// Load reads the catalog from path, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embeddedCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog: %s", path)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid catalog: %s", path)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog")
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	return &Catalog{
		profile:     f.Profile,
		projects:    f.Projects,
		experiences: f.Experiences,
		skills:      f.Skills,
	}, nil
}

func (f *catalogFile) validate() error {
	projectIDs := lo.Map(f.Projects, func(p Project, _ int) string { return p.ID })
	if err := checkIDs("project", projectIDs); err != nil {
		return err
	}
	for _, p := range f.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return errors.Errorf("project %s: title is required", p.ID)
		}
		if !p.Category.IsValid() {
			return errors.Errorf("project %s: unknown category %q", p.ID, p.Category)
		}
	}

	experienceIDs := lo.Map(f.Experiences, func(e Experience, _ int) string { return e.ID })
	if err := checkIDs("experience", experienceIDs); err != nil {
		return err
	}
	for _, e := range f.Experiences {
		if strings.TrimSpace(e.Role) == "" {
			return errors.Errorf("experience %s: role is required", e.ID)
		}
	}

	skillNames := lo.Map(f.Skills, func(s Skill, _ int) string { return s.Name })
	if err := checkIDs("skill", skillNames); err != nil {
		return err
	}
	for _, s := range f.Skills {
		if !s.Category.IsValid() {
			return errors.Errorf("skill %s: unknown category %q", s.Name, s.Category)
		}
		if s.Level < 0 || s.Level > 100 {
			return errors.Errorf("skill %s: level %d out of range 0-100", s.Name, s.Level)
		}
	}

	return nil
}

func checkIDs(kind string, ids []string) error {
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return errors.Errorf("%s #%d: id is required", kind, i+1)
		}
	}
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return errors.Errorf("duplicate %s ids: %s", kind, strings.Join(dups, ", "))
	}
	return nil
}

// Profile returns the hero, about and contact copy.
func (c *Catalog) Profile() Profile {
	p := c.profile
	p.About.Paragraphs = slices.Clone(p.About.Paragraphs)
	p.About.Highlights = slices.Clone(p.About.Highlights)
	return p
}

// Projects returns the projects in catalog order.
func (c *Catalog) Projects() []Project {
	return lo.Map(c.projects, func(p Project, _ int) Project {
		p.TechStack = slices.Clone(p.TechStack)
		return p
	})
}

// Experiences returns the timeline in catalog order.
func (c *Catalog) Experiences() []Experience {
	return lo.Map(c.experiences, func(e Experience, _ int) Experience {
		e.Description = slices.Clone(e.Description)
		return e
	})
}

// Skills returns all skills in catalog order.
func (c *Catalog) Skills() []Skill {
	return slices.Clone(c.skills)
}

// Project looks up a project by id.
func (c *Catalog) Project(id string) (Project, bool) {
	p, ok := lo.Find(c.projects, func(p Project) bool { return p.ID == id })
	if ok {
		p.TechStack = slices.Clone(p.TechStack)
	}
	return p, ok
}

// HasProject reports whether id names a project.
func (c *Catalog) HasProject(id string) bool {
	return lo.ContainsBy(c.projects, func(p Project) bool { return p.ID == id })
}

// HasExperience reports whether id names an experience.
func (c *Catalog) HasExperience(id string) bool {
	return lo.ContainsBy(c.experiences, func(e Experience) bool { return e.ID == id })
}
