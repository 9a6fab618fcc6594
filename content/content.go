// Package content holds the portfolio model the level is generated from and the loaders that
// read it from disk.
package content

import (
	"errors"
	"sort"
)

// Portfolio is the complete content snapshot a level is built from.
type Portfolio struct {
	Profile    Profile      `yaml:"profile" json:"profile"`
	Experience []Experience `yaml:"experience" json:"experience"`
	TechStack  TechStack    `yaml:"techStack" json:"techStack"`
	Contact    Contact      `yaml:"contact" json:"contact"`
}

type Profile struct {
	Name       string   `yaml:"name" json:"name"`
	Role       string   `yaml:"role" json:"role"`
	Location   string   `yaml:"location" json:"location"`
	Summary    string   `yaml:"summary" json:"summary"`
	Attributes []string `yaml:"attributes" json:"attributes"`
}

// Experience is one role. The level is built from the first entry.
type Experience struct {
	ID       string    `yaml:"id" json:"id"`
	Company  string    `yaml:"company" json:"company"`
	Role     string    `yaml:"role" json:"role"`
	Period   string    `yaml:"period" json:"period"`
	Location string    `yaml:"location" json:"location"`
	Sections []Section `yaml:"sections" json:"sections"`
}

type Section struct {
	ID      string         `yaml:"id" json:"id"`
	Title   string         `yaml:"title" json:"title"`
	Icon    string         `yaml:"icon" json:"icon"`
	Order   int            `yaml:"order" json:"order"`
	Preview Preview        `yaml:"preview" json:"preview"`
	Content SectionContent `yaml:"content" json:"content"`
}

type Preview struct {
	TopMetrics  []string `yaml:"topMetrics" json:"topMetrics"`
	BulletCount int      `yaml:"bulletCount" json:"bulletCount"`
}

type SectionContent struct {
	Bullets     []string     `yaml:"bullets" json:"bullets"`
	Metrics     []Metric     `yaml:"metrics" json:"metrics"`
	SubSections []SubSection `yaml:"subSections" json:"subSections"`
	Countries   []string     `yaml:"countries" json:"countries"`
}

type Metric struct {
	Icon  string `yaml:"icon" json:"icon"`
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Trend string `yaml:"trend" json:"trend"`
}

type SubSection struct {
	Title   string   `yaml:"title" json:"title"`
	Bullets []string `yaml:"bullets" json:"bullets"`
}

type TechStack struct {
	Categories []TechCategory `yaml:"categories" json:"categories"`
}

type TechCategory struct {
	Name         string       `yaml:"name" json:"name"`
	Technologies []Technology `yaml:"technologies" json:"technologies"`
}

type Technology struct {
	Name        string `yaml:"name" json:"name"`
	Proficiency string `yaml:"proficiency" json:"proficiency"`
}

type Contact struct {
	Email      string `yaml:"email" json:"email"`
	LinkedIn   string `yaml:"linkedin" json:"linkedin"`
	ResumeURL  string `yaml:"resumeUrl" json:"resumeUrl"`
	Location   string `yaml:"location" json:"location"`
	OpenToWork bool   `yaml:"openToWork" json:"openToWork"`
}

var (
	ErrNoName       = errors.New("content: profile name is empty")
	ErrNoExperience = errors.New("content: no experience entries")
)

// Validate reports the only two conditions a level cannot be built without.
func (p *Portfolio) Validate() error {
	if p.Profile.Name == "" {
		return ErrNoName
	}
	if len(p.Experience) == 0 {
		return ErrNoExperience
	}
	return nil
}

// Primary returns the experience entry the level is built from.
func (p *Portfolio) Primary() (Experience, bool) {
	if len(p.Experience) == 0 {
		return Experience{}, false
	}
	return p.Experience[0], true
}

// OrderedSections returns the sections sorted by Order. Ties keep their file order.
func (e Experience) OrderedSections() []Section {
	sections := make([]Section, len(e.Sections))
	copy(sections, e.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	return sections
}

// Section looks up a section by id.
func (e Experience) Section(id string) (Section, bool) {
	for _, s := range e.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
