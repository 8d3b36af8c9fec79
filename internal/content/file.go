package content

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Bundle is the on-disk layout read by FileProvider.
type Bundle struct {
	Paths   []Path   `yaml:"paths"`
	Lessons []Lesson `yaml:"lessons"`
}

// FileProvider serves content from a YAML bundle loaded once. It backs
// offline mode and tests.
type FileProvider struct {
	paths   map[string]*Path
	lessons map[string]*Lesson
}

// NewFileProvider reads and validates the bundle at name.
func NewFileProvider(name string) (*FileProvider, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read content bundle: %w", err)
	}
	return ParseBundle(data)
}

// ParseBundle builds a FileProvider from YAML bytes. Documents without an
// id use their slug as id.
func ParseBundle(data []byte) (*FileProvider, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse content bundle: %w", err)
	}

	fp := &FileProvider{
		paths:   make(map[string]*Path, len(b.Paths)),
		lessons: make(map[string]*Lesson, len(b.Lessons)),
	}
	for i := range b.Paths {
		p := &b.Paths[i]
		fillPathIDs(p)
		if err := ValidatePath(p); err != nil {
			return nil, err
		}
		fp.paths[p.Slug] = p
	}
	for i := range b.Lessons {
		l := &b.Lessons[i]
		if l.ID == "" {
			l.ID = l.Slug
		}
		if err := ValidateLesson(l); err != nil {
			return nil, err
		}
		fp.lessons[l.Slug] = l
	}
	return fp, nil
}

func fillPathIDs(p *Path) {
	if p.ID == "" {
		p.ID = p.Slug
	}
	for i := range p.Modules {
		m := &p.Modules[i]
		if m.ID == "" {
			m.ID = m.Slug
		}
		for j := range m.Lessons {
			if m.Lessons[j].ID == "" {
				m.Lessons[j].ID = m.Lessons[j].Slug
			}
		}
	}
}

func (f *FileProvider) FetchPath(ctx context.Context, slug string) (*Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.paths[slug], nil
}

func (f *FileProvider) FetchLesson(ctx context.Context, slug string) (*Lesson, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.lessons[slug], nil
}

// PathSlugs lists the bundled paths.
func (f *FileProvider) PathSlugs() []string {
	return slices.Sorted(maps.Keys(f.paths))
}
