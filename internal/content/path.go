package content

import (
	"cmp"
	"slices"
)

// Sorted returns a copy of the path with modules and their lessons
// ordered by Order. Equal orders keep their document position. The
// receiver is not modified.
func (p *Path) Sorted() *Path {
	if p == nil {
		return nil
	}
	out := *p
	out.Modules = make([]Module, len(p.Modules))
	for i, m := range p.Modules {
		m.Lessons = slices.Clone(m.Lessons)
		slices.SortStableFunc(m.Lessons, func(a, b LessonSummary) int {
			return cmp.Compare(a.Order, b.Order)
		})
		out.Modules[i] = m
	}
	slices.SortStableFunc(out.Modules, func(a, b Module) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return &out
}

// Lessons returns every lesson of the path in reading order. Empty
// modules contribute nothing.
func (p *Path) Lessons() []LessonSummary {
	if p == nil {
		return nil
	}
	var out []LessonSummary
	for _, m := range p.Sorted().Modules {
		out = append(out, m.Lessons...)
	}
	return out
}

// FindLesson returns the summary for slug and the module holding it.
func (p *Path) FindLesson(slug string) (*LessonSummary, *Module, bool) {
	if p == nil {
		return nil, nil, false
	}
	for i := range p.Modules {
		m := &p.Modules[i]
		for j := range m.Lessons {
			if m.Lessons[j].Slug == slug {
				return &m.Lessons[j], m, true
			}
		}
	}
	return nil, nil, false
}

// LessonCount is the number of lessons across all modules.
func (p *Path) LessonCount() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, m := range p.Modules {
		n += len(m.Lessons)
	}
	return n
}
