package match

import (
	"fmt"
	"sort"
)

// Registry holds one matcher per template category, all rooted at the
// same templates directory. Callers select the category; the registry
// replaces seven near-identical per-category matchers with one
// parameterized instance each.
type Registry struct {
	matchers map[string]*Matcher
}

// NewRegistry creates matchers for every known category under templatesRoot.
func NewRegistry(templatesRoot string, opts ...Option) *Registry {
	matchers := make(map[string]*Matcher)
	for _, category := range Categories() {
		matchers[category.Name] = NewMatcher(templatesRoot, category, opts...)
	}
	return &Registry{matchers: matchers}
}

// Matcher returns the matcher for a category name.
func (r *Registry) Matcher(category string) (*Matcher, error) {
	m, ok := r.matchers[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return m, nil
}

// CategoryNames returns the registered category names in sorted order.
func (r *Registry) CategoryNames() []string {
	names := make([]string, 0, len(r.matchers))
	for name := range r.matchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
