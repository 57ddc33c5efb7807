package match

import (
	"fmt"
	"strings"

	"school-onboarder/internal/schema"
)

// Mapping is a partial, ordered field → raw column assignment for one entity.
// Fields keep the order in which they were resolved.
type Mapping struct {
	Entity schema.Entity

	fields  []string
	columns map[string]string
}

// NewMapping returns an empty mapping for e.
func NewMapping(e schema.Entity) *Mapping {
	return &Mapping{Entity: e, columns: make(map[string]string)}
}

// Set assigns column to field, replacing any previous assignment.
func (m *Mapping) Set(field, column string) {
	if _, ok := m.columns[field]; !ok {
		m.fields = append(m.fields, field)
	}

	m.columns[field] = column
}

// Column returns the raw column mapped to field.
func (m *Mapping) Column(field string) (string, bool) {
	if m == nil {
		return "", false
	}

	c, ok := m.columns[field]

	return c, ok
}

// Has reports whether field is mapped.
func (m *Mapping) Has(field string) bool {
	_, ok := m.Column(field)
	return ok
}

// Fields returns the mapped fields in resolution order.
func (m *Mapping) Fields() []string {
	if m == nil {
		return nil
	}

	out := make([]string, len(m.fields))
	copy(out, m.fields)

	return out
}

// Len returns the number of mapped fields.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.fields)
}

// Unmapped returns the fields of s that have no column, in schema order.
func (m *Mapping) Unmapped(s schema.Schema) []string {
	var out []string

	for _, f := range s.Fields {
		if !m.Has(f) {
			out = append(out, f)
		}
	}

	return out
}

// String renders the mapping as {'field': 'column', ...}.
func (m *Mapping) String() string {
	parts := make([]string, 0, m.Len())
	for _, f := range m.Fields() {
		parts = append(parts, fmt.Sprintf("'%s': '%s'", f, m.columns[f]))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
