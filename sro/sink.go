package sro

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Sink receives the side effects of a computation: one named per-atom
// property and one scalar attribute per pair, then the summary table.
// Implementations adapt these to a host (a data pipeline, a viewer, a file).
type Sink interface {
	SetParticleProperty(name string, values []Value) error
	SetAttribute(name string, v Value) error
	AddTable(t Table) error
}

// AttributeName returns the scalar attribute key for a pair label: "<label>".
func AttributeName(label string) string {
	return "<" + label + ">"
}

// publish writes r to s in pair order, table last.
func publish(r *Result, s Sink) error {
	for _, p := range r.Pairs {
		values := make([]Value, len(p.PerAtom))
		copy(values, p.PerAtom)
		if err := s.SetParticleProperty(p.Label, values); err != nil {
			return errors.Wrapf(err, "property %s", p.Label)
		}
		if err := s.SetAttribute(AttributeName(p.Label), p.Average); err != nil {
			return errors.Wrapf(err, "attribute %s", AttributeName(p.Label))
		}
	}
	if err := s.AddTable(r.Table()); err != nil {
		return errors.Wrap(err, "table")
	}
	return nil
}

// MemorySink keeps everything in memory. Safe for concurrent use.
// The zero value is ready to use.
type MemorySink struct {
	mu         sync.RWMutex
	properties map[string][]Value
	attributes map[string]Value
	tables     []Table
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// SetParticleProperty stores (or replaces) a per-atom property.
func (m *MemorySink) SetParticleProperty(name string, values []Value) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.properties == nil {
		m.properties = make(map[string][]Value)
	}
	m.properties[name] = values
	return nil
}

// SetAttribute stores (or replaces) a scalar attribute.
func (m *MemorySink) SetAttribute(name string, v Value) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.attributes == nil {
		m.attributes = make(map[string]Value)
	}
	m.attributes[name] = v
	return nil
}

// AddTable appends a summary table.
func (m *MemorySink) AddTable(t Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = append(m.tables, t)
	return nil
}

// Property returns the per-atom values stored under name.
func (m *MemorySink) Property(name string) ([]Value, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.properties[name]
	return v, ok
}

// Attribute returns the scalar stored under name.
func (m *MemorySink) Attribute(name string) (Value, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.attributes[name]
	return v, ok
}

// Tables returns the tables added so far, oldest first.
func (m *MemorySink) Tables() []Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Table, len(m.tables))
	copy(out, m.tables)
	return out
}
