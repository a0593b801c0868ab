package dto

import (
	"bytes"
	"encoding/json"
)

// GroupSection -.
type GroupSection struct {
	Group   string `json:"group"`
	Section string `json:"section"`
}

// GroupSections maps a period label to its group and section, keeping the
// order in which labels were first written.
type GroupSections struct {
	order   []string
	entries map[string]GroupSection
}

// NewGroupSections -.
func NewGroupSections() GroupSections {
	return GroupSections{entries: map[string]GroupSection{}}
}

// Put writes or overwrites label without changing its position.
func (g *GroupSections) Put(label string, gs GroupSection) {
	if g.entries == nil {
		g.entries = map[string]GroupSection{}
	}

	if _, exists := g.entries[label]; !exists {
		g.order = append(g.order, label)
	}

	g.entries[label] = gs
}

// Get -.
func (g GroupSections) Get(label string) (GroupSection, bool) {
	gs, ok := g.entries[label]

	return gs, ok
}

// Labels returns period labels in first-write order.
func (g GroupSections) Labels() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Len -.
func (g GroupSections) Len() int {
	return len(g.order)
}

// MarshalJSON emits an object whose keys follow first-write order.
func (g GroupSections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, label := range g.order {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(g.entries[label])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
