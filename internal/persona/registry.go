package persona

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"multilanguage-agent/internal/langid"
)

//go:embed personas.yaml
var defaultPack []byte

// Registry is a read-only label to persona table.
type Registry struct {
	byLabel map[langid.Label]Persona
	ordered []Persona
}

// NewDefault builds the registry from the embedded English/German pack.
func NewDefault() (*Registry, error) {
	return Parse(defaultPack)
}

// Parse builds a registry from a YAML pack.
func Parse(data []byte) (*Registry, error) {
	var p pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("persona: decode pack: %w", err)
	}

	r := &Registry{byLabel: make(map[langid.Label]Persona, len(p.Personas))}
	for i, ps := range p.Personas {
		if ps.ID == "" || ps.Name == "" || len(ps.Instructions) == 0 {
			return nil, fmt.Errorf("%w: entry %d", ErrInvalidPersona, i)
		}
		if !ps.Label.Supported() {
			return nil, fmt.Errorf("%w: %s has unsupported label %q", ErrInvalidPersona, ps.ID, ps.Label)
		}
		if _, ok := r.byLabel[ps.Label]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLabel, ps.Label)
		}
		ps.Instructions = append([]string(nil), ps.Instructions...)
		r.byLabel[ps.Label] = ps
		r.ordered = append(r.ordered, ps)
	}
	return r, nil
}

// Get returns the persona for label. Unsupported is never present.
func (r *Registry) Get(label langid.Label) (Persona, bool) {
	p, ok := r.byLabel[label]
	if !ok {
		return Persona{}, false
	}
	p.Instructions = append([]string(nil), p.Instructions...)
	return p, true
}

// All returns every persona in pack order.
func (r *Registry) All() []Persona {
	out := make([]Persona, len(r.ordered))
	for i, p := range r.ordered {
		p.Instructions = append([]string(nil), p.Instructions...)
		out[i] = p
	}
	return out
}
