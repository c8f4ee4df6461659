package persona

import (
	"strings"

	"multilanguage-agent/internal/langid"
)

// Persona is a language-bound assistant profile.
type Persona struct {
	ID           string       `yaml:"id"`
	Label        langid.Label `yaml:"label"`
	Name         string       `yaml:"name"`
	Role         string       `yaml:"role"`
	Instructions []string     `yaml:"instructions"`
}

// SystemPrompt renders the persona as system context for the model.
func (p Persona) SystemPrompt() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Role != "" {
		b.WriteString(" (")
		b.WriteString(p.Role)
		b.WriteString(")")
	}
	for _, ins := range p.Instructions {
		b.WriteString("\n- ")
		b.WriteString(ins)
	}
	return b.String()
}

type pack struct {
	Personas []Persona `yaml:"personas"`
}
