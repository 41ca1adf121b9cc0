package entities

import (
	"errors"
	"fmt"
	"sort"
)

// Gender is the voice gender tag attached to a persona
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Persona represents a named voice character
type Persona struct {
	Name   string `json:"name" yaml:"name"`
	Gender Gender `json:"gender" yaml:"gender"`
}

// PersonaTable is a read-only persona name to gender mapping built once at startup
type PersonaTable struct {
	genders map[string]Gender
}

// DefaultPersonas is the persona roster shipped with the service
var DefaultPersonas = []Persona{
	{Name: "Artistic Aria", Gender: Female},
	{Name: "Rhyme Rex", Gender: Male},
	{Name: "Logic Leo", Gender: Male},
	{Name: "Thinking Ponder", Gender: Male},
	{Name: "Dramatic Delilah", Gender: Female},
	{Name: "Shadow Sam", Gender: Male},
	{Name: "Teacher", Gender: Female},
}

// NewPersonaTable copies the given personas into an immutable table
func NewPersonaTable(personas []Persona) (*PersonaTable, error) {
	genders := make(map[string]Gender, len(personas))
	for _, p := range personas {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := genders[p.Name]; dup {
			return nil, fmt.Errorf("duplicate persona %q", p.Name)
		}
		genders[p.Name] = p.Gender
	}
	return &PersonaTable{genders: genders}, nil
}

// Validate checks the persona has a name and a known gender
func (p Persona) Validate() error {
	if p.Name == "" {
		return errors.New("persona name is required")
	}
	if p.Gender != Male && p.Gender != Female {
		return fmt.Errorf("persona %q has unknown gender %q", p.Name, p.Gender)
	}
	return nil
}

// Gender returns the gender of the named persona
func (t *PersonaTable) Gender(name string) (Gender, bool) {
	g, ok := t.genders[name]
	return g, ok
}

// Len returns the number of personas
func (t *PersonaTable) Len() int {
	return len(t.genders)
}

// List returns all personas sorted by name
func (t *PersonaTable) List() []Persona {
	out := make([]Persona, 0, len(t.genders))
	for name, g := range t.genders {
		out = append(out, Persona{Name: name, Gender: g})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
