package pass

import (
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Format is the resource format a channel is bound with.
type Format string

const (
	FormatUnknown     Format = ""
	FormatRGBA32Float Format = "RGBA32Float"
	FormatRGBA32Uint  Format = "RGBA32Uint"
	FormatRGBA16Float Format = "RGBA16Float"
	FormatRG32Float   Format = "RG32Float"
	FormatRG16Float   Format = "RG16Float"
	FormatR32Float    Format = "R32Float"
	FormatR32Uint     Format = "R32Uint"
	FormatR8Uint      Format = "R8Uint"
	FormatD32Float    Format = "D32Float"
)

// Channel is a named input or output slot of a pass.
type Channel struct {
	Name string
	// TexName is the shader variable the resource is bound to. Empty means
	// the channel is bound under its own name.
	TexName     string
	Description string
	// Optional inputs may be left unconnected in a valid graph.
	Optional bool
	Format   Format
}

// ShaderName returns the variable the channel is bound to in shader code.
func (c Channel) ShaderName() string {
	if c.TexName == "" {
		return c.Name
	}
	return c.TexName
}

// OptionSpec describes one configuration option of a pass type.
type OptionSpec struct {
	Name        string
	Description string
	Type        cty.Type
	Default     cty.Value
	// Enum names a registered enum the value must belong to. Enum options
	// have type cty.String.
	Enum string
	// Check is an optional extra constraint run after type conversion.
	Check func(cty.Value) error
}

// Type is the reflection data of a pass type.
type Type struct {
	Name        string
	Description string
	Inputs      []Channel
	Outputs     []Channel
	Options     []OptionSpec
}

// Input looks up an input channel by name.
func (t *Type) Input(name string) (Channel, bool) {
	return findChannel(t.Inputs, name)
}

// Output looks up an output channel by name.
func (t *Type) Output(name string) (Channel, bool) {
	return findChannel(t.Outputs, name)
}

// Option looks up an option spec by name.
func (t *Type) Option(name string) (OptionSpec, bool) {
	for _, o := range t.Options {
		if o.Name == name {
			return o, true
		}
	}
	return OptionSpec{}, false
}

func findChannel(channels []Channel, name string) (Channel, bool) {
	for _, c := range channels {
		if c.Name == name {
			return c, true
		}
	}
	return Channel{}, false
}

// Library is a named group of pass types, loaded as a unit.
type Library struct {
	Name  string
	Types []*Type
}

// Enum is a named set of symbolic values. Scripts reference its members as
// `Name.Value`.
type Enum struct {
	Name   string
	Values []string
}

// Has reports whether v is a member of the enum.
func (e *Enum) Has(v string) bool {
	for _, value := range e.Values {
		if value == v {
			return true
		}
	}
	return false
}

// Object returns the enum as a cty object whose attributes evaluate to their
// own names, so that `SamplePattern.Center` yields "Center".
func (e *Enum) Object() cty.Value {
	attrs := make(map[string]cty.Value, len(e.Values))
	for _, v := range e.Values {
		attrs[v] = cty.StringVal(v)
	}
	return cty.ObjectVal(attrs)
}

// Instance is a configured pass, ready to be added to a graph.
type Instance struct {
	Type *Type
	// Options holds a value for every option the type declares.
	Options map[string]cty.Value
}

// TypeName returns the name of the pass type.
func (i *Instance) TypeName() string {
	return i.Type.Name
}

// Option returns the value of an option, or cty.NilVal if the type does not
// declare it.
func (i *Instance) Option(name string) cty.Value {
	v, ok := i.Options[name]
	if !ok {
		return cty.NilVal
	}
	return v
}

// ChangedOptions returns, in declaration order, the names of options whose
// value differs from the type's default.
func (i *Instance) ChangedOptions() []string {
	var names []string
	for _, spec := range i.Type.Options {
		v, ok := i.Options[spec.Name]
		if !ok {
			continue
		}
		if spec.Default == cty.NilVal || !v.RawEquals(spec.Default) {
			names = append(names, spec.Name)
		}
	}
	return names
}

// OptionNames returns the names of all set options, sorted.
func (i *Instance) OptionNames() []string {
	names := make([]string, 0, len(i.Options))
	for name := range i.Options {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
