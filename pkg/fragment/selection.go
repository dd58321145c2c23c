// Package fragment declares GraphQL query fragments as data and composes them
// through a registry. Composition problems (missing dependencies, duplicate
// fields) are reported when a fragment is registered, not when a query runs.
package fragment

// Selection is one entry of a selection set: a Field, a Spread or an
// InlineFragment.
type Selection interface {
	selection()
}

// Arg is a field argument. Value is printed verbatim as a GraphQL literal.
type Arg struct {
	Name  string
	Value string
}

// Field selects a field, optionally aliased, with arguments and a nested
// selection set.
type Field struct {
	Name       string
	Alias      string
	Args       []Arg
	Selections []Selection
}

// Key returns the response key the field occupies in the result.
func (f Field) Key() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Spread includes a named fragment by reference.
type Spread struct {
	Fragment string
}

// InlineFragment applies a nested selection set only when the runtime type
// matches On.
type InlineFragment struct {
	On         string
	Selections []Selection
}

func (Field) selection()          {}
func (Spread) selection()         {}
func (InlineFragment) selection() {}

// F builds a field with an optional nested selection set.
func F(name string, sub ...Selection) Field {
	return Field{Name: name, Selections: sub}
}

// WithArgs returns a copy of f carrying args.
func (f Field) WithArgs(args ...Arg) Field {
	f.Args = append(append([]Arg(nil), f.Args...), args...)
	return f
}

// As returns a copy of f with the given alias.
func (f Field) As(alias string) Field {
	f.Alias = alias
	return f
}

// Use spreads the named fragment.
func Use(name string) Spread {
	return Spread{Fragment: name}
}

// On builds an inline fragment for typ.
func On(typ string, sub ...Selection) InlineFragment {
	return InlineFragment{On: typ, Selections: sub}
}

// Fragment is a named, reusable selection set on a type.
type Fragment struct {
	Name       string
	On         string
	Selections []Selection
}

// Spread returns a spread referencing f, for embedding in a parent selection.
func (f Fragment) Spread() Spread {
	return Use(f.Name)
}

// Operation is a top-level query embedding registered fragments.
type Operation struct {
	Kind       string // "query" when empty
	Name       string
	Selections []Selection
}
