package fragment

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds fragments by name. Fragments must be registered after the
// fragments they spread, which also rules out cycles.
type Registry struct {
	mu        sync.RWMutex
	fragments map[string]Fragment
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fragments: make(map[string]Fragment)}
}

// Register validates f against the fragments already registered and stores it.
func (r *Registry) Register(f Fragment) (Fragment, error) {
	if f.Name == "" || f.On == "" || len(f.Selections) == 0 {
		return Fragment{}, &CompositionError{Fragment: f.Name, Err: ErrInvalidFragment,
			Detail: "name, type condition and selections are required"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fragments[f.Name]; ok {
		return Fragment{}, &CompositionError{Fragment: f.Name, Err: ErrDuplicateFragment}
	}
	v := validator{fragments: r.fragments, owner: f.Name}
	if err := v.selectionSet("", f.Selections); err != nil {
		return Fragment{}, err
	}
	r.fragments[f.Name] = f
	return f, nil
}

// MustRegister is Register for package-level declarations; it panics on error
// so a broken composition stops the program at start-up.
func (r *Registry) MustRegister(f Fragment) Fragment {
	registered, err := r.Register(f)
	if err != nil {
		panic(err)
	}
	return registered
}

// Lookup returns the fragment registered under name.
func (r *Registry) Lookup(name string) (Fragment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fragments[name]
	return f, ok
}

// Names returns the registered fragment names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fragments))
	for name := range r.fragments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dependencies returns every fragment name spread by name, directly or
// transitively, in sorted order.
func (r *Registry) Dependencies(name string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fragments[name]
	if !ok {
		return nil, &CompositionError{Fragment: name, Err: ErrMissingFragment}
	}
	seen := make(map[string]bool)
	r.collect(f.Selections, seen)
	return sortedKeys(seen), nil
}

func (r *Registry) collect(sels []Selection, seen map[string]bool) {
	for _, sel := range sels {
		switch s := sel.(type) {
		case Field:
			r.collect(s.Selections, seen)
		case InlineFragment:
			r.collect(s.Selections, seen)
		case Spread:
			if seen[s.Fragment] {
				continue
			}
			seen[s.Fragment] = true
			r.collect(r.fragments[s.Fragment].Selections, seen)
		}
	}
}

// Document prints the fragment followed by each fragment it depends on, so the
// result can be appended to any operation that spreads it.
func (r *Registry) Document(name string) (string, error) {
	deps, err := r.Dependencies(name)
	if err != nil {
		return "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sb strings.Builder
	writeFragment(&sb, r.fragments[name])
	for _, dep := range deps {
		sb.WriteString("\n")
		writeFragment(&sb, r.fragments[dep])
	}
	return sb.String(), nil
}

// OperationDocument validates op against the registry and prints it together
// with every fragment it spreads.
func (r *Registry) OperationDocument(op Operation) (string, error) {
	kind := op.Kind
	if kind == "" {
		kind = "query"
	}
	name := op.Name
	if name == "" {
		name = "<anonymous>"
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	v := validator{fragments: r.fragments, owner: name}
	if err := v.selectionSet("", op.Selections); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(kind)
	if op.Name != "" {
		sb.WriteString(" " + op.Name)
	}
	sb.WriteString(" {\n")
	writeSelections(&sb, op.Selections, 1)
	sb.WriteString("}\n")

	seen := make(map[string]bool)
	r.collect(op.Selections, seen)
	for _, dep := range sortedKeys(seen) {
		sb.WriteString("\n")
		writeFragment(&sb, r.fragments[dep])
	}
	return sb.String(), nil
}

// Fields returns the dotted response paths the fragment requests once every
// spread is expanded, including non-leaf fields. Inline fragments contribute
// their fields at the enclosing path.
func (r *Registry) Fields(name string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fragments[name]
	if !ok {
		return nil, &CompositionError{Fragment: name, Err: ErrMissingFragment}
	}
	paths := make(map[string]bool)
	r.flatten("", f.Selections, paths)
	return sortedKeys(paths), nil
}

func (r *Registry) flatten(prefix string, sels []Selection, out map[string]bool) {
	for _, sel := range sels {
		switch s := sel.(type) {
		case Field:
			path := joinPath(prefix, s.Key())
			out[path] = true
			r.flatten(path, s.Selections, out)
		case InlineFragment:
			r.flatten(prefix, s.Selections, out)
		case Spread:
			r.flatten(prefix, r.fragments[s.Fragment].Selections, out)
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// validator checks one selection tree against already-registered fragments.
type validator struct {
	fragments map[string]Fragment
	owner     string
}

// scope holds the response keys declared at one level, per type condition.
// The empty condition holds keys selected for every runtime type.
type scope map[string]map[string]string

// selectionSet checks one level and every level nested below it, failing on
// unknown spreads or on a response key declared twice at the same level.
func (v validator) selectionSet(path string, sels []Selection) error {
	return v.level(path, sels, "", make(scope), make(map[string]bool))
}

// level walks sels under type condition cond. Inline fragments share the
// enclosing level's scope so siblings are checked against each other.
func (v validator) level(path string, sels []Selection, cond string, sc scope, spread map[string]bool) error {
	for _, sel := range sels {
		switch s := sel.(type) {
		case Field:
			if err := v.declare(path, sc, cond, s.Key(), v.owner); err != nil {
				return err
			}
			if len(s.Selections) > 0 {
				if err := v.selectionSet(joinPath(path, s.Key()), s.Selections); err != nil {
					return err
				}
			}
		case InlineFragment:
			if err := v.level(path, s.Selections, s.On, sc, spread); err != nil {
				return err
			}
		case Spread:
			if err := v.spreadKeys(path, s, cond, sc, spread); err != nil {
				return err
			}
		}
	}
	return nil
}

// spreadKeys declares the keys a spread contributes to the current level,
// following nested spreads and inline fragments. Nested selection sets were
// validated when the fragment was registered.
func (v validator) spreadKeys(path string, s Spread, cond string, sc scope, spread map[string]bool) error {
	f, ok := v.fragments[s.Fragment]
	if !ok {
		return &CompositionError{Fragment: v.owner, Path: path, Err: ErrMissingFragment, Detail: s.Fragment}
	}
	if spread[s.Fragment] {
		return &CompositionError{Fragment: v.owner, Path: path, Err: ErrFieldCollision,
			Detail: fmt.Sprintf("%s spread more than once", s.Fragment)}
	}
	spread[s.Fragment] = true
	return v.contribute(path, f.Selections, cond, "..."+f.Name, sc, spread)
}

func (v validator) contribute(path string, sels []Selection, cond, origin string, sc scope, spread map[string]bool) error {
	for _, sel := range sels {
		var err error
		switch inner := sel.(type) {
		case Field:
			err = v.declare(path, sc, cond, inner.Key(), origin)
		case InlineFragment:
			err = v.contribute(path, inner.Selections, inner.On, origin, sc, spread)
		case Spread:
			err = v.spreadKeys(path, inner, cond, sc, spread)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// declare records key under cond. An unconditional key clashes with the same
// key under any condition; a conditional key clashes with unconditional keys
// and with its own condition.
func (v validator) declare(path string, sc scope, cond, key, origin string) error {
	conds := []string{"", cond}
	if cond == "" {
		conds = make([]string, 0, len(sc))
		for c := range sc {
			conds = append(conds, c)
		}
		sort.Strings(conds)
	}
	for _, c := range conds {
		if prev, ok := sc[c][key]; ok {
			return &CompositionError{Fragment: v.owner, Path: path, Err: ErrFieldCollision,
				Detail: fmt.Sprintf("%q declared by %s and %s", key, prev, origin)}
		}
	}
	if sc[cond] == nil {
		sc[cond] = make(map[string]string)
	}
	sc[cond][key] = origin
	return nil
}
